package service

import (
	"context"
	"encoding/json"
	"log"

	"vofc-ingest-be/internal/dto"
	"vofc-ingest-be/internal/entity"
	"vofc-ingest-be/internal/repository/contract"
	"vofc-ingest-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// ILearningService consumes run-completed events and maintains the
// learning-events log plus per-model rolling aggregates. It never
// affects the run that produced the event.
type ILearningService interface {
	Consume(ctx context.Context) error
}

type learningService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewLearningService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) ILearningService {
	return &learningService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (ls *learningService) Consume(ctx context.Context) error {
	messages, err := ls.pubSub.Subscribe(ctx, ls.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			ls.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (ls *learningService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishRunCompletedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal run-completed message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Recording run metrics for %s (model %s)", payload.SourceFile, payload.ModelVersion)

	uow := ls.uowFactory.NewUnitOfWork(ctx)
	repo := uow.LearningRepository()

	event := &entity.LearningEvent{
		ModelVersion:             payload.ModelVersion,
		SourceFile:               payload.SourceFile,
		VulnerabilitiesExtracted: payload.Vulnerabilities,
		OfcsExtracted:            payload.Ofcs,
		ElapsedSeconds:           payload.ElapsedSeconds,
	}
	if err := repo.AppendEvent(ctx, event); err != nil {
		log.Printf("[ERROR] Failed to append learning event: %v", err)
		msg.Nack()
		return
	}

	if err := ls.updateStats(ctx, repo, payload); err != nil {
		log.Printf("[ERROR] Failed to update model stats: %v", err)
		msg.Nack()
		return
	}

	msg.Ack()
}

// updateStats folds one run into the per-model aggregate row.
func (ls *learningService) updateStats(ctx context.Context, repo contract.LearningRepository, payload dto.PublishRunCompletedMessage) error {
	stats, err := repo.FindStats(ctx, payload.ModelVersion)
	if err != nil {
		return err
	}
	if stats == nil {
		stats = &entity.ModelStats{ModelVersion: payload.ModelVersion}
	}

	runs := float64(stats.TotalRuns)
	stats.TotalRuns++
	stats.TotalVulnerabilities += int64(payload.Vulnerabilities)
	stats.TotalOfcs += int64(payload.Ofcs)
	stats.AvgVulnerabilities = (stats.AvgVulnerabilities*runs + float64(payload.Vulnerabilities)) / float64(stats.TotalRuns)
	stats.AvgOfcs = (stats.AvgOfcs*runs + float64(payload.Ofcs)) / float64(stats.TotalRuns)
	stats.AvgElapsedSeconds = (stats.AvgElapsedSeconds*runs + payload.ElapsedSeconds) / float64(stats.TotalRuns)

	return repo.SaveStats(ctx, stats)
}

// PublishRunCompleted serializes the event payload for the in-process
// bus. Shared with the pipeline side so both agree on the shape.
func PublishRunCompleted(pubSub *gochannel.GoChannel, topicName string, payload dto.PublishRunCompletedMessage) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return pubSub.Publish(topicName, message.NewMessage(watermill.NewUUID(), data))
}
