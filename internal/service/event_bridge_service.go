package service

import (
	"context"
	"encoding/json"
	"log"

	"vofc-ingest-be/internal/dto"
	"vofc-ingest-be/pkg/events"
	pktNats "vofc-ingest-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IEventBridgeService republishes in-process run events to NATS so
// external consumers can follow runs. Delivery failures never affect
// the pipeline.
type IEventBridgeService interface {
	Start(ctx context.Context) error
}

type eventBridgeService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	publisher *pktNats.Publisher
}

func NewEventBridgeService(
	pubSub *gochannel.GoChannel,
	topicName string,
	publisher *pktNats.Publisher,
) IEventBridgeService {
	return &eventBridgeService{
		pubSub:    pubSub,
		topicName: topicName,
		publisher: publisher,
	}
}

func (es *eventBridgeService) Start(ctx context.Context) error {
	messages, err := es.pubSub.Subscribe(ctx, es.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			var payload dto.PublishRunCompletedMessage
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				log.Printf("[WARN] Event bridge dropped unreadable message: %v", err)
				msg.Ack()
				continue
			}

			event := events.NewRunCompleted(
				payload.ModelVersion,
				payload.SourceFile,
				payload.Vulnerabilities,
				payload.Ofcs,
				payload.ElapsedSeconds,
			)
			if err := es.publisher.Publish(ctx, event); err != nil {
				log.Printf("[WARN] Failed to forward run event to NATS: %v", err)
			}
			// Outward delivery is best effort; never redeliver.
			msg.Ack()
		}
	}()

	return nil
}
