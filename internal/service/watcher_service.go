package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"vofc-ingest-be/internal/config"
	"vofc-ingest-be/internal/dto"
	"vofc-ingest-be/pkg/events"
	pktNats "vofc-ingest-be/pkg/nats"
	"vofc-ingest-be/pkg/pipeline"
	"vofc-ingest-be/pkg/queue"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/fsnotify/fsnotify"
)

const maxFileAttempts = 3

// IWatcherService owns the worker loop: it watches incoming/, feeds the
// queue, and runs the pipeline one file at a time.
type IWatcherService interface {
	Run(ctx context.Context) error
}

type watcherService struct {
	cfg       *config.Config
	layout    config.Layout
	pipeline  IPipelineService
	queue     *queue.Queue
	progress  *queue.ProgressWriter
	pubSub    *gochannel.GoChannel
	topicName string
	natsPub   *pktNats.Publisher
}

func NewWatcherService(
	cfg *config.Config,
	pipelineService IPipelineService,
	q *queue.Queue,
	progress *queue.ProgressWriter,
	pubSub *gochannel.GoChannel,
	topicName string,
	natsPub *pktNats.Publisher,
) IWatcherService {
	return &watcherService{
		cfg:       cfg,
		layout:    config.NewLayout(cfg.Pipeline.DataDir),
		pipeline:  pipelineService,
		queue:     q,
		progress:  progress,
		pubSub:    pubSub,
		topicName: topicName,
		natsPub:   natsPub,
	}
}

// Run blocks until the stop sentinel appears or the context is
// canceled. An in-flight file always runs to completion; the sentinel
// is only checked between files.
func (ws *watcherService) Run(ctx context.Context) error {
	if err := ws.layout.Ensure(); err != nil {
		return fmt.Errorf("%w: creating data directories: %v", pipeline.ErrConfiguration, err)
	}

	// A sentinel left over from a previous stop would halt the loop
	// immediately.
	stopFile := ws.layout.StopFile(ws.cfg.Pipeline.StopSentinel)
	if err := os.Remove(stopFile); err == nil {
		log.Printf("[WARN] Removed stale stop sentinel %s", stopFile)
	}

	if err := ws.enqueueExisting(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%w: starting filesystem watcher: %v", pipeline.ErrConfiguration, err)
	}
	defer watcher.Close()

	if err := watcher.Add(ws.layout.Incoming); err != nil {
		return fmt.Errorf("%w: watching %s: %v", pipeline.ErrConfiguration, ws.layout.Incoming, err)
	}
	log.Printf("[INFO] Watching %s", ws.layout.Incoming)

	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		if ws.stopRequested(stopFile) {
			log.Printf("[INFO] Stop sentinel found, shutting down")
			ws.reportIdle()
			return nil
		}

		if item, ok, err := ws.queue.Next(); err != nil {
			log.Printf("[ERROR] Queue claim failed: %v", err)
		} else if ok {
			ws.processItem(ctx, item)
			continue
		}

		ws.reportIdle()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, open := <-watcher.Events:
			if !open {
				return nil
			}
			if event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename) {
				ws.maybeEnqueue(event.Name)
			}
		case err, open := <-watcher.Errors:
			if !open {
				return nil
			}
			log.Printf("[WARN] Watcher error: %v", err)
		case <-ticker.C:
			// Periodic rescan catches files the watcher missed.
			if err := ws.enqueueExisting(); err != nil {
				log.Printf("[WARN] Rescan failed: %v", err)
			}
		}
	}
}

func (ws *watcherService) enqueueExisting() error {
	entries, err := os.ReadDir(ws.layout.Incoming)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", pipeline.ErrConfiguration, ws.layout.Incoming, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ws.maybeEnqueue(filepath.Join(ws.layout.Incoming, entry.Name()))
	}
	return nil
}

func (ws *watcherService) maybeEnqueue(path string) {
	name := filepath.Base(path)
	if !strings.EqualFold(filepath.Ext(name), ".pdf") {
		return
	}
	// A sibling lock means another worker already claimed the file.
	if _, err := os.Stat(lockPath(path)); err == nil {
		return
	}
	added, err := ws.queue.Enqueue(name)
	if err != nil {
		log.Printf("[ERROR] Failed to enqueue %s: %v", name, err)
		return
	}
	if added {
		log.Printf("[INFO] Enqueued %s", name)
		ws.publishEvent(events.NewFileEnqueued(name))
	}
}

func (ws *watcherService) processItem(ctx context.Context, item queue.Item) {
	path := filepath.Join(ws.layout.Incoming, item.File)
	if _, err := os.Stat(path); err != nil {
		log.Printf("[WARN] Queued file %s is gone, dropping", item.File)
		_ = ws.queue.MarkError(item.File, fmt.Errorf("file missing from incoming"))
		return
	}

	lock := lockPath(path)
	lockFile, err := os.OpenFile(lock, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("[WARN] %s is locked by another worker, requeueing", item.File)
		_ = ws.queue.MarkPending(item.File)
		return
	}
	lockFile.Close()
	defer os.Remove(lock)

	start := time.Now()
	result, persisted, err := ws.pipeline.ProcessFile(ctx, path)
	if err != nil {
		ws.handleFailure(item, path, err)
		return
	}

	ws.finishSuccess(item, path, result, persisted, time.Since(start))
}

func (ws *watcherService) finishSuccess(item queue.Item, path string, result *dto.ResultDTO, persisted *dto.PersistResultDTO, elapsed time.Duration) {
	stem := strings.TrimSuffix(item.File, filepath.Ext(item.File))

	if err := ws.writeResultJSON(stem, result); err != nil {
		log.Printf("[ERROR] Failed to write result JSON for %s: %v", item.File, err)
	}

	if result.TotalRecords < ws.cfg.Pipeline.MinRecordsForLibrary {
		log.Printf("[WARN] Low yield: %s produced %d records (threshold %d)",
			item.File, result.TotalRecords, ws.cfg.Pipeline.MinRecordsForLibrary)
	}

	dest := filepath.Join(ws.layout.Library, item.File)
	if err := os.Rename(path, dest); err != nil {
		log.Printf("[ERROR] Failed to move %s to library: %v", item.File, err)
	}

	if err := ws.queue.MarkDone(item.File); err != nil {
		log.Printf("[WARN] Queue update failed for %s: %v", item.File, err)
	}

	vulns := result.TotalRecords
	ofcs := 0
	for _, record := range result.Records {
		ofcs += len(record.Options)
	}
	if ws.pubSub != nil && persisted != nil {
		err := PublishRunCompleted(ws.pubSub, ws.topicName, dto.PublishRunCompletedMessage{
			ModelVersion:    result.ModelVersion,
			SourceFile:      result.Source,
			Vulnerabilities: vulns,
			Ofcs:            ofcs,
			ElapsedSeconds:  elapsed.Seconds(),
		})
		if err != nil {
			log.Printf("[WARN] Failed to publish run-completed event: %v", err)
		}
	}

	log.Printf("[INFO] Completed %s: %d records in %.1fs", item.File, vulns, elapsed.Seconds())
	ws.reportIdle()
}

func (ws *watcherService) handleFailure(item queue.Item, path string, cause error) {
	if pipeline.IsRetryable(cause) {
		if item.Attempts < maxFileAttempts {
			log.Printf("[WARN] %s failed (attempt %d/%d), will retry: %v",
				item.File, item.Attempts, maxFileAttempts, cause)
			_ = ws.queue.MarkPending(item.File)
			return
		}
		// Retries exhausted. The file stays in incoming so a later
		// restart can pick it up once the dependency recovers.
		log.Printf("[ERROR] %s failed after %d attempts, leaving in incoming: %v",
			item.File, item.Attempts, cause)
		_ = ws.queue.MarkError(item.File, cause)
		return
	}

	log.Printf("[ERROR] %s failed permanently: %v", item.File, cause)
	ws.moveToErrors(item.File, path, cause)
	_ = ws.queue.MarkError(item.File, cause)
	ws.publishEvent(events.NewRunFailed(item.File, cause.Error()))
}

func (ws *watcherService) publishEvent(event events.Event) {
	if ws.natsPub == nil {
		return
	}
	if err := ws.natsPub.Publish(context.Background(), event); err != nil {
		log.Printf("[WARN] Failed to publish %s event: %v", event.EventType(), err)
	}
}

func (ws *watcherService) moveToErrors(file, path string, cause error) {
	stem := strings.TrimSuffix(file, filepath.Ext(file))
	logPath := filepath.Join(ws.layout.Errors, stem+".log")
	logBody := fmt.Sprintf("%s\nfile: %s\nerror: %v\n", time.Now().UTC().Format(time.RFC3339), file, cause)
	if err := os.WriteFile(logPath, []byte(logBody), 0o644); err != nil {
		log.Printf("[WARN] Failed to write error log for %s: %v", file, err)
	}
	if err := os.Rename(path, filepath.Join(ws.layout.Errors, file)); err != nil {
		log.Printf("[ERROR] Failed to move %s to errors: %v", file, err)
	}
}

func (ws *watcherService) writeResultJSON(stem string, result *dto.ResultDTO) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(ws.layout.Processed, stem+"_vofc.json"), data, 0o644)
}

func (ws *watcherService) stopRequested(stopFile string) bool {
	_, err := os.Stat(stopFile)
	return err == nil
}

func (ws *watcherService) reportIdle() {
	if ws.progress == nil {
		return
	}
	snapshot := queue.Progress{
		Status:      "idle",
		Directories: ws.directoryCounts(),
		Queue:       ws.queue.CountByStatus(),
	}
	if err := ws.progress.Write(snapshot); err != nil {
		log.Printf("[WARN] Progress snapshot failed: %v", err)
	}
}

func (ws *watcherService) directoryCounts() map[string]int {
	counts := make(map[string]int)
	for _, dir := range []string{ws.layout.Incoming, ws.layout.Processed, ws.layout.Library, ws.layout.Errors} {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		n := 0
		for _, entry := range entries {
			if !entry.IsDir() {
				n++
			}
		}
		counts[filepath.Base(dir)] = n
	}
	return counts
}

func lockPath(path string) string {
	return path + ".lock"
}
