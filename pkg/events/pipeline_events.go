package events

import "time"

const (
	TypeRunCompleted = "PIPELINE_RUN_COMPLETED"
	TypeRunFailed    = "PIPELINE_RUN_FAILED"
	TypeFileEnqueued = "PIPELINE_FILE_ENQUEUED"
)

// NewRunCompleted is emitted after a file has been fully processed and
// persisted. The learning consumer aggregates these.
func NewRunCompleted(modelVersion, sourceFile string, vulnerabilities, ofcs int, elapsedSeconds float64) Event {
	return BaseEvent{
		Type: TypeRunCompleted,
		Data: map[string]interface{}{
			"model_version":   modelVersion,
			"source_file":     sourceFile,
			"vulnerabilities": vulnerabilities,
			"ofcs":            ofcs,
			"elapsed_seconds": elapsedSeconds,
		},
		OccurredAt: time.Now().UTC(),
	}
}

func NewRunFailed(sourceFile, reason string) Event {
	return BaseEvent{
		Type: TypeRunFailed,
		Data: map[string]interface{}{
			"source_file": sourceFile,
			"reason":      reason,
		},
		OccurredAt: time.Now().UTC(),
	}
}

func NewFileEnqueued(sourceFile string) Event {
	return BaseEvent{
		Type: TypeFileEnqueued,
		Data: map[string]interface{}{
			"source_file": sourceFile,
		},
		OccurredAt: time.Now().UTC(),
	}
}
