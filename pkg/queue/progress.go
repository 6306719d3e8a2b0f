package queue

import (
	"encoding/json"
	"os"
	"sync"
	"time"
)

// Progress is the snapshot served by the status routes. Directory
// counts come from the data folders, queue counts from the queue.
type Progress struct {
	Status      string         `json:"status"`
	CurrentFile string         `json:"current_file,omitempty"`
	Stage       string         `json:"stage,omitempty"`
	ChunksDone  int            `json:"chunks_done,omitempty"`
	ChunksTotal int            `json:"chunks_total,omitempty"`
	Directories map[string]int `json:"directories,omitempty"`
	Queue       map[Status]int `json:"queue,omitempty"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// ProgressWriter persists progress snapshots to progress.json. Writes
// are atomic; the last snapshot is kept in memory for the HTTP surface.
type ProgressWriter struct {
	path string

	mu   sync.RWMutex
	last Progress
}

func NewProgressWriter(path string) *ProgressWriter {
	return &ProgressWriter{path: path, last: Progress{Status: "idle", UpdatedAt: time.Now().UTC()}}
}

func (w *ProgressWriter) Write(p Progress) error {
	p.UpdatedAt = time.Now().UTC()

	w.mu.Lock()
	w.last = p
	w.mu.Unlock()

	return writeJSONAtomic(w.path, p)
}

// Last returns the most recent snapshot without touching the disk.
func (w *ProgressWriter) Last() Progress {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.last
}

// ReadProgress loads a snapshot from disk, for processes other than the
// worker.
func ReadProgress(path string) (Progress, error) {
	var p Progress
	data, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	return p, json.Unmarshal(data, &p)
}
