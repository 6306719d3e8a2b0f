package queue

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"vofc-ingest-be/pkg/pipeline"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusRunning Status = "running"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Item is one queued source file. File is the base name; the watcher
// resolves it against the incoming directory.
type Item struct {
	File       string    `json:"file"`
	Status     Status    `json:"status"`
	Attempts   int       `json:"attempts"`
	Error      string    `json:"error,omitempty"`
	EnqueuedAt time.Time `json:"enqueued_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Queue is a persistent FIFO backed by a JSON file. The worker is the
// single writer; every mutation is flushed atomically so the queue
// survives restarts. Readers get copies via Snapshot.
type Queue struct {
	path string

	mu    sync.Mutex
	items []Item
}

// Open loads the queue file, creating an empty queue when the file does
// not exist. Items left in running state by a crashed worker are reset
// to pending.
func Open(path string) (*Queue, error) {
	q := &Queue{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return q, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading queue file: %v", pipeline.ErrConfiguration, err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &q.items); err != nil {
			return nil, fmt.Errorf("%w: queue file %s is corrupt: %v", pipeline.ErrConfiguration, path, err)
		}
	}

	recovered := false
	for i := range q.items {
		if q.items[i].Status == StatusRunning {
			q.items[i].Status = StatusPending
			q.items[i].UpdatedAt = time.Now().UTC()
			recovered = true
		}
	}
	if recovered {
		if err := q.flushLocked(); err != nil {
			return nil, err
		}
	}
	return q, nil
}

// Enqueue adds a pending item unless the file is already pending or
// running. A file with a done or error entry is reset in place so the
// queue never holds two entries for one name. Returns true when the
// file was (re)queued.
func (q *Queue) Enqueue(file string) (bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := time.Now().UTC()
	for i := range q.items {
		if q.items[i].File != file {
			continue
		}
		if q.items[i].Status == StatusPending || q.items[i].Status == StatusRunning {
			return false, nil
		}
		q.items[i] = Item{
			File:       file,
			Status:     StatusPending,
			EnqueuedAt: now,
			UpdatedAt:  now,
		}
		return true, q.flushLocked()
	}

	q.items = append(q.items, Item{
		File:       file,
		Status:     StatusPending,
		EnqueuedAt: now,
		UpdatedAt:  now,
	})
	return true, q.flushLocked()
}

// Next claims the oldest pending item, marking it running and bumping
// its attempt count. Returns false when nothing is pending.
func (q *Queue) Next() (Item, bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i := range q.items {
		if q.items[i].Status != StatusPending {
			continue
		}
		q.items[i].Status = StatusRunning
		q.items[i].Attempts++
		q.items[i].UpdatedAt = time.Now().UTC()
		return q.items[i], true, q.flushLocked()
	}
	return Item{}, false, nil
}

func (q *Queue) MarkDone(file string) error {
	return q.setStatus(file, StatusDone, "")
}

func (q *Queue) MarkError(file string, cause error) error {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	return q.setStatus(file, StatusError, msg)
}

// MarkPending requeues a file so a later pass retries it, keeping the
// attempt count.
func (q *Queue) MarkPending(file string) error {
	return q.setStatus(file, StatusPending, "")
}

func (q *Queue) setStatus(file string, status Status, errMsg string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i := range q.items {
		if q.items[i].File != file {
			continue
		}
		q.items[i].Status = status
		q.items[i].Error = errMsg
		q.items[i].UpdatedAt = time.Now().UTC()
		return q.flushLocked()
	}
	return fmt.Errorf("file %s not in queue", file)
}

// Attempts returns the attempt count for a file, zero when unknown.
func (q *Queue) Attempts(file string) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, item := range q.items {
		if item.File == file {
			return item.Attempts
		}
	}
	return 0
}

// Snapshot returns a copy of all items in queue order.
func (q *Queue) Snapshot() []Item {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Item, len(q.items))
	copy(out, q.items)
	return out
}

// CountByStatus summarizes the queue for progress reporting.
func (q *Queue) CountByStatus() map[Status]int {
	q.mu.Lock()
	defer q.mu.Unlock()
	counts := make(map[Status]int)
	for _, item := range q.items {
		counts[item.Status]++
	}
	return counts
}

func (q *Queue) flushLocked() error {
	if err := writeJSONAtomic(q.path, q.items); err != nil {
		return fmt.Errorf("%w: writing queue file: %v", pipeline.ErrPersistence, err)
	}
	return nil
}

// writeJSONAtomic writes via a temp file and rename so readers never
// observe a partial file.
func writeJSONAtomic(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
