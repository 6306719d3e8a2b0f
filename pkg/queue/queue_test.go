package queue

import (
	"errors"
	"path/filepath"
	"testing"
)

func openTempQueue(t *testing.T) (*Queue, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "queue.json")
	q, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return q, path
}

func TestEnqueueDeduplicatesActiveItems(t *testing.T) {
	q, _ := openTempQueue(t)

	added, err := q.Enqueue("a.pdf")
	if err != nil || !added {
		t.Fatalf("first enqueue: added=%v err=%v", added, err)
	}
	added, err = q.Enqueue("a.pdf")
	if err != nil {
		t.Fatalf("second enqueue: %v", err)
	}
	if added {
		t.Error("pending file was enqueued twice")
	}

	// A finished file may be enqueued again.
	if _, _, err := q.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if err := q.MarkDone("a.pdf"); err != nil {
		t.Fatalf("MarkDone: %v", err)
	}
	added, err = q.Enqueue("a.pdf")
	if err != nil || !added {
		t.Errorf("re-enqueue after done: added=%v err=%v", added, err)
	}
}

func TestReenqueueResetsTerminalEntryInPlace(t *testing.T) {
	q, _ := openTempQueue(t)

	if _, err := q.Enqueue("a.pdf"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := q.Next(); err != nil {
		t.Fatal(err)
	}
	if err := q.MarkDone("a.pdf"); err != nil {
		t.Fatal(err)
	}

	// The same filename dropped into incoming again gets a fresh pass
	// through the full lifecycle, with a single queue entry throughout.
	added, err := q.Enqueue("a.pdf")
	if err != nil || !added {
		t.Fatalf("re-enqueue: added=%v err=%v", added, err)
	}
	item, ok, err := q.Next()
	if err != nil || !ok {
		t.Fatalf("Next after re-enqueue: ok=%v err=%v", ok, err)
	}
	if item.Attempts != 1 {
		t.Errorf("attempts = %d, want 1 on a fresh pass", item.Attempts)
	}
	if err := q.MarkDone("a.pdf"); err != nil {
		t.Fatalf("MarkDone after re-enqueue: %v", err)
	}

	counts := q.CountByStatus()
	if counts[StatusRunning] != 0 || counts[StatusDone] != 1 {
		t.Errorf("counts = %v, want exactly 1 done and nothing running", counts)
	}
	if items := q.Snapshot(); len(items) != 1 {
		t.Errorf("queue holds %d entries for one file, want 1", len(items))
	}

	// And a third drop still works.
	if added, err := q.Enqueue("a.pdf"); err != nil || !added {
		t.Errorf("third enqueue: added=%v err=%v", added, err)
	}
}

func TestReenqueueAfterErrorClearsFailureState(t *testing.T) {
	q, _ := openTempQueue(t)

	if _, err := q.Enqueue("a.pdf"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := q.Next(); err != nil {
		t.Fatal(err)
	}
	if err := q.MarkError("a.pdf", errors.New("unreadable pdf")); err != nil {
		t.Fatal(err)
	}

	if added, err := q.Enqueue("a.pdf"); err != nil || !added {
		t.Fatalf("re-enqueue after error: added=%v err=%v", added, err)
	}
	items := q.Snapshot()
	if len(items) != 1 {
		t.Fatalf("got %d entries, want 1", len(items))
	}
	if items[0].Status != StatusPending || items[0].Error != "" || items[0].Attempts != 0 {
		t.Errorf("reset entry = %+v, want pending with no error and zero attempts", items[0])
	}
}

func TestNextClaimsInOrder(t *testing.T) {
	q, _ := openTempQueue(t)
	for _, f := range []string{"a.pdf", "b.pdf"} {
		if _, err := q.Enqueue(f); err != nil {
			t.Fatalf("Enqueue(%s): %v", f, err)
		}
	}

	item, ok, err := q.Next()
	if err != nil || !ok {
		t.Fatalf("Next: ok=%v err=%v", ok, err)
	}
	if item.File != "a.pdf" || item.Status != StatusRunning || item.Attempts != 1 {
		t.Errorf("claimed %+v, want a.pdf running attempt 1", item)
	}

	item, ok, _ = q.Next()
	if !ok || item.File != "b.pdf" {
		t.Errorf("second claim = %+v, want b.pdf", item)
	}

	if _, ok, _ := q.Next(); ok {
		t.Error("Next returned an item from an empty backlog")
	}
}

func TestQueueSurvivesRestart(t *testing.T) {
	q, path := openTempQueue(t)
	for _, f := range []string{"a.pdf", "b.pdf", "c.pdf"} {
		if _, err := q.Enqueue(f); err != nil {
			t.Fatalf("Enqueue(%s): %v", f, err)
		}
	}
	if _, _, err := q.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if err := q.MarkError("b.pdf", errors.New("model unavailable")); err != nil {
		t.Fatalf("MarkError: %v", err)
	}

	// Reopen as a new process would. The running item is reset to
	// pending; the error item keeps its state.
	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}

	items := reopened.Snapshot()
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	if items[0].File != "a.pdf" || items[0].Status != StatusPending {
		t.Errorf("item 0 = %+v, want a.pdf pending after crash recovery", items[0])
	}
	if items[0].Attempts != 1 {
		t.Errorf("attempts = %d, want 1 preserved across restart", items[0].Attempts)
	}
	if items[1].Status != StatusError || items[1].Error == "" {
		t.Errorf("item 1 = %+v, want error with message", items[1])
	}
}

func TestMarkPendingRequeuesForRetry(t *testing.T) {
	q, _ := openTempQueue(t)
	if _, err := q.Enqueue("a.pdf"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := q.Next(); err != nil {
		t.Fatal(err)
	}
	if err := q.MarkPending("a.pdf"); err != nil {
		t.Fatalf("MarkPending: %v", err)
	}

	item, ok, _ := q.Next()
	if !ok || item.Attempts != 2 {
		t.Errorf("retry claim = %+v ok=%v, want attempts 2", item, ok)
	}
	if got := q.Attempts("a.pdf"); got != 2 {
		t.Errorf("Attempts = %d, want 2", got)
	}
}

func TestMarkUnknownFileFails(t *testing.T) {
	q, _ := openTempQueue(t)
	if err := q.MarkDone("ghost.pdf"); err == nil {
		t.Error("MarkDone on unknown file should fail")
	}
}

func TestCountByStatus(t *testing.T) {
	q, _ := openTempQueue(t)
	for _, f := range []string{"a.pdf", "b.pdf", "c.pdf"} {
		if _, err := q.Enqueue(f); err != nil {
			t.Fatal(err)
		}
	}
	if _, _, err := q.Next(); err != nil {
		t.Fatal(err)
	}
	if err := q.MarkDone("a.pdf"); err != nil {
		t.Fatal(err)
	}

	counts := q.CountByStatus()
	if counts[StatusDone] != 1 || counts[StatusPending] != 2 {
		t.Errorf("counts = %v, want 1 done / 2 pending", counts)
	}
}

func TestProgressWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	w := NewProgressWriter(path)

	if last := w.Last(); last.Status != "idle" {
		t.Errorf("initial status = %q, want idle", last.Status)
	}

	err := w.Write(Progress{
		Status:      "processing",
		CurrentFile: "a.pdf",
		Stage:       "extracting",
		ChunksDone:  2,
		ChunksTotal: 5,
		Directories: map[string]int{"incoming": 3},
	})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	read, err := ReadProgress(path)
	if err != nil {
		t.Fatalf("ReadProgress: %v", err)
	}
	if read.CurrentFile != "a.pdf" || read.ChunksTotal != 5 {
		t.Errorf("read %+v", read)
	}
	if read.UpdatedAt.IsZero() {
		t.Error("UpdatedAt not stamped")
	}
	if w.Last().Stage != "extracting" {
		t.Errorf("Last().Stage = %q", w.Last().Stage)
	}
}
