package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"vofc-ingest-be/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMaintenance(t *testing.T) (*maintenanceService, config.Layout) {
	t.Helper()
	root := t.TempDir()
	cfg := &config.Config{}
	cfg.Pipeline.DataDir = root

	ms := NewMaintenanceService(cfg, nil).(*maintenanceService)
	require.NoError(t, ms.layout.Ensure())
	return ms, ms.layout
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestResetDataFoldersRemovesTransientFiles(t *testing.T) {
	ms, layout := newTestMaintenance(t)

	writeFile(t, filepath.Join(layout.Processed, "doc_vofc.json"))
	writeFile(t, filepath.Join(layout.Errors, "bad.pdf"))
	writeFile(t, filepath.Join(layout.ReviewTemp, "draft.json"))
	writeFile(t, filepath.Join(layout.Incoming, "keep.pdf"))
	writeFile(t, filepath.Join(layout.Library, "done.pdf"))
	writeFile(t, layout.QueueFile())

	require.NoError(t, ms.ResetDataFolders(context.Background(), false))

	assert.NoFileExists(t, filepath.Join(layout.Processed, "doc_vofc.json"))
	assert.NoFileExists(t, filepath.Join(layout.Errors, "bad.pdf"))
	assert.NoFileExists(t, filepath.Join(layout.ReviewTemp, "draft.json"))
	assert.NoFileExists(t, layout.QueueFile())

	// Incoming and library are never touched.
	assert.FileExists(t, filepath.Join(layout.Incoming, "keep.pdf"))
	assert.FileExists(t, filepath.Join(layout.Library, "done.pdf"))
}

func TestResetDataFoldersDryRunRemovesNothing(t *testing.T) {
	ms, layout := newTestMaintenance(t)

	writeFile(t, filepath.Join(layout.Processed, "doc_vofc.json"))

	require.NoError(t, ms.ResetDataFolders(context.Background(), true))

	assert.FileExists(t, filepath.Join(layout.Processed, "doc_vofc.json"))
}

func TestCleanupOrphanedFiles(t *testing.T) {
	ms, layout := newTestMaintenance(t)

	// Orphaned lock: no PDF sibling.
	writeFile(t, filepath.Join(layout.Incoming, "gone.pdf.lock"))
	// Held lock: PDF still present.
	writeFile(t, filepath.Join(layout.Incoming, "busy.pdf"))
	writeFile(t, filepath.Join(layout.Incoming, "busy.pdf.lock"))
	// Orphaned error log vs one with its PDF.
	writeFile(t, filepath.Join(layout.Errors, "lost.log"))
	writeFile(t, filepath.Join(layout.Errors, "kept.log"))
	writeFile(t, filepath.Join(layout.Errors, "kept.pdf"))
	// Aged review temp file.
	aged := filepath.Join(layout.ReviewTemp, "old.json")
	writeFile(t, aged)
	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(aged, past, past))
	writeFile(t, filepath.Join(layout.ReviewTemp, "fresh.json"))

	require.NoError(t, ms.CleanupOrphanedFiles(context.Background(), false, 24*time.Hour))

	assert.NoFileExists(t, filepath.Join(layout.Incoming, "gone.pdf.lock"))
	assert.FileExists(t, filepath.Join(layout.Incoming, "busy.pdf.lock"))
	assert.NoFileExists(t, filepath.Join(layout.Errors, "lost.log"))
	assert.FileExists(t, filepath.Join(layout.Errors, "kept.log"))
	assert.NoFileExists(t, aged)
	assert.FileExists(t, filepath.Join(layout.ReviewTemp, "fresh.json"))
}
