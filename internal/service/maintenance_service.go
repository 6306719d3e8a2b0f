package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"vofc-ingest-be/internal/config"
	"vofc-ingest-be/internal/repository/specification"
	"vofc-ingest-be/internal/repository/unitofwork"

	"github.com/fatih/color"
)

// IMaintenanceService backs the operational CLI utilities. Every
// operation supports dry-run and prints what it touches.
type IMaintenanceService interface {
	ResetDataFolders(ctx context.Context, dryRun bool) error
	CleanupOrphanedFiles(ctx context.Context, dryRun bool, olderThan time.Duration) error
	ClearSubmissionTables(ctx context.Context, dryRun bool, olderThan time.Duration) error
}

type maintenanceService struct {
	layout     config.Layout
	uowFactory unitofwork.RepositoryFactory
}

func NewMaintenanceService(cfg *config.Config, uowFactory unitofwork.RepositoryFactory) IMaintenanceService {
	return &maintenanceService{
		layout:     config.NewLayout(cfg.Pipeline.DataDir),
		uowFactory: uowFactory,
	}
}

// ResetDataFolders empties processed/, errors/ and review/temp/ and
// removes the queue and progress files. Incoming and library are never
// touched.
func (ms *maintenanceService) ResetDataFolders(ctx context.Context, dryRun bool) error {
	targets := []string{ms.layout.Processed, ms.layout.Errors, ms.layout.ReviewTemp}

	removed := 0
	for _, dir := range targets {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if dryRun {
				color.Yellow("would remove %s", path)
			} else if err := os.Remove(path); err != nil {
				color.Red("failed to remove %s: %v", path, err)
				continue
			}
			removed++
		}
	}

	for _, path := range []string{ms.layout.QueueFile(), ms.layout.ProgressFile()} {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if dryRun {
			color.Yellow("would remove %s", path)
		} else if err := os.Remove(path); err != nil {
			color.Red("failed to remove %s: %v", path, err)
			continue
		}
		removed++
	}

	if err := ms.layout.Ensure(); err != nil && !dryRun {
		return err
	}

	color.Green("reset complete: %d files %s", removed, actionWord(dryRun))
	return nil
}

// CleanupOrphanedFiles removes stale lock files, error logs without a
// matching PDF, and review temp files past the age cutoff.
func (ms *maintenanceService) CleanupOrphanedFiles(ctx context.Context, dryRun bool, olderThan time.Duration) error {
	cutoff := time.Now().Add(-olderThan)
	removed := 0

	// Lock files whose PDF is gone.
	incoming, err := os.ReadDir(ms.layout.Incoming)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	for _, entry := range incoming {
		name := entry.Name()
		if !strings.HasSuffix(name, ".lock") {
			continue
		}
		pdf := filepath.Join(ms.layout.Incoming, strings.TrimSuffix(name, ".lock"))
		if _, err := os.Stat(pdf); err == nil {
			continue
		}
		removed += ms.removeOne(filepath.Join(ms.layout.Incoming, name), dryRun)
	}

	// Error logs without their PDF sibling.
	errEntries, err := os.ReadDir(ms.layout.Errors)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	for _, entry := range errEntries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".log") {
			continue
		}
		stem := strings.TrimSuffix(name, ".log")
		if _, err := os.Stat(filepath.Join(ms.layout.Errors, stem+".pdf")); err == nil {
			continue
		}
		removed += ms.removeOne(filepath.Join(ms.layout.Errors, name), dryRun)
	}

	// Aged review temp files.
	tempEntries, err := os.ReadDir(ms.layout.ReviewTemp)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	for _, entry := range tempEntries {
		info, err := entry.Info()
		if err != nil || info.IsDir() {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		removed += ms.removeOne(filepath.Join(ms.layout.ReviewTemp, entry.Name()), dryRun)
	}

	color.Green("cleanup complete: %d orphaned files %s", removed, actionWord(dryRun))
	return nil
}

// ClearSubmissionTables deletes submissions older than the cutoff along
// with their child rows. Taxonomy tables are never touched.
func (ms *maintenanceService) ClearSubmissionTables(ctx context.Context, dryRun bool, olderThan time.Duration) error {
	cutoff := time.Now().Add(-olderThan)
	uow := ms.uowFactory.NewUnitOfWork(ctx)

	submissions, err := uow.SubmissionRepository().FindAll(ctx, specification.OlderThan{Cutoff: cutoff})
	if err != nil {
		return err
	}
	if len(submissions) == 0 {
		color.Green("no submissions older than %s", cutoff.Format(time.RFC3339))
		return nil
	}

	if dryRun {
		for _, s := range submissions {
			color.Yellow("would delete submission %s (%s, created %s)",
				s.Id, s.SourceFile, s.CreatedAt.Format(time.RFC3339))
		}
		color.Green("dry run: %d submissions would be deleted", len(submissions))
		return nil
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	deleted := 0
	for _, s := range submissions {
		spec := specification.BySubmissionID{SubmissionID: s.Id}

		if _, err := uow.OfcRepository().DeleteLinks(ctx, spec); err != nil {
			return fmt.Errorf("deleting links for %s: %w", s.Id, err)
		}
		if _, err := uow.OfcRepository().DeleteSourceLinks(ctx, specification.BySourceSubmission{SubmissionID: s.Id}); err != nil {
			return fmt.Errorf("deleting source links for %s: %w", s.Id, err)
		}
		if _, err := uow.OfcRepository().Delete(ctx, spec); err != nil {
			return fmt.Errorf("deleting OFCs for %s: %w", s.Id, err)
		}
		if _, err := uow.VulnerabilityRepository().Delete(ctx, spec); err != nil {
			return fmt.Errorf("deleting vulnerabilities for %s: %w", s.Id, err)
		}
		if _, err := uow.SourceRepository().Delete(ctx, spec); err != nil {
			return fmt.Errorf("deleting sources for %s: %w", s.Id, err)
		}
		if _, err := uow.SubmissionRepository().Delete(ctx, specification.ByID{ID: s.Id}); err != nil {
			return fmt.Errorf("deleting submission %s: %w", s.Id, err)
		}
		deleted++
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	color.Green("cleared %d submissions older than %s", deleted, cutoff.Format(time.RFC3339))
	return nil
}

func (ms *maintenanceService) removeOne(path string, dryRun bool) int {
	if dryRun {
		color.Yellow("would remove %s", path)
		return 1
	}
	if err := os.Remove(path); err != nil {
		color.Red("failed to remove %s: %v", path, err)
		return 0
	}
	return 1
}

func actionWord(dryRun bool) string {
	if dryRun {
		return "listed (dry run)"
	}
	return "removed"
}
