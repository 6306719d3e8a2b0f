package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"vofc-ingest-be/internal/config"
	"vofc-ingest-be/internal/service"

	"github.com/fatih/color"
)

// cleanup-orphaned-files removes stale locks, error logs without their
// PDF, and aged review temp files.
func main() {
	dryRun := flag.Bool("dry-run", false, "list what would be removed without removing it")
	olderThan := flag.Duration("older-than", 24*time.Hour, "age cutoff for review temp files")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}

	maintenance := service.NewMaintenanceService(cfg, nil)
	if err := maintenance.CleanupOrphanedFiles(context.Background(), *dryRun, *olderThan); err != nil {
		color.Red("cleanup failed: %v", err)
		os.Exit(1)
	}
}
