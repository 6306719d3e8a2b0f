package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"vofc-ingest-be/internal/config"
	"vofc-ingest-be/internal/repository/unitofwork"
	"vofc-ingest-be/internal/service"
	"vofc-ingest-be/pkg/database"

	"github.com/fatih/color"
)

// clear-submission-tables deletes submissions (and their child rows)
// older than the cutoff. Taxonomy tables are never touched.
func main() {
	dryRun := flag.Bool("dry-run", false, "list what would be deleted without deleting it")
	olderThan := flag.Duration("older-than", 30*24*time.Hour, "only delete submissions older than this")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
	if cfg.Pipeline.OfflineMode {
		log.Fatal("Error: clearing tables requires a store (unset OFFLINE_MODE)")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Error: Failed to connect to database: %v", err)
	}

	maintenance := service.NewMaintenanceService(cfg, unitofwork.NewRepositoryFactory(db))
	if err := maintenance.ClearSubmissionTables(context.Background(), *dryRun, *olderThan); err != nil {
		color.Red("clear failed: %v", err)
		os.Exit(1)
	}
}
