package main

import (
	"context"
	"flag"
	"log"
	"os"

	"vofc-ingest-be/internal/config"
	"vofc-ingest-be/internal/service"

	"github.com/fatih/color"
)

// reset-data-folders empties the transient pipeline directories and
// removes the queue and progress files.
func main() {
	dryRun := flag.Bool("dry-run", false, "list what would be removed without removing it")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}

	maintenance := service.NewMaintenanceService(cfg, nil)
	if err := maintenance.ResetDataFolders(context.Background(), *dryRun); err != nil {
		color.Red("reset failed: %v", err)
		os.Exit(1)
	}
}
