package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"vofc-ingest-be/internal/bootstrap"
	"vofc-ingest-be/internal/config"
	"vofc-ingest-be/pkg/database"

	"github.com/fatih/color"
	"gorm.io/gorm"
)

// process-file runs the pipeline once for a single PDF and prints the
// result, bypassing the queue and the watcher.
func main() {
	jsonOut := flag.Bool("json", false, "print the full result JSON to stdout")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: process-file [--json] <path-to-pdf>")
	}
	path := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}

	var gormDB *gorm.DB
	if !cfg.Pipeline.OfflineMode {
		gormDB, err = database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Fatalf("Unable to connect to GORM DB: %v", err)
		}
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	result, persisted, err := container.PipelineService.ProcessFile(context.Background(), path)
	if err != nil {
		color.Red("processing failed: %v", err)
		os.Exit(1)
	}

	if *jsonOut {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			log.Fatalf("marshal result: %v", err)
		}
		os.Stdout.Write(data)
		os.Stdout.Write([]byte("\n"))
		return
	}

	color.Green("%s: %d records (model %s)", result.Source, result.TotalRecords, result.ModelVersion)
	if result.Classification != nil {
		color.Cyan("classified as %s / %s (confidence %.2f)",
			deref(result.Classification.Sector), deref(result.Classification.Subsector), result.Classification.Confidence)
	}
	for _, chunkErr := range result.ChunkErrors {
		color.Yellow("chunk %s failed: %s", chunkErr.ChunkId, chunkErr.Error)
	}
	if persisted != nil {
		color.Green("submission %s: %d inserted, %d linked, %d skipped",
			persisted.SubmissionId, persisted.Counts.Inserted, persisted.Counts.Linked, persisted.Counts.Skipped)
	}
}

func deref(s *string) string {
	if s == nil {
		return "unclassified"
	}
	return *s
}
