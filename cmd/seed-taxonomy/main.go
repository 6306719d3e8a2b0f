package main

import (
	"context"
	"log"

	"vofc-ingest-be/internal/config"
	"vofc-ingest-be/internal/repository/unitofwork"
	"vofc-ingest-be/internal/service"
	"vofc-ingest-be/pkg/database"

	"github.com/fatih/color"
)

// seed-taxonomy loads the built-in discipline and sector vocabulary
// into the store. Safe to re-run: every write is an upsert.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
	if cfg.Pipeline.OfflineMode {
		log.Fatal("Error: seeding requires a store (unset OFFLINE_MODE)")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Error: Failed to connect to database: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	taxonomyService := service.NewTaxonomyService(uowFactory, nil, false)

	if err := taxonomyService.Seed(context.Background()); err != nil {
		color.Red("seeding failed: %v", err)
		log.Fatal(err)
	}

	color.Green("✅ Taxonomy seeded")
}
