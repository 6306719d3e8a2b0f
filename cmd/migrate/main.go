package main

import (
	"log"
	"os"

	"vofc-ingest-be/internal/model"
	"vofc-ingest-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("STORE_URL")
	if dsn == "" {
		dsn = os.Getenv("DB_CONNECTION_STRING")
	}
	if dsn == "" {
		log.Fatal("Error: STORE_URL is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. Pre-Migration: extensions AutoMigrate cannot create
	log.Println("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS vector;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models
	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		// Taxonomy
		&model.Sector{},
		&model.Subsector{},
		&model.Discipline{},
		&model.DisciplineSubtype{},
		&model.TaxonomyEmbedding{},

		// Submissions
		&model.Submission{},
		&model.Source{},
		&model.Vulnerability{},
		&model.Ofc{},
		&model.VulnerabilityOfcLink{},
		&model.OfcSource{},

		// Learning
		&model.LearningEvent{},
		&model.ModelStats{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Printf("✅ Migration complete: %d tables", len(models))
}
