package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vofc-ingest-be/internal/bootstrap"
	"vofc-ingest-be/internal/config"
	"vofc-ingest-be/internal/server"
	"vofc-ingest-be/internal/tracer"
	"vofc-ingest-be/pkg/database"

	"gorm.io/gorm"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}

	// 2. Initialize Database (skipped in offline mode)
	var gormDB *gorm.DB
	if !cfg.Pipeline.OfflineMode {
		gormDB, err = database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Panicf("Unable to connect to GORM DB: %v", err)
		}
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 4. Start Background Services
	if container.LearningService != nil {
		log.Println("Background: Starting Learning Consumer...")
		if err := container.LearningService.Consume(ctx); err != nil {
			log.Printf("Background Learning Consumer Error: %v", err)
		}
	}
	if container.EventBridgeService != nil {
		log.Println("Background: Starting NATS Event Bridge...")
		if err := container.EventBridgeService.Start(ctx); err != nil {
			log.Printf("Background Event Bridge Error: %v", err)
		}
	}
	go container.WebSocketHub.StreamProgress(ctx, container.Layout.ProgressFile(), 2*time.Second)

	// 5. Status Server
	srv := server.New(cfg, container)
	go func() {
		if err := srv.Run(); err != nil {
			log.Printf("Status server stopped: %v", err)
		}
	}()

	// 6. Signals translate into the stop sentinel so the worker finishes
	// the file it is on.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		log.Println("Signal received, requesting stop after current file")
		sentinel := container.Layout.StopFile(cfg.Pipeline.StopSentinel)
		if err := os.WriteFile(sentinel, []byte(time.Now().UTC().Format(time.RFC3339)), 0o644); err != nil {
			log.Printf("[WARN] Failed to write stop sentinel, canceling hard: %v", err)
			cancel()
		}
	}()

	// 7. Run the worker loop until stopped
	if err := container.WatcherService.Run(ctx); err != nil && err != context.Canceled {
		log.Fatalf("[FATAL] Watcher exited: %v", err)
	}
	log.Println("Watcher stopped cleanly")
}
