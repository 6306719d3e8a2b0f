package bootstrap

import (
	"log"
	"time"

	"vofc-ingest-be/internal/config"
	"vofc-ingest-be/internal/controller"
	"vofc-ingest-be/internal/pkg/logger"
	"vofc-ingest-be/internal/repository/unitofwork"
	"vofc-ingest-be/internal/service"
	"vofc-ingest-be/internal/websocket"
	"vofc-ingest-be/pkg/embedding"
	"vofc-ingest-be/pkg/extract"
	"vofc-ingest-be/pkg/llm/ollama"
	"vofc-ingest-be/pkg/queue"

	pktNats "vofc-ingest-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

const runCompletedTopic = "pipeline_run_completed"

type Container struct {
	// Controllers
	StatusController controller.IStatusController

	// Background Services (Exposed for main.go to run)
	WatcherService     service.IWatcherService
	LearningService    service.ILearningService
	EventBridgeService service.IEventBridgeService

	// Operational Services (Exposed for the CLI utilities)
	TaxonomyService    service.ITaxonomyService
	PipelineService    service.IPipelineService
	MaintenanceService service.IMaintenanceService

	// WebSockets & Progress
	WebSocketHub *websocket.Hub

	Layout    config.Layout
	SysLogger logger.ILogger
}

// NewContainer wires the full pipeline. db is nil in offline mode;
// everything that touches the store is skipped in that case.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	var uowFactory unitofwork.RepositoryFactory
	if db != nil {
		uowFactory = unitofwork.NewRepositoryFactory(db)
	}
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	layout := config.NewLayout(cfg.Pipeline.DataDir)
	if err := layout.Ensure(); err != nil {
		log.Fatalf("[FATAL] Failed to create data directories: %v", err)
	}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewCachedProvider(
			embedding.NewOllamaProvider(cfg.Ai.LLMBaseURL, cfg.Ai.EmbeddingModel),
			30*time.Minute,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.EmbeddingModel)
	} else {
		log.Printf("[INFO] Embedding disabled, taxonomy resolution uses lexical scoring only")
	}

	llmProvider := ollama.NewOllamaProvider(
		cfg.Ai.LLMBaseURL,
		cfg.Ai.ModelName,
		time.Duration(cfg.Ai.LLMTimeoutSecs)*time.Second,
	)
	log.Printf("[INFO] Using LLM Provider: OLLAMA (%s)", cfg.Ai.ModelName)

	extractor := extract.NewExtractor(llmProvider, cfg.Ai.ModelName)

	// 3.5 Infrastructure
	// NATS (optional; in-process events work without it)
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		pub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			natsPub = pub
		}
	}

	// Persistent queue and progress snapshots
	fileQueue, err := queue.Open(layout.QueueFile())
	if err != nil {
		log.Fatalf("[FATAL] Failed to open queue: %v", err)
	}
	progress := queue.NewProgressWriter(layout.ProgressFile())

	// WebSocket Hub for the progress stream
	wsLogger := logger.NewIsolatedLogger("logs/progress.log")
	wsHub := websocket.NewHub(wsLogger)
	go wsHub.Run()

	// 4. Services
	taxonomyService := service.NewTaxonomyService(uowFactory, embeddingProvider, cfg.Pipeline.OfflineMode)
	persistenceService := service.NewPersistenceService(uowFactory)

	pipelineService := service.NewPipelineService(
		cfg,
		extractor,
		taxonomyService,
		persistenceService,
		progress,
	)

	watcherService := service.NewWatcherService(
		cfg,
		pipelineService,
		fileQueue,
		progress,
		pubSub,
		runCompletedTopic,
		natsPub,
	)

	var learningService service.ILearningService
	if uowFactory != nil {
		learningService = service.NewLearningService(pubSub, runCompletedTopic, uowFactory)
	}

	var eventBridge service.IEventBridgeService
	if natsPub != nil {
		eventBridge = service.NewEventBridgeService(pubSub, runCompletedTopic, natsPub)
	}

	var maintenanceService service.IMaintenanceService
	if uowFactory != nil {
		maintenanceService = service.NewMaintenanceService(cfg, uowFactory)
	}

	return &Container{
		StatusController: controller.NewStatusController(cfg, fileQueue, sysLogger),

		WatcherService:     watcherService,
		LearningService:    learningService,
		EventBridgeService: eventBridge,

		TaxonomyService:    taxonomyService,
		PipelineService:    pipelineService,
		MaintenanceService: maintenanceService,

		WebSocketHub: wsHub,
		Layout:       layout,
		SysLogger:    sysLogger,
	}
}
