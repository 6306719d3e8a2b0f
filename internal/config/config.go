package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Pipeline PipelineConfig
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
}

type DatabaseConfig struct {
	Connection string
}

type PipelineConfig struct {
	DataDir              string `validate:"required"`
	MaxChunkChars        int
	MinRecordsForLibrary int
	OfflineMode          bool
	StopSentinel         string
}

type AIConfig struct {
	LLMBaseURL        string
	ModelName         string `validate:"required"`
	EmbeddingProvider string // "ollama" or "none"
	EmbeddingModel    string
	LLMTimeoutSecs    int
	Temperature       float64
}

// Load reads .env (if present) plus process environment. Validation
// failures are startup failures: a watcher without DATA_DIR has nothing
// to watch.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	cfg := &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8090"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "vofc-ingest.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			NatsURL:            getEnv("NATS_URL", ""),
		},
		Database: DatabaseConfig{
			Connection: firstEnv("STORE_URL", "DB_CONNECTION_STRING"),
		},
		Pipeline: PipelineConfig{
			DataDir:              getEnv("DATA_DIR", ""),
			MaxChunkChars:        getEnvAsInt("MAX_CHUNK_CHARS", 5000),
			MinRecordsForLibrary: getEnvAsInt("MIN_RECORDS_FOR_LIBRARY", 1),
			OfflineMode:          getEnvAsBool("OFFLINE_MODE", false),
			StopSentinel:         "watcher.stop",
		},
		Ai: AIConfig{
			LLMBaseURL:        firstEnvDefault("http://localhost:11434", "LLM_URL", "OLLAMA_BASE_URL"),
			ModelName:         getEnv("MODEL_NAME", "llama3:latest"),
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "ollama"),
			EmbeddingModel:    getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMTimeoutSecs:    getEnvAsInt("LLM_TIMEOUT_SECONDS", 300),
			Temperature:       0.1,
		},
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	v := validator.New()
	if err := v.Struct(cfg.Pipeline); err != nil {
		return fmt.Errorf("configuration invalid (DATA_DIR is required): %w", err)
	}
	if err := v.Struct(cfg.Ai); err != nil {
		return fmt.Errorf("configuration invalid (MODEL_NAME is required): %w", err)
	}
	// Offline mode runs without a store; online mode needs a DSN.
	if !cfg.Pipeline.OfflineMode && cfg.Database.Connection == "" {
		return fmt.Errorf("configuration invalid: STORE_URL (or DB_CONNECTION_STRING) is required unless OFFLINE_MODE=true")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// firstEnv returns the first non-empty value among the given keys.
// Aliases exist for compatibility with older deployments.
func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value, exists := os.LookupEnv(key); exists && value != "" {
			return value
		}
	}
	return ""
}

func firstEnvDefault(fallback string, keys ...string) string {
	if v := firstEnv(keys...); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
