package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

// Source selection constants for the knowledge base and centroid table.
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
	SourceRedis    = "redis"
)

// Encoder selection constants.
const (
	EncoderHTTP   = "http"
	EncoderOpenAI = "openai"
)

type Config struct {
	AppEnv    string `env:"APP_ENV" default:"development"`
	Port      string `env:"PORT" default:"8080"`
	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`

	// Knowledge base source: JSON files on disk or a PostgreSQL ontology.
	KnowledgeSource string `env:"KNOWLEDGE_SOURCE" default:"file"`
	FramesPath      string `env:"FRAMES_PATH" default:"data/frames.json"`
	ModifiersPath   string `env:"MODIFIERS_PATH" default:"data/modifiers.json"`
	RoleMarkersPath string `env:"ROLE_MARKERS_PATH" default:"data/role_markers.json"`
	DatabaseURL     string `env:"DATABASE_URL"`

	// Centroid source for the embedding fallback.
	CentroidSource   string `env:"CENTROID_SOURCE" default:"file"`
	CentroidsPath    string `env:"CENTROIDS_PATH" default:"data/centroids.json"`
	RedisURL         string `env:"REDIS_URL"`
	RedisCentroidKey string `env:"REDIS_CENTROID_KEY" default:""`

	// Embedding encoder client.
	EncoderKind     string        `env:"ENCODER_KIND" default:"http"`
	EncoderURL      string        `env:"ENCODER_URL"`
	EncoderTimeout  time.Duration `env:"ENCODER_TIMEOUT" default:"5s"`
	EncoderCacheTTL time.Duration `env:"ENCODER_CACHE_TTL" default:"10m"`
	OpenAIAPIKey    string        `env:"OPENAI_API_KEY"`
	OpenAIModel     string        `env:"OPENAI_MODEL" default:""`

	// RateLimit is the per-client classify rate in requests/second.
	RateLimit float64 `env:"RATE_LIMIT" default:"20"`
	RateBurst int     `env:"RATE_BURST" default:"40"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.KnowledgeSource {
	case SourceFile:
		required := map[string]string{
			"FRAMES_PATH":       cfg.FramesPath,
			"MODIFIERS_PATH":    cfg.ModifiersPath,
			"ROLE_MARKERS_PATH": cfg.RoleMarkersPath,
		}
		for name, value := range required {
			if value == "" {
				return fmt.Errorf("%s is required", name)
			}
		}
	case SourcePostgres:
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when KNOWLEDGE_SOURCE=postgres")
		}
	default:
		return fmt.Errorf("KNOWLEDGE_SOURCE must be %q or %q, got %q", SourceFile, SourcePostgres, cfg.KnowledgeSource)
	}

	switch cfg.CentroidSource {
	case SourceFile:
		if cfg.CentroidsPath == "" {
			return fmt.Errorf("CENTROIDS_PATH is required")
		}
	case SourceRedis:
		if cfg.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when CENTROID_SOURCE=redis")
		}
	default:
		return fmt.Errorf("CENTROID_SOURCE must be %q or %q, got %q", SourceFile, SourceRedis, cfg.CentroidSource)
	}

	switch cfg.EncoderKind {
	case EncoderHTTP:
		if cfg.EncoderURL == "" {
			return fmt.Errorf("ENCODER_URL is required when ENCODER_KIND=http")
		}
	case EncoderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when ENCODER_KIND=openai")
		}
	default:
		return fmt.Errorf("ENCODER_KIND must be %q or %q, got %q", EncoderHTTP, EncoderOpenAI, cfg.EncoderKind)
	}

	if cfg.RateLimit <= 0 {
		return fmt.Errorf("RATE_LIMIT must be positive, got %v", cfg.RateLimit)
	}
	if cfg.RateBurst <= 0 {
		return fmt.Errorf("RATE_BURST must be positive, got %v", cfg.RateBurst)
	}

	return nil
}
