package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"

	"github.com/pubudushehan/Ontology-classifies-emotion/internal/classify"
	"github.com/pubudushehan/Ontology-classifies-emotion/internal/config"
	"github.com/pubudushehan/Ontology-classifies-emotion/internal/database"
	"github.com/pubudushehan/Ontology-classifies-emotion/internal/domain"
	"github.com/pubudushehan/Ontology-classifies-emotion/internal/embedding"
	"github.com/pubudushehan/Ontology-classifies-emotion/internal/knowledge"
	"github.com/pubudushehan/Ontology-classifies-emotion/internal/logging"
	"github.com/pubudushehan/Ontology-classifies-emotion/internal/metrics"
	"github.com/pubudushehan/Ontology-classifies-emotion/internal/redis"
	"github.com/pubudushehan/Ontology-classifies-emotion/internal/server"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	return cfg
}

func setupDB(cfg *config.Config) *pgxpool.Pool {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := database.RunMigrations(ctx, pool); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	return pool
}

func setupRedis(cfg *config.Config) *redis.Client {
	client, err := redis.NewClient(cfg.RedisURL)
	if err != nil {
		slog.Error("Failed to create Redis client", "error", err)
		os.Exit(1)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx); err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	return client
}

func setupKnowledge(ctx context.Context, source domain.KnowledgeSource) *knowledge.Base {
	tables, err := source.Load(ctx)
	if err != nil {
		slog.Error("Failed to load knowledge tables", "error", err)
		os.Exit(1)
	}
	kb, err := knowledge.New(tables)
	if err != nil {
		slog.Error("Invalid knowledge tables", "error", err)
		os.Exit(1)
	}

	metrics.KnowledgeFrames.Set(float64(kb.FrameCount()))
	metrics.KnowledgeTriggers.Set(float64(kb.TriggerCount()))
	metrics.KnowledgeRoleMarkers.Set(float64(kb.RoleMarkerCount()))
	slog.Info("Knowledge base loaded",
		"frames", kb.FrameCount(),
		"triggers", kb.TriggerCount(),
		"role_markers", kb.RoleMarkerCount())
	return kb
}

func setupFallback(ctx context.Context, cfg *config.Config, centroids domain.CentroidSource) (*embedding.FallbackClassifier, []server.HealthCheck, func()) {
	table, err := centroids.Load(ctx)
	if err != nil {
		slog.Error("Failed to load centroids", "error", err)
		os.Exit(1)
	}

	var encoder domain.Encoder
	var checks []server.HealthCheck
	switch cfg.EncoderKind {
	case config.EncoderOpenAI:
		// No readiness probe here: a synthetic embedding request per probe
		// would burn quota against a hosted API.
		encoder = embedding.NewOpenAIEncoder(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	default:
		httpEncoder := embedding.NewHTTPEncoder(cfg.EncoderURL, cfg.EncoderTimeout)
		encoder = httpEncoder
		checks = append(checks, server.HealthCheck{Name: "encoder", Check: httpEncoder.Ping})
	}

	cached := embedding.NewCachingEncoder(encoder, cfg.EncoderCacheTTL, clockwork.NewRealClock())
	stopEviction := cached.StartEvictionTimer(cfg.EncoderCacheTTL)

	fallback, err := embedding.NewFallback(cached, table)
	if err != nil {
		slog.Error("Invalid centroid table", "error", err)
		os.Exit(1)
	}
	return fallback, checks, stopEviction
}

func runGracefulShutdown(srv *server.Server, cleanups ...func()) <-chan struct{} {
	done := make(chan struct{})

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		<-sigCh

		slog.Info("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown failed", "error", err)
		}
		for _, cleanup := range cleanups {
			cleanup()
		}
		close(done)
	}()

	return done
}

func main() {
	cfg := setupConfig()
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	ctx := context.Background()

	var checks []server.HealthCheck
	var cleanups []func()

	var knowledgeSource domain.KnowledgeSource
	switch cfg.KnowledgeSource {
	case config.SourcePostgres:
		pool := setupDB(cfg)
		cleanups = append(cleanups, pool.Close)
		checks = append(checks, server.HealthCheck{Name: "database", Check: pool.Ping})
		knowledgeSource = database.NewKnowledgeRepo(pool)
	default:
		knowledgeSource = knowledge.FileSource{
			FramesPath:      cfg.FramesPath,
			ModifiersPath:   cfg.ModifiersPath,
			RoleMarkersPath: cfg.RoleMarkersPath,
		}
	}
	kb := setupKnowledge(ctx, knowledgeSource)

	var centroidSource domain.CentroidSource
	switch cfg.CentroidSource {
	case config.SourceRedis:
		client := setupRedis(cfg)
		cleanups = append(cleanups, func() {
			if err := client.Close(); err != nil {
				slog.Error("Failed to close Redis client", "error", err)
			}
		})
		checks = append(checks, server.HealthCheck{Name: "redis", Check: client.Ping})
		centroidSource = redis.NewCentroidStore(client, cfg.RedisCentroidKey)
	default:
		centroidSource = embedding.FileCentroidSource{Path: cfg.CentroidsPath}
	}

	fallback, encoderChecks, stopEviction := setupFallback(ctx, cfg, centroidSource)
	cleanups = append(cleanups, stopEviction)
	checks = append(checks, encoderChecks...)

	classifier := classify.New(kb, fallback)
	srv := server.NewServer(cfg, classifier, checks...)
	done := runGracefulShutdown(srv, cleanups...)

	slog.Info("Configuration loaded", "env", cfg.AppEnv, "knowledge_source", cfg.KnowledgeSource, "centroid_source", cfg.CentroidSource, "encoder", cfg.EncoderKind)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}

	<-done
	slog.Info("Server stopped")
}
