package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/pubudushehan/Ontology-classifies-emotion/internal/config"
	"github.com/pubudushehan/Ontology-classifies-emotion/internal/domain"
	apperrors "github.com/pubudushehan/Ontology-classifies-emotion/internal/errors"
)

// HealthCheck is a named readiness probe against a backing dependency.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type Server struct {
	echo       *echo.Echo
	config     *config.Config
	classifier domain.Classifier
	checks     []HealthCheck
	startTime  time.Time
}

// NewServer wires the HTTP layer over a ready classifier. The supplied health
// checks drive the readiness probe; liveness never touches dependencies.
func NewServer(cfg *config.Config, classifier domain.Classifier, checks ...HealthCheck) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(correlationMiddleware())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:       e,
		config:     cfg,
		classifier: classifier,
		checks:     checks,
		startTime:  time.Now(),
	}

	srv.registerRoutes()
	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// rateLimiter bounds classify traffic per client IP.
func (s *Server) rateLimiter() echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(s.config.RateLimit),
			Burst:     s.config.RateBurst,
			ExpiresIn: 3 * time.Minute,
		}),
	})
}
