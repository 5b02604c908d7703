// Package server provides the public entry point for initializing the
// FarmAssist server: configuration, telemetry, the advisory table, the
// vision and places clients, and the HTTP router.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/farmassist/farmassist/server/internal/advisory"
	"github.com/farmassist/farmassist/server/internal/api"
	"github.com/farmassist/farmassist/server/internal/api/handlers"
	"github.com/farmassist/farmassist/server/internal/config"
	"github.com/farmassist/farmassist/server/internal/diagnosis"
	"github.com/farmassist/farmassist/server/internal/places"
	"github.com/farmassist/farmassist/server/internal/telemetry"
	"github.com/farmassist/farmassist/server/internal/vision"

	"github.com/rs/zerolog/log"
)

// Server holds the initialized FarmAssist server.
type Server struct {
	// Handler is the HTTP handler with all routes and middleware.
	Handler http.Handler

	// Port is the port the server should listen on.
	Port int

	// ShutdownFunc should be called on graceful shutdown to flush telemetry.
	ShutdownFunc func(context.Context) error
}

// New initializes all components and returns a ready Server.
func New(ctx context.Context) (*Server, error) {
	return NewWithConfig(ctx, config.Load())
}

// NewWithConfig initializes the server with an explicit configuration.
func NewWithConfig(ctx context.Context, cfg *config.Config) (*Server, error) {
	shutdown, err := telemetry.Init(cfg.Telemetry)
	if err != nil {
		return nil, fmt.Errorf("init telemetry: %w", err)
	}

	// The advisory table is loaded once and shared read-only across
	// requests; substituting a file lets deployments extend it without
	// a rebuild.
	table, err := advisory.Load(cfg.Advisory.File)
	if err != nil {
		return nil, fmt.Errorf("load advisory table: %w", err)
	}
	log.Info().
		Int("crops", table.Crops()).
		Int("entries", table.Entries()).
		Msg("Advisory table loaded")

	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	if cfg.Vision.APIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY not set; analyze calls will fail upstream")
	}
	if cfg.Places.APIKey == "" {
		log.Warn().Msg("GOOGLE_MAPS_API_KEY not set; shop lookups will fail upstream")
	}

	visionClient := vision.NewClient(cfg.Vision)
	placesClient := places.NewClient(cfg.Places)
	pipeline := diagnosis.NewPipeline(visionClient, table)

	h := handlers.New(pipeline, placesClient, cfg.Upload)
	router := api.NewRouter(cfg, h)

	return &Server{
		Handler:      router,
		Port:         cfg.Port,
		ShutdownFunc: shutdown,
	}, nil
}
