// Package server runs the HTTP server and background sweeper with graceful
// shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vinculatec/backend/internal/bootstrap"
	"github.com/vinculatec/backend/internal/config"
	"github.com/vinculatec/backend/internal/pkg/logger"
)

// Server holds the state for the HTTP server
type Server struct {
	config      *config.Config
	router      *gin.Engine
	mongoClient *mongo.Client
	deps        *bootstrap.Dependencies
	logger      zerolog.Logger
	http        *http.Server
}

// NewServer creates and initializes a new server instance
func NewServer() (*Server, error) {
	cfg, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	client, database, err := bootstrap.SetupDatabase(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	deps, err := bootstrap.BuildDependencies(cfg, database)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to build dependencies: %w", err)
	}

	router := bootstrap.SetupRouter(cfg, deps)

	if cfg.Media.Mode == "local" {
		setupStaticFileServing(router, cfg)
	}

	return &Server{
		config:      cfg,
		router:      router,
		mongoClient: client,
		deps:        deps,
		logger:      logger.New("server"),
	}, nil
}

// setupStaticFileServing serves the local media directory under /uploads
func setupStaticFileServing(router *gin.Engine, cfg *config.Config) {
	if _, err := os.Stat(cfg.Media.StoragePath); os.IsNotExist(err) {
		if err := os.MkdirAll(cfg.Media.StoragePath, os.ModePerm); err != nil {
			logger.Error().Err(err).Str("path", cfg.Media.StoragePath).Msg("failed to create uploads directory")
			return
		}
	}
	router.Static("/uploads", cfg.Media.StoragePath)
}

// Run starts the HTTP server and the retention sweeper, then blocks until
// shutdown
func (s *Server) Run() error {
	s.http = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// The sweeper lives for the lifetime of the server
	sweeperCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	go s.deps.CleanupService.Start(sweeperCtx, s.config.CleanupInterval())

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting server: %w", err)
		}
	case sig := <-osSignals:
		s.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	}

	return s.Shutdown(context.Background())
}

// Shutdown drains in-flight requests and closes the database connection
func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	var firstErr error
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		s.logger.Error().Err(err).Msg("HTTP shutdown failed")
		firstErr = err
	}

	if err := s.mongoClient.Disconnect(shutdownCtx); err != nil {
		s.logger.Error().Err(err).Msg("mongo disconnect failed")
		if firstErr == nil {
			firstErr = err
		}
	}

	if firstErr == nil {
		s.logger.Info().Msg("server stopped cleanly")
	}
	return firstErr
}
