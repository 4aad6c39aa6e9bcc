package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/vinculatec/backend/internal/pkg/logger"
	"github.com/vinculatec/backend/internal/server"
)

func main() {
	// Optional .env for local development; real deployments set env vars
	_ = godotenv.Load()

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("server exited with error")
		os.Exit(1)
	}
}
