package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/kdanquah/regportal/internal/pkg/logger"
	"github.com/kdanquah/regportal/internal/server"
)

func main() {
	// Load .env before anything reads the environment; a missing file is
	// fine, deployments set real environment variables.
	_ = godotenv.Load()

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
