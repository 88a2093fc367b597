package main

import (
	"context"
	"os"

	"github.com/yigit/studentregistry/internal/pkg/logger"
	"github.com/yigit/studentregistry/internal/server"
)

// @title Student Registry API
// @version 1.0
// @description Registers students and stores their attached documents

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /
// @schemes http

func main() {
	srv, err := server.NewServer(context.Background())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal or a listener error
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
