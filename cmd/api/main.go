package main

import (
	"os"

	"github.com/kemumsa/backend/internal/pkg/logger"
	"github.com/kemumsa/backend/internal/server"
)

// @title KeMUMSA API
// @version 1.0
// @description API for the Kenya Methodist University Medical Students Association platform

// @contact.name KeMUMSA
// @contact.email kemumsa@kemu.ac.ke

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
