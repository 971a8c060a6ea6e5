package main

import (
	"os"

	"github.com/emre/advisehub/internal/pkg/logger"
	"github.com/emre/advisehub/internal/server"
)

// @title AdviseHub API
// @version 1.0
// @description Eligibility and curriculum dependency engine for academic advising

// @contact.name API Support
// @contact.email support@advisehub.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Optional advisor identity token used to attribute bypass grants

func main() {
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
	os.Exit(0)
}
