package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/satram-seva/registration-api/internal/auth"
	"github.com/satram-seva/registration-api/internal/config"
	"github.com/satram-seva/registration-api/internal/database"
	"github.com/satram-seva/registration-api/internal/handlers"
	"github.com/satram-seva/registration-api/internal/notifier"
	"github.com/satram-seva/registration-api/internal/store"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)
	registrationStore := store.NewGormStore(db)

	// Initialize Handlers
	var regNotifier notifier.Notifier
	discordNotifier, err := notifier.NewDiscordNotifier(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("discord notifier not initialized")
	} else {
		regNotifier = discordNotifier
	}

	authHandler := auth.NewAuthHandler(cfg, db)
	registrationHandler := handlers.NewRegistrationHandler(registrationStore, regNotifier)
	adminHandler := handlers.NewAdminHandler(registrationStore, authHandler)
	reportHandler := handlers.NewReportHandler(adminHandler, cfg)
	exportHandler := handlers.NewExportHandler(registrationStore)
	apiKeyHandler := handlers.NewAPIKeyHandler(db, authHandler)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, cfg, authHandler, registrationHandler, adminHandler, reportHandler, exportHandler, apiKeyHandler)

	// Start Server
	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
