package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/satram-seva/registration-api/internal/auth"
	"github.com/satram-seva/registration-api/internal/config"
)

func RegisterRoutes(
	r *chi.Mux,
	cfg *config.Config,
	authHandler *auth.AuthHandler,
	registrationHandler *RegistrationHandler,
	adminHandler *AdminHandler,
	reportHandler *ReportHandler,
	exportHandler *ExportHandler,
	apiKeyHandler *APIKeyHandler,
) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	if cfg.EnableCORS {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{cfg.FrontendURL},
			AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Content-Type", "X-API-Key"},
			AllowCredentials: true,
		}))
	}

	// Initialize Huma API
	humaConfig := huma.DefaultConfig("Satram Registration API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookieAuth": {
			Type: "apiKey",
			In:   "cookie",
			Name: "auth_token",
		},
	}
	api := humachi.New(r, humaConfig)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Public routes: the registration form flow
	huma.Get(api, "/api/calendar", reportHandler.HandleCalendar)
	huma.Get(api, "/api/registrations/{mobile}", registrationHandler.HandleLookup)
	huma.Post(api, "/api/registrations", registrationHandler.HandleSubmit)
	huma.Post(api, "/api/admin/login", authHandler.HandleLogin)

	adminSecurity := func(o *huma.Operation) {
		o.Security = []map[string][]string{{"cookieAuth": {}}}
	}

	// Admin routes
	huma.Get(api, "/api/admin/registrations", adminHandler.HandleList, adminSecurity)
	huma.Delete(api, "/api/admin/registrations/{mobile}", adminHandler.HandleDelete, adminSecurity)
	huma.Get(api, "/api/admin/reports/daily", reportHandler.HandleDailyReport, adminSecurity)
	huma.Post(api, "/api/admin/keys", apiKeyHandler.HandleCreate, adminSecurity)
	huma.Get(api, "/api/admin/keys", apiKeyHandler.HandleList, adminSecurity)
	huma.Delete(api, "/api/admin/keys/{id}", apiKeyHandler.HandleDelete, adminSecurity)

	// CSV download stays a plain route so it can stream
	r.Group(func(r chi.Router) {
		r.Use(authHandler.AdminMiddleware)
		r.Get("/api/admin/export/csv", exportHandler.ServeCSV)
	})
}
