package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ledgerly/ledgerly-backend/internal/api/handlers"
	custommiddleware "github.com/ledgerly/ledgerly-backend/internal/api/middleware"
	"github.com/ledgerly/ledgerly-backend/internal/config"
	"github.com/ledgerly/ledgerly-backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	accountService *service.AccountService,
	lifecycleService *service.LifecycleService,
	summaryService *service.SummaryService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/accounts", func(r chi.Router) {
			accountHandler := handlers.NewAccountHandler(accountService)
			lifecycleHandler := handlers.NewLifecycleHandler(lifecycleService)

			r.Get("/", accountHandler.ListAccounts)
			r.Post("/", accountHandler.CreateAccount)
			r.Get("/check-duplicate", accountHandler.CheckDuplicate)

			r.Route("/{id}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateAccountIDMiddleware)
				r.Get("/", accountHandler.GetAccount)
				r.Put("/", accountHandler.UpdateAccount)
				r.Delete("/", accountHandler.DeleteAccount)
				r.Post("/purchase", lifecycleHandler.Purchase)
				r.Post("/sell", lifecycleHandler.Sell)
				r.Post("/loss", lifecycleHandler.Loss)
			})
		})

		summaryHandler := handlers.NewSummaryHandler(summaryService)
		r.Get("/summary", summaryHandler.Summary)
	})

	return r
}
