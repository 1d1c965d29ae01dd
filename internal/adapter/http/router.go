package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/juliosil99/demayoreoerp/internal/adapter/http/handler"
	"github.com/juliosil99/demayoreoerp/internal/adapter/http/middleware"
	"github.com/juliosil99/demayoreoerp/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AccountHandler        *handler.AccountHandler
	StatementHandler      *handler.StatementHandler
	ReconciliationHandler *handler.ReconciliationHandler
	AutoReconHandler      *handler.AutoReconHandler
	AuditHandler          *handler.AuditHandler
	HealthHandler         *handler.HealthHandler
	IdempotencyStore      usecase.IdempotencyStore
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)

	// Operational endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Accounts and statements
		r.Route("/accounts", func(r chi.Router) {
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/{id}", cfg.AccountHandler.Get)
			r.Get("/{id}/statement", cfg.StatementHandler.GetStatement)
			r.Post("/{id}/balance/sync", cfg.StatementHandler.SyncBalance)
		})

		// Expense-to-invoice matching sessions
		r.Route("/reconciliations", func(r chi.Router) {
			r.Get("/invoices", cfg.ReconciliationHandler.ListCandidates)
			r.Route("/sessions", func(r chi.Router) {
				r.Post("/", cfg.ReconciliationHandler.StartSession)
				r.Get("/{id}", cfg.ReconciliationHandler.GetSession)
				r.Get("/{id}/summary", cfg.ReconciliationHandler.GetSummary)
				r.Post("/{id}/invoices", cfg.ReconciliationHandler.AddInvoice)
				r.Delete("/{id}/invoices/{invoiceID}", cfg.ReconciliationHandler.RemoveInvoice)
				r.Post("/{id}/close", cfg.ReconciliationHandler.CloseSession)
			})
		})

		// Automatic sale-group reconciliation
		r.Route("/autorecon", func(r chi.Router) {
			r.Get("/groups", cfg.AutoReconHandler.ListGroups)
			r.Post("/groups/process", cfg.AutoReconHandler.ProcessGroup)
		})

		// Audit trail
		r.Get("/audit", cfg.AuditHandler.List)
	})

	return r
}
