package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/expense-tracker/internal/cash"
	"github.com/frahmantamala/expense-tracker/internal/category"
	"github.com/frahmantamala/expense-tracker/internal/expense"
	"github.com/frahmantamala/expense-tracker/internal/export"
	"github.com/frahmantamala/expense-tracker/internal/importer"
	"github.com/frahmantamala/expense-tracker/internal/transport/middleware"
	"github.com/frahmantamala/expense-tracker/internal/transport/swagger"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Expense  *expense.Handler
	Category *category.Handler
	Cash     *cash.Handler
	Importer *importer.Handler
	Export   *export.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, handlers Handlers, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.UserContext)

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Mount API under /api/v1
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		if handlers.Expense != nil {
			r.Route("/expenses", func(er chi.Router) {
				er.Post("/", handlers.Expense.CreateExpense)  // POST /expenses
				er.Get("/", handlers.Expense.ListExpenses)    // GET /expenses
				er.Get("/stats", handlers.Expense.GetStats)   // GET /expenses/stats
				er.Get("/{id}", handlers.Expense.GetExpense)  // GET /expenses/:id
				er.Patch("/{id}", handlers.Expense.UpdateExpense)
				er.Delete("/{id}", handlers.Expense.DeleteExpense)

				if handlers.Importer != nil {
					er.Post("/bulk", handlers.Importer.BulkUpload) // POST /expenses/bulk
				}
				if handlers.Export != nil {
					er.Get("/export", handlers.Export.ExportStatements) // GET /expenses/export
				}
			})
		}

		if handlers.Category != nil {
			r.Route("/categories", func(cr chi.Router) {
				cr.Get("/", handlers.Category.GetCategories)
				cr.Post("/", handlers.Category.CreateCategory)
			})
		}

		if handlers.Cash != nil {
			r.Route("/cash-transactions", func(cr chi.Router) {
				cr.Get("/", handlers.Cash.GetTransactions)
				cr.Post("/", handlers.Cash.AddTransaction)
			})
		}
	})
}
