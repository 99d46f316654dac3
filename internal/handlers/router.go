package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/ammica/fuel-backend/docs"
	"github.com/ammica/fuel-backend/internal/metrics"
	mW "github.com/ammica/fuel-backend/internal/middleware"
	"github.com/ammica/fuel-backend/internal/services"
)

// Dependencies is everything the router wires into handlers.
type Dependencies struct {
	DB             Pinger
	Ledger         *services.LedgerService
	Reports        *services.ReportService
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// NewRouter builds the HTTP API.
func NewRouter(deps Dependencies) *chi.Mux {
	salesHandler := NewSalesHandler(deps.Ledger)
	customerHandler := NewCustomerHandler(deps.Ledger)
	reportHandler := NewReportHandler(deps.Reports)
	healthHandler := NewHealthHandler(deps.DB)

	r := chi.NewRouter()

	// Middleware
	r.Use(mW.SecurityHeaders)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  logrus.StandardLogger(),
		NoColor: true,
	}))
	r.Use(metrics.InstrumentHandler)
	r.Use(mW.RecoverJSON)
	if deps.RequestTimeout > 0 {
		r.Use(middleware.Timeout(deps.RequestTimeout))
	}

	r.Get("/", Home)
	r.Get("/health", healthHandler.Health)
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: deps.AllowedOrigins,
			AllowedMethods: []string{
				http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
			},
			AllowedHeaders: []string{"Content-Type", "Authorization"},
			MaxAge:         86400,
		}))

		r.Post("/sales", salesHandler.LogSale)
		r.Post("/customers", customerHandler.AddCustomer)
		r.Get("/customers/{name}", customerHandler.GetCustomer)
		r.Post("/reward", customerHandler.ApplyReward)

		r.Get("/sales_by_type", reportHandler.SalesByType)
		r.Get("/sales_over_time", reportHandler.SalesOverTime)
		r.Get("/reports", reportHandler.Reports)
	})

	return r
}
