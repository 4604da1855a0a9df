package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SetupRoutes configures the router for the dashboard API
func SetupRoutes(h *Handlers, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.HealthCheck)

	r.Route("/api/everflow", func(r chi.Router) {
		// Listing endpoints accept POST bodies with paging, search and
		// filters; GET works for bare first-page loads
		r.Post("/offers", h.Offers)
		r.Get("/offers", h.Offers)
		r.Get("/affiliate-offers", h.AffiliateOffers)
		r.Post("/affiliates", h.Affiliates)
		r.Get("/affiliates", h.Affiliates)
		r.Post("/advertisers", h.Advertisers)
		r.Get("/advertisers", h.Advertisers)
		r.Post("/deals", h.Deals)
		r.Get("/deals", h.Deals)
		r.Post("/coupon-codes", h.CouponCodes)
		r.Get("/coupon-codes", h.CouponCodes)
		r.Get("/traffic", h.Traffic)

		// Reporting endpoints require an explicit date range
		r.Post("/conversions", h.Conversions)
		r.Post("/profits", h.Profits)
		r.Post("/reporting", h.Reporting)
		r.Post("/reporting/export", h.ReportingExport)
		r.Get("/dashboard-summary", h.DashboardSummary)

		r.Get("/test", h.TestConnection)
	})

	return r
}
