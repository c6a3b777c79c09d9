package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/yzxsolutions/soofi-mandi-sub000/internal/handler"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/middleware"
)

// Config carries the router's cross-cutting options.
type Config struct {
	AllowedOrigins []string
	Metrics        *middleware.HTTPMetrics
}

// New creates a new HTTP router with all routes and middleware configured.
func New(
	menuHandler *handler.MenuHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	cfg Config,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Metrics(cfg.Metrics))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		api.Route("/menu", func(m chi.Router) {
			m.Get("/", menuHandler.List)
			m.Get("/{id}", menuHandler.GetByID)
		})

		api.Route("/carts", func(c chi.Router) {
			c.Post("/", cartHandler.Create)
			c.Route("/{id}", func(one chi.Router) {
				one.Get("/", cartHandler.Get)
				one.Post("/items", cartHandler.AddItem)
				one.Patch("/items/{key}", cartHandler.UpdateItem)
				one.Delete("/items/{key}", cartHandler.RemoveItem)
				one.Post("/coupon", cartHandler.ApplyCoupon)
				one.Delete("/coupon", cartHandler.RemoveCoupon)
			})
		})

		api.Route("/orders", func(o chi.Router) {
			o.Post("/", orderHandler.Checkout)
			o.Get("/", orderHandler.List)
			o.Get("/{id}", orderHandler.GetByID)
			o.Patch("/{id}/status", orderHandler.UpdateStatus)
		})
	})

	return r
}
