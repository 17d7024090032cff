package router

import (
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/api"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/application"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/config"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/interfaces/rest"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/interfaces/rest/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Server    config.ServerConfig
	RateLimit config.RateLimitConfig
	// Gatherer backs /metrics. Nil means the default registry.
	Gatherer prometheus.Gatherer
}

// New builds the gateway's HTTP handler.
func New(h *handlers.Handlers, opts Options, logger *slog.Logger) (http.Handler, error) {
	doc, err := api.LoadSpec()
	if err != nil {
		return nil, err
	}
	specHandler, err := api.SpecHandler(doc)
	if err != nil {
		return nil, err
	}

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	r := chi.NewRouter()

	r.Use(
		chimw.RequestID,
		chimw.RealIP,
		middleware.Logging(logger),
		middleware.Recovery(logger),
	)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		rest.WriteError(w, application.NewRouteNotFoundError(), logger)
	})

	r.Group(func(r chi.Router) {
		if opts.RateLimit.Enabled {
			r.Use(middleware.RateLimit(opts.RateLimit.RPS, opts.RateLimit.Burst, logger))
		}
		if opts.Server.HandlerTimeout > 0 {
			r.Use(middleware.Timeout(opts.Server.HandlerTimeout))
		}

		r.Post("/payment", h.ProcessPayment)
		r.Get("/payment/{id}", h.GetPaymentByID)
	})

	r.Get("/healthz", h.Health)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Get("/openapi.json", specHandler)
	r.Get("/docs/*", httpSwagger.WrapHandler)

	return r, nil
}
