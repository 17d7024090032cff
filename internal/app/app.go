// Package app composes the gateway from its configuration.
package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/application/services"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/application/validation"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/config"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/infrastructure/bank"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/infrastructure/metrics"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/infrastructure/persistence"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/interfaces/rest/router"
	"github.com/prometheus/client_golang/prometheus"
)

type App struct {
	Handler http.Handler
	close   func()
}

// New wires every component. reg receives the gateway's collectors and
// backs /metrics.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, reg *prometheus.Registry) (*App, error) {
	m := metrics.New(reg)

	store, closeStore, err := persistence.Open(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	bankClient := bank.NewBankClient(cfg.Bank, logger, m)

	paymentService := services.NewPaymentService(validation.New(), bankClient, store, m, logger)
	queryService := services.NewQueryService(store)

	h := handlers.NewHandlers(paymentService, queryService, logger)

	handler, err := router.New(h, router.Options{
		Server:    cfg.Server,
		RateLimit: cfg.RateLimit,
		Gatherer:  reg,
	}, logger)
	if err != nil {
		closeStore()
		return nil, err
	}

	return &App{Handler: handler, close: closeStore}, nil
}

// Close releases the store.
func (a *App) Close() {
	a.close()
}
