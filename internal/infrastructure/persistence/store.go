// Package persistence selects the PaymentStore backend named by the
// configuration.
package persistence

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/application"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/config"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/infrastructure/persistence/memory"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/infrastructure/persistence/redis"
)

// Open returns the configured store and a func that releases its resources.
// The postgres backend has its schema migrated before it is returned.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (application.PaymentStore, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreMemory, "":
		logger.Info("using in-memory payment store; records do not survive a restart")
		return memory.NewPaymentStore(), func() {}, nil

	case config.StorePostgres:
		db, err := postgres.Connect(ctx, &cfg.Database, logger)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, nil, err
		}
		return postgres.NewPaymentRepository(db), db.Close, nil

	case config.StoreRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("using redis payment store", "addr", cfg.Redis.Addr, "db", cfg.Redis.DB)
		return redis.NewPaymentStore(client), func() {
			if err := client.Close(); err != nil {
				logger.Error("failed to close redis client", "error", err)
			}
		}, nil
	}

	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}
