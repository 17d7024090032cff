package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/config"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB owns the pool behind the postgres payment store.
type DB struct {
	Pool   *pgxpool.Pool
	logger *slog.Logger
}

// Connect opens the payments pool and pings it once. The pool is closed again
// if the ping fails, so callers only ever hold a reachable database.
func Connect(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger) (*DB, error) {
	const op = "postgres.Connect"

	pgxCfg, err := cfg.PgxConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, fmt.Errorf("%s: open pool for %s:%d/%s: %w", op, cfg.Host, cfg.Port, cfg.Name, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: ping %s:%d/%s: %w", op, cfg.Host, cfg.Port, cfg.Name, err)
	}

	logger = logger.With("store", "postgres", "database", cfg.Name)
	logger.Info("Payment store ready",
		"host", cfg.Host,
		"max_conns", pgxCfg.MaxConns,
	)

	return &DB{Pool: pool, logger: logger}, nil
}

func (db *DB) Close() {
	db.Pool.Close()
	db.logger.Info("Payment store closed")
}

// IsCheckViolation reports SQLSTATE 23514, raised by the payments table's
// CHECK constraints.
func IsCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23514"
}
