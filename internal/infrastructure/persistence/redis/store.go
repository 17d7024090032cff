// Package redis keeps payment records as JSON documents in Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/config"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "payment:"

// record is the stored document. Field names match the public record.
type record struct {
	ID                 uuid.UUID `json:"id"`
	Status             string    `json:"status"`
	CardNumberLastFour *int      `json:"cardNumberLastFour,omitempty"`
	ExpiryMonth        int       `json:"expiryMonth"`
	ExpiryYear         int       `json:"expiryYear"`
	Currency           string    `json:"currency"`
	Amount             int64     `json:"amount"`
}

type PaymentStore struct {
	client *redis.Client
}

// Connect opens a client and pings the server.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	const op = "redis.Connect"

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return client, nil
}

func NewPaymentStore(client *redis.Client) *PaymentStore {
	return &PaymentStore{client: client}
}

// Add writes the record with no expiration, replacing any existing one.
func (s *PaymentStore) Add(ctx context.Context, payment *domain.Payment) error {
	const op = "redis.Add"

	if payment == nil {
		return domain.NewInvalidPaymentError(nil)
	}

	data, err := json.Marshal(toRecord(payment))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.client.Set(ctx, key(payment.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *PaymentStore) Get(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	const op = "redis.Get"

	data, err := s.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.NewPaymentNotFoundError(id.String())
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return r.toDomain(), nil
}

func key(id uuid.UUID) string {
	return keyPrefix + id.String()
}

func toRecord(p *domain.Payment) record {
	return record{
		ID:                 p.ID,
		Status:             p.Status.String(),
		CardNumberLastFour: p.CardNumberLastFour,
		ExpiryMonth:        p.ExpiryMonth,
		ExpiryYear:         p.ExpiryYear,
		Currency:           p.Currency,
		Amount:             p.Amount,
	}
}

func (r record) toDomain() *domain.Payment {
	return &domain.Payment{
		ID:                 r.ID,
		Status:             domain.PaymentStatus(r.Status),
		CardNumberLastFour: r.CardNumberLastFour,
		ExpiryMonth:        r.ExpiryMonth,
		ExpiryYear:         r.ExpiryYear,
		Currency:           r.Currency,
		Amount:             r.Amount,
	}
}
