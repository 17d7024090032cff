package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PaymentRepository is the postgres-backed PaymentStore.
type PaymentRepository struct {
	db *DB
}

func NewPaymentRepository(db *DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Add inserts the record, overwriting any row with the same id.
func (r *PaymentRepository) Add(ctx context.Context, payment *domain.Payment) error {
	if payment == nil {
		return domain.NewInvalidPaymentError(nil)
	}

	query := `
		INSERT INTO payments (
			id, status, card_number_last_four, expiry_month, expiry_year, currency, amount
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			card_number_last_four = EXCLUDED.card_number_last_four,
			expiry_month = EXCLUDED.expiry_month,
			expiry_year = EXCLUDED.expiry_year,
			currency = EXCLUDED.currency,
			amount = EXCLUDED.amount
	`

	p, err := toDBModel(payment)
	if err != nil {
		return err
	}
	_, err = r.db.Pool.Exec(ctx, query,
		p.ID,
		p.Status,
		p.CardNumberLastFour,
		p.ExpiryMonth,
		p.ExpiryYear,
		p.Currency,
		p.Amount,
	)
	if err != nil {
		if IsCheckViolation(err) {
			return domain.NewInvalidPaymentError(err)
		}
		return fmt.Errorf("failed to save payment: %w", err)
	}

	return nil
}

// Get retrieves a payment by id
func (r *PaymentRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	query := `
		SELECT id, status, card_number_last_four, expiry_month, expiry_year, currency, amount, created_at
		FROM payments WHERE id = $1
	`

	row := r.db.Pool.QueryRow(ctx, query, id.String())
	payment, err := scanPayment(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NewPaymentNotFoundError(id.String())
	}
	return payment, err
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var m PaymentModel
	err := row.Scan(
		&m.ID, &m.Status, &m.CardNumberLastFour, &m.ExpiryMonth, &m.ExpiryYear,
		&m.Currency, &m.Amount, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan payment: %w", err)
	}
	return toDomainModel(m)
}
