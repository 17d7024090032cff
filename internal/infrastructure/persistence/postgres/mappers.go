package postgres

import (
	"fmt"
	"math"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/domain"
	"github.com/google/uuid"
)

// toDomainModel: maps db model to domain entity
func toDomainModel(m PaymentModel) (*domain.Payment, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, fmt.Errorf("parse payment id %q: %w", m.ID, err)
	}

	p := &domain.Payment{
		ID:          id,
		Status:      domain.PaymentStatus(m.Status),
		ExpiryMonth: int(m.ExpiryMonth),
		ExpiryYear:  int(m.ExpiryYear),
		Currency:    m.Currency,
		Amount:      m.Amount,
	}
	if m.CardNumberLastFour != nil {
		lf := int(*m.CardNumberLastFour)
		p.CardNumberLastFour = &lf
	}
	return p, nil
}

// toDBModel: maps domain entity to db model. Integer columns are 32-bit, so
// values that would not fit are refused rather than truncated.
func toDBModel(p *domain.Payment) (*PaymentModel, error) {
	month, err := toInt32("expiry_month", p.ExpiryMonth)
	if err != nil {
		return nil, err
	}
	year, err := toInt32("expiry_year", p.ExpiryYear)
	if err != nil {
		return nil, err
	}

	m := &PaymentModel{
		ID:          p.ID.String(),
		Status:      p.Status.String(),
		ExpiryMonth: month,
		ExpiryYear:  year,
		Currency:    p.Currency,
		Amount:      p.Amount,
	}
	if p.CardNumberLastFour != nil {
		lf, err := toInt32("card_number_last_four", *p.CardNumberLastFour)
		if err != nil {
			return nil, err
		}
		m.CardNumberLastFour = &lf
	}
	return m, nil
}

func toInt32(column string, v int) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, domain.NewInvalidPaymentError(fmt.Errorf("%s %d does not fit a 32-bit column", column, v))
	}
	return int32(v), nil
}
