// Package domain holds the payment record produced by the gateway and the
// request shapes that flow into and out of the acquiring bank.
package domain

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// PaymentStatus is the outcome of a single processing attempt.
type PaymentStatus string

const (
	// StatusAuthorized means the bank approved the payment.
	StatusAuthorized PaymentStatus = "Authorized"
	// StatusDeclined means the bank looked at the payment and refused it.
	StatusDeclined PaymentStatus = "Declined"
	// StatusRejected means no bank decision was attempted or obtainable.
	StatusRejected PaymentStatus = "Rejected"
)

func (s PaymentStatus) String() string {
	return string(s)
}

// RejectReason records why a payment ended up Rejected. It never leaves the
// process in a response body.
type RejectReason string

const (
	RejectNone            RejectReason = ""
	RejectValidation      RejectReason = "validation"
	RejectBankUnavailable RejectReason = "bank_unavailable"
)

// PaymentRequest is the untrusted inbound request. Nothing is enforced at
// construction; see the validation package.
type PaymentRequest struct {
	CardNumber  string
	ExpiryMonth int
	ExpiryYear  int
	Currency    string
	Amount      int64
	CVV         string
}

// ExpiryDate renders the expiry the way the bank expects it: MM/YYYY.
func (r PaymentRequest) ExpiryDate() string {
	return fmt.Sprintf("%02d/%d", r.ExpiryMonth, r.ExpiryYear)
}

// ToBankRequest builds the downstream request. Fields pass through unchanged
// apart from the expiry.
func (r PaymentRequest) ToBankRequest() BankRequest {
	return BankRequest{
		CardNumber: r.CardNumber,
		ExpiryDate: r.ExpiryDate(),
		Currency:   r.Currency,
		Amount:     r.Amount,
		CVV:        r.CVV,
	}
}

type BankRequest struct {
	CardNumber string
	ExpiryDate string
	Currency   string
	Amount     int64
	CVV        string
}

// BankResult is a decision returned by the bank. A missing result is
// expressed by the caller, never by a zero BankResult.
type BankResult struct {
	Authorized        bool
	AuthorizationCode string
}

// Payment is the sanitized record kept by the gateway. It never holds the
// full card number or the CVV.
type Payment struct {
	ID                 uuid.UUID
	Status             PaymentStatus
	CardNumberLastFour *int
	ExpiryMonth        int
	ExpiryYear         int
	Currency           string
	Amount             int64

	// RejectReason is set only when Status is StatusRejected.
	RejectReason RejectReason
}

// NewPayment builds a record with a fresh identifier from the request fields.
func NewPayment(req PaymentRequest, status PaymentStatus) *Payment {
	return &Payment{
		ID:                 uuid.New(),
		Status:             status,
		CardNumberLastFour: LastFour(req.CardNumber),
		ExpiryMonth:        req.ExpiryMonth,
		ExpiryYear:         req.ExpiryYear,
		Currency:           req.Currency,
		Amount:             req.Amount,
	}
}

// NewRejectedPayment builds a Rejected record carrying the reason.
func NewRejectedPayment(req PaymentRequest, reason RejectReason) *Payment {
	p := NewPayment(req, StatusRejected)
	p.RejectReason = reason
	return p
}

// StatusFromBank maps a bank decision onto a status.
func StatusFromBank(result BankResult) PaymentStatus {
	if result.Authorized {
		return StatusAuthorized
	}
	return StatusDeclined
}

// LastFour parses the trailing four characters of a card number. Cards
// shorter than four characters, or with a non-numeric tail, yield nil.
func LastFour(cardNumber string) *int {
	if len(cardNumber) < 4 {
		return nil
	}
	n, err := strconv.Atoi(cardNumber[len(cardNumber)-4:])
	if err != nil {
		return nil
	}
	return &n
}

// Clone returns a deep copy so stored records cannot be mutated by callers.
func (p *Payment) Clone() *Payment {
	if p == nil {
		return nil
	}
	c := *p
	if p.CardNumberLastFour != nil {
		lf := *p.CardNumberLastFour
		c.CardNumberLastFour = &lf
	}
	return &c
}

func (p *Payment) IsRejected() bool {
	return p.Status == StatusRejected
}
