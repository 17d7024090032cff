// Package validation checks inbound payment requests before anything is sent
// to the bank. Every rule runs, so a single response covers every problem.
package validation

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/domain"
	"github.com/go-playground/validator"
)

// SupportedCurrencies is the closed set of accepted ISO codes, in the order
// they are reported.
var SupportedCurrencies = []string{"GBP", "USD", "EUR"}

const (
	MsgCardNumberRequired = "Card number is required"
	MsgCardNumberLength   = "Card number must be between 14 and 19 characters long"
	MsgCardNumberNumeric  = "Card number must contain only numeric characters"
	MsgExpiryMonthRange   = "Expiry month must be between 1 and 12"
	MsgExpiryYearRequired = "Expiry year is required"
	MsgExpiryYearRange    = "Expiry year is out of range"
	MsgExpiryInPast       = "Card expiry date must be in the future"
	MsgCurrencyRequired   = "Currency is required"
	MsgCurrencyLength     = "Currency must be 3 characters"
	MsgAmountPositive     = "Amount must be a positive integer"
	MsgCVVRequired        = "CVV is required"
	MsgCVVLength          = "CVV must be 3 or 4 characters long"
	MsgCVVNumeric         = "CVV must contain only numeric characters"
)

// MsgCurrencyUnsupported lists the supported set, e.g. "[GBP, USD, EUR]".
var MsgCurrencyUnsupported = fmt.Sprintf("Currency must be one of: [%s]", strings.Join(SupportedCurrencies, ", "))

const digitsTag = "ascii_digits"

var digitsRegexp = regexp.MustCompile(`^[0-9]+$`)

// Validator is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
	oneOf    string
}

type Option func(*Validator)

// WithClock replaces time.Now, which decides what "the current month" is.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		v.now = now
	}
}

func New(opts ...Option) *Validator {
	validate := validator.New()
	// registration only fails on an empty tag or nil func
	_ = validate.RegisterValidation(digitsTag, func(fl validator.FieldLevel) bool {
		return digitsRegexp.MatchString(fl.Field().String())
	})

	v := &Validator{
		validate: validate,
		now:      time.Now,
		oneOf:    "oneof=" + strings.Join(SupportedCurrencies, " "),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate returns the ordered list of violations. An empty list means the
// request may be sent to the bank.
func (v *Validator) Validate(req domain.PaymentRequest) []string {
	errs := make([]string, 0)

	errs = v.cardNumber(req.CardNumber, errs)
	errs = v.expiryMonth(req.ExpiryMonth, errs)
	errs = v.expiryYear(req.ExpiryYear, errs)
	errs = v.expiryInFuture(req.ExpiryMonth, req.ExpiryYear, errs)
	errs = v.currency(req.Currency, errs)
	errs = v.amount(req.Amount, errs)
	errs = v.cvv(req.CVV, errs)

	return errs
}

func (v *Validator) cardNumber(card string, errs []string) []string {
	if isBlank(card) {
		return append(errs, MsgCardNumberRequired)
	}
	if v.fails(card, "min=14,max=19") {
		errs = append(errs, MsgCardNumberLength)
	}
	if v.fails(card, digitsTag) {
		errs = append(errs, MsgCardNumberNumeric)
	}
	return errs
}

func (v *Validator) expiryMonth(month int, errs []string) []string {
	if v.fails(month, "min=1,max=12") {
		errs = append(errs, MsgExpiryMonthRange)
	}
	return errs
}

// maxExpiryYear keeps a year storable as a 32-bit column.
const maxExpiryYear = math.MaxInt32

func (v *Validator) expiryYear(year int, errs []string) []string {
	switch {
	case v.fails(year, "min=1"):
		errs = append(errs, MsgExpiryYearRequired)
	case v.fails(year, fmt.Sprintf("max=%d", maxExpiryYear)):
		errs = append(errs, MsgExpiryYearRange)
	}
	return errs
}

// expiryInFuture only runs once month and year are individually valid. The
// current month itself is already expired.
func (v *Validator) expiryInFuture(month, year int, errs []string) []string {
	if month < 1 || month > 12 || year < 1 || year > maxExpiryYear {
		return errs
	}

	now := v.now()
	expiry := int64(year)*12 + int64(month)
	current := int64(now.Year())*12 + int64(now.Month())
	if expiry <= current {
		errs = append(errs, MsgExpiryInPast)
	}
	return errs
}

func (v *Validator) currency(currency string, errs []string) []string {
	if isBlank(currency) {
		return append(errs, MsgCurrencyRequired)
	}
	if v.fails(currency, "len=3") {
		errs = append(errs, MsgCurrencyLength)
	}
	if v.fails(strings.ToUpper(currency), v.oneOf) {
		errs = append(errs, MsgCurrencyUnsupported)
	}
	return errs
}

func (v *Validator) amount(amount int64, errs []string) []string {
	if v.fails(amount, "gt=0") {
		errs = append(errs, MsgAmountPositive)
	}
	return errs
}

func (v *Validator) cvv(cvv string, errs []string) []string {
	if isBlank(cvv) {
		return append(errs, MsgCVVRequired)
	}
	if v.fails(cvv, "min=3,max=4") {
		errs = append(errs, MsgCVVLength)
	}
	if v.fails(cvv, digitsTag) {
		errs = append(errs, MsgCVVNumeric)
	}
	return errs
}

func (v *Validator) fails(field any, tag string) bool {
	return v.validate.Var(field, tag) != nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
