package bank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/config"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/domain"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/infrastructure/metrics"
)

const maxLoggedBody = 512

type HTTPBankClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

func NewBankClient(cfg config.BankConfig, logger *slog.Logger, m *metrics.Metrics) *HTTPBankClient {
	return &HTTPBankClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger:  logger,
		metrics: m,
	}
}

// ProcessPayment makes a single call to the bank. Any failure yields
// (nil, false); the cause only reaches the logs and metrics.
func (c *HTTPBankClient) ProcessPayment(ctx context.Context, req domain.BankRequest) (*domain.BankResult, bool) {
	url := fmt.Sprintf("%s/payments", c.baseURL)
	body := toWireRequest(req)

	start := time.Now()
	resp, err := sendRequest[PaymentRequest, PaymentResponse](c, ctx, http.MethodPost, url, &body)
	c.metrics.ObserveBankDuration(time.Since(start))

	if err != nil {
		cause := FailureCause(err)
		c.metrics.ObserveBankFailure(cause)

		attrs := []any{"cause", cause, "url", url, "error", err}
		if bankErr, ok := IsBankError(err); ok {
			attrs = append(attrs, "status_code", bankErr.StatusCode)
		}
		c.logger.ErrorContext(ctx, "bank call failed", attrs...)
		return nil, false
	}

	return resp.toDomain(), true
}

func sendRequest[Req any, Resp any](c *HTTPBankClient, ctx context.Context, method, url string, reqBody *Req) (*Resp, error) {
	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("error marshalling json: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	if reqBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxLoggedBody))
		return nil, &BankError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	// a literal null body decodes into a nil pointer
	var bankResp *Resp
	if err := json.NewDecoder(resp.Body).Decode(&bankResp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if bankResp == nil {
		return nil, fmt.Errorf("%w: empty body", ErrMalformedResponse)
	}

	return bankResp, nil
}
