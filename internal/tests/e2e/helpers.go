package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/interfaces/rest"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/tests/e2e/testdata"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// bankSimulator answers like the acquiring bank's test double: odd last
// digit authorizes, even declines, zero is a 503.
type bankSimulator struct {
	mu       sync.Mutex
	received []map[string]any
}

func newBankSimulator(t *testing.T) (*bankSimulator, *httptest.Server) {
	sim := &bankSimulator{}
	srv := httptest.NewServer(sim)
	t.Cleanup(srv.Close)
	return sim, srv
}

func (b *bankSimulator) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || r.URL.Path != "/payments" {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	b.received = append(b.received, body)
	b.mu.Unlock()

	card, _ := body["card_number"].(string)
	if card == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	last := card[len(card)-1]
	switch {
	case last == '0':
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	case (last-'0')%2 == 1:
		writeJSON(w, map[string]any{"authorized": true, "authorization_code": uuid.NewString()})
	default:
		writeJSON(w, map[string]any{"authorized": false, "authorization_code": ""})
	}
}

func (b *bankSimulator) Received() []map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]map[string]any(nil), b.received...)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// TestClient wraps HTTP calls to gateway
type TestClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func paymentRequestFor(card testdata.TestCard, currency string, amount int64) rest.PaymentRequest {
	return rest.PaymentRequest{
		CardNumber:  card.CardNumber,
		ExpiryMonth: int32(card.ExpiryMonth),
		ExpiryYear:  int32(card.ExpiryYear),
		Currency:    currency,
		Amount:      amount,
		CVV:         card.CVV,
	}
}

// ProcessPayment posts a payment and decodes the record from any status.
func (c *TestClient) ProcessPayment(t *testing.T, req rest.PaymentRequest) (int, rest.PaymentResponse) {
	t.Helper()

	body, err := json.Marshal(req)
	require.NoError(t, err)

	status, raw := c.do(t, http.MethodPost, "/payment", bytes.NewReader(body))

	var payment rest.PaymentResponse
	require.NoError(t, json.Unmarshal(raw, &payment), string(raw))
	return status, payment
}

func (c *TestClient) PostRaw(t *testing.T, body string) (int, []byte) {
	t.Helper()
	return c.do(t, http.MethodPost, "/payment", strings.NewReader(body))
}

// GetPayment returns the status code with either the record or the error
// envelope, whichever the gateway sent.
func (c *TestClient) GetPayment(t *testing.T, id string) (int, *rest.PaymentResponse, *rest.ErrorResponse) {
	t.Helper()

	status, raw := c.do(t, http.MethodGet, "/payment/"+id, nil)

	if status != http.StatusOK {
		var errResp rest.ErrorResponse
		require.NoError(t, json.Unmarshal(raw, &errResp), string(raw))
		return status, nil, &errResp
	}

	var payment rest.PaymentResponse
	require.NoError(t, json.Unmarshal(raw, &payment), string(raw))
	return status, &payment, nil
}

func (c *TestClient) Get(t *testing.T, path string) (int, []byte) {
	t.Helper()
	return c.do(t, http.MethodGet, path, nil)
}

func (c *TestClient) do(t *testing.T, method, path string, body io.Reader) (int, []byte) {
	t.Helper()

	httpReq, err := http.NewRequest(method, c.baseURL+path, body)
	require.NoError(t, err)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, raw
}
