package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/application"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/interfaces/rest"
)

// Timeout bounds how long a caller waits for a response. Work already handed
// to the bank is not cancelled by it.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	_, envelope := rest.BuildErrorResponse(application.NewTimeoutError())
	body, _ := json.Marshal(envelope)

	return func(next http.Handler) http.Handler {
		timeoutHandler := http.TimeoutHandler(next, timeout, string(body))

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			w.Header().Set("Content-Type", "application/json")
			timeoutHandler.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
