package middleware

import (
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/application"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/interfaces/rest"
	"golang.org/x/time/rate"
)

// RateLimit sheds load above rps with a 429 envelope. The bucket is shared
// by every caller.
func RateLimit(rps float64, burst int, logger *slog.Logger) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				logger.WarnContext(r.Context(), "too many requests",
					"method", r.Method,
					"path", r.URL.Path,
				)
				rest.WriteError(w, application.NewTooManyRequestsError(), logger)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
