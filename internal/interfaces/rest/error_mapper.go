package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/application"
)

type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code" example:"PAYMENT_NOT_FOUND"`
	Message string `json:"message"`
}

// BuildErrorResponse maps an error to its status code and envelope.
func BuildErrorResponse(err error) (int, ErrorResponse) {
	return application.ToHTTPStatus(err), ErrorResponse{
		Success: false,
		Error: ErrorDetail{
			Code:    application.ToErrorCode(err),
			Message: application.ToErrorMessage(err),
		},
	}
}

// WriteError maps application errors to HTTP responses. Server-side
// failures are logged with their cause; the caller only sees the envelope.
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	statusCode, response := BuildErrorResponse(err)

	if statusCode >= http.StatusInternalServerError && logger != nil {
		logger.Error("request failed",
			"code", response.Error.Code,
			"error", err,
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}
