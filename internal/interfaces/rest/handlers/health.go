package handlers

import (
	"net/http"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/interfaces/rest"
)

// Health godoc
// @Summary  Liveness probe
// @Tags     ops
// @Produce  json
// @Success  200  {object}  rest.HealthResponse
// @Router   /healthz [get]
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	rest.RespondJSON(w, r, http.StatusOK, rest.HealthResponse{Status: "ok"})
}
