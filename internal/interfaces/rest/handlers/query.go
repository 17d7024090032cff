package handlers

import (
	"net/http"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/application"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/interfaces/rest"
	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GetPaymentByID godoc
// @Summary      Retrieve a processed payment
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Payment ID"  format(uuid)
// @Success      200  {object}  rest.PaymentResponse
// @Failure      400  {object}  rest.ErrorResponse
// @Failure      404  {object}  rest.ErrorResponse
// @Router       /payment/{id} [get]
func (h *Handlers) GetPaymentByID(w http.ResponseWriter, r *http.Request) {
	var paymentID openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &paymentID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		rest.WriteError(w, application.NewInvalidInputError("Payment id must be a UUID", err), h.logger)
		return
	}

	payment, err := h.queryService.GetPaymentByID(r.Context(), paymentID)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.RespondJSON(w, r, http.StatusOK, rest.ToPaymentResponse(payment))
}
