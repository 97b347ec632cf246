package handlers

import (
	"net/http"

	"lawbandhu-backend/service"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for payment history
type PaymentHandler struct {
	payments *service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(payments *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// ListPayments handles GET /api/payments?status=
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	history, err := h.payments.List(c.Request.Context(), currentUser(c), c.Query("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, history)
}
