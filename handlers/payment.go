package handlers

import (
	"net/http"

	"github.com/Souvikgooooo/ThrivePro/middleware"
	paymentSvc "github.com/Souvikgooooo/ThrivePro/services/payment"
	"github.com/Souvikgooooo/ThrivePro/utils"

	"github.com/gin-gonic/gin"
)

// PaymentHandler exposes payment reconciliation for completed requests.
type PaymentHandler struct {
	Service paymentSvc.PaymentService
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(svc paymentSvc.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: svc}
}

// CreateIntent creates (or returns) the payment intent for a completed request.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	info, err := h.Service.CreateIntent(c.Param("id"), c.GetString(middleware.CtxActorID))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "paymentIntent", info)
}

// ConfirmPayment verifies the intent succeeded and moves the request to
// PaymentCompleted.
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	req, err := h.Service.Confirm(c.Param("id"), c.GetString(middleware.CtxActorID))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "serviceRequest", req)
}
