package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rgladkov/shoporder/internal/core/domain"
	"github.com/rgladkov/shoporder/internal/core/port"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	Handler
	service port.Service
}

func NewPaymentHandler(service port.Service, logger *zap.Logger) (*PaymentHandler, error) {
	return &PaymentHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

// Webhook accepts provider-pushed payment events. The body must stay raw:
// signature verification runs over the exact bytes received.
func (ph *PaymentHandler) Webhook(ctx *gin.Context) {
	body, err := ctx.GetRawData()
	if err != nil {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	signature := ctx.GetHeader(port.WebhookSignatureHeader)
	if signature == "" {
		ph.handleError(ctx, domain.ErrInvalidSignature)
		return
	}

	if err := ph.service.ConfirmPaymentWebhook(ctx, body, signature); err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccessWithStatus(ctx, nil, http.StatusOK)
}

type verifyRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	OrderID   string `json:"order_id" binding:"required"`
}

type verifyResponse struct {
	Success    bool   `json:"success"`
	Paid       bool   `json:"paid"`
	ReceiptURL string `json:"receipt_url,omitempty"`
	Message    string `json:"message,omitempty"`
}

// Verify is the browser-triggered confirmation called right after the buyer
// returns from hosted checkout. Paid=false is a legitimate still-pending
// answer, not an error.
func (ph *PaymentHandler) Verify(ctx *gin.Context) {
	var req verifyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	result, err := ph.service.VerifyPayment(ctx, req.SessionID, req.OrderID)
	if err != nil {
		statusCode, _ := statusForError(err)
		ctx.JSON(statusCode, verifyResponse{
			Success: false,
			Message: "payment verification failed, please contact support with order id " + req.OrderID,
		})
		return
	}

	ph.handleSuccess(ctx, verifyResponse{
		Success:    true,
		Paid:       result.Paid,
		ReceiptURL: result.ReceiptURL,
	})
}
