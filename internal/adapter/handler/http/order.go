package http

import (
	"github.com/gin-gonic/gin"
	"github.com/rgladkov/shoporder/internal/core/port"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type paymentResp struct {
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id,omitempty"`
	AmountCents   int64  `json:"amount_cents"`
}

type orderDetailResp struct {
	OrderResp
	Payment *paymentResp `json:"payment,omitempty"`
}

// GetOrder serves the admin order detail, shipment and payment state included.
func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	orderID := ctx.Param("id")

	order, payment, err := oh.service.GetOrder(ctx, orderID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	resp := orderDetailResp{
		OrderResp: OrderResp{
			ID:                   order.ID,
			Status:               string(order.Status),
			PricePaidInCents:     order.PricePaidInCents,
			CarrierOrderID:       order.CarrierOrderID,
			CarrierStatus:        order.CarrierStatus,
			CarrierWaybillNumber: order.CarrierWaybillNumber,
			CarrierTrackingURL:   order.CarrierTrackingURL,
			CreatedAt:            order.CreatedAt,
		},
	}
	if payment != nil {
		resp.Payment = &paymentResp{
			Status:        string(payment.Status),
			TransactionID: payment.TransactionID,
			AmountCents:   payment.AmountCents,
		}
	}

	oh.handleSuccess(ctx, resp)
}
