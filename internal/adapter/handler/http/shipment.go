package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rgladkov/shoporder/internal/core/port"
	"go.uber.org/zap"
)

type ShipmentHandler struct {
	Handler
	service port.Service
}

func NewShipmentHandler(service port.Service, logger *zap.Logger) (*ShipmentHandler, error) {
	return &ShipmentHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type OrderResp struct {
	ID                   string    `json:"id"`
	Status               string    `json:"status"`
	PricePaidInCents     int64     `json:"price_paid_in_cents"`
	CarrierOrderID       string    `json:"carrier_order_id,omitempty"`
	CarrierStatus        string    `json:"carrier_status,omitempty"`
	CarrierWaybillNumber string    `json:"carrier_waybill_number,omitempty"`
	CarrierTrackingURL   string    `json:"carrier_tracking_url,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

// RegisterShipment creates a carrier shipment for a paid order.
func (sh *ShipmentHandler) RegisterShipment(ctx *gin.Context) {
	orderID := ctx.Param("id")
	sh.logger.Info("shipment registration requested",
		zap.String("order", orderID),
		zap.String("admin", getAdminPayload(ctx).Subject))

	order, err := sh.service.RegisterShipment(ctx, orderID)
	if err != nil {
		sh.handleError(ctx, err)
		return
	}

	sh.handleSuccess(ctx, OrderResp{
		ID:                   order.ID,
		Status:               string(order.Status),
		PricePaidInCents:     order.PricePaidInCents,
		CarrierOrderID:       order.CarrierOrderID,
		CarrierStatus:        order.CarrierStatus,
		CarrierWaybillNumber: order.CarrierWaybillNumber,
		CarrierTrackingURL:   order.CarrierTrackingURL,
		CreatedAt:            order.CreatedAt,
	})
}

type syncItemResp struct {
	OrderID       string `json:"order_id"`
	Success       bool   `json:"success"`
	CarrierStatus string `json:"carrier_status,omitempty"`
	Status        string `json:"status,omitempty"`
	Error         string `json:"error,omitempty"`
}

// SyncShipments runs the batch carrier poll. Individual failures land in the
// per-order list; only a failure to even list orders is an error.
func (sh *ShipmentHandler) SyncShipments(ctx *gin.Context) {
	results, err := sh.service.SyncShipments(ctx)
	if err != nil {
		sh.handleError(ctx, err)
		return
	}

	items := make([]syncItemResp, 0, len(results))
	for _, r := range results {
		item := syncItemResp{
			OrderID:       r.OrderID,
			Success:       r.Err == nil,
			CarrierStatus: r.RawStatus,
			Status:        string(r.Status),
		}
		if r.Err != nil {
			item.Error = r.Err.Error()
		}
		items = append(items, item)
	}

	sh.handleSuccess(ctx, items)
}

// ShippingLabel serves the decoded waybill document.
func (sh *ShipmentHandler) ShippingLabel(ctx *gin.Context) {
	orderID := ctx.Param("id")

	label, err := sh.service.ShippingLabel(ctx, orderID)
	if err != nil {
		sh.handleError(ctx, err)
		return
	}

	ctx.Data(http.StatusOK, "application/pdf", label)
}
