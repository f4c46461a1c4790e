package port

import (
	"context"

	"github.com/govalues/decimal"
	"github.com/rgladkov/shoporder/internal/core/domain"
)

type Parcel struct {
	Description        string
	WeightKG           decimal.Decimal
	DeclaredValueCents int64
}

type ShipmentRequest struct {
	Reference string
	Service   string
	Parcel    Parcel
	Pickup    domain.Address
	Delivery  domain.Address
}

// Shipment is the carrier's record of a registered shipment.
type Shipment struct {
	CarrierOrderID string
	WaybillNumber  string
	TrackingURL    string
	RawStatus      string
}

// ShipmentState is a point-in-time carrier status snapshot for polling.
type ShipmentState struct {
	RawStatus     string
	WaybillNumber string
	TrackingURL   string
}

//go:generate mockgen -source=carrier.go -destination=mock/carrier.go -package=mock
type CarrierClient interface {
	CreateShipment(ctx context.Context, req *ShipmentRequest) (*Shipment, error)
	ShipmentState(ctx context.Context, carrierOrderID string) (*ShipmentState, error)
	// ShippingLabel returns the decoded label document bytes.
	ShippingLabel(ctx context.Context, carrierOrderID string) ([]byte, error)
}
