package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/govalues/decimal"
	"github.com/rgladkov/shoporder/internal/core/domain"
	"github.com/rgladkov/shoporder/internal/core/port"
	"go.uber.org/zap"
)

// defaultParcelWeightKG is used until per-product weights exist in the catalog.
var defaultParcelWeightKG = decimal.MustParse("1")

type Service struct {
	repo     port.Repository
	payment  port.PaymentProvider
	carrier  port.CarrierClient
	notifier port.Notifier
	logger   *zap.Logger
}

func NewService(repo port.Repository, payment port.PaymentProvider,
	carrier port.CarrierClient, notifier port.Notifier, logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:     repo,
		payment:  payment,
		carrier:  carrier,
		notifier: notifier,
		logger:   logger,
	}, nil
}

// GetOrder returns an order together with its payment. Orders and payments
// are created as a pair, but a missing payment row degrades to a nil payment
// rather than hiding the order.
func (s *Service) GetOrder(ctx context.Context, orderID string) (*domain.Order, *domain.Payment, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}

	payment, err := s.repo.ReadPaymentByOrder(ctx, orderID)
	if err != nil {
		if !errors.Is(err, domain.ErrDataNotFound) {
			return nil, nil, domain.ErrInternal
		}
		payment = nil
	}

	return order, payment, nil
}

// ConfirmPaymentWebhook handles the provider-pushed confirmation. The
// signature is checked over the exact bytes received before anything is
// parsed.
func (s *Service) ConfirmPaymentWebhook(ctx context.Context, body []byte, signature string) error {
	event, err := s.payment.ParseWebhookEvent(body, signature)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSignature) {
			s.logger.Warn("webhook rejected: bad signature")
			return err
		}
		s.logger.Error("webhook parse failed", zap.Error(err))
		return domain.ErrBadRequest
	}

	if event.Type != port.EventTypeCheckoutCompleted {
		s.logger.Debug("ignoring webhook event", zap.String("type", event.Type))
		return nil
	}
	if event.OrderID == "" {
		s.logger.Error("checkout event without order id in metadata")
		return domain.ErrBadRequest
	}

	return s.completePayment(ctx, event.OrderID, event.TransactionID)
}

// VerifyPayment handles the browser-triggered confirmation after the buyer
// returns from hosted checkout. The session must be bound to the order the
// caller claims, otherwise a confirmation for order A could be replayed
// against order B.
func (s *Service) VerifyPayment(ctx context.Context, sessionID, orderID string) (*port.VerifyResult, error) {
	if sessionID == "" || orderID == "" {
		return nil, domain.ErrBadRequest
	}

	session, err := s.payment.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		s.logger.Error("checkout session fetch failed",
			zap.String("session", sessionID), zap.Error(err))
		return nil, domain.ErrPaymentProviderError
	}

	if session.OrderID != orderID {
		s.logger.Warn("session bound to another order",
			zap.String("session", sessionID),
			zap.String("claimed_order", orderID),
			zap.String("bound_order", session.OrderID))
		return nil, domain.ErrSessionOrderMismatch
	}

	if !session.Paid() {
		return &port.VerifyResult{Paid: false}, nil
	}

	if err := s.completePayment(ctx, orderID, session.TransactionID); err != nil {
		return nil, err
	}

	return &port.VerifyResult{Paid: true, ReceiptURL: session.ReceiptURL}, nil
}

// completePayment is the single convergence point for both confirmation
// paths: mark the payment COMPLETED with the provider's transaction id and
// advance the order to PAID, all inside one repository transaction. A payment
// that is already COMPLETED makes the whole call a no-op, so page reloads and
// the webhook/verify race are safe. The notification fires only on the first
// application.
func (s *Service) completePayment(ctx context.Context, orderID, transactionID string) error {
	applied := false

	order, err := s.repo.UpdateOrderPayment(ctx, orderID,
		func(o *domain.Order, p *domain.Payment) error {
			if p.Completed() {
				return nil
			}
			p.Status = domain.PaymentStatusCompleted
			p.TransactionID = transactionID
			if domain.CanTransition(o.Status, domain.OrderStatusPaid) {
				o.Status = domain.OrderStatusPaid
			}
			applied = true
			return nil
		})
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			// Checkout-session creation owns creating the rows; their
			// absence is an upstream invariant violation.
			s.logger.Error("payment confirmation for unknown order",
				zap.String("order", orderID))
			return err
		}
		s.logger.Error("payment completion failed",
			zap.String("order", orderID), zap.Error(err))
		return domain.ErrInternal
	}

	if !applied {
		s.logger.Debug("payment already completed, no-op",
			zap.String("order", orderID))
		return nil
	}

	s.logger.Info("payment completed",
		zap.String("order", orderID),
		zap.String("transaction", transactionID))

	if err := s.notifier.PaymentConfirmed(ctx, order); err != nil {
		// Best effort only. Never surfaced, never rolls back the transition.
		s.logger.Error("confirmation email failed",
			zap.String("order", orderID), zap.Error(err))
	}

	return nil
}

// RegisterShipment creates a carrier shipment for a paid order and stores the
// returned carrier identifiers. The order keeps its status when the carrier
// call fails.
func (s *Service) RegisterShipment(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status != domain.OrderStatusPaid && order.Status != domain.OrderStatusProcessing {
		return nil, domain.ErrOrderNotShippable
	}
	if order.HasShipment() {
		return nil, domain.ErrShipmentExists
	}

	shipment, err := s.carrier.CreateShipment(ctx, shipmentRequest(order))
	if err != nil {
		s.logger.Error("carrier shipment registration failed",
			zap.String("order", orderID), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", domain.ErrCarrierUnavailable, err)
	}

	// Re-check under the row lock: a concurrent registration between the
	// read above and this write must not produce a second shipment.
	updated, err := s.repo.UpdateOrderShipment(ctx, orderID, func(o *domain.Order) error {
		if o.HasShipment() {
			return domain.ErrShipmentExists
		}
		if o.Status != domain.OrderStatusPaid && o.Status != domain.OrderStatusProcessing {
			return domain.ErrOrderNotShippable
		}

		o.CarrierOrderID = shipment.CarrierOrderID
		o.CarrierStatus = shipment.RawStatus
		o.CarrierWaybillNumber = shipment.WaybillNumber
		o.CarrierTrackingURL = shipment.TrackingURL
		if domain.CanTransition(o.Status, domain.OrderStatusProcessing) {
			o.Status = domain.OrderStatusProcessing
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrShipmentExists) ||
			errors.Is(err, domain.ErrOrderNotShippable) ||
			errors.Is(err, domain.ErrDataNotFound) {
			return nil, err
		}
		s.logger.Error("storing shipment failed",
			zap.String("order", orderID), zap.Error(err))
		return nil, domain.ErrInternal
	}

	s.logger.Info("shipment registered",
		zap.String("order", orderID),
		zap.String("carrier_order", shipment.CarrierOrderID),
		zap.String("waybill", shipment.WaybillNumber))

	return updated, nil
}

func shipmentRequest(order *domain.Order) *port.ShipmentRequest {
	desc := fmt.Sprintf("order %s (%d items)", order.ID, len(order.Items))
	return &port.ShipmentRequest{
		Reference: order.ID,
		Service:   "standard",
		Parcel: port.Parcel{
			Description:        desc,
			WeightKG:           defaultParcelWeightKG,
			DeclaredValueCents: order.PricePaidInCents,
		},
		Pickup:   order.BillingAddress,
		Delivery: order.ShippingAddress,
	}
}

// SyncShipments polls the carrier for every order with an open shipment and
// maps the carrier status into the local vocabulary. Each order is handled
// independently: one failed poll is recorded and the batch moves on.
func (s *Service) SyncShipments(ctx context.Context) ([]port.SyncResult, error) {
	orders, err := s.repo.ListOpenShipments(ctx)
	if err != nil {
		s.logger.Error("listing open shipments failed", zap.Error(err))
		return nil, domain.ErrInternal
	}

	results := make([]port.SyncResult, 0, len(orders))
	for _, order := range orders {
		results = append(results, s.syncOne(ctx, order))
	}
	return results, nil
}

func (s *Service) syncOne(ctx context.Context, order *domain.Order) port.SyncResult {
	state, err := s.carrier.ShipmentState(ctx, order.CarrierOrderID)
	if err != nil {
		s.logger.Error("carrier status poll failed",
			zap.String("order", order.ID),
			zap.String("carrier_order", order.CarrierOrderID),
			zap.Error(err))
		return port.SyncResult{OrderID: order.ID, Err: fmt.Errorf("%w: %w", domain.ErrCarrierUnavailable, err)}
	}

	// The transition check runs inside the repository transaction, against
	// the locked row. The order listed at the start of the batch may have
	// advanced since; deciding on the stored status keeps the progression
	// forward-only under overlapping sync runs.
	updated, err := s.repo.UpdateOrderShipment(ctx, order.ID, func(o *domain.Order) error {
		// Raw status and late-arriving waybill/tracking fields are written
		// back even when the mapped local status does not change.
		o.CarrierStatus = state.RawStatus
		if state.WaybillNumber != "" {
			o.CarrierWaybillNumber = state.WaybillNumber
		}
		if state.TrackingURL != "" {
			o.CarrierTrackingURL = state.TrackingURL
		}

		if mapped, ok := domain.StatusFromCarrier(state.RawStatus); ok {
			if domain.CanTransition(o.Status, mapped) {
				o.Status = mapped
			}
		} else {
			s.logger.Warn("unrecognized carrier status",
				zap.String("order", o.ID),
				zap.String("carrier_status", state.RawStatus))
		}
		return nil
	})
	if err != nil {
		s.logger.Error("storing synced shipment failed",
			zap.String("order", order.ID), zap.Error(err))
		return port.SyncResult{OrderID: order.ID, Err: err}
	}

	return port.SyncResult{
		OrderID:   order.ID,
		RawStatus: state.RawStatus,
		Status:    updated.Status,
	}
}

// ShippingLabel fetches and decodes the waybill document for an order's
// shipment.
func (s *Service) ShippingLabel(ctx context.Context, orderID string) ([]byte, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.HasShipment() {
		return nil, domain.ErrShipmentNotFound
	}

	label, err := s.carrier.ShippingLabel(ctx, order.CarrierOrderID)
	if err != nil {
		s.logger.Error("label fetch failed",
			zap.String("order", orderID), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", domain.ErrCarrierUnavailable, err)
	}
	return label, nil
}
