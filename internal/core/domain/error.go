package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrInvalidSignature           = errors.New("webhook signature is invalid")
	ErrSessionOrderMismatch       = errors.New("checkout session is bound to another order")

	// * Business errors.
	ErrOrderNotShippable    = errors.New("order is not paid, shipment cannot be registered")
	ErrShipmentExists       = errors.New("order already has a registered shipment")
	ErrShipmentNotFound     = errors.New("order has no registered shipment")
	ErrCarrierUnavailable   = errors.New("carrier request failed")
	ErrPaymentProviderError = errors.New("payment provider request failed")
)
