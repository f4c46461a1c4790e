package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rgladkov/shoporder/internal/core/domain"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationType:   http.StatusUnauthorized,
	domain.ErrInvalidToken:               http.StatusUnauthorized,
	domain.ErrInvalidSignature:           http.StatusUnauthorized,
	domain.ErrSessionOrderMismatch:       http.StatusForbidden,

	domain.ErrBadRequest: http.StatusBadRequest,

	domain.ErrOrderNotShippable:    http.StatusUnprocessableEntity,
	domain.ErrShipmentExists:       http.StatusConflict,
	domain.ErrShipmentNotFound:     http.StatusNotFound,
	domain.ErrCarrierUnavailable:   http.StatusBadGateway,
	domain.ErrPaymentProviderError: http.StatusBadGateway,
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleValidationError sends an error response for some specific request validation error
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.Status(http.StatusBadRequest)
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode, ok := statusForError(err)
	if !ok {
		h.logger.Error("error processing request", zap.Error(err))
	}
	ctx.Status(statusCode)
}

// statusForError resolves an error to an HTTP status, unwrapping so wrapped
// sentinels still map.
func statusForError(err error) (int, bool) {
	for e, code := range errorStatusMap {
		if errors.Is(err, e) {
			return code, true
		}
	}
	return http.StatusInternalServerError, false
}

// handleSuccess sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(http.StatusOK, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}
