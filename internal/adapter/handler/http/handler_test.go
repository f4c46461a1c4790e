package http_test

import (
	"bytes"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/rgladkov/shoporder/internal/adapter/config"
	handler "github.com/rgladkov/shoporder/internal/adapter/handler/http"
	"github.com/rgladkov/shoporder/internal/core/domain"
	"github.com/rgladkov/shoporder/internal/core/port"
	"github.com/rgladkov/shoporder/internal/core/port/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T, svc port.Service, ts port.TokenService) *handler.Router {
	t.Helper()

	gin.SetMode(gin.TestMode)
	logger, _ := zap.NewProduction()

	paymentHandler, err := handler.NewPaymentHandler(svc, logger)
	require.NoError(t, err)
	orderHandler, err := handler.NewOrderHandler(svc, logger)
	require.NoError(t, err)
	shipmentHandler, err := handler.NewShipmentHandler(svc, logger)
	require.NoError(t, err)

	r, err := handler.NewRouter(&config.HTTP{}, ts, paymentHandler, orderHandler, shipmentHandler)
	require.NoError(t, err)

	return r
}

func TestWebhook_RawBodyReachesService(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	svc := mock.NewMockService(mockCtrl)
	body := []byte(`{"type":"checkout.session.completed"}`)
	svc.EXPECT().ConfirmPaymentWebhook(gomock.Any(), body, "sig-value").Return(nil)

	r := newTestRouter(t, svc, mock.NewMockTokenService(mockCtrl))

	req := httptest.NewRequest(nethttp.MethodPost, "/api/payment/webhook", bytes.NewReader(body))
	req.Header.Set("X-Payment-Signature", "sig-value")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, nethttp.StatusOK, w.Code)
}

func TestWebhook_MissingSignature(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	svc := mock.NewMockService(mockCtrl)
	r := newTestRouter(t, svc, mock.NewMockTokenService(mockCtrl))

	req := httptest.NewRequest(nethttp.MethodPost, "/api/payment/webhook",
		bytes.NewReader([]byte(`{}`)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, nethttp.StatusUnauthorized, w.Code)
}

func TestWebhook_InvalidSignature(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	svc := mock.NewMockService(mockCtrl)
	svc.EXPECT().ConfirmPaymentWebhook(gomock.Any(), gomock.Any(), "bogus").
		Return(domain.ErrInvalidSignature)

	r := newTestRouter(t, svc, mock.NewMockTokenService(mockCtrl))

	req := httptest.NewRequest(nethttp.MethodPost, "/api/payment/webhook",
		bytes.NewReader([]byte(`{}`)))
	req.Header.Set("X-Payment-Signature", "bogus")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, nethttp.StatusUnauthorized, w.Code)
}

func TestVerify_Paid(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	svc := mock.NewMockService(mockCtrl)
	svc.EXPECT().VerifyPayment(gomock.Any(), "cs_1", "ord_1").
		Return(&port.VerifyResult{Paid: true, ReceiptURL: "https://pay.example/r/1"}, nil)

	r := newTestRouter(t, svc, mock.NewMockTokenService(mockCtrl))

	req := httptest.NewRequest(nethttp.MethodPost, "/api/payment/verify",
		bytes.NewReader([]byte(`{"session_id":"cs_1","order_id":"ord_1"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, nethttp.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, true, resp["paid"])
}

func TestVerify_StillPending(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	svc := mock.NewMockService(mockCtrl)
	svc.EXPECT().VerifyPayment(gomock.Any(), "cs_1", "ord_1").
		Return(&port.VerifyResult{Paid: false}, nil)

	r := newTestRouter(t, svc, mock.NewMockTokenService(mockCtrl))

	req := httptest.NewRequest(nethttp.MethodPost, "/api/payment/verify",
		bytes.NewReader([]byte(`{"session_id":"cs_1","order_id":"ord_1"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, nethttp.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, false, resp["paid"])
}

func TestVerify_SessionOrderMismatch(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	svc := mock.NewMockService(mockCtrl)
	svc.EXPECT().VerifyPayment(gomock.Any(), "cs_1", "ord_B").
		Return(nil, domain.ErrSessionOrderMismatch)

	r := newTestRouter(t, svc, mock.NewMockTokenService(mockCtrl))

	req := httptest.NewRequest(nethttp.MethodPost, "/api/payment/verify",
		bytes.NewReader([]byte(`{"session_id":"cs_1","order_id":"ord_B"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, nethttp.StatusForbidden, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Contains(t, resp["message"], "ord_B")
}

func TestVerify_MissingFields(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	svc := mock.NewMockService(mockCtrl)
	r := newTestRouter(t, svc, mock.NewMockTokenService(mockCtrl))

	req := httptest.NewRequest(nethttp.MethodPost, "/api/payment/verify",
		bytes.NewReader([]byte(`{"session_id":"cs_1"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, nethttp.StatusBadRequest, w.Code)
}

func TestAdmin_RequiresToken(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	svc := mock.NewMockService(mockCtrl)
	r := newTestRouter(t, svc, mock.NewMockTokenService(mockCtrl))

	req := httptest.NewRequest(nethttp.MethodPost, "/api/admin/shipments/sync", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, nethttp.StatusUnauthorized, w.Code)
}

func TestAdmin_GetOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	svc := mock.NewMockService(mockCtrl)
	svc.EXPECT().GetOrder(gomock.Any(), "ord_1").
		Return(
			&domain.Order{
				ID:             "ord_1",
				Status:         domain.OrderStatusShipped,
				CarrierOrderID: "CAR-1",
			},
			&domain.Payment{
				OrderID:       "ord_1",
				Status:        domain.PaymentStatusCompleted,
				TransactionID: "pi_abc",
			},
			nil)

	ts := mock.NewMockTokenService(mockCtrl)
	ts.EXPECT().VerifyToken("admin-token").
		Return(&port.TokenPayload{Subject: "ops"}, nil)

	r := newTestRouter(t, svc, ts)

	req := httptest.NewRequest(nethttp.MethodGet, "/api/admin/orders/ord_1", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, nethttp.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SHIPPED", resp["status"])
	payment, ok := resp["payment"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "COMPLETED", payment["status"])
	assert.Equal(t, "pi_abc", payment["transaction_id"])
}

func TestAdmin_SyncShipments(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	svc := mock.NewMockService(mockCtrl)
	svc.EXPECT().SyncShipments(gomock.Any()).Return([]port.SyncResult{
		{OrderID: "ord_1", RawStatus: "delivered", Status: domain.OrderStatusDelivered},
		{OrderID: "ord_2", Err: domain.ErrCarrierUnavailable},
	}, nil)

	ts := mock.NewMockTokenService(mockCtrl)
	ts.EXPECT().VerifyToken("admin-token").
		Return(&port.TokenPayload{Subject: "ops"}, nil)

	r := newTestRouter(t, svc, ts)

	req := httptest.NewRequest(nethttp.MethodPost, "/api/admin/shipments/sync", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, nethttp.StatusOK, w.Code)

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, true, resp[0]["success"])
	assert.Equal(t, false, resp[1]["success"])
}
