package carrier_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/govalues/decimal"
	"github.com/rgladkov/shoporder/internal/adapter/client/carrier"
	"github.com/rgladkov/shoporder/internal/adapter/config"
	"github.com/rgladkov/shoporder/internal/core/domain"
	"github.com/rgladkov/shoporder/internal/core/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "carrier-secret"
const testAppID = "app-42"

func newTestClient(t *testing.T, handler http.HandlerFunc) (*carrier.Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	// Quoted/padded credentials on purpose: the client must sanitize them.
	conf := &config.Carrier{
		HostString: strings.TrimPrefix(srv.URL, "http://"),
		AppID:      `"` + testAppID + `"`,
		Secret:     " " + testSecret + " ",
	}

	logger, _ := zap.NewProduction()
	client, err := carrier.NewClient(func() *config.Carrier { return conf }, logger)
	require.NoError(t, err)

	return client, srv
}

// verifyRequest recomputes the signature server-side the way the carrier
// does and answers with the given envelope.
func verifyRequest(t *testing.T, route string, response string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())

		assert.Equal(t, "/"+route, r.URL.Path)
		assert.Equal(t, testAppID, r.PostFormValue("app_id"))

		expires, err := strconv.ParseInt(r.PostFormValue("expires"), 10, 64)
		require.NoError(t, err)
		assert.Greater(t, expires, time.Now().Unix(), "signature already expired")
		assert.LessOrEqual(t, expires, time.Now().Add(5*time.Minute).Unix())

		body := r.PostFormValue("data")
		expected := carrier.Sign(testSecret, testAppID, route, body, expires)
		assert.Equal(t, expected, r.PostFormValue("signature"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(response))
	}
}

func TestClient_CreateShipment(t *testing.T) {
	client, _ := newTestClient(t, verifyRequest(t, "orders/create",
		`{"status":"success","message":"ok","response":{"order_id":"CAR-7","waybill_number":"WB-7","tracking_url":"https://t.example/WB-7","status":"new"}}`))

	weight, _ := decimal.New(15, 1)
	shipment, err := client.CreateShipment(context.Background(), &port.ShipmentRequest{
		Reference: "ord_7",
		Service:   "standard",
		Parcel: port.Parcel{
			Description:        "order ord_7 (2 items)",
			WeightKG:           weight,
			DeclaredValueCents: 24900,
		},
		Pickup:   domain.Address{Name: "Warehouse", Line1: "Dock 3", City: "Riga", PostalCode: "LV-1010", Country: "LV"},
		Delivery: domain.Address{Name: "Buyer", Line1: "Main st 1", City: "Riga", PostalCode: "LV-1011", Country: "LV"},
	})

	require.NoError(t, err)
	assert.Equal(t, "CAR-7", shipment.CarrierOrderID)
	assert.Equal(t, "WB-7", shipment.WaybillNumber)
	assert.Equal(t, "https://t.example/WB-7", shipment.TrackingURL)
	assert.Equal(t, "new", shipment.RawStatus)
}

func TestClient_ShipmentState(t *testing.T) {
	client, _ := newTestClient(t, verifyRequest(t, "orders/status",
		`{"status":"success","message":"ok","response":{"status":"AWAITING_DELIVERY","waybill_number":"WB-7"}}`))

	state, err := client.ShipmentState(context.Background(), "CAR-7")

	require.NoError(t, err)
	assert.Equal(t, "AWAITING_DELIVERY", state.RawStatus)
	assert.Equal(t, "WB-7", state.WaybillNumber)
}

func TestClient_ShippingLabel(t *testing.T) {
	label := []byte("%PDF-1.4 fake label")
	encoded := base64.StdEncoding.EncodeToString(label)

	client, _ := newTestClient(t, verifyRequest(t, "orders/waybill",
		`{"status":"success","message":"ok","response":{"label_base64":"`+encoded+`"}}`))

	got, err := client.ShippingLabel(context.Background(), "CAR-7")

	require.NoError(t, err)
	assert.Equal(t, label, got)
}

func TestClient_CarrierError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  "error",
			"message": "unknown order",
		})
	})

	_, err := client.ShipmentState(context.Background(), "CAR-NOPE")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown order")
}

func TestSign_Deterministic(t *testing.T) {
	a := carrier.Sign("secret", "app", "orders/create", `{"x":1}`, 1700000000)
	b := carrier.Sign("secret", "app", "orders/create", `{"x":1}`, 1700000000)
	assert.Equal(t, a, b)

	// Any component change must change the signature.
	assert.NotEqual(t, a, carrier.Sign("secret2", "app", "orders/create", `{"x":1}`, 1700000000))
	assert.NotEqual(t, a, carrier.Sign("secret", "app", "orders/status", `{"x":1}`, 1700000000))
	assert.NotEqual(t, a, carrier.Sign("secret", "app", "orders/create", `{"x":2}`, 1700000000))
	assert.NotEqual(t, a, carrier.Sign("secret", "app", "orders/create", `{"x":1}`, 1700000001))
}
