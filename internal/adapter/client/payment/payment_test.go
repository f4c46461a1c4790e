package payment_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rgladkov/shoporder/internal/adapter/client/payment"
	"github.com/rgladkov/shoporder/internal/adapter/config"
	"github.com/rgladkov/shoporder/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const webhookSecret = "whsec_test"

func newTestClient(t *testing.T, conf *config.Payment) *payment.Client {
	t.Helper()

	logger, _ := zap.NewProduction()
	client, err := payment.NewClient(func() *config.Payment { return conf }, logger)
	require.NoError(t, err)
	return client
}

func TestClient_ParseWebhookEvent(t *testing.T) {
	client := newTestClient(t, &config.Payment{WebhookSecret: webhookSecret})

	body := []byte(`{"type":"checkout.session.completed","data":{"object":{"id":"cs_1","payment_intent":"pi_abc","metadata":{"order_id":"ord_1"}}}}`)

	event, err := client.ParseWebhookEvent(body, payment.Sign(webhookSecret, body))

	require.NoError(t, err)
	assert.Equal(t, "checkout.session.completed", event.Type)
	assert.Equal(t, "ord_1", event.OrderID)
	assert.Equal(t, "pi_abc", event.TransactionID)
}

func TestClient_ParseWebhookEvent_AlteredByte(t *testing.T) {
	client := newTestClient(t, &config.Payment{WebhookSecret: webhookSecret})

	body := []byte(`{"type":"checkout.session.completed","data":{"object":{"id":"cs_1","payment_intent":"pi_abc","metadata":{"order_id":"ord_1"}}}}`)
	signature := payment.Sign(webhookSecret, body)

	// Semantically identical JSON, one byte different: extra space after the
	// first colon. Verification runs on bytes, so it must fail.
	altered := []byte(strings.Replace(string(body), `"type":`, `"type": `, 1))

	_, err := client.ParseWebhookEvent(altered, signature)
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestClient_ParseWebhookEvent_BadSignatures(t *testing.T) {
	client := newTestClient(t, &config.Payment{WebhookSecret: webhookSecret})
	body := []byte(`{"type":"checkout.session.completed"}`)

	tests := []struct {
		name      string
		signature string
	}{
		{"empty", ""},
		{"not hex", "zzzz"},
		{"wrong secret", payment.Sign("whsec_other", body)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := client.ParseWebhookEvent(body, test.signature)
			assert.ErrorIs(t, err, domain.ErrInvalidSignature)
		})
	}
}

func TestClient_GetCheckoutSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/checkout/sessions/cs_1", r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cs_1","status":"complete","payment_status":"paid","payment_intent":"pi_abc","receipt_url":"https://pay.example/r/1","metadata":{"order_id":"ord_1"}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, &config.Payment{
		HostString: strings.TrimPrefix(srv.URL, "http://"),
		APIKey:     `"sk_test"`,
	})

	session, err := client.GetCheckoutSession(context.Background(), "cs_1")

	require.NoError(t, err)
	assert.Equal(t, "ord_1", session.OrderID)
	assert.Equal(t, "pi_abc", session.TransactionID)
	assert.True(t, session.Paid())
	assert.Equal(t, "https://pay.example/r/1", session.ReceiptURL)
}

func TestClient_GetCheckoutSession_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := newTestClient(t, &config.Payment{
		HostString: strings.TrimPrefix(srv.URL, "http://"),
		APIKey:     "sk_test",
	})

	_, err := client.GetCheckoutSession(context.Background(), "cs_missing")
	assert.ErrorIs(t, err, domain.ErrDataNotFound)
}
