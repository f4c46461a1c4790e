package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rgladkov/shoporder/internal/adapter/config"
	"github.com/rgladkov/shoporder/internal/core/domain"
	"github.com/rgladkov/shoporder/internal/core/port"
	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

// Client talks to the payment provider. Credentials are re-read from the
// config provider on every call so configuration reloads take effect without
// a restart.
type Client struct {
	conf   func() *config.Payment
	http   *http.Client
	logger *zap.Logger
}

func NewClient(conf func() *config.Payment, log *zap.Logger) (*Client, error) {
	return &Client{
		conf:   conf,
		http:   &http.Client{Timeout: requestTimeout},
		logger: log,
	}, nil
}

// webhookEnvelope mirrors the provider's event wire format.
type webhookEnvelope struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID            string            `json:"id"`
			PaymentIntent string            `json:"payment_intent"`
			Metadata      map[string]string `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

// ParseWebhookEvent verifies the signature over the exact bytes received,
// then parses the event. Re-serializing before verification would break
// payloads whose JSON is semantically equal but byte-different, so the body
// is kept untouched until the comparison is done.
func (c *Client) ParseWebhookEvent(body []byte, signature string) (*port.WebhookEvent, error) {
	secret := config.Sanitize(c.conf().WebhookSecret)
	if secret == "" {
		return nil, fmt.Errorf("webhook secret is not configured")
	}

	if !verifySignature(secret, body, signature) {
		return nil, domain.ErrInvalidSignature
	}

	var envelope webhookEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("error decoding webhook body: %w", err)
	}

	return &port.WebhookEvent{
		Type:          envelope.Type,
		OrderID:       envelope.Data.Object.Metadata["order_id"],
		TransactionID: envelope.Data.Object.PaymentIntent,
	}, nil
}

func verifySignature(secret string, body []byte, signature string) bool {
	received, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)

	return hmac.Equal(received, mac.Sum(nil))
}

// Sign computes the signature the provider attaches to webhook deliveries.
// Shared with tests and the provider simulator.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

type sessionResponse struct {
	ID            string            `json:"id"`
	Status        string            `json:"status"`
	PaymentStatus string            `json:"payment_status"`
	PaymentIntent string            `json:"payment_intent"`
	ReceiptURL    string            `json:"receipt_url"`
	Metadata      map[string]string `json:"metadata"`
}

func (c *Client) GetCheckoutSession(ctx context.Context, sessionID string) (*port.CheckoutSession, error) {
	conf := c.conf()

	requestStr := "http://" + conf.HostString + "/v1/checkout/sessions/" + sessionID
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestStr, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("error on %s : %w", requestStr, err)
	}
	req.Header.Set("Authorization", "Bearer "+config.Sanitize(conf.APIKey))

	c.logger.Debug("fetching checkout session", zap.String("session", sessionID))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request error %s : %w", requestStr, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrDataNotFound
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("unexpected status fetching session",
			zap.String("session", sessionID), zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("bad response %v for request %s", resp.StatusCode, requestStr)
	}

	var result sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("error on response decode: %w", err)
	}

	return &port.CheckoutSession{
		ID:            result.ID,
		OrderID:       result.Metadata["order_id"],
		TransactionID: result.PaymentIntent,
		PaymentStatus: result.PaymentStatus,
		SessionStatus: result.Status,
		ReceiptURL:    result.ReceiptURL,
	}, nil
}
