package carrier

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/govalues/decimal"
	"github.com/rgladkov/shoporder/internal/adapter/config"
	"github.com/rgladkov/shoporder/internal/core/domain"
	"github.com/rgladkov/shoporder/internal/core/port"
	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

// signatureTTL is the validity window for a request signature. Regenerated
// per request, never cached.
const signatureTTL = 5 * time.Minute

const (
	routeCreateOrder = "orders/create"
	routeOrderStatus = "orders/status"
	routeWaybill     = "orders/waybill"
)

// Client implements the carrier's signed form-transport protocol: the JSON
// body travels as a single urlencoded field next to app_id, expires and
// signature.
type Client struct {
	conf   func() *config.Carrier
	http   *http.Client
	logger *zap.Logger
}

func NewClient(conf func() *config.Carrier, log *zap.Logger) (*Client, error) {
	return &Client{
		conf:   conf,
		http:   &http.Client{Timeout: requestTimeout},
		logger: log,
	}, nil
}

// Sign computes the request signature over appId:route:jsonBody:expires with
// the shared secret.
func Sign(secret, appID, route, body string, expires int64) string {
	message := appID + ":" + route + ":" + body + ":" + strconv.FormatInt(expires, 10)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}

// envelope is the carrier's uniform response wrapper.
type envelope struct {
	Status   string          `json:"status"`
	Message  string          `json:"message"`
	Response json.RawMessage `json:"response"`
}

func (c *Client) call(ctx context.Context, route string, payload any, result any) error {
	conf := c.conf()
	appID := config.Sanitize(conf.AppID)
	secret := config.Sanitize(conf.Secret)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error encoding carrier request: %w", err)
	}

	expires := time.Now().Add(signatureTTL).Unix()

	form := url.Values{}
	form.Set("app_id", appID)
	form.Set("expires", strconv.FormatInt(expires, 10))
	form.Set("signature", Sign(secret, appID, route, string(body), expires))
	form.Set("data", string(body))

	requestStr := "http://" + config.Sanitize(conf.HostString) + "/" + route
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestStr,
		strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("error on %s : %w", requestStr, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	c.logger.Debug("carrier request", zap.String("route", route))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request error %s : %w", requestStr, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("unexpected carrier response status",
			zap.String("route", route), zap.Int("status", resp.StatusCode))
		return fmt.Errorf("bad response %v for request %s", resp.StatusCode, requestStr)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("error on response decode: %w", err)
	}
	if env.Status != "success" {
		return fmt.Errorf("carrier error on %s: %s", route, env.Message)
	}

	if result != nil {
		if err := json.Unmarshal(env.Response, result); err != nil {
			return fmt.Errorf("error on response decode: %w", err)
		}
	}
	return nil
}

type addressPayload struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

func toAddressPayload(a domain.Address) addressPayload {
	return addressPayload{
		Name:       a.Name,
		Phone:      a.Phone,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		Region:     a.Region,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

type createOrderPayload struct {
	Reference          string          `json:"reference"`
	Service            string          `json:"service"`
	Description        string          `json:"description"`
	WeightKG           decimal.Decimal `json:"weight_kg"`
	DeclaredValueCents int64           `json:"declared_value_cents"`
	Pickup             addressPayload  `json:"pickup"`
	Delivery           addressPayload  `json:"delivery"`
}

type createOrderResponse struct {
	OrderID       string `json:"order_id"`
	WaybillNumber string `json:"waybill_number"`
	TrackingURL   string `json:"tracking_url"`
	Status        string `json:"status"`
}

func (c *Client) CreateShipment(ctx context.Context, req *port.ShipmentRequest) (*port.Shipment, error) {
	payload := createOrderPayload{
		Reference:          req.Reference,
		Service:            req.Service,
		Description:        req.Parcel.Description,
		WeightKG:           req.Parcel.WeightKG,
		DeclaredValueCents: req.Parcel.DeclaredValueCents,
		Pickup:             toAddressPayload(req.Pickup),
		Delivery:           toAddressPayload(req.Delivery),
	}

	var result createOrderResponse
	if err := c.call(ctx, routeCreateOrder, payload, &result); err != nil {
		return nil, err
	}
	if result.OrderID == "" {
		return nil, fmt.Errorf("carrier returned no order id")
	}

	return &port.Shipment{
		CarrierOrderID: result.OrderID,
		WaybillNumber:  result.WaybillNumber,
		TrackingURL:    result.TrackingURL,
		RawStatus:      result.Status,
	}, nil
}

type statusPayload struct {
	OrderID string `json:"order_id"`
}

type statusResponse struct {
	Status        string `json:"status"`
	WaybillNumber string `json:"waybill_number"`
	TrackingURL   string `json:"tracking_url"`
}

func (c *Client) ShipmentState(ctx context.Context, carrierOrderID string) (*port.ShipmentState, error) {
	var result statusResponse
	if err := c.call(ctx, routeOrderStatus, statusPayload{OrderID: carrierOrderID}, &result); err != nil {
		return nil, err
	}

	return &port.ShipmentState{
		RawStatus:     result.Status,
		WaybillNumber: result.WaybillNumber,
		TrackingURL:   result.TrackingURL,
	}, nil
}

type waybillResponse struct {
	LabelBase64 string `json:"label_base64"`
}

// ShippingLabel fetches the waybill document. The carrier ships it
// base64-encoded inside the response envelope.
func (c *Client) ShippingLabel(ctx context.Context, carrierOrderID string) ([]byte, error) {
	var result waybillResponse
	if err := c.call(ctx, routeWaybill, statusPayload{OrderID: carrierOrderID}, &result); err != nil {
		return nil, err
	}

	label, err := base64.StdEncoding.DecodeString(result.LabelBase64)
	if err != nil {
		return nil, fmt.Errorf("error decoding label: %w", err)
	}
	return label, nil
}
