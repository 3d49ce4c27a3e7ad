// Package gateway integrates with the Razorpay payment gateway: creating
// upgrade orders through the Orders API and verifying checkout callback
// signatures.
package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/resumekit/resumekit/internal/config"
	"github.com/resumekit/resumekit/models"
)

// Upgrade price: 9900 paise (99 INR), single fixed plan.
const (
	orderAmount   = 9900
	orderCurrency = "INR"
)

// ErrGatewayUnavailable is returned when the Orders API call fails or the
// gateway responds with a non-2xx status.
var ErrGatewayUnavailable = errors.New("payment gateway unavailable")

// Gateway creates payment orders and verifies checkout signatures.
type Gateway interface {
	// CreateOrder submits a fixed-amount order to the gateway and returns
	// the gateway's order object verbatim.
	CreateOrder(ctx context.Context) (models.PaymentOrder, error)

	// VerifySignature recomputes the checkout callback signature over
	// "orderID|paymentID" and reports whether it matches the supplied one.
	// Pure and stateless: no account record is touched.
	VerifySignature(orderID, paymentID, signature string) bool
}

type razorpayGateway struct {
	client    *resty.Client
	keySecret string
}

// New constructs a Razorpay-backed [Gateway]. The key id/secret pair
// authenticates Orders API calls; the secret doubles as the HMAC key for
// signature verification.
func New(cfg config.Payment) Gateway {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.razorpay.com"
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(15 * time.Second).
		SetBasicAuth(cfg.KeyID, cfg.KeySecret)

	return &razorpayGateway{client: cli, keySecret: cfg.KeySecret}
}

// orderRequest is the Orders API request payload.
type orderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// CreateOrder implements [Gateway]. The receipt identifier is derived from
// the current time plus a short random suffix so retries never collide.
func (g *razorpayGateway) CreateOrder(ctx context.Context) (models.PaymentOrder, error) {
	req := orderRequest{
		Amount:   orderAmount,
		Currency: orderCurrency,
		Receipt:  newReceiptID(),
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/v1/orders")
	if err != nil {
		return models.PaymentOrder{}, fmt.Errorf("%w: %w", ErrGatewayUnavailable, err)
	}
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return models.PaymentOrder{}, fmt.Errorf("%w: http %d: %s",
			ErrGatewayUnavailable, resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
	}

	var order models.PaymentOrder
	if err = json.Unmarshal(resp.Body(), &order); err != nil {
		return models.PaymentOrder{}, fmt.Errorf("%w: decode order response: %w", ErrGatewayUnavailable, err)
	}

	return order, nil
}

// VerifySignature implements [Gateway]. The expected signature is the
// hex-encoded HMAC-SHA256 of "orderID|paymentID" under the key secret;
// comparison is exact and case-sensitive.
func (g *razorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

func newReceiptID() string {
	return fmt.Sprintf("receipt_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
