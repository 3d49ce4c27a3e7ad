package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/resumekit/resumekit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// POST /api/create-order
// ─────────────────────────────────────────────

func TestCreateOrder_ReturnsOrder(t *testing.T) {
	router := newTestEnv().handler.Init()

	rec := doJSON(router, http.MethodPost, "/api/create-order", "", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var order models.PaymentOrder
	decodeBody(t, rec, &order)
	assert.Equal(t, "order_test_1", order.ID)
	assert.Equal(t, int64(9900), order.Amount)
	assert.Equal(t, "INR", order.Currency)
}

func TestCreateOrder_GatewayDown(t *testing.T) {
	env := newTestEnv()
	router := env.handler.Init()
	env.gateway.createOrderErr = errors.New("gateway timeout")

	rec := doJSON(router, http.MethodPost, "/api/create-order", "", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var msg models.MessageResponse
	decodeBody(t, rec, &msg)
	assert.Equal(t, "Failed to create payment order", msg.Message)
}

// The checkout happens in the hosted gateway page, outside any session, so
// the order and verification routes accept anonymous callers.
func TestCreateOrder_NoTokenRequired(t *testing.T) {
	router := newTestEnv().handler.Init()

	rec := doJSON(router, http.MethodPost, "/api/create-order", "", "")

	assert.NotEqual(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// ─────────────────────────────────────────────
// POST /api/verify-payment
// ─────────────────────────────────────────────

func TestVerifyPayment_Success(t *testing.T) {
	router := newTestEnv().handler.Init()

	signature := signCheckout("order_test_1", "pay_777")
	rec := doJSON(router, http.MethodPost, "/api/verify-payment", "",
		`{"razorpay_order_id":"order_test_1","razorpay_payment_id":"pay_777","razorpay_signature":"`+signature+`"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.VerifyResponse
	decodeBody(t, rec, &body)
	assert.True(t, body.Success)
	assert.Equal(t, "Payment verified successfully", body.Message)
}

func TestVerifyPayment_ForgedSignature(t *testing.T) {
	router := newTestEnv().handler.Init()

	rec := doJSON(router, http.MethodPost, "/api/verify-payment", "",
		`{"razorpay_order_id":"order_test_1","razorpay_payment_id":"pay_777","razorpay_signature":"forged"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body models.VerifyResponse
	decodeBody(t, rec, &body)
	assert.False(t, body.Success)
	assert.Equal(t, "Payment verification failed", body.Message)
}

func TestVerifyPayment_MissingFields(t *testing.T) {
	router := newTestEnv().handler.Init()

	rec := doJSON(router, http.MethodPost, "/api/verify-payment", "",
		`{"razorpay_order_id":"order_test_1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body models.VerifyResponse
	decodeBody(t, rec, &body)
	assert.False(t, body.Success)
}
