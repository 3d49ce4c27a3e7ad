package models

// PaymentOrder mirrors the order object returned by the Razorpay Orders API.
// Orders are ephemeral: they are created per upgrade attempt, consumed once
// by the signature verification step, and never persisted by this system.
type PaymentOrder struct {
	// ID is the gateway-assigned order identifier (e.g. "order_...").
	ID string `json:"id"`

	// Amount is the order amount in minor currency units (paise).
	Amount int64 `json:"amount"`

	// Currency is the ISO currency code of the order.
	Currency string `json:"currency"`

	// Receipt is the server-generated receipt identifier submitted with
	// the order request.
	Receipt string `json:"receipt"`

	// Status is the gateway-reported order status (e.g. "created").
	Status string `json:"status"`
}

// PaymentVerification is the callback payload posted by the checkout widget
// after the user completes a payment. Field names follow the gateway's wire
// format.
type PaymentVerification struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}
