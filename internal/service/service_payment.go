package service

import (
	"context"
	"fmt"

	"github.com/resumekit/resumekit/internal/gateway"
	"github.com/resumekit/resumekit/internal/logger"
	"github.com/resumekit/resumekit/models"
)

// paymentService implements PaymentService on top of the Razorpay gateway.
type paymentService struct {
	gateway gateway.Gateway
	logger  *logger.Logger
}

// NewPaymentService constructs a PaymentService over the given gateway.
func NewPaymentService(gateway gateway.Gateway, logger *logger.Logger) PaymentService {
	return &paymentService{
		gateway: gateway,
		logger:  logger,
	}
}

// CreateOrder opens a new payment order for the premium upgrade at the
// fixed price configured in the gateway.
func (p *paymentService) CreateOrder(ctx context.Context) (models.PaymentOrder, error) {
	log := logger.FromContext(ctx)

	order, err := p.gateway.CreateOrder(ctx)
	if err != nil {
		log.Err(err).Msg("payment order creation failed")
		return models.PaymentOrder{}, fmt.Errorf("payment order creation failed: %w", err)
	}

	return order, nil
}

// VerifyPayment checks the signature the payment provider attached to a
// completed checkout.
//
// Returns ErrInvalidDataProvided when any field is missing and
// ErrInvalidSignature when the HMAC does not match. Verification is a pure
// computation over the request fields; nothing is persisted.
func (p *paymentService) VerifyPayment(ctx context.Context, verification models.PaymentVerification) error {
	log := logger.FromContext(ctx)

	if verification.OrderID == "" || verification.PaymentID == "" || verification.Signature == "" {
		return ErrInvalidDataProvided
	}

	if !p.gateway.VerifySignature(verification.OrderID, verification.PaymentID, verification.Signature) {
		log.Warn().Str("order_id", verification.OrderID).Msg("payment signature mismatch")
		return ErrInvalidSignature
	}

	return nil
}
