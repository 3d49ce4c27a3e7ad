package service

import (
	"context"

	"github.com/resumekit/resumekit/models"
)

// AuthService owns the account credential lifecycle: registration, password
// and Google sign-in, and bearer token issuance/validation.
type AuthService interface {
	// Register creates a local-password account. The email is lowercased
	// and trimmed before storage.
	Register(ctx context.Context, fullName, email, password string) (models.User, error)

	// Login authenticates a local-password account.
	Login(ctx context.Context, email, password string) (models.User, error)

	// LoginGoogle signs a Google user in, creating the account on first
	// contact. Idempotent per email.
	LoginGoogle(ctx context.Context, fullName, email, googleID string) (models.User, error)

	// GetUser loads the account behind an authenticated request.
	GetUser(ctx context.Context, userID int64) (models.User, error)

	// CreateToken issues a signed bearer token for the user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates and decodes a raw bearer token string.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ResetService drives the one-time-code password reset state machine:
// NoResetPending → ResetPending → NoResetPending.
type ResetService interface {
	// RequestReset generates and delivers a 6-digit code valid for ten
	// minutes. Delivery failure clears the pending code.
	RequestReset(ctx context.Context, email string) error

	// ConfirmReset swaps the password if the email + code tuple matches a
	// pending, unexpired code, then clears the code.
	ConfirmReset(ctx context.Context, email, code, newPassword string) error
}

// EntitlementService enforces the per-account free-download quota.
type EntitlementService interface {
	// TrackDownload performs the authoritative check-and-increment for one
	// download attempt.
	TrackDownload(ctx context.Context, userID int64) (models.DownloadStatus, error)
}

// PaymentService fronts the payment gateway for the upgrade flow.
type PaymentService interface {
	// CreateOrder creates a fixed-amount upgrade order with the gateway.
	CreateOrder(ctx context.Context) (models.PaymentOrder, error)

	// VerifyPayment checks a checkout callback signature. Stateless; a
	// successful verification does not mutate any account record.
	VerifyPayment(ctx context.Context, v models.PaymentVerification) error
}

// AdminService serves the unauthenticated admin dashboard endpoints.
type AdminService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	Stats(ctx context.Context) (models.AdminStats, error)
}
