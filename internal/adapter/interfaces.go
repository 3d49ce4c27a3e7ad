// Package adapter provides the transport layer for communicating with the
// resumekit server.
//
// The primary abstraction is [ServerAdapter], which decouples the client's
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrForbidden] for 403, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/resumekit/resumekit/models"
)

// ServerAdapter defines transport-agnostic communication with the resumekit
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful Register, Login, or LoginGoogle, and manually when a saved
	// session is restored.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account on the server. On success the returned
	// token is stored via SetToken.
	Register(ctx context.Context, fullName, email, password string) (models.AuthResponse, error)

	// Login authenticates an existing account. On success the returned token
	// is stored via SetToken.
	Login(ctx context.Context, email, password string) (models.AuthResponse, error)

	// LoginGoogle signs in with a Google identity, creating the account on
	// first use. On success the returned token is stored via SetToken.
	LoginGoogle(ctx context.Context, fullName, email, googleID string) (models.AuthResponse, error)

	// Me fetches the account record behind the stored token.
	Me(ctx context.Context) (models.User, error)

	// TrackDownload records one resume download and returns the updated
	// counter state. Returns [ErrForbidden] (wrapped) when the free download
	// limit is reached.
	TrackDownload(ctx context.Context) (models.DownloadStatus, error)

	// ForgotPassword asks the server to email a reset code to the account's
	// address. Returns [ErrNotFound] (wrapped) for an unknown email.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword exchanges a emailed reset code for a new password.
	// Returns [ErrBadRequest] (wrapped) on a wrong or expired code.
	ResetPassword(ctx context.Context, email, otp, newPassword string) error

	// CreateOrder opens a payment order for the premium upgrade.
	CreateOrder(ctx context.Context) (models.PaymentOrder, error)

	// VerifyPayment submits the checkout result for signature verification.
	// Returns [ErrBadRequest] (wrapped) when the server rejects the
	// signature.
	VerifyPayment(ctx context.Context, verification models.PaymentVerification) error
}
