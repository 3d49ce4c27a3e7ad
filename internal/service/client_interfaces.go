package service

import (
	"context"

	"github.com/resumekit/resumekit/models"
)

// ClientAuthService drives the client side of the account lifecycle: talking
// to the server through the adapter and persisting the bearer token in the
// local session store so the next launch skips the login screen.
type ClientAuthService interface {
	// Register creates an account on the server and saves the session
	// locally.
	Register(ctx context.Context, fullName, email, password string) (models.AuthResponse, error)

	// Login authenticates against the server and saves the session locally.
	Login(ctx context.Context, email, password string) (models.AuthResponse, error)

	// RestoreSession loads a previously saved session, installs its token in
	// the adapter, and re-validates it against the server. Returns
	// [store.ErrLocalSessionNotFound] when no session is saved and
	// ErrTokenIsExpiredOrInvalid when the server rejects the saved token.
	RestoreSession(ctx context.Context) (models.User, error)

	// Logout clears the saved session and the adapter token.
	Logout(ctx context.Context) error

	// ForgotPassword asks the server to email a reset code.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword exchanges an emailed reset code for a new password.
	ResetPassword(ctx context.Context, email, otp, newPassword string) error
}

// ClientResumeService turns the in-memory resume document into a file on
// disk, charging the account's download allowance first.
type ClientResumeService interface {
	// Download records the download on the server and, if allowed, renders
	// the resume into the output directory. Returns the written file path
	// and the updated counter state.
	Download(ctx context.Context, resume *models.Resume) (string, models.DownloadStatus, error)
}

// ClientUpgradeService drives the premium upgrade: opening a payment order
// and submitting the checkout result for verification.
type ClientUpgradeService interface {
	// CreateOrder opens a payment order for the premium upgrade.
	CreateOrder(ctx context.Context) (models.PaymentOrder, error)

	// VerifyPayment submits the checkout result for signature verification.
	VerifyPayment(ctx context.Context, verification models.PaymentVerification) error
}
