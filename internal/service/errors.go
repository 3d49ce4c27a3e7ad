package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("invalid credentials")

	// ErrGoogleOnlyAccount is returned when a password login targets an
	// account created through Google sign-in that has no local password.
	// The hash comparison is never attempted for such accounts.
	ErrGoogleOnlyAccount = errors.New("account exists via Google, please login with Google")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrDeliveryFailed is returned when the reset code could not be sent.
	// The pending code has already been cleared; the request must be
	// retried in full.
	ErrDeliveryFailed = errors.New("email could not be sent")

	// ErrInvalidSignature is returned when a payment callback signature
	// does not match the recomputed one.
	ErrInvalidSignature = errors.New("invalid signature")
)

// Client-side sentinels wrapping server call failures.
var (
	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")
)
