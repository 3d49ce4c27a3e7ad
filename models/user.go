package models

import "time"

// User represents an account record used for authentication, download
// gating, and premium entitlement. Sensitive fields must never be exposed
// outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique account identifier. Stored lowercase and trimmed.
	Email string `json:"email"`

	// FullName is the display name of the user. Non-sensitive.
	FullName string `json:"fullName"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// Empty for accounts created through Google sign-in.
	// Never serialised to JSON.
	PasswordHash string `json:"-"`

	// IsGoogleUser marks accounts that were created via Google sign-in
	// and may have no usable local password.
	IsGoogleUser bool `json:"isGoogleUser"`

	// OTP is the pending password-reset code, if any.
	// OTP and OTPExpires are either both set or both empty.
	OTP string `json:"-"`

	// OTPExpires is the expiry timestamp of the pending reset code.
	OTPExpires *time.Time `json:"-"`

	// DownloadCount is the lifetime number of granted resume downloads.
	DownloadCount int `json:"downloadCount"`

	// IsPremium marks accounts with unlimited downloads. Flipped by an
	// out-of-band administrative action after payment confirmation.
	IsPremium bool `json:"isPremium"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasPassword reports whether the account has a local password set.
// Google-only accounts may carry an empty hash and must be directed to
// Google sign-in instead of password login.
func (u User) HasPassword() bool {
	return u.PasswordHash != ""
}
