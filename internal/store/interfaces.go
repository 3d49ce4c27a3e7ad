package store

import (
	"context"
	"time"

	"github.com/resumekit/resumekit/models"
)

// UserRepository is the persistence boundary for account records.
// All write operations return the canonical database representation of the
// affected row, so callers always see server-assigned fields.
type UserRepository interface {
	// CreateUser persists a new account. Returns ErrEmailAlreadyExists if an
	// account with the same email exists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks an account up by its (lowercase) email.
	// Returns ErrNoUserWasFound on an empty result.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks an account up by its identifier.
	// Returns ErrNoUserWasFound on an empty result.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// SetResetCode stores a pending one-time code and its expiry on the
	// account. Overwrites any previously pending code.
	SetResetCode(ctx context.Context, userID int64, code string, expires time.Time) error

	// ClearResetCode removes the pending one-time code, if any.
	ClearResetCode(ctx context.Context, userID int64) error

	// ResetPassword atomically sets a new password hash and clears the
	// pending code, but only if the given email+code tuple matches and the
	// code has not expired. Returns ErrResetCodeMismatch otherwise.
	ResetPassword(ctx context.Context, email, code, newHash string, now time.Time) error

	// IncrementDownloadCount performs the entitlement check and the counter
	// increment as a single conditional UPDATE: premium accounts always
	// pass, free accounts pass only while the counter is below the lifetime
	// cap. Returns ErrDownloadLimitReached when the condition fails.
	IncrementDownloadCount(ctx context.Context, userID int64) (models.DownloadStatus, error)

	// ListUsers returns all accounts, newest first, password hashes excluded.
	ListUsers(ctx context.Context) ([]models.User, error)

	// Stats returns the aggregate counters shown on the admin dashboard.
	Stats(ctx context.Context) (models.AdminStats, error)
}
