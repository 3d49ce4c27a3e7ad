package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/resumekit/resumekit/internal/logger"
	"github.com/resumekit/resumekit/internal/mailer"
	"github.com/resumekit/resumekit/internal/store"
	"github.com/resumekit/resumekit/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// resetCodeTTL is how long a generated reset code stays valid.
const resetCodeTTL = 10 * time.Minute

// resetService implements ResetService: one-time-code password recovery
// delivered over email.
type resetService struct {
	userRepository store.UserRepository
	mailer         mailer.Mailer
	logger         *logger.Logger

	// now is injected for tests; production uses time.Now.
	now func() time.Time
}

// NewResetService constructs a ResetService backed by the given repository
// and mail client.
func NewResetService(userRepository store.UserRepository, mailer mailer.Mailer, logger *logger.Logger) ResetService {
	return &resetService{
		userRepository: userRepository,
		mailer:         mailer,
		logger:         logger,
		now:            time.Now,
	}
}

// RequestReset generates a six-digit code, stores it on the account with a
// ten-minute expiry, and emails it to the user.
//
// If delivery fails the stored code is cleared again so that a code the
// user never received cannot linger on the account, and ErrDeliveryFailed
// is returned.
//
// Returns store.ErrNoUserWasFound when no account matches the email.
func (r *resetService) RequestReset(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	email = NormalizeEmail(email)
	if email == "" {
		return ErrInvalidDataProvided
	}

	foundUser, err := r.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return err
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		return fmt.Errorf("error generating reset code: %w", err)
	}

	expires := r.now().Add(resetCodeTTL)
	if err = r.userRepository.SetResetCode(ctx, foundUser.UserID, code, expires); err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("storing reset code failed")
		return fmt.Errorf("storing reset code failed: %w", err)
	}

	if err = r.mailer.SendResetCode(foundUser.Email, code); err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("reset code delivery failed")
		if clearErr := r.userRepository.ClearResetCode(ctx, foundUser.UserID); clearErr != nil {
			log.Err(clearErr).Int64("id", foundUser.UserID).Msg("clearing undelivered reset code failed")
		}
		return ErrDeliveryFailed
	}

	return nil
}

// ConfirmReset exchanges a valid, unexpired code for a new password.
//
// The email, code, and expiry check happen in a single conditional UPDATE,
// so a concurrent confirm with the same code can succeed at most once.
// The stored code is cleared by the same statement; codes are single-use.
//
// Returns store.ErrResetCodeMismatch when the code is wrong, expired, or
// already consumed, and ErrInvalidDataProvided on empty input.
func (r *resetService) ConfirmReset(ctx context.Context, email, code, newPassword string) error {
	log := logger.FromContext(ctx)

	email = NormalizeEmail(email)
	if email == "" || code == "" || newPassword == "" {
		return ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err = r.userRepository.ResetPassword(ctx, email, code, string(hash), r.now()); err != nil {
		if errors.Is(err, store.ErrResetCodeMismatch) {
			return err
		}
		log.Err(err).Str("email", email).Msg("password reset failed")
		return fmt.Errorf("password reset failed: %w", err)
	}

	return nil
}
