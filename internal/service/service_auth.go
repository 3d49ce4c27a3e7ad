package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/resumekit/resumekit/internal/config"
	"github.com/resumekit/resumekit/internal/logger"
	"github.com/resumekit/resumekit/internal/store"
	"github.com/resumekit/resumekit/internal/utils"
	"github.com/resumekit/resumekit/models"
	"golang.org/x/crypto/bcrypt"
)

// googleIDHashSuffix is appended to the google id before hashing it into
// the schema's password column.
const googleIDHashSuffix = "secret"

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, Google sign-in,
// and JWT token lifecycle using a UserRepository for persistence and bcrypt
// for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	// The product default is 30 days.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new local-password account.
//
// It validates that all three fields are non-empty, normalises the email to
// lowercase, hashes the password with bcrypt, and delegates persistence to
// the UserRepository.
//
// Returns the persisted account (with server-assigned UserID) or:
//   - ErrInvalidDataProvided if any field is empty.
//   - store.ErrEmailAlreadyExists if the email is taken (any casing).
func (a *authService) Register(ctx context.Context, fullName, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	email = NormalizeEmail(email)
	if fullName == "" || email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing local-password account.
//
// Returns the authenticated account record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrWrongCredentials if no account matches or the hash comparison fails.
//   - ErrGoogleOnlyAccount if the account carries no local password: the
//     bcrypt comparison is never attempted and the caller must direct the
//     user to Google sign-in.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	email = NormalizeEmail(email)
	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrWrongCredentials
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !foundUser.HasPassword() {
		log.Warn().Int64("id", foundUser.UserID).Msg("password login against google-only account")
		return models.User{}, ErrGoogleOnlyAccount
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Warn().Int64("id", foundUser.UserID).Str("email", foundUser.Email).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return foundUser, nil
}

// LoginGoogle signs a Google user in, creating the account on first contact.
//
// The stored hash is derived from the opaque Google identifier; it exists to
// satisfy the schema, not as a password-retrieval path. Calling LoginGoogle
// twice with the same email returns the same account identity: the second
// call finds the existing record and creates nothing.
func (a *authService) LoginGoogle(ctx context.Context, fullName, email, googleID string) (models.User, error) {
	log := logger.FromContext(ctx)

	email = NormalizeEmail(email)
	if email == "" || googleID == "" {
		log.Error().Str("email", email).Msg("invalid google login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err == nil {
		return foundUser, nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	// The suffix keeps the raw google id from doubling as a working
	// password for the account.
	hash, err := bcrypt.GenerateFromPassword([]byte(googleID+googleIDHashSuffix), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("error hashing google id: %w", err)
	}

	createdUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		IsGoogleUser: true,
	})
	if err != nil {
		// Lost a create race with a concurrent google login for the same
		// email: the account exists now, return it.
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return a.userRepository.FindUserByEmail(ctx, email)
		}
		log.Err(err).Str("email", email).Msg("google user creation ended with error")
		return models.User{}, fmt.Errorf("google user creation ended with error: %w", err)
	}

	return createdUser, nil
}

// GetUser loads the account record behind an authenticated request.
func (a *authService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that the HTTP layer can answer a uniform
// "Not authorized" without inspecting low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// NormalizeEmail lowercases and trims an email so that lookups and the
// uniqueness constraint are casing-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
