package service

import (
	"context"
	"testing"
	"time"

	"github.com/resumekit/resumekit/internal/config"
	"github.com/resumekit/resumekit/internal/logger"
	"github.com/resumekit/resumekit/internal/store"
	"github.com/resumekit/resumekit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(repo store.UserRepository) AuthService {
	cfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "resumekit-test",
		TokenDuration: time.Hour,
	}
	return NewAuthService(repo, cfg, logger.Nop())
}

// ─────────────────────────────────────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────────────────────────────────────

func TestAuthService_Register_HashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	auth := newTestAuthService(repo)

	created, err := auth.Register(context.Background(), "Jane Doe", "jane@example.com", "pw123456")
	require.NoError(t, err)

	assert.NotZero(t, created.UserID)
	assert.Equal(t, "jane@example.com", created.Email)
	assert.NotEqual(t, "pw123456", created.PasswordHash, "password must never be stored in clear")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("pw123456")))
}

func TestAuthService_Register_NormalizesEmail(t *testing.T) {
	repo := newFakeUserRepo()
	auth := newTestAuthService(repo)

	created, err := auth.Register(context.Background(), "Jane Doe", "  Jane@Example.COM  ", "pw123456")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", created.Email)
}

func TestAuthService_Register_EmptyFields(t *testing.T) {
	repo := newFakeUserRepo()
	auth := newTestAuthService(repo)

	for _, tc := range []struct {
		name, fullName, email, password string
	}{
		{"no name", "", "jane@example.com", "pw123456"},
		{"no email", "Jane Doe", "", "pw123456"},
		{"no password", "Jane Doe", "jane@example.com", ""},
		{"whitespace email", "Jane Doe", "   ", "pw123456"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := auth.Register(context.Background(), tc.fullName, tc.email, tc.password)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	auth := newTestAuthService(repo)

	_, err := auth.Register(context.Background(), "Jane Doe", "jane@example.com", "pw123456")
	require.NoError(t, err)

	_, err = auth.Register(context.Background(), "Other Jane", "Jane@example.com", "different")
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ─────────────────────────────────────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	repo := newFakeUserRepo()
	auth := newTestAuthService(repo)

	registered, err := auth.Register(context.Background(), "Jane Doe", "jane@example.com", "pw123456")
	require.NoError(t, err)

	got, err := auth.Login(context.Background(), "Jane@Example.com", "pw123456")
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, got.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	auth := newTestAuthService(repo)

	_, err := auth.Register(context.Background(), "Jane Doe", "jane@example.com", "pw123456")
	require.NoError(t, err)

	_, err = auth.Login(context.Background(), "jane@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := newFakeUserRepo()
	auth := newTestAuthService(repo)

	// unknown account answers exactly like a wrong password
	_, err := auth.Login(context.Background(), "nobody@example.com", "pw123456")
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestAuthService_Login_GoogleOnlyAccount(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users["jane@example.com"] = models.User{
		UserID:       1,
		Email:        "jane@example.com",
		FullName:     "Jane Doe",
		IsGoogleUser: true,
		// no PasswordHash: account predates any local password
	}
	auth := newTestAuthService(repo)

	_, err := auth.Login(context.Background(), "jane@example.com", "whatever")
	assert.ErrorIs(t, err, ErrGoogleOnlyAccount)
}

// ─────────────────────────────────────────────────────────────────────────────
// LoginGoogle
// ─────────────────────────────────────────────────────────────────────────────

func TestAuthService_LoginGoogle_CreatesAccountOnFirstContact(t *testing.T) {
	repo := newFakeUserRepo()
	auth := newTestAuthService(repo)

	created, err := auth.LoginGoogle(context.Background(), "Jane Doe", "jane@example.com", "google-sub-1")
	require.NoError(t, err)

	assert.NotZero(t, created.UserID)
	assert.True(t, created.IsGoogleUser)
	assert.Equal(t, "jane@example.com", created.Email)
}

func TestAuthService_LoginGoogle_GoogleIDIsNotAPassword(t *testing.T) {
	repo := newFakeUserRepo()
	auth := newTestAuthService(repo)

	created, err := auth.LoginGoogle(context.Background(), "Jane Doe", "jane@example.com", "google-sub-1")
	require.NoError(t, err)
	require.NotEmpty(t, created.PasswordHash)

	_, err = auth.Login(context.Background(), "jane@example.com", "google-sub-1")
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestAuthService_LoginGoogle_Idempotent(t *testing.T) {
	repo := newFakeUserRepo()
	auth := newTestAuthService(repo)

	first, err := auth.LoginGoogle(context.Background(), "Jane Doe", "jane@example.com", "google-sub-1")
	require.NoError(t, err)

	second, err := auth.LoginGoogle(context.Background(), "Jane Doe", "Jane@Example.com", "google-sub-1")
	require.NoError(t, err)

	assert.Equal(t, first.UserID, second.UserID, "second login must reuse the first account")
	assert.Len(t, repo.users, 1)
}

func TestAuthService_LoginGoogle_CreateRaceRecovers(t *testing.T) {
	repo := newFakeUserRepo()
	auth := newTestAuthService(repo)

	racer := models.User{UserID: 42, Email: "jane@example.com", IsGoogleUser: true}
	repo.createUserFn = func(_ context.Context, _ models.User) (models.User, error) {
		// a concurrent login created the account between our find and create
		repo.users[racer.Email] = racer
		return models.User{}, store.ErrEmailAlreadyExists
	}

	got, err := auth.LoginGoogle(context.Background(), "Jane Doe", "jane@example.com", "google-sub-1")
	require.NoError(t, err)
	assert.Equal(t, racer.UserID, got.UserID)
}

// ─────────────────────────────────────────────────────────────────────────────
// Tokens
// ─────────────────────────────────────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	auth := newTestAuthService(newFakeUserRepo())

	token, err := auth.CreateToken(context.Background(), models.User{UserID: 7})
	require.NoError(t, err)
	require.NotEmpty(t, token.String())

	parsed, err := auth.ParseToken(context.Background(), token.String())
	require.NoError(t, err)
	assert.Equal(t, int64(7), parsed.UserID)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	auth := newTestAuthService(newFakeUserRepo())

	_, err := auth.ParseToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongIssuer(t *testing.T) {
	repo := newFakeUserRepo()
	auth := newTestAuthService(repo)

	otherIssuer := NewAuthService(repo, config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "someone-else",
		TokenDuration: time.Hour,
	}, logger.Nop())

	token, err := otherIssuer.CreateToken(context.Background(), models.User{UserID: 7})
	require.NoError(t, err)

	_, err = auth.ParseToken(context.Background(), token.String())
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongKey(t *testing.T) {
	repo := newFakeUserRepo()
	auth := newTestAuthService(repo)

	otherKey := NewAuthService(repo, config.App{
		TokenSignKey:  "another-sign-key",
		TokenIssuer:   "resumekit-test",
		TokenDuration: time.Hour,
	}, logger.Nop())

	token, err := otherKey.CreateToken(context.Background(), models.User{UserID: 7})
	require.NoError(t, err)

	_, err = auth.ParseToken(context.Background(), token.String())
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// ─────────────────────────────────────────────────────────────────────────────
// GetUser
// ─────────────────────────────────────────────────────────────────────────────

func TestAuthService_GetUser_NotFound(t *testing.T) {
	auth := newTestAuthService(newFakeUserRepo())

	_, err := auth.GetUser(context.Background(), 404)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jane@example.com", NormalizeEmail("  Jane@Example.COM "))
	assert.Equal(t, "", NormalizeEmail("   "))
}
