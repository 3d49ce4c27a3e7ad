package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/resumekit/resumekit/internal/logger"
	"github.com/resumekit/resumekit/internal/store"
	"github.com/resumekit/resumekit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestResetService(repo store.UserRepository, mail *fakeMailer, now time.Time) ResetService {
	svc := NewResetService(repo, mail, logger.Nop()).(*resetService)
	svc.now = func() time.Time { return now }
	return svc
}

func repoWithUser(email string, id int64) *fakeUserRepo {
	repo := newFakeUserRepo()
	repo.users[email] = models.User{UserID: id, Email: email, FullName: "Jane Doe", PasswordHash: "hash"}
	return repo
}

// ─────────────────────────────────────────────────────────────────────────────
// RequestReset
// ─────────────────────────────────────────────────────────────────────────────

func TestResetService_RequestReset_StoresAndDeliversCode(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	repo := repoWithUser("jane@example.com", 1)
	mail := &fakeMailer{}
	svc := newTestResetService(repo, mail, now)

	err := svc.RequestReset(context.Background(), "Jane@Example.com")
	require.NoError(t, err)

	require.Len(t, repo.setResetCalls, 1)
	call := repo.setResetCalls[0]
	assert.Equal(t, int64(1), call.UserID)
	assert.Len(t, call.Code, 6, "code must be six digits")
	assert.Equal(t, now.Add(10*time.Minute), call.Expires)

	assert.Equal(t, 1, mail.sends)
	assert.Equal(t, "jane@example.com", mail.lastTo)
	assert.Equal(t, call.Code, mail.lastCode, "the delivered code must be the stored one")
}

func TestResetService_RequestReset_UnknownEmail(t *testing.T) {
	svc := newTestResetService(newFakeUserRepo(), &fakeMailer{}, time.Now())

	err := svc.RequestReset(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestResetService_RequestReset_DeliveryFailureClearsCode(t *testing.T) {
	repo := repoWithUser("jane@example.com", 1)
	mail := &fakeMailer{sendErr: errors.New("smtp refused")}
	svc := newTestResetService(repo, mail, time.Now())

	err := svc.RequestReset(context.Background(), "jane@example.com")
	assert.ErrorIs(t, err, ErrDeliveryFailed)

	// a code the user never received must not linger on the account
	require.Len(t, repo.setResetCalls, 1)
	assert.Equal(t, []int64{1}, repo.clearResetCalls)
}

func TestResetService_RequestReset_EmptyEmail(t *testing.T) {
	svc := newTestResetService(newFakeUserRepo(), &fakeMailer{}, time.Now())

	err := svc.RequestReset(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────────────────────────────────────
// ConfirmReset
// ─────────────────────────────────────────────────────────────────────────────

func TestResetService_ConfirmReset_SwapsPassword(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 5, 0, 0, time.UTC)
	repo := repoWithUser("jane@example.com", 1)
	svc := newTestResetService(repo, &fakeMailer{}, now)

	err := svc.ConfirmReset(context.Background(), "Jane@Example.com", "123456", "new-password")
	require.NoError(t, err)

	require.NotNil(t, repo.lastResetPassword)
	assert.Equal(t, "jane@example.com", repo.lastResetPassword.Email)
	assert.Equal(t, "123456", repo.lastResetPassword.Code)
	assert.Equal(t, now, repo.lastResetPassword.Now)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(repo.lastResetPassword.NewHash), []byte("new-password")))
}

func TestResetService_ConfirmReset_CodeMismatch(t *testing.T) {
	repo := repoWithUser("jane@example.com", 1)
	repo.resetPasswordErr = store.ErrResetCodeMismatch
	svc := newTestResetService(repo, &fakeMailer{}, time.Now())

	err := svc.ConfirmReset(context.Background(), "jane@example.com", "000000", "new-password")
	assert.ErrorIs(t, err, store.ErrResetCodeMismatch)
}

func TestResetService_ConfirmReset_EmptyFields(t *testing.T) {
	svc := newTestResetService(newFakeUserRepo(), &fakeMailer{}, time.Now())

	for _, tc := range []struct {
		name, email, code, password string
	}{
		{"no email", "", "123456", "new-password"},
		{"no code", "jane@example.com", "", "new-password"},
		{"no password", "jane@example.com", "123456", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.ConfirmReset(context.Background(), tc.email, tc.code, tc.password)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}
