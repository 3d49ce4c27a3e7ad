package service

import (
	"context"
	"errors"
	"time"

	"github.com/resumekit/resumekit/internal/store"
	"github.com/resumekit/resumekit/models"
)

// ─────────────────────────────────────────────────────────────────────────────
// Hand-rolled collaborators shared by the service tests
// ─────────────────────────────────────────────────────────────────────────────

type resetCodeCall struct {
	UserID  int64
	Code    string
	Expires time.Time
}

type resetPasswordCall struct {
	Email   string
	Code    string
	NewHash string
	Now     time.Time
}

// fakeUserRepo is an in-memory store.UserRepository. The *Fn fields, when
// set, override the default map-backed behaviour for a single scenario.
type fakeUserRepo struct {
	users  map[string]models.User // keyed by email
	nextID int64

	createUserFn func(ctx context.Context, user models.User) (models.User, error)
	findByIDFn   func(ctx context.Context, userID int64) (models.User, error)
	incrementFn  func(ctx context.Context, userID int64) (models.DownloadStatus, error)

	setResetCalls     []resetCodeCall
	clearResetCalls   []int64
	resetPasswordErr  error
	lastResetPassword *resetPasswordCall
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]models.User)}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if f.createUserFn != nil {
		return f.createUserFn(ctx, user)
	}
	if _, exists := f.users[user.Email]; exists {
		return models.User{}, store.ErrEmailAlreadyExists
	}

	f.nextID++
	user.UserID = f.nextID
	user.CreatedAt = time.Now()
	f.users[user.Email] = user

	return user, nil
}

func (f *fakeUserRepo) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	u, ok := f.users[email]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return u, nil
}

func (f *fakeUserRepo) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, userID)
	}
	for _, u := range f.users {
		if u.UserID == userID {
			return u, nil
		}
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (f *fakeUserRepo) SetResetCode(_ context.Context, userID int64, code string, expires time.Time) error {
	f.setResetCalls = append(f.setResetCalls, resetCodeCall{UserID: userID, Code: code, Expires: expires})
	return nil
}

func (f *fakeUserRepo) ClearResetCode(_ context.Context, userID int64) error {
	f.clearResetCalls = append(f.clearResetCalls, userID)
	return nil
}

func (f *fakeUserRepo) ResetPassword(_ context.Context, email, code, newHash string, now time.Time) error {
	f.lastResetPassword = &resetPasswordCall{Email: email, Code: code, NewHash: newHash, Now: now}
	return f.resetPasswordErr
}

func (f *fakeUserRepo) IncrementDownloadCount(ctx context.Context, userID int64) (models.DownloadStatus, error) {
	if f.incrementFn != nil {
		return f.incrementFn(ctx, userID)
	}
	return models.DownloadStatus{}, errors.New("incrementFn not configured")
}

func (f *fakeUserRepo) ListUsers(_ context.Context) ([]models.User, error) {
	users := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		users = append(users, u)
	}
	return users, nil
}

func (f *fakeUserRepo) Stats(_ context.Context) (models.AdminStats, error) {
	stats := models.AdminStats{TotalUsers: int64(len(f.users))}
	for _, u := range f.users {
		if u.IsPremium {
			stats.PremiumUsers++
		}
		stats.TotalDownloads += int64(u.DownloadCount)
	}
	return stats, nil
}

// fakeMailer records the last delivery and optionally fails it.
type fakeMailer struct {
	sendErr  error
	lastTo   string
	lastCode string
	sends    int
}

func (f *fakeMailer) IsEnabled() bool { return true }

func (f *fakeMailer) SendResetCode(to, code string) error {
	f.sends++
	f.lastTo = to
	f.lastCode = code
	return f.sendErr
}

// fakeGateway answers payment calls with canned values.
type fakeGateway struct {
	order          models.PaymentOrder
	createOrderErr error
	validSignature string
}

func (f *fakeGateway) CreateOrder(_ context.Context) (models.PaymentOrder, error) {
	if f.createOrderErr != nil {
		return models.PaymentOrder{}, f.createOrderErr
	}
	return f.order, nil
}

func (f *fakeGateway) VerifySignature(_, _, signature string) bool {
	return signature == f.validSignature
}
