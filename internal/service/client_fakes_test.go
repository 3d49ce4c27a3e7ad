package service

import (
	"context"

	"github.com/resumekit/resumekit/internal/store"
	"github.com/resumekit/resumekit/models"
)

// ─────────────────────────────────────────────────────────────────────────────
// Hand-rolled collaborators shared by the client-side service tests
// ─────────────────────────────────────────────────────────────────────────────

// fakeSessionStore is an in-memory store.SessionStore.
type fakeSessionStore struct {
	session  *store.Session
	saveErr  error
	clearErr error
}

func (f *fakeSessionStore) Load(_ context.Context) (store.Session, error) {
	if f.session == nil {
		return store.Session{}, store.ErrLocalSessionNotFound
	}
	return *f.session, nil
}

func (f *fakeSessionStore) Save(_ context.Context, s store.Session) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.session = &s
	return nil
}

func (f *fakeSessionStore) Clear(_ context.Context) error {
	if f.clearErr != nil {
		return f.clearErr
	}
	f.session = nil
	return nil
}

func (f *fakeSessionStore) Close() error { return nil }

// fakeServerAdapter answers adapter calls with canned values and records the
// token handed to SetToken.
type fakeServerAdapter struct {
	token string

	registerAccount models.AuthResponse
	registerErr     error

	loginAccount models.AuthResponse
	loginErr     error

	meAccount models.User
	meErr     error

	trackStatus models.DownloadStatus
	trackErr    error
	trackCalls  int

	forgotErr error
	resetErr  error

	order          models.PaymentOrder
	createOrderErr error
	verifyErr      error
}

func (f *fakeServerAdapter) SetToken(token string) { f.token = token }
func (f *fakeServerAdapter) Token() string         { return f.token }

func (f *fakeServerAdapter) Register(_ context.Context, _, _, _ string) (models.AuthResponse, error) {
	if f.registerErr != nil {
		return models.AuthResponse{}, f.registerErr
	}
	f.token = f.registerAccount.Token
	return f.registerAccount, nil
}

func (f *fakeServerAdapter) Login(_ context.Context, _, _ string) (models.AuthResponse, error) {
	if f.loginErr != nil {
		return models.AuthResponse{}, f.loginErr
	}
	f.token = f.loginAccount.Token
	return f.loginAccount, nil
}

func (f *fakeServerAdapter) LoginGoogle(_ context.Context, _, _, _ string) (models.AuthResponse, error) {
	return f.loginAccount, f.loginErr
}

func (f *fakeServerAdapter) Me(_ context.Context) (models.User, error) {
	if f.meErr != nil {
		return models.User{}, f.meErr
	}
	return f.meAccount, nil
}

func (f *fakeServerAdapter) TrackDownload(_ context.Context) (models.DownloadStatus, error) {
	f.trackCalls++
	if f.trackErr != nil {
		return models.DownloadStatus{}, f.trackErr
	}
	return f.trackStatus, nil
}

func (f *fakeServerAdapter) ForgotPassword(_ context.Context, _ string) error { return f.forgotErr }

func (f *fakeServerAdapter) ResetPassword(_ context.Context, _, _, _ string) error { return f.resetErr }

func (f *fakeServerAdapter) CreateOrder(_ context.Context) (models.PaymentOrder, error) {
	if f.createOrderErr != nil {
		return models.PaymentOrder{}, f.createOrderErr
	}
	return f.order, nil
}

func (f *fakeServerAdapter) VerifyPayment(_ context.Context, _ models.PaymentVerification) error {
	return f.verifyErr
}
