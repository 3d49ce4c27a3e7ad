package service

import (
	"context"
	"fmt"

	"github.com/resumekit/resumekit/internal/adapter"
	"github.com/resumekit/resumekit/internal/store"
	"github.com/resumekit/resumekit/models"
)

type clientAuthService struct {
	sessions store.SessionStore
	adapter  adapter.ServerAdapter
}

func NewClientAuthService(sessions store.SessionStore, serverAdapter adapter.ServerAdapter) ClientAuthService {
	return &clientAuthService{sessions: sessions, adapter: serverAdapter}
}

func (a *clientAuthService) Register(ctx context.Context, fullName, email, password string) (models.AuthResponse, error) {
	account, err := a.adapter.Register(ctx, fullName, email, password)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: %v", ErrRegisterOnServer, err)
	}

	a.saveSession(ctx, account)
	return account, nil
}

func (a *clientAuthService) Login(ctx context.Context, email, password string) (models.AuthResponse, error) {
	account, err := a.adapter.Login(ctx, email, password)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: %v", ErrLoginOnServer, err)
	}

	a.saveSession(ctx, account)
	return account, nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.User, error) {
	sess, err := a.sessions.Load(ctx)
	if err != nil {
		return models.User{}, err
	}

	a.adapter.SetToken(sess.Token)

	account, err := a.adapter.Me(ctx)
	if err != nil {
		// Saved token no longer opens the door; drop it so the next launch
		// goes straight to login.
		a.adapter.SetToken("")
		_ = a.sessions.Clear(ctx)
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	return account, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")
	return a.sessions.Clear(ctx)
}

func (a *clientAuthService) ForgotPassword(ctx context.Context, email string) error {
	return a.adapter.ForgotPassword(ctx, email)
}

func (a *clientAuthService) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	return a.adapter.ResetPassword(ctx, email, otp, newPassword)
}

// saveSession persists the fresh token. A save failure only costs the user a
// login next launch, so it is not propagated.
func (a *clientAuthService) saveSession(ctx context.Context, account models.AuthResponse) {
	_ = a.sessions.Save(ctx, store.Session{Email: account.Email, Token: account.Token})
}
