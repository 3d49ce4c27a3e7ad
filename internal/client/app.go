package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/resumekit/resumekit/internal/adapter"
	"github.com/resumekit/resumekit/internal/config"
	"github.com/resumekit/resumekit/internal/logger"
	"github.com/resumekit/resumekit/internal/render"
	"github.com/resumekit/resumekit/internal/service"
	"github.com/resumekit/resumekit/internal/store"
	"github.com/resumekit/resumekit/internal/tui"
	"github.com/resumekit/resumekit/models"
)

type App struct {
	services *service.ClientServices
	sessions store.SessionStore
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	sessions, err := store.NewSessionStore(cfg.Storage.SessionPath)
	if err != nil {
		return nil, fmt.Errorf("create session store: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	renderer, err := render.New("")
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	svcs := service.NewClientServices(sessions, serverAdapter, renderer)
	ui, err := tui.New(svcs, log)
	if err != nil {
		return nil, fmt.Errorf("create tui: %w", err)
	}

	return &App{services: svcs, sessions: sessions, tui: ui, logger: log}, nil
}

// Close releases the local session store. Call once, after Run returns.
func (a *App) Close() error {
	return a.sessions.Close()
}

func (a *App) Run() error {
	ctx := context.Background()

	var account models.AuthResponse

	restored, err := a.services.AuthService.RestoreSession(ctx)
	if err == nil {
		account = models.AuthResponse{
			UserID:        restored.UserID,
			FullName:      restored.FullName,
			Email:         restored.Email,
			DownloadCount: restored.DownloadCount,
			IsPremium:     restored.IsPremium,
		}
	} else {
		if !errors.Is(err, store.ErrLocalSessionNotFound) && !errors.Is(err, service.ErrTokenIsExpiredOrInvalid) {
			a.logger.Warn().Err(err).Msg("session restore failed, falling back to login")
		}
		account, err = a.tui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
	}

	logout, err := a.tui.MainLoop(ctx, account)
	if err != nil {
		return err
	}
	if logout {
		if err = a.services.AuthService.Logout(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("logout cleanup failed")
		}
		return a.Run()
	}

	return nil
}
