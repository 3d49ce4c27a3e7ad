package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/resumekit/resumekit/internal/logger"
	"github.com/resumekit/resumekit/internal/service"
	"github.com/resumekit/resumekit/models"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.ClientServices
}

func New(services *service.ClientServices, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// LoginFlow runs the authentication program: menu, login, register, and
// password-reset pages routed by [RootModel]. It blocks until an account is
// signed in or the user quits.
func (t *TUI) LoginFlow(ctx context.Context) (models.AuthResponse, error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.AuthService),
		"register": NewRegisterModel(ctx, t.services.AuthService),
		"forgot":   NewForgotModel(ctx, t.services.AuthService),
		"reset":    NewResetModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "menu")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.AuthResponse{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.AuthResponse{}, tea.ErrProgramKilled
	}
	if result.quitByUser || !result.authenticated {
		return models.AuthResponse{}, ErrUserQuit
	}

	return result.resultAccount, nil
}

// MainLoop runs the resume wizard for a signed-in account. It blocks until
// the user quits or logs out; logout reports true so the caller can restart
// the login flow.
func (t *TUI) MainLoop(ctx context.Context, account models.AuthResponse) (logout bool, err error) {
	model := newWizardModel(ctx, t.services, account)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(wizardModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
