package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/resumekit/resumekit/internal/service"
)

// ForgotModel asks for the account email and requests a reset code. On
// success it navigates to the reset page with the email pre-filled.
type ForgotModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	input      textinput.Model
	submitting bool
	errMsg     string
}

func NewForgotModel(ctx context.Context, auth service.ClientAuthService) *ForgotModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	return &ForgotModel{ctx: ctx, auth: auth, input: emailInput}
}

func (m *ForgotModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ForgotModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(resetCodeSentMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}
		return m, func() tea.Msg {
			return NavigateTo{Page: "reset", Payload: resetCodeSentMsg{email: result.email}}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "enter":
			if m.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.input.Value())
			if email == "" {
				m.errMsg = "Email is required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRequestCode(email)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ForgotModel) View() string {
	var b strings.Builder
	b.WriteString("A 6-digit code will be emailed to you.\n\n")
	b.WriteString("Email │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Sending code...]\n")
	} else {
		b.WriteString("\n[Send code]\n")
	}

	if m.errMsg != "" {
		b.WriteString(errorLine(m.errMsg))
	}

	return renderPage("FORGOT PASSWORD", strings.TrimRight(b.String(), "\n"), "esc: back │ enter: submit")
}

func (m *ForgotModel) cmdRequestCode(email string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		err := auth.ForgotPassword(ctx, email)
		return resetCodeSentMsg{email: email, err: err}
	}
}
