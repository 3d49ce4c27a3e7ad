package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/resumekit/resumekit/internal/service"
)

// ResetModel exchanges the emailed code for a new password. It is usually
// reached from [ForgotModel] with the email pre-filled, but also works
// standalone when the user already holds a code.
type ResetModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	done       bool
}

func NewResetModel(ctx context.Context, auth service.ClientAuthService) *ResetModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	codeInput := textinput.New()
	codeInput.Placeholder = "6-digit code"
	codeInput.CharLimit = 6
	codeInput.Width = 40

	passwordInput := textinput.New()
	passwordInput.Placeholder = "new password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &ResetModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{emailInput, codeInput, passwordInput},
	}
}

func (m *ResetModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ResetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resetCodeSentMsg:
		// Handed over from the forgot page: pre-fill the email and move
		// focus to the code field.
		m.inputs[0].SetValue(msg.email)
		m.inputs[0].Blur()
		m.focus = 1
		m.inputs[1].Focus()
		m.done = false
		m.errMsg = ""
		return m, textinput.Blink
	case resetDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.done = true
		m.errMsg = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.done {
				return m, func() tea.Msg { return NavigateTo{Page: "login"} }
			}
			if m.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.inputs[0].Value())
			code := strings.TrimSpace(m.inputs[1].Value())
			pass := m.inputs[2].Value()
			if email == "" || code == "" || pass == "" {
				m.errMsg = "Email, code and new password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdReset(email, code, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *ResetModel) View() string {
	var b strings.Builder

	if m.done {
		b.WriteString("Password updated. Sign in with your new password.\n")
		return renderPage("RESET PASSWORD", strings.TrimRight(b.String(), "\n"), "enter: go to sign in")
	}

	b.WriteString("Field         │ Value\n")
	b.WriteString("──────────────┼────────────────────────────────────────\n")
	b.WriteString("Email         │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Code          │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("New password  │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Resetting...]\n")
	} else {
		b.WriteString("\n[Reset password]\n")
	}

	if m.errMsg != "" {
		b.WriteString(errorLine(m.errMsg))
	}

	return renderPage("RESET PASSWORD", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *ResetModel) cmdReset(email, code, pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		err := auth.ResetPassword(ctx, email, code, pass)
		return resetDoneMsg{err: err}
	}
}

func (m *ResetModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *ResetModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
