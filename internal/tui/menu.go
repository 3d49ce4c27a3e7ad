package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// MenuModel is the entry page of the authentication flow.
type MenuModel struct {
	items []string
	idx   int
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: []string{"Sign in", "Create account", "Forgot password"},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "enter":
		switch m.idx {
		case 0:
			return m, func() tea.Msg { return NavigateTo{Page: "login"} }
		case 1:
			return m, func() tea.Msg { return NavigateTo{Page: "register"} }
		case 2:
			return m, func() tea.Msg { return NavigateTo{Page: "forgot"} }
		}
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	b.WriteString("Choose an action:\n\n")
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(item)
		b.WriteString("\n")
	}

	return renderPage("RESUMEKIT", strings.TrimRight(b.String(), "\n"), "↑/↓: select │ enter: confirm")
}
