package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m wizardModel) updatePreview(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "t":
		m.enterStep(stepTemplate)
		return m, nil
	case "e":
		m.enterStep(stepPersonal)
		return m, nil
	case "d":
		// Known-capped free accounts go straight to the upgrade screen
		// without a round trip.
		if !m.account.IsPremium && m.account.DownloadCount >= 1 {
			return m.startUpgrade()
		}
		m.busy = true
		m.busyLabel = "Generating resume"
		m.errMsg = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdDownload())
	case "u":
		if m.account.IsPremium {
			m.status = "Premium is already active"
			return m, cmdClearStatus()
		}
		return m.startUpgrade()
	case "l":
		m.logout = true
		return m, tea.Quit
	case "q":
		return m, tea.Quit
	}

	return m, nil
}

func (m wizardModel) viewPreview() string {
	var b strings.Builder

	if m.busy {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(m.busyLabel)
		b.WriteString("...\n")
		return renderPage("PREVIEW", strings.TrimRight(b.String(), "\n"), "")
	}

	p := m.resume.Personal
	b.WriteString(p.FullName)
	b.WriteString("\n")
	contact := p.Email
	if p.Phone != "" {
		contact += " · " + p.Phone
	}
	if p.Location != "" {
		contact += " · " + p.Location
	}
	b.WriteString(contact)
	b.WriteString("\n\n")

	if p.Summary != "" {
		b.WriteString(fitText(p.Summary, 60))
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("Education:  %d entries\n", len(m.resume.Education)))
	b.WriteString(fmt.Sprintf("Experience: %d entries\n", len(m.resume.Experience)))
	b.WriteString(fmt.Sprintf("Skills:     %d\n", len(m.resume.Skills)))
	b.WriteString(fmt.Sprintf("Projects:   %d\n", len(m.resume.Projects)))
	b.WriteString(fmt.Sprintf("Template:   %s\n\n", m.resume.Template))

	if m.account.IsPremium {
		b.WriteString("Plan: premium · unlimited downloads\n")
	} else {
		remaining := 1 - m.account.DownloadCount
		if remaining < 0 {
			remaining = 0
		}
		b.WriteString(fmt.Sprintf("Plan: free · %d download(s) remaining\n", remaining))
	}

	if m.downloadedPath != "" {
		b.WriteString("\nLast download: ")
		b.WriteString(fitText(m.downloadedPath, 55))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorLine(m.errMsg))
	}

	return renderPage("PREVIEW", strings.TrimRight(b.String(), "\n"),
		"d: download │ u: upgrade │ e: edit │ t: template │ l: logout │ q: quit")
}
