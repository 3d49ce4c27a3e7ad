package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/resumekit/resumekit/models"
)

// The upgrade screen walks the premium checkout: a payment order is opened
// on entry, the user completes it in the provider's own checkout surface,
// and the resulting payment id and signature are pasted back here for
// verification. The order id can be copied to the clipboard for that
// round-trip.

func (m wizardModel) updateUpgrade(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.upgrade == upgradeDone {
		switch keyMsg.String() {
		case "enter", "esc":
			m.enterStep(stepPreview)
		}
		return m, nil
	}

	if m.upgrade != upgradeCollect {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.enterStep(stepPreview)
		return m, nil
	case "ctrl+o":
		return m, cmdCopyToClipboard(m.order.ID)
	case "tab":
		m.upgradeFocus = focusNextInput(m.upgradeInputs, m.upgradeFocus)
		return m, nil
	case "shift+tab":
		m.upgradeFocus = focusPrevInput(m.upgradeInputs, m.upgradeFocus)
		return m, nil
	case "enter":
		paymentID := strings.TrimSpace(m.upgradeInputs[0].Value())
		signature := strings.TrimSpace(m.upgradeInputs[1].Value())
		if paymentID == "" || signature == "" {
			m.errMsg = "Payment id and signature are required"
			return m, nil
		}

		m.errMsg = ""
		m.upgrade = upgradeVerifying
		m.busy = true
		m.busyLabel = "Verifying payment"
		return m, tea.Batch(m.spinner.Tick, m.cmdVerifyPayment(models.PaymentVerification{
			OrderID:   m.order.ID,
			PaymentID: paymentID,
			Signature: signature,
		}))
	}

	var cmd tea.Cmd
	m.upgradeInputs[m.upgradeFocus], cmd = m.upgradeInputs[m.upgradeFocus].Update(msg)
	return m, cmd
}

func (m wizardModel) viewUpgrade() string {
	var b strings.Builder

	switch m.upgrade {
	case upgradeOrdering, upgradeVerifying:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(m.busyLabel)
		b.WriteString("...\n")
		return renderPage("UPGRADE TO PREMIUM", strings.TrimRight(b.String(), "\n"), "")

	case upgradeDone:
		b.WriteString(m.upgradeMessage)
		b.WriteString("\n")
		return renderPage("UPGRADE TO PREMIUM", strings.TrimRight(b.String(), "\n"), "enter: back to preview")
	}

	b.WriteString(fmt.Sprintf("Order %s\n", m.order.ID))
	b.WriteString(fmt.Sprintf("Amount: %d %s\n\n", m.order.Amount, m.order.Currency))
	b.WriteString("Complete the checkout with the provider, then paste the\nresult below.\n\n")

	b.WriteString("Payment id │ [")
	b.WriteString(m.upgradeInputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Signature  │ [")
	b.WriteString(m.upgradeInputs[1].View())
	b.WriteString("]\n")

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorLine(m.errMsg))
	}

	return renderPage("UPGRADE TO PREMIUM", strings.TrimRight(b.String(), "\n"),
		"ctrl+o: copy order id │ tab: next field │ enter: verify │ esc: cancel")
}
