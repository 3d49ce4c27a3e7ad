package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/resumekit/resumekit/internal/adapter"
	"github.com/resumekit/resumekit/internal/render"
	"github.com/resumekit/resumekit/internal/service"
	"github.com/resumekit/resumekit/models"
)

// wizardStep enumerates the screens of the resume editor in walk order.
type wizardStep int

const (
	stepPersonal wizardStep = iota
	stepEducation
	stepExperience
	stepSkills
	stepProjects
	stepTemplate
	stepPreview
	stepUpgrade
)

// upgradeStage tracks progress through the premium checkout on the upgrade
// screen.
type upgradeStage int

const (
	upgradeOrdering upgradeStage = iota
	upgradeCollect
	upgradeVerifying
	upgradeDone
)

// wizardModel is the Bubble Tea model for the signed-in part of the client:
// the six-step resume editor plus preview, download, and upgrade screens.
//
// The resume lives only in this model. It starts empty each session and is
// discarded on exit; nothing of it is ever sent to the server.
type wizardModel struct {
	ctx      context.Context
	services *service.ClientServices

	account models.AuthResponse
	resume  *models.Resume

	step wizardStep

	personal   []textinput.Model
	education  []textinput.Model
	experience []textinput.Model
	skill      textinput.Model
	project    []textinput.Model
	focus      int

	// entryCursor selects an already added entry on the repeating-section
	// screens; -1 means no selection. editIdx is the index being edited
	// in place, or -1 when the form appends a new entry.
	entryCursor int
	editIdx     int

	templateIdx int

	spinner   spinner.Model
	busy      bool
	busyLabel string

	upgrade        upgradeStage
	order          models.PaymentOrder
	upgradeInputs  []textinput.Model
	upgradeFocus   int
	upgradeMessage string

	downloadedPath string
	status         string
	errMsg         string
	logout         bool
}

func newWizardModel(ctx context.Context, services *service.ClientServices, account models.AuthResponse) wizardModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := wizardModel{
		ctx:         ctx,
		services:    services,
		account:     account,
		resume:      models.NewResume(),
		spinner:     sp,
		entryCursor: -1,
		editIdx:     -1,
	}
	m.resume.Personal.FullName = account.FullName
	m.resume.Personal.Email = account.Email

	m.personal = newInputs(
		field{"full name", 100},
		field{"email", 254},
		field{"phone", 30},
		field{"location", 100},
		field{"summary", 500},
	)
	m.personal[0].SetValue(account.FullName)
	m.personal[1].SetValue(account.Email)
	m.personal[0].Focus()

	m.education = newInputs(
		field{"school", 150},
		field{"degree", 100},
		field{"field of study", 100},
		field{"start year", 4},
		field{"end year", 4},
	)
	m.experience = newInputs(
		field{"company", 150},
		field{"role", 100},
		field{"start date", 20},
		field{"end date", 20},
		field{"description", 500},
	)
	m.skill = textinput.New()
	m.skill.Placeholder = "skill"
	m.skill.CharLimit = 60
	m.skill.Width = 40

	m.project = newInputs(
		field{"project name", 100},
		field{"description", 500},
		field{"link", 200},
	)

	m.upgradeInputs = newInputs(
		field{"payment id", 100},
		field{"signature", 128},
	)

	return m
}

type field struct {
	placeholder string
	limit       int
}

func newInputs(fields ...field) []textinput.Model {
	inputs := make([]textinput.Model, 0, len(fields))
	for _, f := range fields {
		in := textinput.New()
		in.Placeholder = f.placeholder
		in.CharLimit = f.limit
		in.Width = 40
		inputs = append(inputs, in)
	}
	return inputs
}

func (m wizardModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if m.busy {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case downloadDoneMsg:
		m.busy = false
		if msg.err != nil {
			if errors.Is(msg.err, adapter.ErrForbidden) {
				// The free download is spent. Route straight to the
				// premium checkout instead of showing an error.
				if m.account.DownloadCount < 1 {
					m.account.DownloadCount = 1
				}
				m.errMsg = ""
				return m.startUpgrade()
			}
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.downloadedPath = msg.path
		m.account.DownloadCount = msg.status.DownloadCount
		m.account.IsPremium = msg.status.IsPremium
		m.status = "Saved to " + msg.path
		return m, cmdClearStatus()
	case orderCreatedMsg:
		m.busy = false
		if msg.err != nil {
			m.upgrade = upgradeDone
			m.upgradeMessage = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.order = msg.order
		m.upgrade = upgradeCollect
		m.upgradeFocus = 0
		m.upgradeInputs[0].Focus()
		return m, textinput.Blink
	case verifyDoneMsg:
		m.busy = false
		m.upgrade = upgradeDone
		if msg.err != nil {
			m.upgradeMessage = humanizeServerUnavailableError(msg.err)
		} else {
			m.upgradeMessage = "Payment verified. Premium is active."
			m.account.IsPremium = true
		}
		return m, nil
	case copiedMsg:
		m.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	if m.busy {
		return m, nil
	}

	switch m.step {
	case stepPersonal:
		return m.updatePersonal(msg)
	case stepEducation:
		return m.updateSection(msg, m.education, m.commitEducation, stepExperience, stepPersonal)
	case stepExperience:
		return m.updateSection(msg, m.experience, m.commitExperience, stepSkills, stepEducation)
	case stepSkills:
		return m.updateSkills(msg)
	case stepProjects:
		return m.updateSection(msg, m.project, m.commitProject, stepTemplate, stepSkills)
	case stepTemplate:
		return m.updateTemplate(msg)
	case stepPreview:
		return m.updatePreview(msg)
	case stepUpgrade:
		return m.updateUpgrade(msg)
	}

	return m, nil
}

func (m wizardModel) View() string {
	switch m.step {
	case stepPersonal:
		return m.viewPersonal()
	case stepEducation:
		return m.viewSection("STEP 2/6 · EDUCATION", m.education, m.educationLines())
	case stepExperience:
		return m.viewSection("STEP 3/6 · EXPERIENCE", m.experience, m.experienceLines())
	case stepSkills:
		return m.viewSkills()
	case stepProjects:
		return m.viewSection("STEP 5/6 · PROJECTS", m.project, m.projectLines())
	case stepTemplate:
		return m.viewTemplate()
	case stepPreview:
		return m.viewPreview()
	case stepUpgrade:
		return m.viewUpgrade()
	}
	return ""
}

// startUpgrade opens the premium checkout screen and requests a fresh order.
func (m wizardModel) startUpgrade() (tea.Model, tea.Cmd) {
	m.step = stepUpgrade
	m.upgrade = upgradeOrdering
	m.upgradeMessage = ""
	m.busy = true
	m.busyLabel = "Creating payment order"
	return m, tea.Batch(m.spinner.Tick, m.cmdCreateOrder())
}

// ── commands ──

func (m wizardModel) cmdDownload() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ResumeService
	resume := m.resume
	return func() tea.Msg {
		path, status, err := svc.Download(ctx, resume)
		return downloadDoneMsg{path: path, status: status, err: err}
	}
}

func (m wizardModel) cmdCreateOrder() tea.Cmd {
	ctx := m.ctx
	svc := m.services.UpgradeService
	return func() tea.Msg {
		order, err := svc.CreateOrder(ctx)
		return orderCreatedMsg{order: order, err: err}
	}
}

func (m wizardModel) cmdVerifyPayment(verification models.PaymentVerification) tea.Cmd {
	ctx := m.ctx
	svc := m.services.UpgradeService
	return func() tea.Msg {
		err := svc.VerifyPayment(ctx, verification)
		return verifyDoneMsg{err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return clearStatusMsg{}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// ── shared helpers ──

func (m *wizardModel) enterStep(step wizardStep) {
	m.step = step
	m.focus = 0
	m.errMsg = ""
	m.entryCursor = -1
	m.editIdx = -1
	if inputs := m.stepInputs(); len(inputs) > 0 {
		for i := range inputs {
			inputs[i].Blur()
		}
		inputs[0].Focus()
	}
	if step == stepSkills {
		m.skill.Focus()
	}
}

func (m *wizardModel) stepInputs() []textinput.Model {
	switch m.step {
	case stepPersonal:
		return m.personal
	case stepEducation:
		return m.education
	case stepExperience:
		return m.experience
	case stepProjects:
		return m.project
	default:
		return nil
	}
}

func focusNextInput(inputs []textinput.Model, focus int) int {
	inputs[focus].Blur()
	focus = (focus + 1) % len(inputs)
	inputs[focus].Focus()
	return focus
}

func focusPrevInput(inputs []textinput.Model, focus int) int {
	inputs[focus].Blur()
	focus = (focus - 1 + len(inputs)) % len(inputs)
	inputs[focus].Focus()
	return focus
}

func clearInputs(inputs []textinput.Model) {
	for i := range inputs {
		inputs[i].SetValue("")
	}
}

func inputsEmpty(inputs []textinput.Model) bool {
	for i := range inputs {
		if strings.TrimSpace(inputs[i].Value()) != "" {
			return false
		}
	}
	return true
}

func renderForm(labels []string, inputs []textinput.Model) string {
	width := 0
	for _, l := range labels {
		if len(l) > width {
			width = len(l)
		}
	}

	var b strings.Builder
	for i, l := range labels {
		b.WriteString(fmt.Sprintf("%-*s │ [", width, l))
		b.WriteString(inputs[i].View())
		b.WriteString("]\n")
	}
	return b.String()
}

// templateLabel renders one line of the template picker.
func templateLabel(idx, selected int) string {
	cursor := "  "
	if idx == selected {
		cursor = "> "
	}
	return cursor + render.TemplateNames[idx]
}
