package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/resumekit/resumekit/internal/render"
	"github.com/resumekit/resumekit/models"
)

// ── step 1: personal details ──

func (m wizardModel) updatePersonal(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "tab":
			m.focus = focusNextInput(m.personal, m.focus)
			return m, nil
		case "shift+tab":
			m.focus = focusPrevInput(m.personal, m.focus)
			return m, nil
		case "enter":
			name := strings.TrimSpace(m.personal[0].Value())
			if name == "" {
				m.errMsg = "Full name is required"
				return m, nil
			}
			m.resume.Personal = models.PersonalInfo{
				FullName: name,
				Email:    strings.TrimSpace(m.personal[1].Value()),
				Phone:    strings.TrimSpace(m.personal[2].Value()),
				Location: strings.TrimSpace(m.personal[3].Value()),
				Summary:  strings.TrimSpace(m.personal[4].Value()),
			}
			m.enterStep(stepEducation)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.personal[m.focus], cmd = m.personal[m.focus].Update(msg)
	return m, cmd
}

func (m wizardModel) viewPersonal() string {
	var b strings.Builder
	b.WriteString(renderForm(
		[]string{"Full name", "Email", "Phone", "Location", "Summary"},
		m.personal,
	))

	if m.errMsg != "" {
		b.WriteString(errorLine(m.errMsg))
	}

	return renderPage("STEP 1/6 · PERSONAL DETAILS", strings.TrimRight(b.String(), "\n"),
		"tab: next field │ enter: next step")
}

// ── steps 2, 3, 5: repeating sections ──
//
// The education, experience, and projects screens share one behaviour: a
// small entry form over a list of already added entries. Enter with a filled
// form commits the entry; enter on an empty form advances to the next step.
// Up/down selects an existing entry, which can then be loaded back into the
// form for an in-place edit or removed by its index.

func (m wizardModel) updateSection(msg tea.Msg, inputs []textinput.Model, commit func() error, next, prev wizardStep) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.enterStep(prev)
			return m, nil
		case "tab":
			m.focus = focusNextInput(inputs, m.focus)
			return m, nil
		case "shift+tab":
			m.focus = focusPrevInput(inputs, m.focus)
			return m, nil
		case "up":
			if n := m.sectionCount(); n > 0 {
				if m.entryCursor < 0 {
					m.entryCursor = n - 1
				} else if m.entryCursor > 0 {
					m.entryCursor--
				}
			}
			return m, nil
		case "down":
			if m.entryCursor >= 0 {
				m.entryCursor++
				if m.entryCursor >= m.sectionCount() {
					m.entryCursor = -1
				}
			}
			return m, nil
		case "ctrl+e":
			if m.entryCursor >= 0 {
				m.loadEntry(m.entryCursor, inputs)
				m.editIdx = m.entryCursor
				m.errMsg = ""
				inputs[m.focus].Blur()
				m.focus = 0
				inputs[0].Focus()
			}
			return m, nil
		case "ctrl+d":
			m.removeEntry(m.entryCursor)
			if m.entryCursor >= m.sectionCount() {
				m.entryCursor = m.sectionCount() - 1
			}
			m.editIdx = -1
			return m, nil
		case "enter":
			if inputsEmpty(inputs) {
				m.enterStep(next)
				return m, nil
			}
			if err := commit(); err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.errMsg = ""
			m.editIdx = -1
			m.entryCursor = -1
			clearInputs(inputs)
			inputs[m.focus].Blur()
			m.focus = 0
			inputs[0].Focus()
			return m, nil
		}
	}

	var cmd tea.Cmd
	inputs[m.focus], cmd = inputs[m.focus].Update(msg)
	return m, cmd
}

// The commit funcs write the form into the resume: at editIdx when an
// in-place edit is active, appended otherwise.

func (m *wizardModel) commitEducation() error {
	school := strings.TrimSpace(m.education[0].Value())
	if school == "" {
		return fmt.Errorf("school is required")
	}
	entry := models.Education{
		School:    school,
		Degree:    strings.TrimSpace(m.education[1].Value()),
		Field:     strings.TrimSpace(m.education[2].Value()),
		StartYear: strings.TrimSpace(m.education[3].Value()),
		EndYear:   strings.TrimSpace(m.education[4].Value()),
	}
	if m.editIdx >= 0 && m.editIdx < len(m.resume.Education) {
		m.resume.Education[m.editIdx] = entry
		return nil
	}
	m.resume.Education = append(m.resume.Education, entry)
	return nil
}

func (m *wizardModel) commitExperience() error {
	company := strings.TrimSpace(m.experience[0].Value())
	if company == "" {
		return fmt.Errorf("company is required")
	}
	entry := models.Experience{
		Company:     company,
		Role:        strings.TrimSpace(m.experience[1].Value()),
		StartDate:   strings.TrimSpace(m.experience[2].Value()),
		EndDate:     strings.TrimSpace(m.experience[3].Value()),
		Description: strings.TrimSpace(m.experience[4].Value()),
	}
	if m.editIdx >= 0 && m.editIdx < len(m.resume.Experience) {
		m.resume.Experience[m.editIdx] = entry
		return nil
	}
	m.resume.Experience = append(m.resume.Experience, entry)
	return nil
}

func (m *wizardModel) commitProject() error {
	name := strings.TrimSpace(m.project[0].Value())
	if name == "" {
		return fmt.Errorf("project name is required")
	}
	entry := models.Project{
		Name:        name,
		Description: strings.TrimSpace(m.project[1].Value()),
		Link:        strings.TrimSpace(m.project[2].Value()),
	}
	if m.editIdx >= 0 && m.editIdx < len(m.resume.Projects) {
		m.resume.Projects[m.editIdx] = entry
		return nil
	}
	m.resume.Projects = append(m.resume.Projects, entry)
	return nil
}

// sectionCount returns how many entries the current section holds.
func (m wizardModel) sectionCount() int {
	switch m.step {
	case stepEducation:
		return len(m.resume.Education)
	case stepExperience:
		return len(m.resume.Experience)
	case stepSkills:
		return len(m.resume.Skills)
	case stepProjects:
		return len(m.resume.Projects)
	}
	return 0
}

// loadEntry copies the entry at idx back into the section form.
func (m *wizardModel) loadEntry(idx int, inputs []textinput.Model) {
	switch m.step {
	case stepEducation:
		e := m.resume.Education[idx]
		for i, v := range []string{e.School, e.Degree, e.Field, e.StartYear, e.EndYear} {
			inputs[i].SetValue(v)
		}
	case stepExperience:
		e := m.resume.Experience[idx]
		for i, v := range []string{e.Company, e.Role, e.StartDate, e.EndDate, e.Description} {
			inputs[i].SetValue(v)
		}
	case stepProjects:
		p := m.resume.Projects[idx]
		for i, v := range []string{p.Name, p.Description, p.Link} {
			inputs[i].SetValue(v)
		}
	}
}

// removeEntry deletes the entry at idx from the current section; a negative
// idx removes the most recently added entry.
func (m *wizardModel) removeEntry(idx int) {
	n := m.sectionCount()
	if n == 0 {
		return
	}
	if idx < 0 || idx >= n {
		idx = n - 1
	}

	switch m.step {
	case stepEducation:
		m.resume.Education = append(m.resume.Education[:idx], m.resume.Education[idx+1:]...)
	case stepExperience:
		m.resume.Experience = append(m.resume.Experience[:idx], m.resume.Experience[idx+1:]...)
	case stepSkills:
		m.resume.Skills = append(m.resume.Skills[:idx], m.resume.Skills[idx+1:]...)
	case stepProjects:
		m.resume.Projects = append(m.resume.Projects[:idx], m.resume.Projects[idx+1:]...)
	}
}

func (m wizardModel) viewSection(title string, inputs []textinput.Model, entries []string) string {
	var b strings.Builder

	if len(entries) > 0 {
		b.WriteString("Added:\n")
		for i, e := range entries {
			if i == m.entryCursor {
				b.WriteString("> • ")
			} else {
				b.WriteString("  • ")
			}
			b.WriteString(fitText(e, 60))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	labels := sectionLabels(m.step)
	b.WriteString(renderForm(labels, inputs))

	if m.editIdx >= 0 {
		b.WriteString(fmt.Sprintf("\nEditing entry %d\n", m.editIdx+1))
	}
	if m.errMsg != "" {
		b.WriteString(errorLine(m.errMsg))
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"enter: add/save │ empty form: next step │ ↑/↓: select │ ctrl+e: edit │ ctrl+d: remove │ esc: back")
}

func sectionLabels(step wizardStep) []string {
	switch step {
	case stepEducation:
		return []string{"School", "Degree", "Field", "Start year", "End year"}
	case stepExperience:
		return []string{"Company", "Role", "Start date", "End date", "Description"}
	case stepProjects:
		return []string{"Name", "Description", "Link"}
	default:
		return nil
	}
}

func (m wizardModel) educationLines() []string {
	lines := make([]string, 0, len(m.resume.Education))
	for _, e := range m.resume.Education {
		lines = append(lines, fmt.Sprintf("%s, %s (%s-%s)", e.School, orDash(e.Degree), e.StartYear, e.EndYear))
	}
	return lines
}

func (m wizardModel) experienceLines() []string {
	lines := make([]string, 0, len(m.resume.Experience))
	for _, e := range m.resume.Experience {
		lines = append(lines, fmt.Sprintf("%s at %s (%s-%s)", orDash(e.Role), e.Company, e.StartDate, orDash(e.EndDate)))
	}
	return lines
}

func (m wizardModel) projectLines() []string {
	lines := make([]string, 0, len(m.resume.Projects))
	for _, p := range m.resume.Projects {
		lines = append(lines, p.Name)
	}
	return lines
}

// ── step 4: skills ──

func (m wizardModel) updateSkills(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.enterStep(stepExperience)
			return m, nil
		case "ctrl+d":
			m.removeEntry(-1)
			return m, nil
		case "enter":
			skill := strings.TrimSpace(m.skill.Value())
			if skill == "" {
				m.enterStep(stepProjects)
				return m, nil
			}
			m.resume.Skills = append(m.resume.Skills, skill)
			m.skill.SetValue("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.skill, cmd = m.skill.Update(msg)
	return m, cmd
}

func (m wizardModel) viewSkills() string {
	var b strings.Builder

	if len(m.resume.Skills) > 0 {
		b.WriteString("Added: ")
		b.WriteString(fitText(strings.Join(m.resume.Skills, ", "), 50))
		b.WriteString("\n\n")
	}

	b.WriteString("Skill │ [")
	b.WriteString(m.skill.View())
	b.WriteString("]\n")

	return renderPage("STEP 4/6 · SKILLS", strings.TrimRight(b.String(), "\n"),
		"enter: add skill │ enter on empty field: next step │ ctrl+d: remove last │ esc: back")
}

// ── step 6: template ──

func (m wizardModel) updateTemplate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.enterStep(stepProjects)
	case "up", "k":
		if m.templateIdx > 0 {
			m.templateIdx--
		}
	case "down", "j":
		if m.templateIdx < len(render.TemplateNames)-1 {
			m.templateIdx++
		}
	case "enter":
		m.resume.Template = render.TemplateNames[m.templateIdx]
		m.enterStep(stepPreview)
	}

	return m, nil
}

func (m wizardModel) viewTemplate() string {
	var b strings.Builder
	b.WriteString("Choose a layout:\n\n")
	for i := range render.TemplateNames {
		b.WriteString(templateLabel(i, m.templateIdx))
		b.WriteString("\n")
	}

	return renderPage("STEP 6/6 · TEMPLATE", strings.TrimRight(b.String(), "\n"),
		"↑/↓: select │ enter: preview │ esc: back")
}
