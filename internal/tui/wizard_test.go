package tui

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/resumekit/resumekit/internal/adapter"
	"github.com/resumekit/resumekit/internal/service"
	"github.com/resumekit/resumekit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWizard(account models.AuthResponse) wizardModel {
	return newWizardModel(context.Background(), &service.ClientServices{}, account)
}

func pressKey(t *testing.T, m wizardModel, key tea.KeyMsg) wizardModel {
	t.Helper()
	updated, _ := m.Update(key)
	next, ok := updated.(wizardModel)
	require.True(t, ok)
	return next
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// ───────────────────────── Download gating ─────────────────────────

func TestPreview_CappedAccountRoutesToUpgrade(t *testing.T) {
	m := newTestWizard(models.AuthResponse{FullName: "Jane Doe", Email: "jane@example.com", DownloadCount: 1})
	m.step = stepPreview

	next := pressKey(t, m, runeKey('d'))

	assert.Equal(t, stepUpgrade, next.step)
	assert.Equal(t, upgradeOrdering, next.upgrade)
	assert.True(t, next.busy)
}

func TestPreview_PremiumDownloadsDirectly(t *testing.T) {
	m := newTestWizard(models.AuthResponse{FullName: "Jane Doe", Email: "jane@example.com", DownloadCount: 5, IsPremium: true})
	m.step = stepPreview

	next := pressKey(t, m, runeKey('d'))

	assert.Equal(t, stepPreview, next.step)
	assert.True(t, next.busy)
	assert.Equal(t, "Generating resume", next.busyLabel)
}

func TestWizard_DeniedDownloadOpensUpgrade(t *testing.T) {
	m := newTestWizard(models.AuthResponse{FullName: "Jane Doe", Email: "jane@example.com"})
	m.step = stepPreview

	updated, _ := m.Update(downloadDoneMsg{err: fmt.Errorf("track download: %w", adapter.ErrForbidden)})
	next, ok := updated.(wizardModel)
	require.True(t, ok)

	assert.Equal(t, stepUpgrade, next.step)
	assert.Equal(t, upgradeOrdering, next.upgrade)
	assert.Empty(t, next.errMsg)
	assert.GreaterOrEqual(t, next.account.DownloadCount, 1)
}

func TestWizard_DownloadErrorShowsMessage(t *testing.T) {
	m := newTestWizard(models.AuthResponse{FullName: "Jane Doe", Email: "jane@example.com"})
	m.step = stepPreview

	updated, _ := m.Update(downloadDoneMsg{err: fmt.Errorf("render resume: disk full")})
	next, ok := updated.(wizardModel)
	require.True(t, ok)

	assert.Equal(t, stepPreview, next.step)
	assert.NotEmpty(t, next.errMsg)
}

// ───────────────────────── Section entry cursor ─────────────────────────

func sectionFixture() wizardModel {
	m := newTestWizard(models.AuthResponse{FullName: "Jane Doe", Email: "jane@example.com"})
	m.step = stepEducation
	m.resume.Education = []models.Education{
		{School: "First School"},
		{School: "Second School"},
		{School: "Third School"},
	}
	return m
}

func TestSection_CursorWalksEntries(t *testing.T) {
	m := sectionFixture()

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 2, m.entryCursor)

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, m.entryCursor)

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, -1, m.entryCursor, "moving past the last entry deselects")
}

func TestSection_EditEntryInPlace(t *testing.T) {
	m := sectionFixture()

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 0, m.entryCursor)

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlE})
	require.Equal(t, 0, m.editIdx)
	require.Equal(t, "First School", m.education[0].Value())

	m.education[0].SetValue("Renamed School")
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Len(t, m.resume.Education, 3, "in-place edit must not append")
	assert.Equal(t, "Renamed School", m.resume.Education[0].School)
	assert.Equal(t, "Second School", m.resume.Education[1].School)
	assert.Equal(t, -1, m.editIdx)
}

func TestSection_RemoveByIndex(t *testing.T) {
	m := sectionFixture()

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 1, m.entryCursor)

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})

	require.Len(t, m.resume.Education, 2)
	assert.Equal(t, "First School", m.resume.Education[0].School)
	assert.Equal(t, "Third School", m.resume.Education[1].School)
}

func TestSection_RemoveWithoutSelectionDropsLast(t *testing.T) {
	m := sectionFixture()

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})

	require.Len(t, m.resume.Education, 2)
	assert.Equal(t, "Second School", m.resume.Education[1].School)
}
