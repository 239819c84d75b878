package openprompt

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/prosperity/internal/ui/styles"
)

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestPrompt_ClosedIgnoresInput(t *testing.T) {
	m := New()

	m = typeText(m, "abc")

	assert.False(t, m.Active())
	assert.Empty(t, m.Value())
	assert.Empty(t, m.View(styles.For(styles.Dark), 60))
}

func TestPrompt_TypeAndSubmit(t *testing.T) {
	m := New()
	m.Open("/music")

	m = typeText(m, "a.mp3")
	assert.Equal(t, "a.mp3", m.Value())

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	assert.False(t, m.Active())
	assert.Equal(t, SubmitMsg{Text: "a.mp3", Base: "/music"}, cmd())
}

func TestPrompt_Cancel(t *testing.T) {
	m := New()
	m.Open("/music")
	m = typeText(m, "x")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	assert.False(t, m.Active())
	assert.Equal(t, CancelMsg{}, cmd())
}

func TestPrompt_ReopenClearsText(t *testing.T) {
	m := New()
	m.Open("/a")
	m = typeText(m, "old")
	m.Close()

	m.Open("/b")

	assert.Empty(t, m.Value())
	assert.True(t, m.Active())
}

func TestPrompt_View(t *testing.T) {
	m := New()
	m.Open("/music")
	m = typeText(m, "song.flac")

	out := ansi.Strip(m.View(styles.For(styles.Light), 60))

	assert.Contains(t, out, "Open files from /music")
	assert.Contains(t, out, "song.flac")
	assert.Equal(t, Height, lipgloss.Height(out))
}
