// Package openprompt is the one-line prompt used to add files to the
// playlist.
package openprompt

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/prosperity/internal/ui/render"
	"github.com/llehouerou/prosperity/internal/ui/styles"
)

// SubmitMsg is sent when the user confirms the prompt.
type SubmitMsg struct {
	Text string
	Base string // folder relative entries resolve against
}

// CancelMsg is sent when the user dismisses the prompt.
type CancelMsg struct{}

// Model wraps a text input with open/close state.
type Model struct {
	input  textinput.Model
	base   string
	active bool
}

// New creates a closed prompt.
func New() Model {
	ti := textinput.New()
	ti.Placeholder = "file, folder or *.mp3 (quote paths with spaces)"
	ti.Prompt = "> "
	ti.CharLimit = 4096
	return Model{input: ti}
}

// Open shows the prompt with an empty line; relative entries will resolve
// against base.
func (m *Model) Open(base string) tea.Cmd {
	m.base = base
	m.active = true
	m.input.SetValue("")
	return m.input.Focus()
}

// Close hides the prompt.
func (m *Model) Close() {
	m.active = false
	m.input.Blur()
}

// Active reports whether the prompt is shown and takes key input.
func (m Model) Active() bool {
	return m.active
}

// Value returns the current text.
func (m Model) Value() string {
	return m.input.Value()
}

// Update handles a message while the prompt is active.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.Close()
			return m, func() tea.Msg { return CancelMsg{} }
		case "enter":
			text, base := m.input.Value(), m.base
			m.Close()
			return m, func() tea.Msg { return SubmitMsg{Text: text, Base: base} }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt at width, or nothing when closed.
func (m Model) View(t *styles.Theme, width int) string {
	if !m.active {
		return ""
	}
	st := t.S()
	inner := max(width-4, 10)
	m.input.Width = max(inner-3, 1) // prompt and cursor

	title := st.Title.Render(render.Truncate("Open files from "+m.base, inner))
	hint := st.Muted.Render("enter: add  esc: cancel")
	return st.Panel.Padding(0, 1).Width(width - 2).Render(title + "\n" + m.input.View() + "\n" + hint)
}

// Height is the rendered height of an open prompt.
const Height = 5
