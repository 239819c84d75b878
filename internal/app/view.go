package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/prosperity/internal/errmsg"
	"github.com/llehouerou/prosperity/internal/keymap"
	"github.com/llehouerou/prosperity/internal/ui/openprompt"
	"github.com/llehouerou/prosperity/internal/ui/playerbar"
	"github.com/llehouerou/prosperity/internal/ui/render"
	"github.com/llehouerou/prosperity/internal/ui/styles"
)

// statusLines is the message line plus the key hint line.
const statusLines = 2

// resize recomputes component sizes from the window size.
func (m *Model) resize() {
	listHeight := m.height - playerbar.Height - statusLines
	if m.prompt.Active() {
		listHeight -= openprompt.Height
	}
	m.tracks.SetSize(m.width, max(listHeight, 0))
	m.tracks.Jump(m.tracks.Cursor(), m.ctrl.Len())
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	t := styles.For(m.theme)
	v := m.ctrl.View()

	var sections []string
	if m.showHelp {
		sections = append(sections, m.renderHelp(t))
	} else {
		sections = append(sections, m.tracks.View(v.Tracks, v.Current, t))
	}
	if m.prompt.Active() {
		sections = append(sections, m.prompt.View(t, m.width))
	}
	sections = append(sections,
		playerbar.Render(playerbar.NewState(v, m.theme), t, m.width),
		m.renderMessage(t, v.Err),
		m.renderHints(t),
	)

	return lipgloss.NewStyle().
		Background(t.Background).
		Width(m.width).
		Height(m.height).
		MaxHeight(m.height).
		Render(strings.Join(sections, "\n"))
}

func (m Model) renderMessage(t *styles.Theme, loadErr error) string {
	st := t.S()
	text, isErr := m.message, m.messageErr
	if text == "" && loadErr != nil {
		text, isErr = errmsg.Format(errmsg.OpTrackLoad, loadErr), true
	}
	line := render.Fit(text, m.width)
	if isErr {
		return st.Error.Render(line)
	}
	return st.Muted.Render(line)
}

func (m Model) renderHints(t *styles.Theme) string {
	hint := m.keys.Hint(
		keymap.ActionPlayPause,
		keymap.ActionStop,
		keymap.ActionPrevTrack,
		keymap.ActionNextTrack,
		keymap.ActionOpen,
		keymap.ActionToggleTheme,
		keymap.ActionHelp,
		keymap.ActionQuit,
	)
	return t.S().Muted.Render(render.Fit(hint, m.width))
}

func (m Model) renderHelp(t *styles.Theme) string {
	st := t.S()
	height := max(m.height-playerbar.Height-statusLines, 3)
	inner := max(m.width-2, 1)

	var lines []string
	for _, ctx := range keymap.Contexts() {
		lines = append(lines, st.Title.Render(render.Fit(strings.ToUpper(ctx[:1])+ctx[1:], inner)))
		for _, b := range keymap.ByContext(ctx) {
			keys := keymap.DisplayKeys(b.Keys)
			lines = append(lines, st.Base.Render(render.Fit("  "+render.Pad(keys, 16)+b.Description, inner)))
		}
	}
	lines = lines[:min(len(lines), height-2)]
	for len(lines) < height-2 {
		lines = append(lines, st.Base.Render(strings.Repeat(" ", inner)))
	}
	return st.ListPanel.Width(inner).Render(strings.Join(lines, "\n"))
}
