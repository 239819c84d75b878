// Package trackpanel renders the playlist with a scrollable browse cursor.
package trackpanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/prosperity/internal/icons"
	"github.com/llehouerou/prosperity/internal/ui/render"
	"github.com/llehouerou/prosperity/internal/ui/styles"
)

// scrollMargin is how many rows stay visible above and below the cursor.
const scrollMargin = 2

// overhead is the border plus header and separator rows.
const overhead = 4

// headerRows precede the first track: top border, header, separator.
const headerRows = 3

// Model is the browse cursor over the playlist. It is independent of the
// playlist's playback cursor: moving it never changes what plays.
type Model struct {
	width, height int
	pos           int // browse cursor (0-indexed)
	offset        int // first visible row
}

// New creates an empty track panel.
func New() Model {
	return Model{}
}

// SetSize sets the panel dimensions including its border.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Cursor returns the browse cursor position.
func (m Model) Cursor() int {
	return m.pos
}

// Offset returns the first visible row.
func (m Model) Offset() int {
	return m.offset
}

// Move moves the cursor by delta within a list of n tracks.
func (m *Model) Move(delta, n int) {
	m.Jump(m.pos+delta, n)
}

// Jump moves the cursor to index, clamped to the list.
func (m *Model) Jump(index, n int) {
	if n == 0 {
		m.pos, m.offset = 0, 0
		return
	}
	m.pos = min(max(index, 0), n-1)
	m.ensureVisible(n)
}

func (m Model) listHeight() int {
	return max(m.height-overhead, 0)
}

func (m *Model) ensureVisible(n int) {
	height := m.listHeight()
	if height <= 0 {
		return
	}
	margin := min(scrollMargin, (height-1)/2)

	// Scroll up: cursor too close to top
	if m.pos < m.offset+margin {
		m.offset = max(m.pos-margin, 0)
	}
	// Scroll down: cursor too close to bottom
	if m.pos >= m.offset+height-margin {
		m.offset = m.pos - height + margin + 1
	}
	m.offset = min(max(m.offset, 0), max(n-height, 0))
}

// VisibleRange returns [start, end) for a list of n tracks.
func (m Model) VisibleRange(n int) (start, end int) {
	height := m.listHeight()
	if n == 0 || height <= 0 {
		return 0, 0
	}
	return m.offset, min(m.offset+height, n)
}

// RowAt returns the index of the track drawn on panel line y, for a list
// of n tracks. ok is false when y is not on a track row.
func (m Model) RowAt(y, n int) (int, bool) {
	start, end := m.VisibleRange(n)
	i := start + y - headerRows
	if y < headerRows || i >= end {
		return 0, false
	}
	return i, true
}

// View renders tracks with the playing track marked at current.
func (m Model) View(tracks []string, current int, t *styles.Theme) string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	st := t.S()
	inner := max(m.width-2, 1)

	pos := 0
	if current >= 0 {
		pos = current + 1
	}
	header := st.Title.Render(render.Fit(fmt.Sprintf("Playlist (%d/%d)", pos, len(tracks)), inner))
	rows := []string{header, st.Muted.Render(strings.Repeat("─", inner))}

	start, end := m.VisibleRange(len(tracks))
	marker := icons.Current()
	markerWidth := lipgloss.Width(marker) + 1
	for i := start; i < end; i++ {
		prefix := strings.Repeat(" ", markerWidth)
		style := st.Base
		if i == current {
			prefix = marker + " "
			style = st.Playing
		}
		if i == m.pos {
			style = st.Cursor
		}
		name := render.Fit(icons.FormatAudio(tracks[i]), max(inner-markerWidth, 1))
		rows = append(rows, style.Render(prefix+name))
	}
	if len(tracks) == 0 {
		rows = append(rows, st.Muted.Render(render.Fit("Press o to open files", inner)))
	}
	for len(rows) < m.height-2 {
		rows = append(rows, st.Base.Render(strings.Repeat(" ", inner)))
	}

	return st.ListPanel.Width(inner).Render(strings.Join(rows, "\n"))
}
