package trackpanel

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/prosperity/internal/ui/styles"
)

func names(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("track%02d.mp3", i)
	}
	return out
}

func TestMove_Clamps(t *testing.T) {
	m := New()
	m.SetSize(40, 14)

	m.Move(-1, 5)
	assert.Equal(t, 0, m.Cursor())

	m.Move(3, 5)
	assert.Equal(t, 3, m.Cursor())

	m.Move(10, 5)
	assert.Equal(t, 4, m.Cursor())
}

func TestJump_EmptyResets(t *testing.T) {
	m := New()
	m.SetSize(40, 14)
	m.Jump(3, 5)

	m.Jump(2, 0)

	assert.Equal(t, 0, m.Cursor())
	assert.Equal(t, 0, m.Offset())
}

func TestScroll_KeepsCursorVisible(t *testing.T) {
	m := New()
	m.SetSize(40, 14) // 10 list rows
	n := 50

	m.Jump(20, n)
	start, end := m.VisibleRange(n)
	assert.Equal(t, 10, end-start)
	assert.True(t, m.Cursor() >= start+scrollMargin && m.Cursor() < end-scrollMargin+1,
		"cursor %d outside [%d,%d)", m.Cursor(), start, end)

	m.Jump(n-1, n)
	_, end = m.VisibleRange(n)
	assert.Equal(t, n, end, "last row visible at end")

	m.Jump(0, n)
	start, _ = m.VisibleRange(n)
	assert.Equal(t, 0, start)
}

func TestVisibleRange_ShortList(t *testing.T) {
	m := New()
	m.SetSize(40, 14)

	start, end := m.VisibleRange(3)

	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)
}

func TestView_MarksCurrentTrack(t *testing.T) {
	m := New()
	m.SetSize(40, 10)

	out := ansi.Strip(m.View(names(3), 1, styles.For(styles.Dark)))

	assert.Contains(t, out, "Playlist (2/3)")
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "track01.mp3") {
			assert.Contains(t, line, "> track01.mp3")
		}
	}
	assert.Equal(t, 10, lipgloss.Height(out))
	assert.Equal(t, 40, lipgloss.Width(out))
}

func TestView_Empty(t *testing.T) {
	m := New()
	m.SetSize(40, 8)

	out := ansi.Strip(m.View(nil, -1, styles.For(styles.Light)))

	assert.Contains(t, out, "Playlist (0/0)")
	assert.Contains(t, out, "Press o to open files")
}

func TestView_ZeroSize(t *testing.T) {
	assert.Empty(t, New().View(names(2), 0, styles.For(styles.Dark)))
}

func TestRowAt(t *testing.T) {
	m := New()
	m.SetSize(40, 14) // ten track rows

	tests := []struct {
		y    int
		want int
		ok   bool
	}{
		{0, 0, false}, // border
		{2, 0, false}, // separator
		{3, 0, true},
		{7, 4, true},
		{8, 0, false}, // past the last track
	}
	for _, tt := range tests {
		got, ok := m.RowAt(tt.y, 5)
		assert.Equal(t, tt.ok, ok, "y=%d", tt.y)
		assert.Equal(t, tt.want, got, "y=%d", tt.y)
	}
}

func TestRowAt_FollowsScroll(t *testing.T) {
	m := New()
	m.SetSize(40, 14)
	tracks := names(30)
	m.Jump(29, len(tracks))

	lines := strings.Split(ansi.Strip(m.View(tracks, -1, styles.For(styles.Dark))), "\n")
	for y := range lines {
		if i, ok := m.RowAt(y, len(tracks)); ok {
			assert.Contains(t, lines[y], tracks[i], "line %d", y)
		}
	}
	i, ok := m.RowAt(3, len(tracks))
	assert.True(t, ok)
	assert.Equal(t, 20, i)
}
