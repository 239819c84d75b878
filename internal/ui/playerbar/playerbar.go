// Package playerbar renders the transport panel: status, seek bar,
// volume and theme control.
package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/prosperity/internal/icons"
	"github.com/llehouerou/prosperity/internal/player"
	"github.com/llehouerou/prosperity/internal/transport"
	"github.com/llehouerou/prosperity/internal/ui/render"
	"github.com/llehouerou/prosperity/internal/ui/styles"
)

// Height is the rendered height: three content rows plus the border.
const Height = 5

const volumeBarWidth = 20

// SeekRow is the line of the seek bar, counted from the top border.
const SeekRow = 2

// seekBarStart is the column of the first seek bar cell (border and padding).
const seekBarStart = 2

// State holds everything needed to render the player bar.
type State struct {
	Status     string // "Loaded: <name>" or the empty-state text
	Summary    string // "Artist - Title" from tags, empty when untagged
	TimeText   string // "mm:ss / mm:ss"
	Position   time.Duration
	Duration   time.Duration
	Playback   player.State
	Volume     int
	ThemeLabel string
}

// NewState builds the bar state from a controller snapshot.
func NewState(v transport.View, mode styles.Mode) State {
	s := State{
		Status:     v.Status,
		TimeText:   v.TimeText,
		Position:   v.Position,
		Duration:   v.Duration,
		Playback:   v.State,
		Volume:     v.Volume,
		ThemeLabel: mode.ButtonLabel(),
	}
	// Only show tag info when it adds something beyond the file name.
	if v.Info != nil && v.Info.Artist != "" {
		s.Summary = v.Info.Summary()
	}
	return s
}

// Render returns the player bar for the given width using theme t.
func Render(s State, t *styles.Theme, width int) string {
	st := t.S()
	inner := max(width-4, 10) // border + padding

	status := st.Title.Render(stateIcon(s.Playback) + " " + render.Sanitize(s.Status))
	summary := st.Muted.Render(render.Truncate(s.Summary, inner/2))
	top := render.Row(status, summary, inner)

	timeText := st.Base.Render(s.TimeText)
	barWidth := seekBarWidth(s.TimeText, width)
	seek := SeekBar(s.Position, s.Duration, barWidth, t) + st.Base.Render("  ") + timeText

	vol := st.Base.Render(icons.Volume(s.Volume)+" ") +
		VolumeBar(s.Volume, volumeBarWidth, t) +
		st.Base.Render(fmt.Sprintf(" %3d%%", s.Volume))
	button := st.Button.Render(icons.Theme() + " " + s.ThemeLabel)
	bottom := render.Row(vol, button, inner)

	body := strings.Join([]string{top, seek, bottom}, "\n")
	return st.Panel.Padding(0, 1).Width(width - 2).Render(body)
}

func seekBarWidth(timeText string, width int) int {
	inner := max(width-4, 10)
	return max(inner-lipgloss.Width(timeText)-2, 1)
}

// SeekAt maps column x of the seek row to a position in [0, s.Duration].
// The first cell is the start and the last cell the end of the track.
// ok is false outside the bar or when the duration is unknown.
func SeekAt(s State, width, x int) (time.Duration, bool) {
	if s.Duration <= 0 {
		return 0, false
	}
	w := seekBarWidth(s.TimeText, width)
	cell := x - seekBarStart
	if cell < 0 || cell >= w {
		return 0, false
	}
	if w == 1 {
		return 0, true
	}
	return s.Duration * time.Duration(cell) / time.Duration(w-1), true
}

func stateIcon(s player.State) string {
	switch s {
	case player.Playing:
		return icons.Play()
	case player.Paused:
		return icons.Pause()
	case player.Idle, player.Loaded, player.Stopped:
		return icons.Stop()
	}
	return icons.Stop()
}
