package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/prosperity/internal/player"
)

// With an 80x30 window the track rows start at line 3 and the seek bar
// sits on line 25, covering columns 2 to 62 for a "mm:ss / mm:ss" clock.
const (
	seekLine     = 30 - statusLines - 5 + 2
	firstRowLine = 3
)

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
}

func sizedFixture(t *testing.T, paths ...string) *fixture {
	t.Helper()
	f := newFixture(t)
	f.send(tea.WindowSizeMsg{Width: 80, Height: 30})
	for _, p := range paths {
		f.engine.SetTrackDuration(p, time.Minute)
	}
	if len(paths) > 0 {
		f.open(paths...)
	}
	f.engine.ResetCalls()
	return f
}

func TestMouse_SeekBarClickSeeksAbsolute(t *testing.T) {
	f := sizedFixture(t, "/music/a.mp3")

	f.send(press(32, seekLine))
	f.send(press(62, seekLine))
	f.send(press(2, seekLine))

	assert.Equal(t, []time.Duration{30 * time.Second, time.Minute, 0}, f.engine.Seeks())
}

func TestMouse_SeekBarIgnoredOutsideBarOrWithoutTrack(t *testing.T) {
	f := sizedFixture(t)
	f.send(press(32, seekLine))
	assert.Empty(t, f.engine.Seeks(), "nothing loaded")

	f = sizedFixture(t, "/music/a.mp3")
	f.send(press(70, seekLine))
	assert.Empty(t, f.engine.Seeks(), "clock text is not part of the bar")
}

func TestMouse_DoubleClickPlaysRow(t *testing.T) {
	f := sizedFixture(t, "/music/a.mp3", "/music/b.mp3", "/music/c.mp3")
	now := time.Unix(1000, 0)
	f.model.clock = func() time.Time { return now }

	f.send(press(5, firstRowLine+1))
	assert.Equal(t, 1, f.model.tracks.Cursor())
	assert.Empty(t, f.engine.Calls(), "single click only moves the cursor")

	now = now.Add(200 * time.Millisecond)
	f.send(press(5, firstRowLine+1))

	assert.Equal(t, []string{"load:/music/b.mp3", "play"}, f.engine.Calls())
	assert.Equal(t, 1, f.model.Controller().CurrentIndex())
	assert.Equal(t, player.Playing, f.engine.State())
}

func TestMouse_SlowOrDifferentClicksDoNotPlay(t *testing.T) {
	f := sizedFixture(t, "/music/a.mp3", "/music/b.mp3", "/music/c.mp3")
	now := time.Unix(1000, 0)
	f.model.clock = func() time.Time { return now }

	f.send(press(5, firstRowLine+1))
	now = now.Add(time.Second)
	f.send(press(5, firstRowLine+1))
	now = now.Add(100 * time.Millisecond)
	f.send(press(5, firstRowLine+2))

	assert.Empty(t, f.engine.Calls())
	assert.Equal(t, 2, f.model.tracks.Cursor())
}

func TestMouse_ClickBelowTracksIgnored(t *testing.T) {
	f := sizedFixture(t, "/music/a.mp3", "/music/b.mp3")

	f.send(press(5, firstRowLine+5))

	assert.Equal(t, 0, f.model.tracks.Cursor())
	assert.Empty(t, f.engine.Calls())
}

func TestMouse_WheelMovesCursor(t *testing.T) {
	f := sizedFixture(t, "/music/a.mp3", "/music/b.mp3", "/music/c.mp3")

	f.send(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	f.send(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	f.send(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})

	assert.Equal(t, 1, f.model.tracks.Cursor())
	assert.Empty(t, f.engine.Calls())
}

func TestDigitKeys_SeekToTenths(t *testing.T) {
	f := sizedFixture(t, "/music/a.mp3")

	f.send(key("5"))
	f.send(key("0"))
	f.send(key("9"))

	assert.Equal(t, []time.Duration{30 * time.Second, 0, 54 * time.Second}, f.engine.Seeks())
}

func TestDigitKeys_IgnoredWithoutTrack(t *testing.T) {
	f := sizedFixture(t)

	f.send(key("5"))

	assert.Empty(t, f.engine.Seeks())
}
