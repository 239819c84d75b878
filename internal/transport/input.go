package transport

import (
	"time"

	"github.com/llehouerou/prosperity/internal/player"
	"github.com/llehouerou/prosperity/internal/playlist"
)

// Input is anything the controller reacts to: a user command or an engine
// notification. Every input goes through Controller.Dispatch.
type Input interface {
	transportInput()
}

// Commands (user intent).
type (
	// Open appends tracks to the playlist.
	Open struct{ Tracks []playlist.Track }
	// Play starts or resumes the current track.
	Play struct{}
	// Pause pauses playback.
	Pause struct{}
	// Stop stops playback.
	Stop struct{}
	// Next moves to the following track and plays it.
	Next struct{}
	// Previous moves to the preceding track and plays it.
	Previous struct{}
	// Select plays the track at Index.
	Select struct{ Index int }
	// SeekRelative moves the position by Delta, clamped to the track.
	SeekRelative struct{ Delta time.Duration }
	// SeekForward moves the position forward by the configured step.
	SeekForward struct{}
	// SeekBackward moves the position backward by the configured step.
	SeekBackward struct{}
	// SeekAbsolute moves the position to Position.
	SeekAbsolute struct{ Position time.Duration }
	// SetVolume sets the volume level in [0,100].
	SetVolume struct{ Level int }
)

// Engine notifications.
type (
	PositionChanged struct{ Position time.Duration }
	DurationChanged struct{ Duration time.Duration }
	MediaEnded      struct{}
)

func (Open) transportInput()            {}
func (Play) transportInput()            {}
func (Pause) transportInput()           {}
func (Stop) transportInput()            {}
func (Next) transportInput()            {}
func (Previous) transportInput()        {}
func (Select) transportInput()          {}
func (SeekRelative) transportInput()    {}
func (SeekForward) transportInput()     {}
func (SeekBackward) transportInput()    {}
func (SeekAbsolute) transportInput()    {}
func (SetVolume) transportInput()       {}
func (PositionChanged) transportInput() {}
func (DurationChanged) transportInput() {}
func (MediaEnded) transportInput()      {}

// FromEvent converts an engine event to a controller input.
// Returns nil for events the controller does not handle.
func FromEvent(e player.Event) Input {
	switch e := e.(type) {
	case player.PositionChanged:
		return PositionChanged{Position: e.Position}
	case player.DurationChanged:
		return DurationChanged{Duration: e.Duration}
	case player.MediaEnded:
		return MediaEnded{}
	}
	return nil
}
