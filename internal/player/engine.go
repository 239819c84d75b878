// internal/player/engine.go
package player

import "time"

// Engine is the playback capability the transport drives.
// Decoding, audio output and timing all happen behind it.
type Engine interface {
	// Load replaces the current media with the file at path.
	// It never starts playback.
	Load(path string) error
	Play()
	Pause()
	Stop()
	SeekTo(position time.Duration)
	SetVolume(level int)
	Volume() int

	State() State
	HasMedia() bool
	Position() time.Duration
	Duration() time.Duration
	TrackInfo() *TrackInfo

	// Events delivers position, duration and end-of-media notifications.
	Events() <-chan Event
	Close() error
}

// Event is a notification emitted by an Engine.
type Event interface {
	engineEvent()
}

// PositionChanged reports the current playback position.
type PositionChanged struct {
	Position time.Duration
}

// DurationChanged reports the duration of newly loaded media.
type DurationChanged struct {
	Duration time.Duration
}

// MediaEnded reports that the loaded media played to its end.
type MediaEnded struct {
	Path string
}

func (PositionChanged) engineEvent() {}
func (DurationChanged) engineEvent() {}
func (MediaEnded) engineEvent()      {}

// Verify implementations at compile time.
var (
	_ Engine = (*Player)(nil)
	_ Engine = (*Mock)(nil)
)
