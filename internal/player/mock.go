// internal/player/mock.go
package player

import (
	"path/filepath"
	"time"
)

// Mock is a test double for Engine. It records every command it receives
// and only emits events when a test calls Emit.
type Mock struct {
	state     State
	path      string
	position  time.Duration
	duration  time.Duration
	volume    int
	durations map[string]time.Duration
	loadErr   error
	calls     []string
	seeks     []time.Duration
	events    chan Event
}

// NewMock creates a new mock engine for testing.
func NewMock() *Mock {
	return &Mock{
		state:     Idle,
		volume:    MaxVolume,
		durations: make(map[string]time.Duration),
		events:    make(chan Event, 64),
	}
}

func (m *Mock) Load(path string) error {
	m.calls = append(m.calls, "load:"+path)
	if m.loadErr != nil {
		m.path = ""
		m.position = 0
		m.duration = 0
		m.state = Idle
		return m.loadErr
	}
	m.path = path
	m.position = 0
	m.duration = m.durations[path]
	m.state = Loaded
	return nil
}

func (m *Mock) Play() {
	m.calls = append(m.calls, "play")
	if m.state.CanPlay() {
		m.state = Playing
	}
}

func (m *Mock) Pause() {
	m.calls = append(m.calls, "pause")
	if m.state.CanPause() {
		m.state = Paused
	}
}

func (m *Mock) Stop() {
	m.calls = append(m.calls, "stop")
	if m.state.IsActive() {
		m.state = Stopped
		m.position = 0
	}
}

func (m *Mock) SeekTo(position time.Duration) {
	m.calls = append(m.calls, "seek")
	m.seeks = append(m.seeks, position)
	m.position = position
}

func (m *Mock) SetVolume(level int) {
	m.calls = append(m.calls, "volume")
	m.volume = ClampVolume(level)
}

func (m *Mock) Volume() int { return m.volume }

func (m *Mock) State() State { return m.state }

func (m *Mock) HasMedia() bool { return m.path != "" }

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) Duration() time.Duration { return m.duration }

func (m *Mock) TrackInfo() *TrackInfo {
	if m.path == "" {
		return nil
	}
	return &TrackInfo{Path: m.path, Title: filepath.Base(m.path), Duration: m.duration}
}

func (m *Mock) Events() <-chan Event { return m.events }

func (m *Mock) Close() error {
	m.calls = append(m.calls, "close")
	return nil
}

// Test helpers

// Calls returns every command received, in order ("load:<path>", "play", ...).
func (m *Mock) Calls() []string { return m.calls }

// ResetCalls forgets recorded commands.
func (m *Mock) ResetCalls() {
	m.calls = nil
	m.seeks = nil
}

// Seeks returns the positions passed to SeekTo.
func (m *Mock) Seeks() []time.Duration { return m.seeks }

// LoadedPath returns the path of the loaded media.
func (m *Mock) LoadedPath() string { return m.path }

func (m *Mock) SetState(s State) { m.state = s }

func (m *Mock) SetLoadError(err error) { m.loadErr = err }

func (m *Mock) SetPosition(d time.Duration) { m.position = d }

func (m *Mock) SetDuration(d time.Duration) { m.duration = d }

// SetTrackDuration sets the duration reported after loading path.
func (m *Mock) SetTrackDuration(path string, d time.Duration) { m.durations[path] = d }

// Emit queues an event on the Events channel.
func (m *Mock) Emit(e Event) {
	m.events <- e
}
