// internal/player/state.go
package player

// State represents the playback state machine.
//
//	┌──────┐ load ┌────────┐ play ┌─────────┐ pause ┌────────┐
//	│ Idle │─────▶│ Loaded │─────▶│ Playing │──────▶│ Paused │
//	└──────┘      └────────┘      └─────────┘◀──────└────────┘
//	                                │   ▲      play     │
//	                    stop / end  │   │ play          │ stop
//	                                ▼   │               │
//	                              ┌─────────┐           │
//	                              │ Stopped │◀──────────┘
//	                              └─────────┘
//
// Load is valid from any state and always lands in Loaded.
// Stop rewinds to the start and keeps the media, so Play restarts it.
// Play, Pause and Stop from Idle are ignored.
type State int

const (
	Idle State = iota
	Loaded
	Playing
	Paused
	Stopped
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Loaded:
		return "Loaded"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case Stopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// IsActive returns true if playback is active (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

// CanPause returns true if the state allows pausing.
func (s State) CanPause() bool {
	return s == Playing
}

// CanPlay returns true if Play would start or resume audio.
func (s State) CanPlay() bool {
	return s == Loaded || s == Paused || s == Stopped
}
