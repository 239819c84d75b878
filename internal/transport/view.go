package transport

import (
	"fmt"
	"time"

	"github.com/llehouerou/prosperity/internal/player"
)

// NoTrackStatus is the status text shown before anything is loaded.
const NoTrackStatus = "No song loaded"

// View is a snapshot of everything the display needs from the controller.
type View struct {
	Status   string // "No song loaded" or "Loaded: <name>"
	TimeText string // "mm:ss / mm:ss"

	Position time.Duration // seek control value
	Duration time.Duration // seek control upper bound
	Volume   int

	Tracks  []string // display names in playlist order
	Current int      // cursor, -1 if none

	State player.State
	Info  *player.TrackInfo
	Err   error // last engine failure, cleared by the next successful load
}

// HasTracks returns true if the playlist is not empty.
func (v View) HasTracks() bool {
	return len(v.Tracks) > 0
}

// Progress returns the position as a ratio of the duration in [0, 1].
func (v View) Progress() float64 {
	if v.Duration <= 0 {
		return 0
	}
	return min(max(float64(v.Position)/float64(v.Duration), 0), 1)
}

// FormatClock formats d as zero-padded mm:ss.
// Minutes keep counting past 59 rather than wrapping.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// FormatTime formats an elapsed/total pair as "mm:ss / mm:ss".
func FormatTime(position, duration time.Duration) string {
	return FormatClock(position) + " / " + FormatClock(duration)
}
