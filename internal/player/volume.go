package player

import (
	"math"

	"github.com/gopxl/beep/v2/speaker"
)

// MaxVolume is the top of the volume scale.
const MaxVolume = 100

// SetVolume sets the volume level in [0, MaxVolume].
// The level is kept across loads.
func (p *Player) SetVolume(level int) {
	level = ClampVolume(level)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.volumeLevel = level
	if p.volume == nil {
		return
	}
	speaker.Lock()
	p.volume.Volume = levelToVolume(level)
	p.volume.Silent = level == 0
	speaker.Unlock()
}

// Volume returns the current volume level.
func (p *Player) Volume() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volumeLevel
}

// ClampVolume restricts level to [0, MaxVolume].
func ClampVolume(level int) int {
	return min(max(level, 0), MaxVolume)
}

// levelToVolume converts a 0-100 level to beep's base-2 volume.
// beep's Volume is a power of two: 0 is unchanged, -1 is half, -2 a quarter.
// So 100 -> 0, 50 -> -1, 25 -> -2, and 0 -> -10 (near silent).
func levelToVolume(level int) float64 {
	if level <= 0 {
		return -10
	}
	if level >= MaxVolume {
		return 0
	}
	return math.Log2(float64(level) / MaxVolume)
}
