package playerbar

import (
	"strings"

	"github.com/llehouerou/prosperity/internal/player"
	"github.com/llehouerou/prosperity/internal/ui/styles"
)

var (
	volumeFilled = "▮"
	volumeEmpty  = "▯"
)

// VolumeBar renders level in [0, 100] as a width-cell bar.
func VolumeBar(level, width int, t *styles.Theme) string {
	if width <= 0 {
		return ""
	}
	level = player.ClampVolume(level)
	filled := (level*width + player.MaxVolume/2) / player.MaxVolume
	st := t.S()

	var b strings.Builder
	if filled > 0 {
		b.WriteString(st.Handle.Render(strings.Repeat(volumeFilled, filled)))
	}
	if width-filled > 0 {
		b.WriteString(st.Groove.Render(strings.Repeat(volumeEmpty, width-filled)))
	}
	return b.String()
}
