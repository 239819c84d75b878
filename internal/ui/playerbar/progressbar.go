package playerbar

import (
	"strings"
	"time"

	"github.com/llehouerou/prosperity/internal/ui/styles"
)

const (
	filledCell = "━"
	emptyCell  = "─"
	handleCell = "●"
)

// filledCells returns how many of width cells represent position within
// [0, duration]. Out-of-range positions are clamped.
func filledCells(position, duration time.Duration, width int) int {
	if duration <= 0 || width <= 0 {
		return 0
	}
	ratio := min(max(float64(position)/float64(duration), 0), 1)
	return min(int(float64(width)*ratio+0.5), width)
}

// SeekBar renders a width-cell slider over [0, duration] with a handle at
// position.
// Format: ━━━━━●────────
func SeekBar(position, duration time.Duration, width int, t *styles.Theme) string {
	if width <= 0 {
		return ""
	}
	filled := filledCells(position, duration, width)
	st := t.S()

	// The handle takes the last filled cell, or the first cell at zero.
	left := max(filled-1, 0)
	right := width - left - 1

	var b strings.Builder
	if left > 0 {
		b.WriteString(t.FillGradient(strings.Repeat(filledCell, left)))
	}
	b.WriteString(st.Handle.Render(handleCell))
	if right > 0 {
		b.WriteString(st.Groove.Render(strings.Repeat(emptyCell, right)))
	}
	return b.String()
}
