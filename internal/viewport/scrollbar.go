package viewport

import "math"

const (
	scrollbarThumb = "┃"
	scrollbarTrack = "│"
)

// scrollbar returns, for each of height rows, whether the row is part of the thumb. The thumb is sized by the
// fraction of the spacer in view and positioned by how far the viewport is scrolled
func scrollbar(height int, spacerExtent, viewportExtent, scrollOffset float64) []bool {
	rows := make([]bool, max(0, height))
	if height <= 0 || spacerExtent <= viewportExtent {
		return rows
	}

	thumbSize := max(1, int(float64(height)*viewportExtent/spacerExtent))
	maxOffset := spacerExtent - viewportExtent
	trackSpace := height - thumbSize
	thumbPos := 0
	if trackSpace > 0 {
		offset := math.Max(0, math.Min(maxOffset, scrollOffset))
		thumbPos = min(trackSpace, int(math.Round(offset*float64(trackSpace)/maxOffset)))
	}

	for i := thumbPos; i < thumbPos+thumbSize && i < height; i++ {
		rows[i] = true
	}
	return rows
}
