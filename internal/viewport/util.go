package viewport

import (
	"github.com/charmbracelet/x/ansi"
	"strings"
)

func percent(a, b int) int {
	if b == 0 {
		return 0
	}
	return int(float32(a) / float32(b) * 100)
}

// pad is a test helper function that pads the given lines to the given width and height.
// for example, pad(5, 4, []string{"a", "b", "c"}) will be padded to:
// "a    "
// "b    "
// "c    "
// "     "
// as a single string
func pad(width, height int, lines []string) string {
	var res []string
	for _, line := range lines {
		res = append(res, padRight(line, width))
	}
	numEmptyLines := height - len(lines)
	for i := 0; i < numEmptyLines; i++ {
		res = append(res, strings.Repeat(" ", width))
	}
	return strings.Join(res, "\n")
}

// padRight pads s with spaces to width terminal cells. Strings already at least that wide are returned as is
func padRight(s string, width int) string {
	if numSpaces := width - ansi.StringWidth(s); numSpaces > 0 {
		return s + strings.Repeat(" ", numSpaces)
	}
	return s
}

func clampValMinMax(v, minimum, maximum int) int {
	return max(minimum, min(maximum, v))
}
