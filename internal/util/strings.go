package util

import (
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"
	"runtime"
	"strconv"
	"strings"
	"testing"
)

// JoinWithEqualSpacing spreads items across width with equal gaps between them. If they don't fit, they're cut off
// from the right
func JoinWithEqualSpacing(width int, items ...string) string {
	if len(items) == 0 || width <= 0 {
		return ""
	}

	totalContentWidth := 0
	for _, item := range items {
		totalContentWidth += lipgloss.Width(item)
	}

	if totalContentWidth > width {
		return ansi.Truncate(strings.Join(items, ""), width, "")
	}
	if len(items) == 1 {
		return items[0]
	}

	totalSpacing := width - totalContentWidth
	baseSpacing := totalSpacing / (len(items) - 1)
	extraSpacing := totalSpacing % (len(items) - 1)

	var result strings.Builder
	for i, item := range items {
		result.WriteString(item)
		if i < len(items)-1 {
			spaces := baseSpacing
			if i < extraSpacing {
				spaces++
			}
			result.WriteString(strings.Repeat(" ", spaces))
		}
	}
	return result.String()
}

// FormatCount formats n with thousands separators, e.g. 1234567 -> 1,234,567
func FormatCount(n int) string {
	s := strconv.Itoa(n)
	sign := ""
	if n < 0 {
		sign, s = "-", s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String()
}

// CmpStr compares two strings and fails the test if they are not equal
func CmpStr(t *testing.T, expected, actual string) {
	_, file, line, _ := runtime.Caller(1)
	testName := t.Name()
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("\nTest %q failed at %s:%d\nDiff (-expected +actual):\n%s", testName, file, line, diff)
	}
}
