package help

import (
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/robinovitch61/vlist/internal/keymap"
	"github.com/robinovitch61/vlist/internal/viewport"
	"strings"
	"testing"
)

func TestMakeHelp(t *testing.T) {
	h := ansi.Strip(MakeHelp(keymap.DefaultKeyMap(), viewport.DefaultKeyMap(), lipgloss.NewStyle()))
	for _, expected := range []string{
		"Help (press any key to hide)",
		"scroll down",
		"bottom",
		"bookmark top item",
		"next bookmark",
		"copy visible items",
		"toggle wrap",
		"quit",
	} {
		if !strings.Contains(h, expected) {
			t.Errorf("expected help to contain %q, got\n%s", expected, h)
		}
	}
}

func TestFormatKeyBindings_Columns(t *testing.T) {
	km := keymap.DefaultKeyMap()
	bindings := keymap.GlobalKeyBindings(km)
	oneCol := formatKeyBindings(bindings, len(bindings), lipgloss.NewStyle())
	twoCols := formatKeyBindings(bindings, (len(bindings)+1)/2, lipgloss.NewStyle())
	if lipgloss.Height(oneCol) != len(bindings) {
		t.Errorf("expected %d rows, got %d", len(bindings), lipgloss.Height(oneCol))
	}
	if lipgloss.Height(twoCols) != (len(bindings)+1)/2 {
		t.Errorf("expected %d rows, got %d", (len(bindings)+1)/2, lipgloss.Height(twoCols))
	}
	if formatKeyBindings(nil, 3, lipgloss.NewStyle()) != "" {
		t.Errorf("expected empty string for no bindings")
	}
}
