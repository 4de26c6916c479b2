package help

import (
	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	"github.com/robinovitch61/vlist/internal/keymap"
	"github.com/robinovitch61/vlist/internal/viewport"
)

func MakeHelp(keyMap keymap.KeyMap, vpKeyMap viewport.KeyMap, keyColStyle lipgloss.Style) string {
	title := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Render("Help (press any key to hide)")
	rowsPerCol := 8

	res := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		"",
		formatKeyBindings(keymap.ScrollKeyBindings(vpKeyMap), rowsPerCol, keyColStyle),
		"",
		formatKeyBindings(keymap.GlobalKeyBindings(keyMap), rowsPerCol/2, keyColStyle),
	)
	return res
}

func formatKeyBindings(bindings []key.Binding, maxRowsPerCol int, keyColStyle lipgloss.Style) string {
	if len(bindings) == 0 {
		return ""
	}
	numColumns := (len(bindings) + maxRowsPerCol - 1) / maxRowsPerCol
	var formattedCols []string
	for colIndex := 0; colIndex < numColumns; colIndex++ {
		start := colIndex * maxRowsPerCol
		end := min(start+maxRowsPerCol, len(bindings))
		formattedCol := formatColumn(bindings[start:end], keyColStyle)
		if colIndex != numColumns-1 {
			formattedCol += "   "
		}
		formattedCols = append(formattedCols, formattedCol)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, formattedCols...)
}

func formatColumn(bindings []key.Binding, keyColStyle lipgloss.Style) string {
	var keys []string
	var help []string
	for _, b := range bindings {
		keys = append(keys, " "+b.Help().Key+" ")
		help = append(help, " "+b.Help().Desc)
	}
	keyCol := keyColStyle.Render(lipgloss.JoinVertical(lipgloss.Right, keys...))
	helpCol := lipgloss.JoinVertical(lipgloss.Left, help...)
	return lipgloss.JoinHorizontal(lipgloss.Left, keyCol, helpCol)
}
