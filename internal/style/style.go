package style

import (
	"charm.land/lipgloss/v2"
	"fmt"
	"github.com/robinovitch61/vlist/internal/dev"
)

// Styles are the app's styles for one terminal background
type Styles struct {
	Regular             lipgloss.Style
	Bold                lipgloss.Style
	Inverse             lipgloss.Style
	TopBar              lipgloss.Style
	Bookmark            lipgloss.Style
	LineNumber          lipgloss.Style
	ViewportFooterStyle lipgloss.Style
	ScrollbarTrack      lipgloss.Style
	ScrollbarThumb      lipgloss.Style
	KeyHelpStyle        lipgloss.Style
	Toast               lipgloss.Style
}

// New returns the styles for a dark or light terminal background
func New(hasDarkBackground bool) Styles {
	lightDark := lipgloss.LightDark(hasDarkBackground)
	foreground := lightDark(lipgloss.Color("#1A1A1A"), lipgloss.Color("#E4E4E4"))
	background := lightDark(lipgloss.Color("#FAFAFA"), lipgloss.Color("#1A1A1A"))
	altForeground := lightDark(lipgloss.Color("#8A8A8A"), lipgloss.Color("#6C6C6C"))
	accent := lightDark(lipgloss.Color("#B8860B"), lipgloss.Color("#FFD75F"))

	dev.Debug(fmt.Sprintf("has dark background: %t", hasDarkBackground))

	regular := lipgloss.NewStyle().Foreground(foreground)
	bold := regular.Bold(true)
	inverse := regular.Foreground(background).Background(foreground)
	return Styles{
		Regular:             regular,
		Bold:                bold,
		Inverse:             inverse,
		TopBar:              inverse.Bold(true),
		Bookmark:            regular.Foreground(accent).Bold(true),
		LineNumber:          regular.Foreground(altForeground),
		ViewportFooterStyle: bold,
		ScrollbarTrack:      regular.Foreground(altForeground),
		ScrollbarThumb:      regular,
		KeyHelpStyle:        bold.Foreground(background).Background(foreground).Underline(true),
		Toast:               inverse.Background(accent).Padding(0, 1),
	}
}
