package keymap

import (
	"charm.land/bubbles/v2/key"
	"github.com/robinovitch61/vlist/internal/viewport"
)

type KeyMap struct {
	Bookmark     key.Binding
	Copy         key.Binding
	Help         key.Binding
	NextBookmark key.Binding
	PrevBookmark key.Binding
	Quit         key.Binding
	Save         key.Binding
	Wrap         key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Bookmark: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "bookmark top item"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy visible items"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "show/hide help"),
		),
		NextBookmark: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next bookmark"),
		),
		PrevBookmark: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "prev bookmark"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save visible items"),
		),
		Wrap: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "toggle wrap"),
		),
	}
}

func ScrollKeyBindings(vpKm viewport.KeyMap) []key.Binding {
	return []key.Binding{
		vpKm.Up,
		vpKm.Down,
		vpKm.HalfPageUp,
		vpKm.HalfPageDown,
		vpKm.PageUp,
		vpKm.PageDown,
		vpKm.Top,
		vpKm.Bottom,
	}
}

func GlobalKeyBindings(km KeyMap) []key.Binding {
	// available from anywhere on the app
	return []key.Binding{
		km.Bookmark,
		km.NextBookmark,
		km.PrevBookmark,
		km.Wrap,
		km.Copy,
		km.Save,
		km.Help,
		km.Quit,
	}
}
