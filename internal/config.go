package internal

import (
	"github.com/robinovitch61/vlist/internal/keymap"
	"github.com/robinovitch61/vlist/internal/viewport"
)

type Config struct {
	KeyMap            keymap.KeyMap
	ViewportKeyMap    viewport.KeyMap
	FilePath          string
	Count             int
	ItemHeight        int
	Buffer            int
	WrapText          bool
	ScrollbarEnabled  bool
	FooterEnabled     bool
	SaveDir           string
	HasDarkBackground bool
	Version           string
}
