package command

import (
	tea "charm.land/bubbletea/v2"
	"fmt"
	"github.com/robinovitch61/vlist/internal/dev"
	"github.com/robinovitch61/vlist/internal/source"
	"time"
)

type ItemsLoadedMsg struct {
	Items []source.Item
	Err   error
}

// LoadItemsCmd reads the lines of path, or generates count items if path is empty
func LoadItemsCmd(path string, count int) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		var items []source.Item
		var err error
		if path != "" {
			items, err = source.LoadFile(path)
		} else {
			items = source.Generate(count)
		}
		dev.Debug(fmt.Sprintf("loaded %d items in %s", len(items), time.Since(start)))
		return ItemsLoadedMsg{Items: items, Err: err}
	}
}
