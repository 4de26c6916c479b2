package command

import (
	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"
	"strings"
)

type ContentCopiedToClipboardMsg struct {
	NumItems int
	Err      error
}

// CopyItemsToClipboardCmd writes the given rendered items to the system clipboard, one per line
func CopyItemsToClipboardCmd(items []string) tea.Cmd {
	return func() tea.Msg {
		err := clipboard.WriteAll(strings.Join(items, "\n"))
		return ContentCopiedToClipboardMsg{NumItems: len(items), Err: err}
	}
}
