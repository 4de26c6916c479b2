package fileio

import (
	tea "charm.land/bubbletea/v2"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const timestampFormat = "20060102T150405Z"

type SaveCompleteMsg struct {
	FullPath, SuccessMessage, ErrMessage string
	NumItems                             int
}

// SaveItemsCmd writes items, one per line, to a new file in dir. A leading ~ in dir is the user's home. The file is
// named after the current time, so repeated saves never overwrite each other
func SaveItemsCmd(dir string, items []string) tea.Cmd {
	return func() tea.Msg {
		fullPath, err := saveItems(dir, time.Now().UTC(), items)
		if err != nil {
			return SaveCompleteMsg{ErrMessage: err.Error()}
		}
		return SaveCompleteMsg{
			FullPath:       fullPath,
			SuccessMessage: fmt.Sprintf("Saved %d items to %s", len(items), fullPath),
			NumItems:       len(items),
		}
	}
}

func saveItems(dir string, now time.Time, items []string) (string, error) {
	dir, err := expandHome(dir)
	if err != nil {
		return "", err
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return "", err
	}

	// O_EXCL so a save in the same second gets a suffix rather than clobbering the first
	base := filepath.Join(absDir, now.Format(timestampFormat))
	var f *os.File
	for i := 0; f == nil; i++ {
		path := base + ".txt"
		if i > 0 {
			path = fmt.Sprintf("%s_%d.txt", base, i)
		}
		f, err = os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err != nil && !os.IsExist(err) {
			return "", err
		}
	}
	defer f.Close()

	if _, err := f.WriteString(strings.Join(items, "\n") + "\n"); err != nil {
		return "", err
	}
	return f.Name(), nil
}

func expandHome(dir string) (string, error) {
	if dir != "~" && !strings.HasPrefix(dir, "~"+string(os.PathSeparator)) {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(dir, "~")), nil
}
