package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// maxLineBytes is the longest line Load accepts
const maxLineBytes = 1024 * 1024

// Item is one entry in the list, e.g. a line of a file
type Item struct {
	// Number is 1-based
	Number int
	Text   string
}

func (i Item) String() string {
	return i.Text
}

// Load reads r line by line into items
func Load(r io.Reader) ([]Item, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var items []Item
	for scanner.Scan() {
		items = append(items, Item{Number: len(items) + 1, Text: scanner.Text()})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading line %d: %w", len(items)+1, err)
	}
	return items, nil
}

func LoadFile(path string) ([]Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	items, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// Generate returns n placeholder items
func Generate(n int) []Item {
	items := make([]Item, max(0, n))
	for i := range items {
		items[i] = Item{Number: i + 1, Text: fmt.Sprintf("Item %d", i+1)}
	}
	return items
}
