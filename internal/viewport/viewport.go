package viewport

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"fmt"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wrap"
	"github.com/robinovitch61/vlist/internal/constants"
	"github.com/robinovitch61/vlist/internal/dev"
	"github.com/robinovitch61/vlist/internal/viewport/scroll"
	"github.com/robinovitch61/vlist/internal/viewport/window"
	"math"
	"strings"
)

// Terminology:
// - item: an element of the collection, rendered into exactly itemHeight rows
// - row: a row of terminal cells. All extents are measured in rows
// - track: all items stacked top to bottom, len(items) * itemHeight rows tall. Only exists conceptually
// - window: the items materialized for the current scroll offset, including the buffer on each side
//
// itemHeight 2, height 3, buffer 1, scrolled 4 rows:
//                       track row   item
//  (materialized)       2           1      <- window.Start, translated to row 2
//  (materialized)       3           1
//  | in view            4           2      <- scrollOffset
//  | in view            5           2
//  | in view            6           3
//  (materialized)       7           3
//  (materialized)       8           4
//  (materialized)       9           4      <- window.End is 5
//

// RenderFunc renders a single item given its absolute index in the collection
type RenderFunc[T any] func(item T, idx int) string

// Config is used to create a new viewport Model
type Config[T any] struct {
	Items            []T
	RenderItem       RenderFunc[T]
	KeyMap           KeyMap
	Width            int
	Height           int
	ItemHeight       int
	Buffer           int
	WrapText         bool
	ScrollbarEnabled bool
	FooterEnabled    bool
}

// content is the collection and its materialized nodes. It lives behind a pointer so every copy of a Model sees the
// nodes rendered by the scroll adapter's latest window
type content[T any] struct {
	items      []T
	renderItem RenderFunc[T]
	nodes      []Node
}

// materialize renders exactly the items in w
func (c *content[T]) materialize(w window.Window) {
	nodes := make([]Node, 0, w.Count())
	for i := w.Start; i < w.End; i++ {
		nodes = append(nodes, Node{Index: i, Content: c.renderItem(c.items[i], i)})
	}
	c.nodes = nodes
}

// Model is a viewport over a fixed item height list that only renders the items near the viewport
type Model[T any] struct {
	// styles
	FooterStyle         lipgloss.Style
	ScrollbarTrackStyle lipgloss.Style
	ScrollbarThumbStyle lipgloss.Style

	// keyMap is the keymap for the viewport
	keyMap KeyMap

	// adapter owns the scroll offset and the extents, and recomputes the window when they change
	adapter *scroll.Adapter

	// content holds all items and the currently materialized ones
	content *content[T]

	// width is the width of the entire viewport in terminal columns, including the scrollbar
	width int

	// wrapText is true if item content wraps within its rows rather than being truncated
	wrapText bool

	// scrollbarEnabled is true if the viewport shows a scrollbar column when the list overflows
	scrollbarEnabled bool

	// footerEnabled is true if the viewport shows a footer line below the content rows
	footerEnabled bool

	// continuationIndicator is the string to use to indicate that a line has been truncated on the right
	continuationIndicator string
}

// New creates a viewport model. Height is the number of content rows, not counting the footer. Invalid extents
// return window.ErrInvalidArgument
func New[T any](c Config[T]) (Model[T], error) {
	if c.RenderItem == nil {
		return Model[T]{}, fmt.Errorf("%w: nil item renderer", window.ErrInvalidArgument)
	}
	a, err := scroll.New(scroll.Config{
		Len:            len(c.Items),
		ItemExtent:     float64(c.ItemHeight),
		ViewportExtent: float64(c.Height),
		Buffer:         c.Buffer,
	})
	if err != nil {
		return Model[T]{}, err
	}

	cont := &content[T]{items: c.Items, renderItem: c.RenderItem}
	a.Subscribe(cont.materialize)
	cont.materialize(a.CurrentWindow())

	return Model[T]{
		keyMap:                c.KeyMap,
		adapter:               a,
		content:               cont,
		width:                 max(0, c.Width),
		wrapText:              c.WrapText,
		scrollbarEnabled:      c.ScrollbarEnabled,
		footerEnabled:         c.FooterEnabled,
		continuationIndicator: "...",
	}, nil
}

// Update processes messages and updates the model
func (m Model[T]) Update(msg tea.Msg) (Model[T], tea.Cmd) {
	dev.DebugUpdateMsg("Viewport", msg)

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, m.keyMap.Up):
			m.scrollByItems(-1)

		case key.Matches(msg, m.keyMap.Down):
			m.scrollByItems(1)

		case key.Matches(msg, m.keyMap.HalfPageUp):
			m.scrollByItems(-max(1, m.numFullItemsInView()/2))

		case key.Matches(msg, m.keyMap.HalfPageDown):
			m.scrollByItems(max(1, m.numFullItemsInView()/2))

		case key.Matches(msg, m.keyMap.PageUp):
			m.scrollByItems(-max(1, m.numFullItemsInView()))

		case key.Matches(msg, m.keyMap.PageDown):
			m.scrollByItems(max(1, m.numFullItemsInView()))

		case key.Matches(msg, m.keyMap.Top):
			m.safelySetScrollOffset(0)

		case key.Matches(msg, m.keyMap.Bottom):
			m.safelySetScrollOffset(m.adapter.MaxScrollOffset())
		}

	case tea.MouseWheelMsg:
		switch msg.Button {
		case tea.MouseWheelUp:
			m.scrollByItems(-constants.MouseWheelScrollItems)
		case tea.MouseWheelDown:
			m.scrollByItems(constants.MouseWheelScrollItems)
		}
	}

	return m, nil
}

// View renders the viewport
func (m Model[T]) View() string {
	height := m.Height()
	showScrollbar := m.showScrollbar()
	contentWidth := m.width
	if showScrollbar {
		contentWidth = max(0, m.width-1)
	}

	rows := m.visibleRows(contentWidth)
	if showScrollbar {
		f := m.Frame()
		bar := scrollbar(height, f.SpacerExtent, f.ViewportExtent, f.ScrollOffset)
		for i := range rows {
			if bar[i] {
				rows[i] += m.ScrollbarThumbStyle.Render(scrollbarThumb)
			} else {
				rows[i] += m.ScrollbarTrackStyle.Render(scrollbarTrack)
			}
		}
	}
	if m.footerEnabled {
		rows = append(rows, m.footerLine())
	}
	return strings.Join(rows, "\n")
}

// Frame returns the render tree for the current window: the viewport, the full height spacer, and the translated
// materialized nodes
func (m Model[T]) Frame() Frame {
	w := m.adapter.CurrentWindow()
	return Frame{
		ViewportExtent: m.adapter.ViewportExtent(),
		SpacerExtent:   w.TotalExtent,
		Translate:      w.Offset,
		ScrollOffset:   m.adapter.ScrollOffset(),
		Nodes:          m.content.nodes,
	}
}

func (m *Model[T]) SetKeyMap(keyMap KeyMap) {
	m.keyMap = keyMap
}

// SetItems replaces the collection. The window is recomputed and rematerialized even if its range is unchanged
func (m *Model[T]) SetItems(items []T) {
	m.content.items = items
	if err := m.adapter.SetLen(len(items)); err != nil {
		panic(fmt.Sprintf("setting item count: %v", err))
	}
	// ensure scroll offset is valid given new content
	m.safelySetScrollOffset(m.adapter.ScrollOffset())
}

// GetItems returns the full collection
func (m Model[T]) GetItems() []T {
	return m.content.items
}

// SetItemHeight sets the number of rows each item takes, keeping the top item in view
func (m *Model[T]) SetItemHeight(itemHeight int) error {
	topItemIdx := m.TopItemIdx()
	if err := m.adapter.SetItemExtent(float64(itemHeight)); err != nil {
		return err
	}
	m.safelySetScrollOffset(float64(topItemIdx * itemHeight))
	return nil
}

// SetHeight sets the number of content rows, not including the footer
func (m *Model[T]) SetHeight(height int) error {
	if err := m.adapter.SetViewportExtent(float64(height)); err != nil {
		return err
	}
	m.safelySetScrollOffset(m.adapter.ScrollOffset())
	return nil
}

// SetBuffer sets the number of items materialized beyond each edge of the viewport
func (m *Model[T]) SetBuffer(buffer int) error {
	return m.adapter.SetBuffer(buffer)
}

// SetWidth sets the viewport's width
func (m *Model[T]) SetWidth(width int) {
	m.width = max(0, width)
}

// SetWrapText sets whether item content wraps within its rows
func (m *Model[T]) SetWrapText(wrapText bool) {
	m.wrapText = wrapText
}

// GetWrapText returns whether the viewport wraps text
func (m Model[T]) GetWrapText() bool {
	return m.wrapText
}

// Refresh rerenders the materialized items, e.g. after something their rendering depends on changed
func (m *Model[T]) Refresh() {
	if err := m.adapter.Refresh(); err != nil {
		panic(fmt.Sprintf("refreshing viewport: %v", err))
	}
}

// ScrollTo handles a raw scroll notification from the host. The offset isn't clamped: negative offsets show the
// top, offsets past the end show nothing
func (m *Model[T]) ScrollTo(offset float64) error {
	return m.adapter.OnScroll(offset)
}

// ScrollToItem scrolls so the item at itemIdx is at the top, or as close as the list allows
func (m *Model[T]) ScrollToItem(itemIdx int) {
	m.safelySetScrollOffset(float64(itemIdx) * m.adapter.ItemExtent())
}

// Window returns the current window of materialized items
func (m Model[T]) Window() window.Window {
	return m.adapter.CurrentWindow()
}

// ScrollOffset returns the number of rows scrolled from the top
func (m Model[T]) ScrollOffset() float64 {
	return m.adapter.ScrollOffset()
}

// Height returns the number of content rows
func (m Model[T]) Height() int {
	return int(m.adapter.ViewportExtent())
}

// Width returns the viewport width
func (m Model[T]) Width() int {
	return m.width
}

// ItemHeight returns the number of rows each item takes
func (m Model[T]) ItemHeight() int {
	return int(m.adapter.ItemExtent())
}

// TopItemIdx returns the index of the item in the top row of the viewport, 0 when empty
func (m Model[T]) TopItemIdx() int {
	if m.adapter.Len() == 0 {
		return 0
	}
	// clamp before converting, raw offsets past the end can exceed the int range
	top := math.Min(math.Floor(math.Max(0, m.adapter.ScrollOffset())/m.adapter.ItemExtent()), float64(m.adapter.Len()-1))
	return int(top)
}

// BottomItemIdx returns the index of the item in the bottom row of the viewport, 0 when empty
func (m Model[T]) BottomItemIdx() int {
	if m.adapter.Len() == 0 {
		return 0
	}
	f := m.Frame()
	lastRow := math.Min(math.Max(0, f.ScrollOffset)+f.ViewportExtent, f.SpacerExtent) - 1
	bottom := int(math.Floor(lastRow / m.adapter.ItemExtent()))
	return clampValMinMax(bottom, m.TopItemIdx(), m.adapter.Len()-1)
}

// VisibleNodes returns the materialized nodes with at least one row in view
func (m Model[T]) VisibleNodes() []Node {
	if m.adapter.Len() == 0 {
		return nil
	}
	top, bottom := m.TopItemIdx(), m.BottomItemIdx()
	var visible []Node
	for _, n := range m.content.nodes {
		if top <= n.Index && n.Index <= bottom {
			visible = append(visible, n)
		}
	}
	return visible
}

func (m *Model[T]) scrollByItems(n int) {
	m.ScrollToItem(m.TopItemIdx() + n)
}

func (m *Model[T]) safelySetScrollOffset(offset float64) {
	offset = math.Max(0, math.Min(m.adapter.MaxScrollOffset(), offset))
	if err := m.adapter.OnScroll(offset); err != nil {
		panic(fmt.Sprintf("scrolling to clamped offset %v: %v", offset, err))
	}
}

// numFullItemsInView returns the number of whole items that fit in the viewport
func (m Model[T]) numFullItemsInView() int {
	return m.Height() / m.ItemHeight()
}

func (m Model[T]) showScrollbar() bool {
	f := m.Frame()
	return m.scrollbarEnabled && m.width > 1 && f.SpacerExtent > f.ViewportExtent
}

// visibleRows returns exactly Height rows of contentWidth cells: the materialized items stacked, translated, and cut
// to the viewport
func (m Model[T]) visibleRows(contentWidth int) []string {
	f := m.Frame()
	itemHeight := m.ItemHeight()

	var materializedRows []string
	for _, n := range f.Nodes {
		materializedRows = append(materializedRows, m.itemRows(n.Content, contentWidth, itemHeight)...)
	}

	// row index within materializedRows that is at the top of the viewport
	firstRow := int(math.Min(math.Floor(math.Max(0, f.ScrollOffset)-f.Translate), float64(len(materializedRows))))

	rows := make([]string, m.Height())
	for i := range rows {
		var row string
		if r := firstRow + i; r >= 0 && r < len(materializedRows) {
			row = materializedRows[r]
		}
		rows[i] = padRight(row, contentWidth)
	}
	return rows
}

// itemRows lays out rendered item content into exactly itemHeight rows no wider than width
func (m Model[T]) itemRows(s string, width, itemHeight int) []string {
	var lines []string
	if width > 0 {
		if m.wrapText {
			lines = strings.Split(wrap.String(s, width), "\n")
		} else {
			for _, line := range strings.Split(s, "\n") {
				lines = append(lines, ansi.Truncate(line, width, m.continuationIndicator))
			}
		}
	}
	rows := make([]string, itemHeight)
	copy(rows, lines)
	return rows
}

func (m Model[T]) footerLine() string {
	f := m.Frame()
	if m.adapter.Len() == 0 || f.SpacerExtent <= f.ViewportExtent {
		return padRight("", m.width)
	}
	numerator := m.BottomItemIdx() + 1 // 0th item is 1st
	denominator := m.adapter.Len()
	footerString := fmt.Sprintf("%d%% (%d/%d)", percent(numerator, denominator), numerator, denominator)
	footerString = ansi.Truncate(footerString, m.width, m.continuationIndicator)
	return padRight(m.FooterStyle.Render(footerString), m.width)
}
