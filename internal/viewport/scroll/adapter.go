package scroll

import (
	"github.com/robinovitch61/vlist/internal/viewport/window"
)

// Config is the initial state of an Adapter
type Config struct {
	Len            int
	ItemExtent     float64
	ViewportExtent float64
	ScrollOffset   float64
	Buffer         int
}

// Adapter owns the scroll state of a single windowed list and turns scroll notifications into windows. It is not
// safe for concurrent use and must not be shared between lists
type Adapter struct {
	// scrollOffset and viewportExtent are the viewport state, mutated on every scroll and resize
	scrollOffset   float64
	viewportExtent float64

	length     int
	itemExtent float64
	buffer     int

	// current is the window computed from the fields above as of the last successful recomputation
	current window.Window

	// subscribers are called with the new window after every recomputation that changed it
	subscribers []func(window.Window)
}

// New creates an Adapter and computes its first window. Invalid config returns window.ErrInvalidArgument
func New(c Config) (*Adapter, error) {
	a := &Adapter{
		scrollOffset:   c.ScrollOffset,
		viewportExtent: c.ViewportExtent,
		length:         c.Len,
		itemExtent:     c.ItemExtent,
		buffer:         c.Buffer,
	}
	w, err := window.Compute(a.params())
	if err != nil {
		return nil, err
	}
	a.current = w
	return a, nil
}

// Subscribe registers fn to be called with each new window
func (a *Adapter) Subscribe(fn func(window.Window)) {
	a.subscribers = append(a.subscribers, fn)
}

// OnScroll records a new scroll offset and recomputes the window. Subscribers are only notified if the window
// changed, so scrolling within the same window is cheap
func (a *Adapter) OnScroll(offset float64) error {
	next := *a
	next.scrollOffset = offset
	return a.apply(next, false)
}

// CurrentWindow returns the window as of the most recent completed recomputation
func (a *Adapter) CurrentWindow() window.Window {
	return a.current
}

// SetLen sets the collection length and recomputes
func (a *Adapter) SetLen(n int) error {
	next := *a
	next.length = n
	return a.apply(next, true)
}

// SetItemExtent sets the per-item extent and recomputes
func (a *Adapter) SetItemExtent(e float64) error {
	next := *a
	next.itemExtent = e
	return a.apply(next, true)
}

// SetViewportExtent sets the viewport extent and recomputes
func (a *Adapter) SetViewportExtent(e float64) error {
	next := *a
	next.viewportExtent = e
	return a.apply(next, true)
}

// SetBuffer sets the number of items materialized beyond each viewport edge and recomputes
func (a *Adapter) SetBuffer(n int) error {
	next := *a
	next.buffer = n
	return a.apply(next, true)
}

// Refresh recomputes and notifies subscribers even if the window is unchanged, e.g. when item content changed
func (a *Adapter) Refresh() error {
	return a.apply(*a, true)
}

func (a *Adapter) ScrollOffset() float64 {
	return a.scrollOffset
}

func (a *Adapter) ViewportExtent() float64 {
	return a.viewportExtent
}

func (a *Adapter) ItemExtent() float64 {
	return a.itemExtent
}

func (a *Adapter) Len() int {
	return a.length
}

func (a *Adapter) Buffer() int {
	return a.buffer
}

// MaxScrollOffset returns the largest scroll offset that still fills the viewport
func (a *Adapter) MaxScrollOffset() float64 {
	return window.MaxScrollOffset(a.length, a.itemExtent, a.viewportExtent)
}

// apply recomputes the window for next and commits it. On error the adapter is left untouched
func (a *Adapter) apply(next Adapter, force bool) error {
	w, err := window.Compute(next.params())
	if err != nil {
		return err
	}
	changed := w != a.current
	next.current = w
	*a = next
	if changed || force {
		for _, fn := range a.subscribers {
			fn(w)
		}
	}
	return nil
}

func (a *Adapter) params() window.Params {
	return window.Params{
		Len:            a.length,
		ItemExtent:     a.itemExtent,
		ViewportExtent: a.viewportExtent,
		ScrollOffset:   a.scrollOffset,
		Buffer:         a.buffer,
	}
}
