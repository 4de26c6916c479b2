package window

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is returned when the window is asked for with extents or counts that can never describe a
// real list. It indicates misconfiguration by the caller
var ErrInvalidArgument = errors.New("invalid argument")

// Params are the inputs to Compute
type Params struct {
	// Len is the number of items in the collection
	Len int

	// ItemExtent is the extent of every item along the scroll axis. All items share it
	ItemExtent float64

	// ViewportExtent is the extent of the visible area along the scroll axis
	ViewportExtent float64

	// ScrollOffset is how far the viewport is scrolled from the top of the track. Negative values are treated as 0,
	// values past the end of the track are allowed
	ScrollOffset float64

	// Buffer is the number of extra items to materialize beyond each edge of the viewport
	Buffer int
}

// Window is the range of items to materialize for one set of Params
type Window struct {
	// Start is the first index to materialize
	Start int

	// End is one past the last index to materialize. Start <= End <= Len
	End int

	// Offset is where the item at Start sits in the full track, i.e. Start * ItemExtent
	Offset float64

	// TotalExtent is the extent of the full, unwindowed track, i.e. Len * ItemExtent
	TotalExtent float64
}

// Count returns the number of items in the window
func (w Window) Count() int {
	return w.End - w.Start
}

// Contains returns true if idx is materialized by the window
func (w Window) Contains(idx int) bool {
	return w.Start <= idx && idx < w.End
}

// Compute returns the window of items that can intersect the viewport for the given params, padded by the buffer
// on both sides. It has no side effects and runs in constant time regardless of Len
func Compute(p Params) (Window, error) {
	if err := validate(p); err != nil {
		return Window{}, err
	}
	if p.Len == 0 {
		return Window{}, nil
	}

	scrollOffset := p.ScrollOffset
	if scrollOffset < 0 {
		scrollOffset = 0
	}

	// done in float64 so huge offsets or buffers can't overflow; results are clamped to [0, Len] before conversion
	length, buffer := float64(p.Len), float64(p.Buffer)
	rawStart := math.Min(math.Floor(scrollOffset/p.ItemExtent), length+buffer)
	visibleCount := float64(VisibleCount(p.ItemExtent, p.ViewportExtent, p.Len))

	end := int(math.Min(length, rawStart+visibleCount+buffer))
	start := min(int(math.Max(0, rawStart-buffer)), end)

	return Window{
		Start:       start,
		End:         end,
		Offset:      float64(start) * p.ItemExtent,
		TotalExtent: float64(p.Len) * p.ItemExtent,
	}, nil
}

// VisibleCount returns the number of items needed to cover the viewport, ceil(viewportExtent / itemExtent), capped
// at length. Extents are assumed valid
func VisibleCount(itemExtent, viewportExtent float64, length int) int {
	if length <= 0 {
		return 0
	}
	return int(math.Min(math.Ceil(viewportExtent/itemExtent), float64(length)))
}

// MaxScrollOffset returns the largest scroll offset that still fills the viewport, 0 if everything fits
func MaxScrollOffset(length int, itemExtent, viewportExtent float64) float64 {
	return math.Max(0, float64(length)*itemExtent-viewportExtent)
}

func validate(p Params) error {
	if p.Len < 0 {
		return fmt.Errorf("%w: collection length must not be negative, got %d", ErrInvalidArgument, p.Len)
	}
	if p.Buffer < 0 {
		return fmt.Errorf("%w: buffer must not be negative, got %d", ErrInvalidArgument, p.Buffer)
	}
	if !isPositiveFinite(p.ItemExtent) {
		return fmt.Errorf("%w: item extent must be positive and finite, got %v", ErrInvalidArgument, p.ItemExtent)
	}
	if !isPositiveFinite(p.ViewportExtent) {
		return fmt.Errorf("%w: viewport extent must be positive and finite, got %v", ErrInvalidArgument, p.ViewportExtent)
	}
	if math.IsNaN(p.ScrollOffset) {
		return fmt.Errorf("%w: scroll offset is NaN", ErrInvalidArgument)
	}
	return nil
}

func isPositiveFinite(f float64) bool {
	return f > 0 && !math.IsInf(f, 1)
}
