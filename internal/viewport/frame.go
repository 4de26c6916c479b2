package viewport

// Node is one materialized item
type Node struct {
	// Index is the item's absolute index in the collection
	Index int

	// Content is the item as rendered by the RenderFunc
	Content string
}

// Frame is what the viewport draws for one window, independent of how it's drawn to the terminal:
//   - a container ViewportExtent rows tall, scrolled ScrollOffset rows
//   - a spacer SpacerExtent rows tall, sized to the full list so the scrollbar is proportioned correctly
//   - a group of Nodes shifted down by Translate rows, so each node sits where it would in the full list
type Frame struct {
	ViewportExtent float64
	SpacerExtent   float64
	Translate      float64
	ScrollOffset   float64
	Nodes          []Node
}
