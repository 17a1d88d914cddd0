package grid

// SizeMsg tells the widget its display size.
type SizeMsg struct {
	Width  int
	Height int
}
