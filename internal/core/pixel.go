package core

// Pixel is the category of one cell in a rendered frame.
// Display drivers decide how each category is shown.
type Pixel uint8

const (
	PixelOff   Pixel = iota // Background
	PixelBlink              // Foreground drawn blinking (apple)
	PixelOn                 // Foreground drawn solid (snake)
)

// String returns a short name for the pixel category.
func (p Pixel) String() string {
	switch p {
	case PixelOff:
		return "off"
	case PixelBlink:
		return "blink"
	case PixelOn:
		return "on"
	default:
		return "unknown"
	}
}

// Buffer is one rendered frame, one Pixel per grid cell in index order.
type Buffer []Pixel

// Count returns how many cells hold the given category.
func (b Buffer) Count(p Pixel) int {
	n := 0
	for _, v := range b {
		if v == p {
			n++
		}
	}
	return n
}
