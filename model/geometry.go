package model

// Rect is an axis-aligned rectangle in extraction-resolution pixels.
// X and Y locate the top-left corner.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect creates a rectangle from origin and dimensions.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the X coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the Y coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Inset shrinks the rectangle by the given crop amounts on each side.
func (r Rect) Inset(c CropSpec) Rect {
	return Rect{
		X:      r.X + c.Left,
		Y:      r.Y + c.Top,
		Width:  r.Width - c.Left - c.Right,
		Height: r.Height - c.Top - c.Bottom,
	}
}

// Intersect returns the overlapping region of two rectangles.
// The zero Rect is returned when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())
	if right <= x || bottom <= y {
		return Rect{}
	}
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// IsValid returns true if the rectangle has positive dimensions.
func (r Rect) IsValid() bool {
	return r.Width > 0 && r.Height > 0
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Size is a width/height pair in extraction-resolution pixels.
type Size struct {
	Width  int
	Height int
}

// Swapped returns the size with width and height exchanged.
func (s Size) Swapped() Size {
	return Size{Width: s.Height, Height: s.Width}
}

// IsValid returns true if both dimensions are positive.
func (s Size) IsValid() bool {
	return s.Width > 0 && s.Height > 0
}

// SizeInches is a width/height pair in physical inches.
type SizeInches struct {
	Width  float64
	Height float64
}

// Swapped returns the size with width and height exchanged.
func (s SizeInches) Swapped() SizeInches {
	return SizeInches{Width: s.Height, Height: s.Width}
}

// IsValid returns true if both dimensions are positive.
func (s SizeInches) IsValid() bool {
	return s.Width > 0 && s.Height > 0
}

// OffsetInches is a signed horizontal/vertical displacement in inches.
// Positive values move the card right and down.
type OffsetInches struct {
	Horizontal float64
	Vertical   float64
}
