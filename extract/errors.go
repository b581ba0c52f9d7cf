package extract

import (
	"errors"
	"fmt"
)

// ErrNoSurface is returned when a page surface is missing or has no pixels.
// Recoverable by re-importing the source.
var ErrNoSurface = errors.New("extract: page surface is missing or invalid")

// GeometryError reports a crop, gutter, or grid combination that leaves a
// card region with a non-positive dimension. It is detected before any
// pixels are sampled and is user-correctable by adjusting the named values.
type GeometryError struct {
	// Dimension is "width" or "height".
	Dimension string
	// Stage names the subtraction that produced the bad value: "page crop",
	// "gutter", "grid", or "card crop".
	Stage string
	// Value is the resulting dimension in pixels.
	Value int
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("extract: %s leaves a card %s of %dpx; reduce the %s values", e.Stage, e.Dimension, e.Value, e.Stage)
}

// ExtractError wraps an extraction failure with the page and cell it
// occurred on, for diagnostics.
type ExtractError struct {
	Page int
	Cell int
	Err  error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("extract: page %d cell %d: %v", e.Page, e.Cell, e.Err)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}
