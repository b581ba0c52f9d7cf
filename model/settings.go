package model

import (
	"errors"
	"fmt"
)

// ModeKind selects the page-pairing scheme used for card addressing.
type ModeKind int

const (
	// Simplex treats every page as single-sided; each page's side comes from
	// its own SideOverride (front by default).
	Simplex ModeKind = iota
	// Duplex pairs pages front, back, front, back after skip-filtering.
	Duplex
	// GutterFold splits each page into two halves along a fold axis; one
	// half holds fronts and the mirrored cell on the other half holds the
	// matching back.
	GutterFold
)

// String returns a human-readable name for the mode kind.
func (k ModeKind) String() string {
	switch k {
	case Simplex:
		return "simplex"
	case Duplex:
		return "duplex"
	case GutterFold:
		return "gutter-fold"
	default:
		return "unknown"
	}
}

// FoldOrientation is the axis a gutter-fold sheet folds along.
type FoldOrientation int

const (
	// FoldVertical folds along a vertical line: the left half holds fronts,
	// the right half holds column-mirrored backs.
	FoldVertical FoldOrientation = iota
	// FoldHorizontal folds along a horizontal line: the top half holds
	// fronts, the bottom half holds row-mirrored backs.
	FoldHorizontal
)

// String returns "vertical" or "horizontal".
func (o FoldOrientation) String() string {
	if o == FoldHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// Mode is a processing mode: the pairing scheme plus, for gutter-fold, the
// fold axis and the width of the strip reserved at the fold.
type Mode struct {
	Kind        ModeKind
	Orientation FoldOrientation
	// GutterWidth is the reserved strip at the fold, in extraction-resolution
	// pixels. Only meaningful for GutterFold.
	GutterWidth int
}

// Rotation is an orthogonal rotation in degrees.
type Rotation int

const (
	Rotate0   Rotation = 0
	Rotate90  Rotation = 90
	Rotate180 Rotation = 180
	Rotate270 Rotation = 270
)

// Normalize reduces any multiple of 90 degrees into [0, 360).
func (r Rotation) Normalize() Rotation {
	n := int(r) % 360
	if n < 0 {
		n += 360
	}
	return Rotation(n)
}

// SwapsAxes returns true for 90 and 270 degree rotations, which exchange a
// card's width and height.
func (r Rotation) SwapsAxes() bool {
	n := r.Normalize()
	return n == Rotate90 || n == Rotate270
}

// IsValid returns true for the four orthogonal rotations.
func (r Rotation) IsValid() bool {
	switch r {
	case Rotate0, Rotate90, Rotate180, Rotate270:
		return true
	}
	return false
}

// SizingMode controls how an extracted card image is scaled into the target
// card box during render positioning.
type SizingMode string

const (
	// SizingActual places the image at its natural size (pixels at 300 DPI),
	// ignoring the card box.
	SizingActual SizingMode = "actual-size"
	// SizingFit scales the image down (never up) to fit entirely inside the
	// card box, preserving aspect ratio.
	SizingFit SizingMode = "fit-to-card"
	// SizingFill scales the image to cover the card box, preserving aspect
	// ratio and cropping the overflow.
	SizingFill SizingMode = "fill-card"
)

// Grid divides a page into rows x columns card cells.
type Grid struct {
	Rows    int
	Columns int
}

// CardsPerPage returns the number of cells on one page.
func (g Grid) CardsPerPage() int {
	return g.Rows * g.Columns
}

// Validate checks that both dimensions are at least one.
func (g Grid) Validate() error {
	if g.Rows < 1 {
		return fmt.Errorf("model: grid rows must be at least 1, got %d", g.Rows)
	}
	if g.Columns < 1 {
		return fmt.Errorf("model: grid columns must be at least 1, got %d", g.Columns)
	}
	return nil
}

// CropSpec is a set of non-negative per-edge crop amounts in
// extraction-resolution pixels.
type CropSpec struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// IsZero returns true when no cropping is requested.
func (c CropSpec) IsZero() bool {
	return c == CropSpec{}
}

// Validate checks that no edge is negative. Whether the crop leaves a
// positive region is an extraction-time concern, since crop values are
// edited independently of the page they apply to.
func (c CropSpec) Validate() error {
	if c.Top < 0 || c.Right < 0 || c.Bottom < 0 || c.Left < 0 {
		return errors.New("model: crop values must not be negative")
	}
	return nil
}

// ExtractionSettings configures how card pixels are located and sampled from
// a page surface. All values are in extraction-resolution pixels.
type ExtractionSettings struct {
	Grid Grid
	// Crop is applied to the whole page before the grid is laid out.
	Crop CropSpec
	// CardCrop shrinks each individual cell after the grid is laid out.
	CardCrop CropSpec
	// GutterWidth is the reserved strip at the fold for gutter-fold pages.
	GutterWidth int
	// FrontRotation and BackRotation are baked into the extracted bitmap.
	FrontRotation Rotation
	BackRotation  Rotation
	// PageSize is the reference page's dimensions, cached so addressing and
	// dimension math that depends on page aspect need not touch a surface.
	PageSize Size
}

// ImageRotation returns the extraction rotation for the given side.
func (s ExtractionSettings) ImageRotation(side Side) Rotation {
	if side == Back {
		return s.BackRotation
	}
	return s.FrontRotation
}

// Validate checks field ranges. Geometry feasibility (crops leaving a
// positive cell) is validated at extraction time.
func (s ExtractionSettings) Validate() error {
	if err := s.Grid.Validate(); err != nil {
		return err
	}
	if err := s.Crop.Validate(); err != nil {
		return fmt.Errorf("page crop: %w", err)
	}
	if err := s.CardCrop.Validate(); err != nil {
		return fmt.Errorf("card crop: %w", err)
	}
	if s.GutterWidth < 0 {
		return fmt.Errorf("model: gutter width must not be negative, got %d", s.GutterWidth)
	}
	if !s.FrontRotation.IsValid() || !s.BackRotation.IsValid() {
		return errors.New("model: image rotation must be 0, 90, 180 or 270")
	}
	return nil
}

// OutputSettings configures how an extracted card is placed on an output
// page. All distances are physical inches.
type OutputSettings struct {
	// PageSize is the output page's physical size.
	PageSize SizeInches
	// Offset displaces the placed card from the page center.
	Offset OffsetInches
	// CardSize is the target card box before scale and bleed.
	CardSize SizeInches
	// CardScalePercent uniformly scales the card box, 1-200. Used to
	// compensate for printer enlargement.
	CardScalePercent float64
	// BleedInches is extra margin added around the card box on every side.
	BleedInches float64
	// FrontRotation and BackRotation rotate the placed card on the page.
	// This layout rotation is distinct from the image rotation applied
	// during extraction.
	FrontRotation Rotation
	BackRotation  Rotation
	// Sizing selects how the image is scaled into the card box.
	Sizing SizingMode
}

// Rotation returns the layout rotation for the given side.
func (s OutputSettings) Rotation(side Side) Rotation {
	if side == Back {
		return s.BackRotation
	}
	return s.FrontRotation
}

// Validate checks field ranges.
func (s OutputSettings) Validate() error {
	if !s.PageSize.IsValid() {
		return fmt.Errorf("model: page size must be positive, got %gx%g", s.PageSize.Width, s.PageSize.Height)
	}
	if !s.CardSize.IsValid() {
		return fmt.Errorf("model: card size must be positive, got %gx%g", s.CardSize.Width, s.CardSize.Height)
	}
	if s.CardScalePercent < 1 || s.CardScalePercent > 200 {
		return fmt.Errorf("model: card scale must be between 1 and 200 percent, got %g", s.CardScalePercent)
	}
	if s.BleedInches < 0 {
		return fmt.Errorf("model: bleed margin must not be negative, got %g", s.BleedInches)
	}
	if !s.FrontRotation.IsValid() || !s.BackRotation.IsValid() {
		return errors.New("model: layout rotation must be 0, 90, 180 or 270")
	}
	switch s.Sizing {
	case SizingActual, SizingFit, SizingFill:
	default:
		return fmt.Errorf("model: unknown sizing mode %q", s.Sizing)
	}
	return nil
}

// Fingerprint returns a stable string covering every OutputSettings field
// that affects a rendered card. Two settings values with equal fingerprints
// produce identical render results, which makes the fingerprint safe to use
// in preview cache keys.
func (s OutputSettings) Fingerprint() string {
	return fmt.Sprintf("card=%gx%g scale=%g rot=%d/%d off=%g,%g sizing=%s bleed=%g",
		s.CardSize.Width, s.CardSize.Height,
		s.CardScalePercent,
		s.FrontRotation, s.BackRotation,
		s.Offset.Horizontal, s.Offset.Vertical,
		s.Sizing, s.BleedInches)
}
