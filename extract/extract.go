package extract

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/tsawler/cardstock/internal/imaging"
	"github.com/tsawler/cardstock/model"
)

// Extract samples one card's pixels from a rendered page surface into a
// standalone image. The cell region is computed from the settings (page
// crop, gutter offset, per-card crop) and clamped minimally against the
// surface bounds; a region that lies entirely outside the surface is an
// error, never silently substituted. If the resolved side has a non-zero
// image rotation the returned image is rotated about its center, so 90 and
// 270 degree results have width and height exchanged.
//
// Failures are wrapped in an [ExtractError] carrying pageIndex and
// cellIndex for diagnostics.
func Extract(surface image.Image, pageIndex, cellIndex int, s model.ExtractionSettings, mode model.Mode, identity model.CardIdentity) (image.Image, error) {
	if surface == nil {
		return nil, &ExtractError{Page: pageIndex, Cell: cellIndex, Err: ErrNoSurface}
	}
	bounds := surface.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, &ExtractError{Page: pageIndex, Cell: cellIndex, Err: ErrNoSurface}
	}
	if cellIndex < 0 || cellIndex >= s.Grid.CardsPerPage() {
		return nil, &ExtractError{Page: pageIndex, Cell: cellIndex,
			Err: fmt.Errorf("cell index outside %dx%d grid", s.Grid.Rows, s.Grid.Columns)}
	}

	rect, err := CellRect(s, mode, cellIndex)
	if err != nil {
		return nil, &ExtractError{Page: pageIndex, Cell: cellIndex, Err: err}
	}

	// The surface may have a non-zero origin; geometry is relative to its
	// top-left pixel.
	abs := image.Rect(
		bounds.Min.X+rect.X,
		bounds.Min.Y+rect.Y,
		bounds.Min.X+rect.Right(),
		bounds.Min.Y+rect.Bottom(),
	)

	// Minimal bounds-safety clamp: a page surface slightly smaller than the
	// cached reference dimensions loses edge pixels instead of crashing.
	clamped := abs.Intersect(bounds)
	if clamped.Empty() {
		return nil, &ExtractError{Page: pageIndex, Cell: cellIndex,
			Err: fmt.Errorf("cell region %v lies outside the page surface %v", abs, bounds)}
	}

	card := image.NewNRGBA(image.Rect(0, 0, clamped.Dx(), clamped.Dy()))
	draw.Draw(card, card.Bounds(), surface, clamped.Min, draw.Src)

	rot := s.ImageRotation(identity.Side).Normalize()
	if rot == model.Rotate0 {
		return card, nil
	}
	return imaging.Rotate(card, int(rot)), nil
}
