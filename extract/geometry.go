package extract

import (
	"github.com/tsawler/cardstock/address"
	"github.com/tsawler/cardstock/model"
	"github.com/tsawler/cardstock/units"
)

// gutterWidth returns the effective gutter for a gutter-fold mode. The mode
// carries an optional width; the extraction settings hold the default.
func gutterWidth(s model.ExtractionSettings, mode model.Mode) int {
	if mode.Kind != model.GutterFold {
		return 0
	}
	if mode.GutterWidth > 0 {
		return mode.GutterWidth
	}
	return s.GutterWidth
}

// cellSize returns the size of one grid cell after the page-level crop and
// gutter subtraction, before the per-card crop is applied. The gutter is
// subtracted from the fold axis before dividing, so the two halves are
// symmetric around the gutter.
func cellSize(s model.ExtractionSettings, mode model.Mode) (model.Size, error) {
	w := s.PageSize.Width - s.Crop.Left - s.Crop.Right
	h := s.PageSize.Height - s.Crop.Top - s.Crop.Bottom
	if w <= 0 {
		return model.Size{}, &GeometryError{Dimension: "width", Stage: "page crop", Value: w}
	}
	if h <= 0 {
		return model.Size{}, &GeometryError{Dimension: "height", Stage: "page crop", Value: h}
	}

	g := gutterWidth(s, mode)
	if g > 0 {
		if mode.Orientation == model.FoldHorizontal {
			h -= g
			if h <= 0 {
				return model.Size{}, &GeometryError{Dimension: "height", Stage: "gutter", Value: h}
			}
		} else {
			w -= g
			if w <= 0 {
				return model.Size{}, &GeometryError{Dimension: "width", Stage: "gutter", Value: w}
			}
		}
	}

	cw := w / s.Grid.Columns
	ch := h / s.Grid.Rows
	if cw <= 0 {
		return model.Size{}, &GeometryError{Dimension: "width", Stage: "grid", Value: cw}
	}
	if ch <= 0 {
		return model.Size{}, &GeometryError{Dimension: "height", Stage: "grid", Value: ch}
	}
	return model.Size{Width: cw, Height: ch}, nil
}

// cardSize returns the sampled card size: one cell shrunk by the per-card
// crop.
func cardSize(s model.ExtractionSettings, mode model.Mode) (model.Size, error) {
	cell, err := cellSize(s, mode)
	if err != nil {
		return model.Size{}, err
	}
	w := cell.Width - s.CardCrop.Left - s.CardCrop.Right
	h := cell.Height - s.CardCrop.Top - s.CardCrop.Bottom
	if w <= 0 {
		return model.Size{}, &GeometryError{Dimension: "width", Stage: "card crop", Value: w}
	}
	if h <= 0 {
		return model.Size{}, &GeometryError{Dimension: "height", Stage: "card crop", Value: h}
	}
	return model.Size{Width: w, Height: h}, nil
}

// Dimensions reports the extracted and physical size of a card on the given
// side, accounting for crops, gutter, and the side's image rotation. For 90
// and 270 degree rotations the reported width and height are swapped;
// extraction still samples the unrotated region.
func Dimensions(s model.ExtractionSettings, mode model.Mode, side model.Side) (model.CardDimensions, error) {
	if err := s.Validate(); err != nil {
		return model.CardDimensions{}, err
	}
	src, err := cardSize(s, mode)
	if err != nil {
		return model.CardDimensions{}, err
	}

	rot := s.ImageRotation(side).Normalize()
	reported := src
	if rot.SwapsAxes() {
		reported = src.Swapped()
	}
	return model.CardDimensions{
		SourcePixels: src,
		Pixels:       reported,
		Inches: model.SizeInches{
			Width:  units.PixelsToInches(reported.Width),
			Height: units.PixelsToInches(reported.Height),
		},
		Rotation: rot,
		Side:     side,
	}, nil
}

// CellRect returns the absolute pixel region of the given cell's card on the
// page surface, with page crop, gutter offset, and per-card crop applied.
// Cells past the midpoint on the fold axis are offset by the gutter width,
// consistent with the mirroring rule used for addressing.
func CellRect(s model.ExtractionSettings, mode model.Mode, cellIndex int) (model.Rect, error) {
	cell, err := cellSize(s, mode)
	if err != nil {
		return model.Rect{}, err
	}
	card, err := cardSize(s, mode)
	if err != nil {
		return model.Rect{}, err
	}

	row, col := address.CellPosition(cellIndex, s.Grid)
	x := s.Crop.Left + col*cell.Width
	y := s.Crop.Top + row*cell.Height

	g := gutterWidth(s, mode)
	if g > 0 {
		if mode.Orientation == model.FoldHorizontal {
			if row >= s.Grid.Rows/2 {
				y += g
			}
		} else {
			if col >= s.Grid.Columns/2 {
				x += g
			}
		}
	}

	return model.Rect{
		X:      x + s.CardCrop.Left,
		Y:      y + s.CardCrop.Top,
		Width:  card.Width,
		Height: card.Height,
	}, nil
}
