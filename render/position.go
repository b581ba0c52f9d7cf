package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/tsawler/cardstock/model"
	"github.com/tsawler/cardstock/units"
)

// ErrDegenerate is returned when a placement would have a non-positive
// dimension. Nothing should be drawn for such a placement.
var ErrDegenerate = errors.New("render: placement has non-positive dimensions")

// Placement describes where and how large a card renders on the output
// page. Scaled and Visible are in unrotated image terms; Size, X and Y
// describe the placed box after the layout rotation.
type Placement struct {
	// Scaled is the image size after sizing-mode scaling, in inches.
	Scaled model.SizeInches
	// Visible is the part of the scaled image that appears on the page.
	// It equals Scaled except in fill-card mode, where the overflow past
	// the card box is cropped away.
	Visible model.SizeInches
	// Size is the placed box on the page, axes swapped for 90/270 layout
	// rotations.
	Size model.SizeInches
	// X, Y locate the placed box's top-left corner on the page, in inches.
	X float64
	Y float64
	// Rotation is the layout rotation applied to the bitmap before
	// placement.
	Rotation model.Rotation
}

// Position computes the placement for a card whose extracted bitmap is
// cardPx pixels (post image-rotation). The card box is CardSize scaled by
// CardScalePercent, grown by the bleed margin on every side; the sizing mode
// decides how the image maps into that box. The box is centered on the page
// and then displaced by the signed offset.
func Position(cardPx model.Size, out model.OutputSettings, side model.Side) (Placement, error) {
	if err := out.Validate(); err != nil {
		return Placement{}, err
	}
	if !cardPx.IsValid() {
		return Placement{}, fmt.Errorf("%w: card image is %dx%dpx", ErrDegenerate, cardPx.Width, cardPx.Height)
	}

	img := model.SizeInches{
		Width:  units.PixelsToInches(cardPx.Width),
		Height: units.PixelsToInches(cardPx.Height),
	}

	factor := out.CardScalePercent / 100
	box := model.SizeInches{
		Width:  out.CardSize.Width*factor + 2*out.BleedInches,
		Height: out.CardSize.Height*factor + 2*out.BleedInches,
	}

	var scaled, visible model.SizeInches
	switch out.Sizing {
	case model.SizingFit:
		// Scale down only; an image already smaller than the box keeps its
		// natural size.
		s := math.Min(box.Width/img.Width, box.Height/img.Height)
		if s > 1 {
			s = 1
		}
		scaled = model.SizeInches{Width: img.Width * s, Height: img.Height * s}
		visible = scaled
	case model.SizingFill:
		s := math.Max(box.Width/img.Width, box.Height/img.Height)
		scaled = model.SizeInches{Width: img.Width * s, Height: img.Height * s}
		visible = box
	default: // actual-size
		scaled = img
		visible = img
	}

	rot := out.Rotation(side).Normalize()
	placed := visible
	if rot.SwapsAxes() {
		placed = placed.Swapped()
	}
	if !placed.IsValid() {
		return Placement{}, fmt.Errorf("%w: placed box is %gx%g inches", ErrDegenerate, placed.Width, placed.Height)
	}

	return Placement{
		Scaled:   scaled,
		Visible:  visible,
		Size:     placed,
		X:        (out.PageSize.Width-placed.Width)/2 + out.Offset.Horizontal,
		Y:        (out.PageSize.Height-placed.Height)/2 + out.Offset.Vertical,
		Rotation: rot,
	}, nil
}
