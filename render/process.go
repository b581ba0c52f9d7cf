package render

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/tsawler/cardstock/internal/imaging"
	"github.com/tsawler/cardstock/model"
	"github.com/tsawler/cardstock/units"
)

// ProcessImage renders the bitmap for a computed placement: the extracted
// card image is resampled to the placement's scaled size, cropped to the
// visible box (fill-card overflow), and rotated by the layout rotation. The
// result is ready to be drawn onto the output page at 300 DPI with no
// further transform.
func ProcessImage(card image.Image, pl Placement) (image.Image, error) {
	if card == nil {
		return nil, fmt.Errorf("%w: no card image", ErrDegenerate)
	}
	scaledW := units.InchesToPixels(pl.Scaled.Width)
	scaledH := units.InchesToPixels(pl.Scaled.Height)
	if scaledW <= 0 || scaledH <= 0 {
		return nil, fmt.Errorf("%w: scaled image is %dx%dpx", ErrDegenerate, scaledW, scaledH)
	}

	src := card
	if b := card.Bounds(); b.Dx() != scaledW || b.Dy() != scaledH {
		dst := image.NewNRGBA(image.Rect(0, 0, scaledW, scaledH))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), card, b, xdraw.Src, nil)
		src = dst
	}

	visibleW := units.InchesToPixels(pl.Visible.Width)
	visibleH := units.InchesToPixels(pl.Visible.Height)
	if visibleW <= 0 || visibleH <= 0 {
		return nil, fmt.Errorf("%w: visible box is %dx%dpx", ErrDegenerate, visibleW, visibleH)
	}
	if visibleW < scaledW || visibleH < scaledH {
		// Fill-card: crop the centered visible window out of the scaled
		// image.
		x0 := (scaledW - visibleW) / 2
		y0 := (scaledH - visibleH) / 2
		window := image.Rect(x0, y0, x0+visibleW, y0+visibleH)
		cropped := image.NewNRGBA(image.Rect(0, 0, visibleW, visibleH))
		xdraw.Copy(cropped, image.Point{}, src, window.Add(src.Bounds().Min), xdraw.Src, nil)
		src = cropped
	}

	if pl.Rotation.Normalize() == model.Rotate0 {
		return src, nil
	}
	return imaging.Rotate(src, int(pl.Rotation.Normalize())), nil
}
