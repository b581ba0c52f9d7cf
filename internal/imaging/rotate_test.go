package imaging

import (
	"image"
	"image/color"
	"testing"
)

// corners builds a 3x2 image with a distinct corner color at (0,0).
func corners() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.SetNRGBA(x, y, color.NRGBA{B: 255, A: 255})
		}
	}
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	return img
}

func isRed(c color.Color) bool {
	r, _, _, _ := c.RGBA()
	return r == 0xffff
}

func TestRotateDimensions(t *testing.T) {
	img := corners()
	tests := []struct {
		degrees int
		w, h    int
	}{
		{0, 3, 2},
		{90, 2, 3},
		{180, 3, 2},
		{270, 2, 3},
		{360, 3, 2},
		{-90, 2, 3},
	}
	for _, tt := range tests {
		got := Rotate(img, tt.degrees)
		if got.Bounds().Dx() != tt.w || got.Bounds().Dy() != tt.h {
			t.Errorf("Rotate(%d) size = %v, want %dx%d", tt.degrees, got.Bounds(), tt.w, tt.h)
		}
	}
}

func TestRotateCornerTracking(t *testing.T) {
	img := corners()

	// Top-left travels: 90cw -> top-right, 180 -> bottom-right,
	// 270 -> bottom-left.
	r90 := Rotate(img, 90)
	if !isRed(r90.At(1, 0)) {
		t.Error("90: red corner should be at top-right")
	}
	r180 := Rotate(img, 180)
	if !isRed(r180.At(2, 1)) {
		t.Error("180: red corner should be at bottom-right")
	}
	r270 := Rotate(img, 270)
	if !isRed(r270.At(0, 2)) {
		t.Error("270: red corner should be at bottom-left")
	}
	r0 := Rotate(img, 0)
	if !isRed(r0.At(0, 0)) {
		t.Error("0: red corner should stay at top-left")
	}
}

func TestRotateNonZeroOrigin(t *testing.T) {
	// Sub-images carry a non-zero origin; rotation must respect it.
	base := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	base.SetNRGBA(5, 5, color.NRGBA{R: 255, A: 255})
	sub := base.SubImage(image.Rect(5, 5, 8, 7)).(*image.NRGBA)

	got := Rotate(sub, 90)
	if got.Bounds().Min != (image.Point{}) {
		t.Errorf("rotated image should start at the origin, got %v", got.Bounds().Min)
	}
	if !isRed(got.At(1, 0)) {
		t.Error("red pixel should land at top-right after 90cw")
	}
}
