// Package imaging holds small pixel-level helpers shared by the extract and
// render packages.
package imaging

import "image"

// Rotate returns a copy of img rotated clockwise by an orthogonal angle
// (0, 90, 180 or 270 degrees). The rotation is about the image center, so a
// 90 or 270 degree result has width and height exchanged. Angles are taken
// modulo 360; anything that is not a multiple of 90 is rounded down to one.
func Rotate(img image.Image, degrees int) *image.NRGBA {
	degrees = ((degrees % 360) + 360) % 360
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	var dst *image.NRGBA
	switch degrees {
	case 90:
		dst = image.NewNRGBA(image.Rect(0, 0, h, w))
		for y := 0; y < w; y++ {
			for x := 0; x < h; x++ {
				dst.Set(x, y, img.At(b.Min.X+y, b.Min.Y+h-1-x))
			}
		}
	case 180:
		dst = image.NewNRGBA(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.Set(x, y, img.At(b.Min.X+w-1-x, b.Min.Y+h-1-y))
			}
		}
	case 270:
		dst = image.NewNRGBA(image.Rect(0, 0, h, w))
		for y := 0; y < w; y++ {
			for x := 0; x < h; x++ {
				dst.Set(x, y, img.At(b.Min.X+w-1-y, b.Min.Y+x))
			}
		}
	default:
		dst = image.NewNRGBA(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.Set(x, y, img.At(b.Min.X+x, b.Min.Y+y))
			}
		}
	}
	return dst
}
