package units

import "math"

// DPI is the fixed extraction resolution in pixels per inch. All pixel-domain
// geometry in the engine assumes this convention.
const DPI = 300

// Preview bounds: the largest on-screen box an output page preview is scaled
// into, in display pixels.
const (
	PreviewMaxWidth  = 800
	PreviewMaxHeight = 600
)

// PixelsToInches converts an extraction-resolution pixel count to inches.
func PixelsToInches(px int) float64 {
	return float64(px) / DPI
}

// InchesToPixels converts inches to extraction-resolution pixels, rounding
// to the nearest pixel.
func InchesToPixels(in float64) int {
	return int(math.Round(in * DPI))
}

// PreviewScale returns the display-pixels-per-inch factor that fits a page
// of the given physical size into a maxWidth x maxHeight display box while
// preserving aspect ratio. Card, offset, and bleed must all be scaled by the
// same factor for a consistent preview.
func PreviewScale(pageWidthInches, pageHeightInches float64, maxWidth, maxHeight int) float64 {
	if pageWidthInches <= 0 || pageHeightInches <= 0 {
		return 0
	}
	sx := float64(maxWidth) / pageWidthInches
	sy := float64(maxHeight) / pageHeightInches
	return math.Min(sx, sy)
}
