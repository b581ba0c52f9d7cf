package render

import (
	"math"

	"github.com/tsawler/cardstock/model"
	"github.com/tsawler/cardstock/units"
)

// Preview maps physical output-page geometry into a bounded on-screen box.
// Card, offset, and bleed all scale by the same factor so the preview stays
// proportional to the printed result.
type Preview struct {
	// Scale is display pixels per inch.
	Scale float64
	// PageWidth and PageHeight are the page's preview dimensions in display
	// pixels.
	PageWidth  int
	PageHeight int
}

// PreviewTransform fits the output page into the default preview bounds.
func PreviewTransform(out model.OutputSettings) Preview {
	return PreviewTransformBounded(out, units.PreviewMaxWidth, units.PreviewMaxHeight)
}

// PreviewTransformBounded fits the output page into a maxWidth x maxHeight
// display box, preserving aspect ratio.
func PreviewTransformBounded(out model.OutputSettings, maxWidth, maxHeight int) Preview {
	scale := units.PreviewScale(out.PageSize.Width, out.PageSize.Height, maxWidth, maxHeight)
	return Preview{
		Scale:      scale,
		PageWidth:  int(math.Round(out.PageSize.Width * scale)),
		PageHeight: int(math.Round(out.PageSize.Height * scale)),
	}
}

// Pixels converts a physical distance in inches to preview display pixels.
func (p Preview) Pixels(inches float64) int {
	return int(math.Round(inches * p.Scale))
}
