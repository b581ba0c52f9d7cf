// Package calibrate converts physical ruler measurements of a printed test
// page into corrected offset and scale values.
//
// The test page prints one card centered on the sheet together with a
// crosshair of a known reference length. The user measures three distances
// with a ruler; [Calibrate] turns those measurements into new settings that
// compensate for the printer's misalignment and enlargement. The function is
// pure: feeding it measurements that exactly match the expectations returns
// the current settings unchanged with zero deltas.
package calibrate

import (
	"fmt"
	"math"
)

// ReferenceCrosshairInches is the printed length of the calibration
// crosshair arms.
const ReferenceCrosshairInches = 1.0

// Tolerances below which an axis is reported as centered and the scale as
// accurate.
const (
	offsetTolerance = 0.005 // inches
	scaleTolerance  = 0.05  // percent
)

// Measurements are the three ruler readings from the printed test page, in
// inches: the distance from the card's right edge to its center line, the
// distance from the top edge to the center line, and the printed length of
// the crosshair.
type Measurements struct {
	RightDistance   float64
	TopDistance     float64
	CrosshairLength float64
}

// Current carries the offset and scale values the test page was printed
// with.
type Current struct {
	HorizontalOffset float64 // inches, positive moves the card right
	VerticalOffset   float64 // inches, positive moves the card down
	ScalePercent     float64
}

// Diagnostics describe each correction in words suitable for display.
type Diagnostics struct {
	Horizontal string
	Vertical   string
	Scale      string
}

// Result holds the corrected settings, the applied deltas, and diagnostics.
type Result struct {
	HorizontalOffset float64
	VerticalOffset   float64
	ScalePercent     float64

	HorizontalDelta float64
	VerticalDelta   float64
	ScaleDelta      float64

	Diagnostics Diagnostics
}

// Calibrate computes corrected offsets and scale from the measurements.
// The expected right and top distances are half the card's width and height;
// the expected crosshair length is [ReferenceCrosshairInches]. A card that
// printed too far left yields a positive horizontal delta, moving it right.
func Calibrate(m Measurements, cardWidthInches, cardHeightInches float64, cur Current) (Result, error) {
	if cardWidthInches <= 0 || cardHeightInches <= 0 {
		return Result{}, fmt.Errorf("calibrate: card size must be positive, got %gx%g", cardWidthInches, cardHeightInches)
	}
	if m.CrosshairLength <= 0 {
		return Result{}, fmt.Errorf("calibrate: measured crosshair length must be positive, got %g", m.CrosshairLength)
	}
	if cur.ScalePercent <= 0 {
		return Result{}, fmt.Errorf("calibrate: current scale must be positive, got %g", cur.ScalePercent)
	}

	hDelta := cardWidthInches/2 - m.RightDistance
	vDelta := cardHeightInches/2 - m.TopDistance

	newScale := cur.ScalePercent * (ReferenceCrosshairInches / m.CrosshairLength)
	scaleDelta := newScale - cur.ScalePercent

	r := Result{
		HorizontalOffset: cur.HorizontalOffset + hDelta,
		VerticalOffset:   cur.VerticalOffset + vDelta,
		ScalePercent:     newScale,
		HorizontalDelta:  hDelta,
		VerticalDelta:    vDelta,
		ScaleDelta:       scaleDelta,
	}
	r.Diagnostics = Diagnostics{
		Horizontal: offsetDiagnostic(hDelta),
		Vertical:   offsetDiagnostic(vDelta),
		Scale:      scaleDiagnostic(scaleDelta),
	}
	return r, nil
}

func offsetDiagnostic(delta float64) string {
	if math.Abs(delta) < offsetTolerance {
		return "centered"
	}
	return fmt.Sprintf("off by %.3f inches", math.Abs(delta))
}

func scaleDiagnostic(delta float64) string {
	if math.Abs(delta) < scaleTolerance {
		return "accurate"
	}
	return fmt.Sprintf("off by %.1f%%", math.Abs(delta))
}
