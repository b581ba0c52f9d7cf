// Package cardstock turns scanned document pages and raster images into
// individually addressable cards on a grid, and computes how those cards are
// placed on print-ready output pages at physical precision.
//
// Basic usage:
//
//	p := cardstock.New(pages, extraction, output).
//	    WithMode(model.Mode{Kind: model.Duplex})
//	res, err := p.Card(ctx, 0, surface)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(res.Identity, res.Dimensions.Inches)
//
// Batch export continues past individual card failures and reports them as
// warnings:
//
//	results, warnings, err := p.ExportAll(ctx, surfaces)
//	if len(warnings) > 0 {
//	    log.Println(cardstock.FormatWarnings(warnings))
//	}
//
// The lower-level address, extract, render, and calibrate packages are also
// available for callers that need the individual calculations.
package cardstock

import (
	"github.com/tsawler/cardstock/model"
)

// New creates a Pipeline over the given page sequence and settings. The
// default processing mode is simplex; configure with the With methods, each
// of which returns a new Pipeline, leaving the receiver untouched.
//
// Example:
//
//	p := cardstock.New(pages, extraction, output).
//	    WithMode(model.Mode{Kind: model.GutterFold, Orientation: model.FoldVertical}).
//	    WithWorkers(8)
func New(pages []model.Page, extraction model.ExtractionSettings, output model.OutputSettings) *Pipeline {
	p := &Pipeline{
		pages:      append([]model.Page(nil), pages...),
		extraction: extraction,
		output:     output,
		opts:       defaultPipelineOptions(),
	}
	if err := extraction.Validate(); err != nil {
		p.err = err
	} else if err := output.Validate(); err != nil {
		p.err = err
	}
	return p
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	res := cardstock.Must(p.Card(ctx, 0, surface))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
