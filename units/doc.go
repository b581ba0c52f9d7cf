// Package units holds the conversion constants and helpers that relate the
// three resolution domains the engine works in: extraction-resolution pixels
// (fixed 300 per inch), physical inches, and on-screen preview pixels.
//
// Keeping these conversions in one place is what guarantees print-accurate
// sizing: extraction samples at [DPI] pixels per inch, and downstream export
// must place images at the same ratio.
package units
