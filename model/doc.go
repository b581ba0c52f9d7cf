// Package model provides the value types shared by all cardstock packages.
//
// This package defines the user-facing data structures for describing source
// pages, the card grid, and extraction/output settings. All engine operations
// consume and produce these types, making them the primary API surface for
// configuring the pipeline.
//
// # Pages and Sides
//
// A [Page] describes one source unit: a rendered page of a paged document or
// a standalone raster image. Pages carry a display order and an active flag;
// inactive (skipped) pages do not participate in card addressing. Every card
// resolves to a [Side], front or back, depending on the processing [Mode].
//
// # Settings
//
// Two settings structs drive the engine:
//
//   - [ExtractionSettings] - grid, crops, gutter, and per-side image rotation,
//     all in extraction-resolution pixels
//   - [OutputSettings] - physical page/card sizes, offsets, bleed, scale, and
//     per-side layout rotation, all in inches
//
// Both are plain value structs. Configuration methods never mutate a settings
// value in place; derived settings are computed once per request via
// [Resolve], which applies the global → group → page override chain.
//
// # Geometry
//
// Pixel-domain geometry uses [Rect] and [Size]; physical dimensions use
// [SizeInches] and [OffsetInches]. The fixed 300 pixels-per-inch convention
// that relates the two lives in the units package.
package model
