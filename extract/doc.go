// Package extract computes card cell geometry and samples card images from
// rendered page surfaces.
//
// All geometry works in extraction-resolution pixels (300 per inch). A cell
// is located by applying the page-level crop, subtracting the gutter from the
// fold axis before dividing the page into grid cells, offsetting cells past
// the fold by the gutter width, and finally shrinking the cell by the
// per-card crop. [Dimensions] reports the resulting card size without
// touching pixels; [Extract] samples the region into a standalone image and
// applies the side's image rotation.
//
// Geometry that produces a non-positive region is reported as a
// [GeometryError] before any sampling is attempted, so callers can surface
// a validation message naming the offending dimension.
package extract
