// Package render computes how an extracted card image is scaled, rotated,
// and positioned on a physical output page.
//
// [Position] is pure geometry: it derives the final render dimensions from
// the sizing mode (actual-size, fit-to-card, fill-card), centers the card
// box on the page, applies the signed offset and the side's layout rotation,
// and reports the preview transform. [ProcessImage] then produces the actual
// bitmap for that placement, so the exported page needs no further
// transform.
package render
