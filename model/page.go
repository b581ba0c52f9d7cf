package model

// SourceKind identifies how a page's raster surface is produced.
type SourceKind int

const (
	// SourcePagedDocument is a page of a multi-page document, rendered to a
	// raster surface at extraction resolution by an external renderer.
	SourcePagedDocument SourceKind = iota
	// SourceRasterImage is a standalone image file used directly.
	SourceRasterImage
)

// String returns a human-readable name for the source kind.
func (k SourceKind) String() string {
	switch k {
	case SourcePagedDocument:
		return "paged-document"
	case SourceRasterImage:
		return "raster-image"
	default:
		return "unknown"
	}
}

// Side identifies the front or back face of a card.
type Side int

const (
	Front Side = iota
	Back
)

// String returns "front" or "back".
func (s Side) String() string {
	if s == Back {
		return "back"
	}
	return "front"
}

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == Back {
		return Front
	}
	return Back
}

// Page describes one source unit in the import sequence. Pages are created at
// import time and reordered or skip-toggled by the caller; the engine only
// reads them.
type Page struct {
	// SourceFile identifies the file this page came from.
	SourceFile string
	// Kind tells whether the surface comes from a rendered document page or
	// a raster image.
	Kind SourceKind
	// OriginalIndex is this page's index within its source file.
	OriginalIndex int
	// Order is the display position within the whole sequence.
	Order int
	// Active is false for skipped pages. Skipped pages are removed from
	// addressing, shifting every subsequent card index.
	Active bool
	// SideOverride forces this page's side in simplex mode. Nil means front.
	SideOverride *Side
	// ModeOverride replaces the effective processing mode for this page.
	ModeOverride *Mode
}

// PageSide returns the page's side in simplex mode: front unless overridden.
func (p Page) PageSide() Side {
	if p.SideOverride != nil {
		return *p.SideOverride
	}
	return Front
}
