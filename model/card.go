package model

// CardIdentity is the stable logical identity a global card index resolves
// to. IDs start at 1 and are stable for a given active-page sequence, grid,
// and processing mode.
type CardIdentity struct {
	ID   int
	Side Side
}

// CardDimensions reports a card's extracted and physical size.
type CardDimensions struct {
	// SourcePixels is the region sampled from the page, before rotation.
	SourcePixels Size
	// Pixels is the reported size after the side's image rotation; for 90
	// and 270 degree rotations width and height are swapped.
	Pixels Size
	// Inches is Pixels converted at the extraction DPI.
	Inches SizeInches
	// Rotation is the image rotation the report accounts for.
	Rotation Rotation
	// Side the dimensions were computed for.
	Side Side
}
