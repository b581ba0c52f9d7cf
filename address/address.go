package address

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tsawler/cardstock/model"
)

var (
	// ErrIndexRange is returned when a global card index falls outside
	// [0, cardsPerPage x len(activePages)). Callers should treat this as
	// "no card", not as a fatal condition.
	ErrIndexRange = errors.New("address: card index out of range")

	// ErrNotFound is returned by Locate when no cell maps to the requested
	// identity. Locate never guesses.
	ErrNotFound = errors.New("address: no card matches the requested identity")
)

// ActivePages returns the non-skipped pages sorted by display order. The
// input slice is not modified.
func ActivePages(pages []model.Page) []model.Page {
	active := make([]model.Page, 0, len(pages))
	for _, p := range pages {
		if p.Active {
			active = append(active, p)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Order < active[j].Order
	})
	return active
}

// CardCount returns the number of addressable cells across the given active
// pages.
func CardCount(activePages []model.Page, grid model.Grid) int {
	return len(activePages) * grid.CardsPerPage()
}

// CellPosition converts a cell index into its row and column on the grid.
// Cells are numbered left to right, top to bottom.
func CellPosition(cellIndex int, grid model.Grid) (row, col int) {
	return cellIndex / grid.Columns, cellIndex % grid.Columns
}

// Identify resolves a global card index to its stable logical identity under
// the given processing mode. Only active pages participate; the identity is
// stable as long as the active-page sequence, grid, and mode are unchanged.
//
// Duplex and gutter-fold pairing is positional: the two sides are paired by
// mirrored cell position without checking that their extraction geometry is
// congruent. A side whose crops produce a degenerate cell fails later, at
// extraction time, with a geometry error naming the offending dimension.
func Identify(globalIndex int, activePages []model.Page, grid model.Grid, mode model.Mode) (model.CardIdentity, error) {
	if err := grid.Validate(); err != nil {
		return model.CardIdentity{}, err
	}
	cpp := grid.CardsPerPage()
	count := CardCount(activePages, grid)
	if globalIndex < 0 || globalIndex >= count {
		return model.CardIdentity{}, fmt.Errorf("%w: index %d, valid range [0, %d)", ErrIndexRange, globalIndex, count)
	}

	pageIndex := globalIndex / cpp
	cellIndex := globalIndex % cpp

	switch mode.Kind {
	case model.Duplex:
		side := model.Front
		if pageIndex%2 == 1 {
			side = model.Back
		}
		// The front page at position k and the back page at k+1 share IDs
		// cell-for-cell.
		pair := pageIndex / 2
		return model.CardIdentity{ID: pair*cpp + cellIndex + 1, Side: side}, nil

	case model.GutterFold:
		return identifyGutterFold(pageIndex, cellIndex, grid, mode)

	default: // simplex
		side := activePages[pageIndex].PageSide()
		sameSideBefore := 0
		for i := 0; i < pageIndex; i++ {
			if activePages[i].PageSide() == side {
				sameSideBefore++
			}
		}
		return model.CardIdentity{ID: sameSideBefore*cpp + cellIndex + 1, Side: side}, nil
	}
}

// identifyGutterFold resolves a cell on a folded sheet. The half before the
// fold (left for vertical, top for horizontal) holds fronts; the mirrored
// cell on the other half is the back with the same ID.
func identifyGutterFold(pageIndex, cellIndex int, grid model.Grid, mode model.Mode) (model.CardIdentity, error) {
	row, col := CellPosition(cellIndex, grid)
	perPage := grid.CardsPerPage() / 2

	switch mode.Orientation {
	case model.FoldHorizontal:
		if grid.Rows%2 != 0 {
			return model.CardIdentity{}, fmt.Errorf("address: gutter-fold with a horizontal fold needs an even row count, got %d", grid.Rows)
		}
		half := grid.Rows / 2
		side := model.Front
		ordRow := row
		if row >= half {
			side = model.Back
			ordRow = grid.Rows - 1 - row
		}
		ordinal := ordRow*grid.Columns + col
		return model.CardIdentity{ID: pageIndex*perPage + ordinal + 1, Side: side}, nil

	default: // vertical fold
		if grid.Columns%2 != 0 {
			return model.CardIdentity{}, fmt.Errorf("address: gutter-fold with a vertical fold needs an even column count, got %d", grid.Columns)
		}
		half := grid.Columns / 2
		side := model.Front
		ordCol := col
		if col >= half {
			side = model.Back
			ordCol = grid.Columns - 1 - col
		}
		ordinal := row*half + ordCol
		return model.CardIdentity{ID: pageIndex*perPage + ordinal + 1, Side: side}, nil
	}
}

// Locate is the inverse of Identify: it returns the global card index that
// resolves to the given identity, or ErrNotFound when no cell does (for
// example the back of a trailing unpaired duplex page).
func Locate(id int, side model.Side, activePages []model.Page, grid model.Grid, mode model.Mode) (int, error) {
	if err := grid.Validate(); err != nil {
		return 0, err
	}
	count := CardCount(activePages, grid)
	for i := 0; i < count; i++ {
		identity, err := Identify(i, activePages, grid, mode)
		if err != nil {
			return 0, err
		}
		if identity.ID == id && identity.Side == side {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: id %d side %s", ErrNotFound, id, side)
}
