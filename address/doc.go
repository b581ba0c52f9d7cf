// Package address maps flat card indices to stable logical card identities.
//
// A global card index enumerates every extractable cell across all active
// pages in document order. [Identify] resolves an index to a (logical ID,
// side) pair under the active processing mode; [Locate] is the inverse.
// Skipped pages never participate: toggling a page's active flag shifts
// every subsequent index.
//
// # Pairing schemes
//
//   - Simplex: each page's side is fixed by its own page type; IDs count
//     qualifying cells in document order, independently per side.
//   - Duplex: pages alternate front, back after filtering; the front page at
//     position k and the back page at k+1 share IDs cell-for-cell.
//   - Gutter-fold: one page is split into two halves along the fold axis;
//     a front cell and its mirror image across the fold share an ID. The
//     mirroring is column-mirrored for vertical folds and row-mirrored for
//     horizontal folds.
package address
