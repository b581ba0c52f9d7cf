package extract

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/cardstock/model"
)

func TestDimensionsRotationSwap(t *testing.T) {
	// A card whose unrotated extracted size is 300x420px reports 420x300
	// under a 90 degree image rotation.
	s := model.ExtractionSettings{
		Grid:          model.Grid{Rows: 1, Columns: 2},
		FrontRotation: model.Rotate90,
		PageSize:      model.Size{Width: 600, Height: 420},
	}
	mode := model.Mode{Kind: model.Simplex}

	dims, err := Dimensions(s, mode, model.Front)
	if err != nil {
		t.Fatal(err)
	}

	want := model.CardDimensions{
		SourcePixels: model.Size{Width: 300, Height: 420},
		Pixels:       model.Size{Width: 420, Height: 300},
		Inches:       model.SizeInches{Width: 1.4, Height: 1.0},
		Rotation:     model.Rotate90,
		Side:         model.Front,
	}
	if diff := cmp.Diff(want, dims); diff != "" {
		t.Errorf("Dimensions mismatch (-want +got):\n%s", diff)
	}

	// The back side has no rotation configured, so nothing swaps.
	back, err := Dimensions(s, mode, model.Back)
	if err != nil {
		t.Fatal(err)
	}
	if back.Pixels != back.SourcePixels {
		t.Errorf("unrotated back reported %+v, want %+v", back.Pixels, back.SourcePixels)
	}
}

func TestDimensionsGutterSubtraction(t *testing.T) {
	// 1000px wide, 20px gutter, 4 columns: the gutter comes off the fold
	// axis before dividing, so cells are (1000-20)/4 = 245px wide.
	s := model.ExtractionSettings{
		Grid:        model.Grid{Rows: 2, Columns: 4},
		GutterWidth: 20,
		PageSize:    model.Size{Width: 1000, Height: 700},
	}
	mode := model.Mode{Kind: model.GutterFold, Orientation: model.FoldVertical}

	dims, err := Dimensions(s, mode, model.Front)
	if err != nil {
		t.Fatal(err)
	}
	if dims.SourcePixels.Width != 245 || dims.SourcePixels.Height != 350 {
		t.Errorf("cell = %+v, want 245x350", dims.SourcePixels)
	}
}

func TestDimensionsGeometryErrors(t *testing.T) {
	base := model.ExtractionSettings{
		Grid:     model.Grid{Rows: 2, Columns: 2},
		PageSize: model.Size{Width: 200, Height: 200},
	}

	tests := []struct {
		name      string
		mutate    func(*model.ExtractionSettings)
		mode      model.Mode
		stage     string
		dimension string
	}{
		{
			"page crop swallows width",
			func(s *model.ExtractionSettings) { s.Crop = model.CropSpec{Left: 150, Right: 60} },
			model.Mode{Kind: model.Simplex}, "page crop", "width",
		},
		{
			"gutter swallows height",
			func(s *model.ExtractionSettings) { s.GutterWidth = 250 },
			model.Mode{Kind: model.GutterFold, Orientation: model.FoldHorizontal}, "gutter", "height",
		},
		{
			"card crop swallows cell",
			func(s *model.ExtractionSettings) { s.CardCrop = model.CropSpec{Top: 60, Bottom: 60} },
			model.Mode{Kind: model.Simplex}, "card crop", "height",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base
			tt.mutate(&s)
			_, err := Dimensions(s, tt.mode, model.Front)
			var ge *GeometryError
			if !errors.As(err, &ge) {
				t.Fatalf("error = %v, want GeometryError", err)
			}
			if ge.Stage != tt.stage || ge.Dimension != tt.dimension {
				t.Errorf("got stage %q dimension %q, want %q %q", ge.Stage, ge.Dimension, tt.stage, tt.dimension)
			}
		})
	}
}

func TestCellRectGutterOffset(t *testing.T) {
	// Vertical fold on a 1000x700 page, 2x4 grid, 20px gutter. Cells in the
	// right half start after the gutter so the layout stays symmetric.
	s := model.ExtractionSettings{
		Grid:        model.Grid{Rows: 2, Columns: 4},
		GutterWidth: 20,
		PageSize:    model.Size{Width: 1000, Height: 700},
	}
	mode := model.Mode{Kind: model.GutterFold, Orientation: model.FoldVertical}

	tests := []struct {
		cell int
		want model.Rect
	}{
		{0, model.Rect{X: 0, Y: 0, Width: 245, Height: 350}},
		{1, model.Rect{X: 245, Y: 0, Width: 245, Height: 350}},
		{2, model.Rect{X: 510, Y: 0, Width: 245, Height: 350}},   // past the fold: +20
		{3, model.Rect{X: 755, Y: 0, Width: 245, Height: 350}},   // right edge lands at 1000
		{7, model.Rect{X: 755, Y: 350, Width: 245, Height: 350}},
	}
	for _, tt := range tests {
		got, err := CellRect(s, mode, tt.cell)
		if err != nil {
			t.Fatalf("CellRect(%d): %v", tt.cell, err)
		}
		if got != tt.want {
			t.Errorf("CellRect(%d) = %+v, want %+v", tt.cell, got, tt.want)
		}
	}

	// The last column must end exactly at the page edge.
	last, _ := CellRect(s, mode, 3)
	if last.Right() != 1000 {
		t.Errorf("right edge = %d, want 1000", last.Right())
	}
}

func TestCellRectCropsApplied(t *testing.T) {
	s := model.ExtractionSettings{
		Grid:     model.Grid{Rows: 1, Columns: 2},
		Crop:     model.CropSpec{Top: 10, Left: 20, Right: 20, Bottom: 10},
		CardCrop: model.CropSpec{Top: 2, Left: 3, Right: 3, Bottom: 2},
		PageSize: model.Size{Width: 240, Height: 120},
	}
	mode := model.Mode{Kind: model.Simplex}

	// Cropped page is 200x100, cells 100x100, card 94x96.
	got, err := CellRect(s, mode, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := model.Rect{X: 20 + 100 + 3, Y: 10 + 2, Width: 94, Height: 96}
	if got != want {
		t.Errorf("CellRect = %+v, want %+v", got, want)
	}
}
