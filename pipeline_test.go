package cardstock

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/cardstock/cache"
	"github.com/tsawler/cardstock/calibrate"
	"github.com/tsawler/cardstock/extract"
	"github.com/tsawler/cardstock/model"
)

func testPages(n int) []model.Page {
	pages := make([]model.Page, n)
	for i := range pages {
		pages[i] = model.Page{
			SourceFile: "scan.pdf",
			Kind:       model.SourcePagedDocument,
			Order:      i,
			Active:     true,
		}
	}
	return pages
}

func testSurface(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 90, G: 120, B: 150, A: 255})
		}
	}
	return img
}

func testSettings() (model.ExtractionSettings, model.OutputSettings) {
	extraction := model.ExtractionSettings{
		Grid:     model.Grid{Rows: 1, Columns: 2},
		PageSize: model.Size{Width: 1500, Height: 1050},
	}
	output := model.OutputSettings{
		PageSize:         model.SizeInches{Width: 8.5, Height: 11},
		CardSize:         model.SizeInches{Width: 2.5, Height: 3.5},
		CardScalePercent: 100,
		Sizing:           model.SizingFit,
	}
	return extraction, output
}

func TestCardEndToEnd(t *testing.T) {
	extraction, output := testSettings()
	p := New(testPages(2), extraction, output).
		WithMode(model.Mode{Kind: model.Duplex})

	res, err := p.Card(context.Background(), 0, testSurface(1500, 1050))
	if err != nil {
		t.Fatal(err)
	}

	if res.Index != 0 {
		t.Errorf("Index = %d, want 0", res.Index)
	}
	if res.Identity != (model.CardIdentity{ID: 1, Side: model.Front}) {
		t.Errorf("Identity = %+v, want ID 1 front", res.Identity)
	}
	if res.Dimensions.SourcePixels != (model.Size{Width: 750, Height: 1050}) {
		t.Errorf("SourcePixels = %+v, want 750x1050", res.Dimensions.SourcePixels)
	}
	if res.Image == nil || res.Processed == nil {
		t.Fatal("expected extracted and processed images")
	}
	// 750x1050px is 2.5x3.5in: it fits the card box exactly.
	if res.Placement.Size != (model.SizeInches{Width: 2.5, Height: 3.5}) {
		t.Errorf("placed box = %+v", res.Placement.Size)
	}
	if res.FromCache {
		t.Error("cold pipeline should not report a cache hit")
	}
}

func TestCardCacheBehaviorIdentical(t *testing.T) {
	extraction, output := testSettings()
	surface := testSurface(1500, 1050)

	cold := New(testPages(2), extraction, output).WithMode(model.Mode{Kind: model.Duplex})
	warm := cold.WithPreviewCache(cache.New(10, time.Hour))

	want, err := cold.Card(context.Background(), 1, surface)
	if err != nil {
		t.Fatal(err)
	}

	first, err := warm.Card(context.Background(), 1, surface)
	if err != nil {
		t.Fatal(err)
	}
	second, err := warm.Card(context.Background(), 1, surface)
	if err != nil {
		t.Fatal(err)
	}

	if first.FromCache {
		t.Error("first request should miss")
	}
	if !second.FromCache {
		t.Error("second request should hit the cache")
	}

	// The cache must not change any computed value.
	if diff := cmp.Diff(want.Placement, second.Placement); diff != "" {
		t.Errorf("cached placement differs (-cold +cached):\n%s", diff)
	}
	if diff := cmp.Diff(want.Dimensions, second.Dimensions); diff != "" {
		t.Errorf("cached dimensions differ (-cold +cached):\n%s", diff)
	}
}

func TestCardInvalidIndex(t *testing.T) {
	extraction, output := testSettings()
	p := New(testPages(2), extraction, output)

	_, err := p.Card(context.Background(), 99, testSurface(1500, 1050))
	if err == nil {
		t.Fatal("expected out-of-range error")
	}
}

func TestCardGeometryValidatedBeforeExtraction(t *testing.T) {
	extraction, output := testSettings()
	extraction.CardCrop = model.CropSpec{Left: 400, Right: 400}
	p := New(testPages(2), extraction, output)

	// The surface is never touched: geometry fails first.
	_, err := p.Card(context.Background(), 0, nil)
	var ge *extract.GeometryError
	if !errors.As(err, &ge) {
		t.Fatalf("error = %v, want GeometryError", err)
	}
}

func TestNewValidatesSettings(t *testing.T) {
	extraction, output := testSettings()
	output.CardScalePercent = 999
	p := New(testPages(2), extraction, output)

	if _, err := p.Card(context.Background(), 0, testSurface(1500, 1050)); err == nil {
		t.Error("invalid settings should fail fast")
	}
	if _, err := p.Identify(0); err == nil {
		t.Error("invalid settings should fail Identify too")
	}
}

func TestExportAllContinuesPastFailures(t *testing.T) {
	extraction, output := testSettings()
	p := New(testPages(3), extraction, output).
		WithMode(model.Mode{Kind: model.Simplex}).
		WithWorkers(2)

	// Page 1's surface is missing: its two cards fail, the other four
	// succeed.
	surfaces := []image.Image{
		testSurface(1500, 1050),
		nil,
		testSurface(1500, 1050),
	}

	results, warnings, err := p.ExportAll(context.Background(), surfaces)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 6 {
		t.Fatalf("len(results) = %d, want 6", len(results))
	}
	if len(warnings) != 2 {
		t.Fatalf("len(warnings) = %d, want 2\n%s", len(warnings), FormatWarnings(warnings))
	}
	for _, w := range warnings {
		if w.Page != 1 {
			t.Errorf("warning on page %d, want 1", w.Page)
		}
		if !errors.Is(w.Err, extract.ErrNoSurface) {
			t.Errorf("warning error = %v, want ErrNoSurface", w.Err)
		}
	}
	for i, res := range results {
		onBadPage := i/2 == 1
		if onBadPage && res != nil {
			t.Errorf("card %d should have failed", i)
		}
		if !onBadPage && res == nil {
			t.Errorf("card %d missing from results", i)
		}
	}
}

func TestExportAllCancellation(t *testing.T) {
	extraction, output := testSettings()
	p := New(testPages(3), extraction, output)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := p.ExportAll(ctx, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestIdentifyLocateRoundTrip(t *testing.T) {
	extraction, output := testSettings()
	p := New(testPages(4), extraction, output).
		WithMode(model.Mode{Kind: model.Duplex})

	for i := 0; i < p.CardCount(); i++ {
		identity, err := p.Identify(i)
		if err != nil {
			t.Fatal(err)
		}
		back, err := p.Locate(identity.ID, identity.Side)
		if err != nil {
			t.Fatal(err)
		}
		if back != i {
			t.Errorf("Locate(Identify(%d)) = %d", i, back)
		}
	}
}

func TestGroupOverrideAffectsCacheKey(t *testing.T) {
	extraction, output := testSettings()
	groupOut := output
	groupOut.CardScalePercent = 110

	c := cache.New(10, time.Hour)
	surface := testSurface(1500, 1050)

	base := New(testPages(2), extraction, output).
		WithMode(model.Mode{Kind: model.Duplex}).
		WithPreviewCache(c)
	grouped := base.WithGroup(&model.SettingsGroup{ID: "proxy", Output: &groupOut})

	if _, err := base.Card(context.Background(), 0, surface); err != nil {
		t.Fatal(err)
	}
	res, err := grouped.Card(context.Background(), 0, surface)
	if err != nil {
		t.Fatal(err)
	}
	// Different effective output settings must not share cache entries.
	if res.FromCache {
		t.Error("group override should produce a distinct cache key")
	}
}

func TestStageTimeout(t *testing.T) {
	err := runStage(context.Background(), "extraction", 10*time.Millisecond, func() error {
		time.Sleep(300 * time.Millisecond)
		return nil
	})
	var se *StageError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want StageError", err)
	}
	if se.Stage != "extraction" {
		t.Errorf("Stage = %q, want extraction", se.Stage)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("underlying error = %v, want DeadlineExceeded", se.Err)
	}
}

func TestPipelineCalibrate(t *testing.T) {
	extraction, output := testSettings()
	p := New(testPages(1), extraction, output)

	r, err := p.Calibrate(calibrate.Measurements{
		RightDistance:   1.25,
		TopDistance:     1.75,
		CrosshairLength: 1,
	})
	if err != nil {
		t.Fatal(err)
	}
	if r.HorizontalDelta != 0 || r.VerticalDelta != 0 || r.ScaleDelta != 0 {
		t.Errorf("exact measurements should yield zero deltas: %+v", r)
	}
}

func TestFormatWarnings(t *testing.T) {
	if FormatWarnings(nil) != "" {
		t.Error("no warnings should format to an empty string")
	}
	out := FormatWarnings([]Warning{
		{CardIndex: 4, Page: 2, Cell: 0, Message: "boom"},
	})
	want := "card 4 (page 2, cell 0): boom"
	if out != want {
		t.Errorf("FormatWarnings = %q, want %q", out, want)
	}
}

func TestPipelineImmutability(t *testing.T) {
	extraction, output := testSettings()
	p := New(testPages(2), extraction, output)
	q := p.WithMode(model.Mode{Kind: model.Duplex}).WithWorkers(8)

	if p.opts.mode.Kind != model.Simplex {
		t.Error("WithMode mutated the original pipeline")
	}
	if q.opts.mode.Kind != model.Duplex || q.opts.workers != 8 {
		t.Errorf("chained configuration lost: %+v", q.opts)
	}
}
