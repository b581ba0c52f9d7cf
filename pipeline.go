package cardstock

import (
	"context"
	"image"
	"sync"
	"time"

	"github.com/tsawler/cardstock/address"
	"github.com/tsawler/cardstock/cache"
	"github.com/tsawler/cardstock/calibrate"
	"github.com/tsawler/cardstock/extract"
	"github.com/tsawler/cardstock/model"
	"github.com/tsawler/cardstock/render"
)

// Pipeline runs the card addressing, extraction, and positioning chain over
// a page sequence. Each configuration method returns a new Pipeline
// instance, making it safe for concurrent use and allowing method chaining.
type Pipeline struct {
	pages      []model.Page
	extraction model.ExtractionSettings
	output     model.OutputSettings
	opts       pipelineOptions

	// Accumulated error (fail-fast)
	err error
}

// CardResult is the full computed state for one card: identity, extracted
// image, dimensions, and output-page placement. Results carry the index they
// were computed for, so callers navigating quickly can discard results that
// no longer match the current selection (last request wins).
type CardResult struct {
	Index      int
	Identity   model.CardIdentity
	Dimensions model.CardDimensions
	// Image is the extracted card bitmap, image rotation applied.
	Image image.Image
	// Placement and Processed describe the card on the output page; the
	// processed bitmap needs no further transform when drawn at 300 DPI.
	Placement render.Placement
	Processed image.Image
	Preview   render.Preview
	// FromCache is true when the result was served from the preview cache.
	FromCache bool
}

// clone creates a shallow copy of the Pipeline with copied pages and
// options. This ensures immutability - each chain method returns a new
// instance.
func (p *Pipeline) clone() *Pipeline {
	return &Pipeline{
		pages:      append([]model.Page(nil), p.pages...),
		extraction: p.extraction,
		output:     p.output,
		opts:       p.opts.clone(),
		err:        p.err,
	}
}

// WithMode sets the processing mode.
func (p *Pipeline) WithMode(mode model.Mode) *Pipeline {
	np := p.clone()
	np.opts.mode = mode
	return np
}

// WithGroup attaches a settings group whose non-nil fields override the
// global mode and settings for every card in this pipeline.
func (p *Pipeline) WithGroup(group *model.SettingsGroup) *Pipeline {
	np := p.clone()
	np.opts.group = group
	return np
}

// WithPreviewCache attaches a preview cache. The cache only short-circuits
// recomputation; results are identical with or without it.
func (p *Pipeline) WithPreviewCache(c *cache.Cache) *Pipeline {
	np := p.clone()
	np.opts.preview = c
	return np
}

// WithWorkers sets the batch export parallelism. Values below one fall back
// to sequential export.
func (p *Pipeline) WithWorkers(n int) *Pipeline {
	np := p.clone()
	if n < 1 {
		n = 1
	}
	np.opts.workers = n
	return np
}

// WithStageTimeouts overrides the per-stage budgets. A zero duration
// disables the stage's timeout.
func (p *Pipeline) WithStageTimeouts(extraction, positioning time.Duration) *Pipeline {
	np := p.clone()
	np.opts.extractTimeout = extraction
	np.opts.positionTimeout = positioning
	return np
}

// effective resolves the settings override chain for the given page (nil for
// the group level).
func (p *Pipeline) effective(page *model.Page) model.Effective {
	return model.Resolve(p.opts.mode, p.extraction, p.output, p.opts.group, page)
}

// ActivePages returns the non-skipped pages in display order.
func (p *Pipeline) ActivePages() []model.Page {
	return address.ActivePages(p.pages)
}

// CardCount returns the number of addressable cards across all active
// pages.
func (p *Pipeline) CardCount() int {
	eff := p.effective(nil)
	return address.CardCount(p.ActivePages(), eff.Extraction.Grid)
}

// Identify resolves a global card index to its logical identity without
// touching any pixels.
func (p *Pipeline) Identify(globalIndex int) (model.CardIdentity, error) {
	if p.err != nil {
		return model.CardIdentity{}, p.err
	}
	eff := p.effective(nil)
	return address.Identify(globalIndex, p.ActivePages(), eff.Extraction.Grid, eff.Mode)
}

// Locate returns the global card index for a logical identity, or
// address.ErrNotFound when no cell maps to it.
func (p *Pipeline) Locate(id int, side model.Side) (int, error) {
	if p.err != nil {
		return 0, p.err
	}
	eff := p.effective(nil)
	return address.Locate(id, side, p.ActivePages(), eff.Extraction.Grid, eff.Mode)
}

// Card computes the full result for one card from its page surface:
// identify, preview-cache probe, extract, dimensions, and positioning.
// Geometry is validated before extraction starts, so invalid crop or gutter
// values fail fast with a message naming the offending dimension.
//
// The extraction and positioning stages each run under their own timeout;
// exceeding one returns a *StageError naming the stage.
func (p *Pipeline) Card(ctx context.Context, globalIndex int, surface image.Image) (*CardResult, error) {
	if p.err != nil {
		return nil, p.err
	}

	active := p.ActivePages()
	eff := p.effective(nil)
	grid := eff.Extraction.Grid

	identity, err := address.Identify(globalIndex, active, grid, eff.Mode)
	if err != nil {
		return nil, err
	}
	pageIndex := globalIndex / grid.CardsPerPage()
	cellIndex := globalIndex % grid.CardsPerPage()

	// Page-level mode override applies to this page's extraction only.
	eff = p.effective(&active[pageIndex])

	key := cache.Key{
		CardID:      identity.ID,
		Side:        identity.Side,
		Fingerprint: eff.Output.Fingerprint(),
		GroupID:     eff.GroupID,
	}
	if p.opts.preview != nil {
		if ent, ok := p.opts.preview.Get(key); ok {
			dims, err := extract.Dimensions(eff.Extraction, eff.Mode, identity.Side)
			if err != nil {
				return nil, err
			}
			return &CardResult{
				Index:      globalIndex,
				Identity:   identity,
				Dimensions: dims,
				Image:      ent.Extracted,
				Placement:  ent.Placement,
				Processed:  ent.Processed,
				Preview:    render.PreviewTransform(eff.Output),
				FromCache:  true,
			}, nil
		}
	}

	// Validates the full crop/gutter geometry before any sampling work.
	dims, err := extract.Dimensions(eff.Extraction, eff.Mode, identity.Side)
	if err != nil {
		return nil, err
	}

	var card image.Image
	err = runStage(ctx, "extraction", p.opts.extractTimeout, func() error {
		var stageErr error
		card, stageErr = extract.Extract(surface, pageIndex, cellIndex, eff.Extraction, eff.Mode, identity)
		return stageErr
	})
	if err != nil {
		return nil, err
	}

	var placement render.Placement
	var processed image.Image
	err = runStage(ctx, "positioning", p.opts.positionTimeout, func() error {
		b := card.Bounds()
		pl, stageErr := render.Position(model.Size{Width: b.Dx(), Height: b.Dy()}, eff.Output, identity.Side)
		if stageErr != nil {
			return stageErr
		}
		img, stageErr := render.ProcessImage(card, pl)
		if stageErr != nil {
			return stageErr
		}
		placement = pl
		processed = img
		return nil
	})
	if err != nil {
		return nil, err
	}

	if p.opts.preview != nil {
		p.opts.preview.Put(key, &cache.Entry{
			Extracted: card,
			Placement: placement,
			Processed: processed,
		})
	}

	return &CardResult{
		Index:      globalIndex,
		Identity:   identity,
		Dimensions: dims,
		Image:      card,
		Placement:  placement,
		Processed:  processed,
		Preview:    render.PreviewTransform(eff.Output),
	}, nil
}

// ExportAll computes results for every addressable card. surfaces holds one
// rendered page surface per active page, in display order; surfaces are
// treated as read-only and may be shared between workers.
//
// A single card's failure does not abort the batch: the failed card's slot
// in the returned slice is nil and a Warning records the failure. Only
// context cancellation ends the batch early, returning the partial results
// together with the context error.
func (p *Pipeline) ExportAll(ctx context.Context, surfaces []image.Image) ([]*CardResult, []Warning, error) {
	if p.err != nil {
		return nil, nil, p.err
	}

	eff := p.effective(nil)
	cpp := eff.Extraction.Grid.CardsPerPage()
	count := p.CardCount()

	results := make([]*CardResult, count)
	var mu sync.Mutex
	var warnings []Warning

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < p.opts.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				pageIndex := idx / cpp
				var surface image.Image
				if pageIndex < len(surfaces) {
					surface = surfaces[pageIndex]
				}
				res, err := p.Card(ctx, idx, surface)
				mu.Lock()
				if err != nil {
					warnings = append(warnings, Warning{
						CardIndex: idx,
						Page:      pageIndex,
						Cell:      idx % cpp,
						Message:   err.Error(),
						Err:       err,
					})
				} else {
					results[idx] = res
				}
				mu.Unlock()
			}
		}()
	}

	var ctxErr error
feed:
	for i := 0; i < count; i++ {
		if ctx.Err() != nil {
			ctxErr = ctx.Err()
			break
		}
		select {
		case jobs <- i:
		case <-ctx.Done():
			ctxErr = ctx.Err()
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	return results, warnings, ctxErr
}

// Calibrate converts printed test-page measurements into corrected offset
// and scale values based on the pipeline's effective output settings.
func (p *Pipeline) Calibrate(m calibrate.Measurements) (calibrate.Result, error) {
	if p.err != nil {
		return calibrate.Result{}, p.err
	}
	eff := p.effective(nil)
	cur := calibrate.Current{
		HorizontalOffset: eff.Output.Offset.Horizontal,
		VerticalOffset:   eff.Output.Offset.Vertical,
		ScalePercent:     eff.Output.CardScalePercent,
	}
	return calibrate.Calibrate(m, eff.Output.CardSize.Width, eff.Output.CardSize.Height, cur)
}

// runStage runs fn under the stage's timeout. The work itself is not
// interrupted when the deadline passes - the engine follows a last request
// wins discipline - but the caller gets a *StageError immediately and any
// late result is discarded.
func runStage(ctx context.Context, stage string, timeout time.Duration, fn func() error) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	done := make(chan error, 1)
	go func() {
		done <- fn()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return &StageError{Stage: stage, Err: ctx.Err()}
	}
}
