package cardstock

import (
	"time"

	"github.com/tsawler/cardstock/cache"
	"github.com/tsawler/cardstock/model"
)

// pipelineOptions holds configuration for a Pipeline.
type pipelineOptions struct {
	// Processing mode and optional settings group
	mode  model.Mode
	group *model.SettingsGroup

	// Batch export parallelism
	workers int

	// Per-stage timeouts. Page rendering cost is unbounded for pathological
	// inputs, so extraction gets a generous budget; positioning is pure math.
	extractTimeout  time.Duration
	positionTimeout time.Duration

	// Optional preview cache
	preview *cache.Cache
}

// defaultPipelineOptions returns the default pipeline options.
func defaultPipelineOptions() pipelineOptions {
	return pipelineOptions{
		mode:            model.Mode{Kind: model.Simplex},
		group:           nil,
		workers:         4,
		extractTimeout:  30 * time.Second,
		positionTimeout: 5 * time.Second,
		preview:         nil,
	}
}

// clone creates a copy of pipelineOptions. The group pointer is shared; a
// SettingsGroup is read-only once attached.
func (o pipelineOptions) clone() pipelineOptions {
	return pipelineOptions{
		mode:            o.mode,
		group:           o.group,
		workers:         o.workers,
		extractTimeout:  o.extractTimeout,
		positionTimeout: o.positionTimeout,
		preview:         o.preview,
	}
}
