// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package retouch

import (
	"context"
	"log/slog"
	"time"

	"github.com/gogpu/retouch/internal/adjust"
	"github.com/gogpu/retouch/internal/parallel"
	"github.com/gogpu/retouch/internal/vignette"
)

// Pipeline renders bitmaps through the compositing, pixel-adjust and
// vignette stages. A Pipeline holds no per-render state: the same source
// and parameters always give the same bytes, whatever the worker count
// and whatever was rendered before.
//
// A Pipeline is safe for concurrent use. Close releases its workers.
type Pipeline struct {
	pool *parallel.WorkerPool
}

// NewPipeline creates a pipeline with the given options.
func NewPipeline(opts ...Option) *Pipeline {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &Pipeline{}
	if o.workers != 1 {
		p.pool = parallel.NewWorkerPool(o.workers)
	}
	return p
}

// Workers returns the number of goroutines a render may use.
func (p *Pipeline) Workers() int {
	return p.pool.Workers()
}

// Close stops the pipeline's workers. Renders after Close still work and
// run on the calling goroutine. Close is safe to call multiple times.
func (p *Pipeline) Close() {
	p.pool.Close()
}

// Render applies params to src and returns a new bitmap of the same size:
//
//	Vignette(PixelAdjust(Compose(src)))
//
// src is never modified. params must validate; out-of-range and non-finite
// values are rejected, never clamped. With Default() params the result
// equals src.
func (p *Pipeline) Render(src *Bitmap, params Params) (*Bitmap, error) {
	if src.IsEmpty() {
		return nil, ErrNilBitmap
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	work := src.buf.Clone()

	composed := compose(work, params, p.pool)

	adj := adjust.Adjust{
		Temperature: params.Temperature,
		Tint:        params.Tint,
		Vibrance:    params.Vibrance,
	}
	adj.Apply(work, work, p.pool)

	vig := vignette.Vignette{Strength: params.Vignette}
	vig.Apply(work, work, p.pool)

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("render",
			"width", work.Width(),
			"height", work.Height(),
			"compositing", composed,
			"adjust", !adj.IsIdentity(),
			"vignette", !vig.IsIdentity(),
			"workers", p.pool.Workers(),
			"elapsed", time.Since(start),
		)
	}

	return &Bitmap{buf: work}, nil
}

var serial = &Pipeline{}

// Render renders src on the calling goroutine. See Pipeline.Render.
func Render(src *Bitmap, params Params) (*Bitmap, error) {
	return serial.Render(src, params)
}
