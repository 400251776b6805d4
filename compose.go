// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package retouch

import (
	"github.com/gogpu/retouch/internal/filter"
	intImage "github.com/gogpu/retouch/internal/image"
	"github.com/gogpu/retouch/internal/parallel"
)

// composeStep binds a filter name to the global transform it drives.
type composeStep struct {
	name  string
	build func(v float64) filter.Filter
}

// composeSteps is the compositing stage in application order. A step runs
// only when its value differs from identity, and each step reads the 8-bit
// output of the one before it.
var composeSteps = [...]composeStep{
	{Brightness, func(v float64) filter.Filter { return filter.NewBrightnessFilter(float32(v / 100)) }},
	{Contrast, func(v float64) filter.Filter { return filter.NewContrastFilter(float32(v / 100)) }},
	{Saturate, func(v float64) filter.Filter { return filter.NewSaturationFilter(float32(v / 100)) }},
	{Blur, func(v float64) filter.Filter { return filter.NewBlurFilter(v) }},
	{HueRotate, func(v float64) filter.Filter { return filter.NewHueRotateFilter(v) }},
	{Grayscale, func(v float64) filter.Filter { return filter.NewGrayscaleFilter(float32(v / 100)) }},
	{Sepia, func(v float64) filter.Filter { return filter.NewSepiaFilter(float32(v / 100)) }},
	{Invert, func(v float64) filter.Filter { return filter.NewInvertFilter(float32(v / 100)) }},
}

// compose runs the compositing stage in place on buf and returns the names
// of the steps that ran.
func compose(buf *intImage.ImageBuf, p Params, pool *parallel.WorkerPool) []string {
	var applied []string
	for _, step := range composeSteps {
		d, err := lookup(step.name)
		if err != nil {
			panic(err)
		}
		v := *d.field(&p)
		if v == d.rng.Identity {
			continue
		}
		step.build(v).Apply(buf, buf, pool)
		applied = append(applied, step.name)
	}
	return applied
}
