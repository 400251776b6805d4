// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package filter provides the global color and convolution filters used by
// the compositing stage of the retouch pipeline.
//
// The package contains:
//   - Color matrix transformations (brightness, contrast, saturate,
//     hue-rotate, grayscale, sepia, invert) following the W3C Filter
//     Effects shorthand definitions
//   - Gaussian blur (separable, premultiplied, edge-extended)
//
// All filters operate on straight-alpha RGBA8 buffers, never change the
// buffer dimensions and accept src == dst for in-place use. Output depends
// only on the input pixels and the filter parameters, so repeated runs are
// byte-identical regardless of worker count.
package filter

import (
	"fmt"

	"github.com/gogpu/retouch/internal/image"
	"github.com/gogpu/retouch/internal/parallel"
)

// Filter is a whole-image transform from src to dst.
// A nil pool runs the filter on the calling goroutine.
type Filter interface {
	Apply(src, dst *image.ImageBuf, pool *parallel.WorkerPool)
}

// mustSameSize panics when src and dst differ in size. A mismatch is a
// caller bug, not an input condition, so it is never cropped or padded.
func mustSameSize(src, dst *image.ImageBuf) {
	if !src.SameSize(dst) {
		panic(fmt.Sprintf("filter: dimension mismatch: src %dx%d, dst %dx%d",
			src.Width(), src.Height(), dst.Width(), dst.Height()))
	}
}

// clampUint8 clamps a float32 to [0, 255] and converts to uint8.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5) // Round to nearest
}
