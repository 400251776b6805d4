// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package retouch applies photo adjustments to RGBA bitmaps.
//
// # Overview
//
// retouch renders a source bitmap through a fixed chain of twelve
// adjustments and returns a new bitmap of the same size. The same function
// backs an interactive preview and the final export, so what is previewed
// is byte-for-byte what is saved.
//
// # Quick Start
//
//	import "github.com/gogpu/retouch"
//
//	src, _, err := retouch.Load("photo.jpg")
//	if err != nil {
//	    return err
//	}
//
//	params := retouch.Default()
//	_ = params.Set(retouch.Temperature, 30)
//	_ = params.Set(retouch.Vignette, 40)
//
//	out, err := retouch.Render(src, params)
//	if err != nil {
//	    return err
//	}
//	return out.Save("photo-warm.png", 0)
//
// # Pipeline
//
// Rendering runs three stages on a private copy of the source:
//
//   - Compositing: brightness, contrast, saturate, blur, hue-rotate,
//     grayscale, sepia and invert, in that order, each skipped at its
//     identity value. These follow the CSS filter shorthand definitions.
//   - Pixel adjust: temperature, tint and vibrance, computed per pixel in
//     floating point and clamped once at the end.
//   - Vignette: a radial black layer multiplied over the image.
//
// The source bitmap is never modified.
//
// # Parameters
//
// [Params] holds one value per filter in slider units. [Default] returns
// the identity values. Values outside a filter's range, NaN and infinities
// are rejected with [ErrOutOfRange] or [ErrNotFinite]; the pipeline never
// clamps them.
//
// # Presets
//
// [Presets] lists the built-in looks. Applying a preset resets every filter
// to identity and then sets only the values the preset names.
//
// # Concurrency
//
// [Render] runs on the calling goroutine. A [Pipeline] created with
// [WithWorkers] splits each stage into row bands across goroutines; the
// output is identical to the serial result.
//
// # Logging
//
// retouch is silent by default. Call [SetLogger] to receive debug records
// for every render.
package retouch
