// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package adjust implements the per-pixel white balance and vibrance stage.
//
// For every pixel the stage applies, in order, a temperature shift, a tint
// shift and a vibrance push, then clamps each channel to [0, 255] once and
// rounds half to even. Alpha is never touched. Pixels are independent of
// each other, so any traversal order or row split gives the same bytes.
package adjust

import (
	"math"

	"github.com/gogpu/retouch/internal/image"
	"github.com/gogpu/retouch/internal/parallel"
)

// Channel gains at full strength (temperature or tint = ±100).
const (
	warmRed   = 30 // red gain when warming
	warmGreen = 10 // green gain when warming
	coolBlue  = 30 // blue gain when cooling
	coolGreen = 10 // green gain when cooling
	tintGreen = 20 // green gain for positive tint
	tintRed   = 20 // red gain for negative tint
)

// Adjust holds the stage settings in slider units.
//
// Temperature and Tint are signed biases where 0 is neutral.
// Vibrance is a percentage where 100 is neutral, so the zero value is not
// the identity: use Adjust{Vibrance: 100} for that.
type Adjust struct {
	Temperature float64
	Tint        float64
	Vibrance    float64
}

// IsIdentity reports whether the stage is skipped entirely.
func (a Adjust) IsIdentity() bool {
	return a.Temperature == 0 && a.Tint == 0 && a.Vibrance == 100
}

// Pixel adjusts one color and returns the clamped, rounded result.
func (a Adjust) Pixel(r, g, b uint8) (uint8, uint8, uint8) {
	fr, fg, fb := a.shift(float64(r), float64(g), float64(b))
	return toByte(fr), toByte(fg), toByte(fb)
}

// shift runs temperature, tint and vibrance without the final clamp.
func (a Adjust) shift(r, g, b float64) (float64, float64, float64) {
	if a.Temperature != 0 {
		t := a.Temperature / 100
		if t > 0 {
			r = math.Min(255, r+t*warmRed)
			g = math.Min(255, g+t*warmGreen)
		} else {
			// Subtracting a negative t raises blue and green.
			b = math.Min(255, b-t*coolBlue)
			g = math.Min(255, g-t*coolGreen)
		}
	}

	if a.Tint != 0 {
		u := a.Tint / 100
		if u > 0 {
			g = math.Min(255, g+u*tintGreen)
		} else {
			r = math.Min(255, r-u*tintRed)
		}
	}

	if a.Vibrance != 100 {
		v := (a.Vibrance - 100) / 100
		peak := max(r, g, b)
		avg := (r + g + b) / 3
		amt := (math.Abs(peak-avg) * 2 / 255) * v

		// Every channel equal to the peak is left alone, ties included.
		if r != peak {
			r += (peak - r) * amt
		}
		if g != peak {
			g += (peak - g) * amt
		}
		if b != peak {
			b += (peak - b) * amt
		}
	}

	return r, g, b
}

// Apply adjusts every pixel of src into dst. src and dst must have the
// same dimensions and may be the same buffer. When the settings are the
// identity, Apply does nothing at all, not even a copy.
func (a Adjust) Apply(src, dst *image.ImageBuf, pool *parallel.WorkerPool) {
	if !src.SameSize(dst) {
		panic("adjust: dimension mismatch")
	}
	if a.IsIdentity() {
		return
	}

	pool.Bands(src.Height(), func(lo, hi int) {
		a.applyRows(src.Rows(lo, hi), dst.Rows(lo, hi))
	})
}

func (a Adjust) applyRows(srcData, dstData []uint8) {
	for i := 0; i+3 < len(srcData); i += 4 {
		r, g, b := a.Pixel(srcData[i], srcData[i+1], srcData[i+2])
		dstData[i] = r
		dstData[i+1] = g
		dstData[i+2] = b
		dstData[i+3] = srcData[i+3]
	}
}

// toByte clamps to [0, 255] and rounds half to even, matching how
// a clamped 8-bit pixel store converts fractional values.
func toByte(v float64) uint8 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.RoundToEven(v))
}
