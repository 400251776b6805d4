// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package vignette darkens an image radially from its center.
//
// The darkening is a black layer whose coverage follows a piecewise-linear
// radial profile, composited with the multiply blend mode. Multiplying by
// black with coverage a gives (1-a)*D + a*(0*D), so each color channel is
// scaled by (1 - a) and alpha is left alone.
//
// Distances run from integer pixel coordinates to (width/2, height/2), so
// the profile is not mirror-symmetric: the (0, 0) corner is the only pixel
// that reaches full coverage, and the other corners stay slightly lighter.
package vignette

import (
	"math"
	"sort"

	"github.com/gogpu/retouch/internal/image"
	"github.com/gogpu/retouch/internal/parallel"
)

// Stop is the darkening coverage at a normalized distance from the center.
type Stop struct {
	Offset float64 // 0 at the center, 1 at the corners
	Alpha  float64 // coverage of the black layer, 0..1
}

// Profile is a radial coverage profile with stops sorted by offset.
type Profile []Stop

// NewProfile returns the profile for an intensity in [0, 1]: no darkening
// at the center, 10% of intensity at 0.6 and 80% of intensity at the corners.
func NewProfile(intensity float64) Profile {
	return Profile{
		{Offset: 0, Alpha: 0},
		{Offset: 0.6, Alpha: intensity * 0.1},
		{Offset: 1, Alpha: intensity * 0.8},
	}
}

// At returns the coverage at normalized distance d, clamped to [0, 1] and
// linearly interpolated between the surrounding stops.
func (p Profile) At(d float64) float64 {
	if len(p) == 0 {
		return 0
	}
	d = min(max(d, 0), 1)

	idx := sort.Search(len(p), func(i int) bool {
		return p[i].Offset >= d
	})
	if idx == 0 {
		return p[0].Alpha
	}
	if idx >= len(p) {
		return p[len(p)-1].Alpha
	}

	s1, s2 := p[idx-1], p[idx]
	if s2.Offset == s1.Offset {
		return s1.Alpha
	}
	t := (d - s1.Offset) / (s2.Offset - s1.Offset)
	return s1.Alpha + t*(s2.Alpha-s1.Alpha)
}

// Vignette is the radial darkening stage. Strength is a percentage in
// [0, 100]; 0 disables the stage.
type Vignette struct {
	Strength float64
}

// IsIdentity reports whether the stage is skipped entirely.
func (v Vignette) IsIdentity() bool {
	return v.Strength == 0
}

// Apply darkens src into dst. src and dst must have the same dimensions
// and may be the same buffer. An identity vignette writes nothing.
//
// Distances are measured from integer pixel coordinates to the point
// (width/2, height/2), normalized by the center-to-corner distance.
func (v Vignette) Apply(src, dst *image.ImageBuf, pool *parallel.WorkerPool) {
	if !src.SameSize(dst) {
		panic("vignette: dimension mismatch")
	}
	if v.IsIdentity() {
		return
	}

	profile := NewProfile(v.Strength / 100)
	width := src.Width()
	cx := float64(width) / 2
	cy := float64(src.Height()) / 2
	maxRadius := math.Sqrt(cx*cx + cy*cy)

	pool.Bands(src.Height(), func(lo, hi int) {
		srcData := src.Rows(lo, hi)
		dstData := dst.Rows(lo, hi)

		for y := lo; y < hi; y++ {
			dy := float64(y) - cy
			row := (y - lo) * width * 4

			for x := range width {
				dx := float64(x) - cx
				d := math.Sqrt(dx*dx+dy*dy) / maxRadius
				keep := 1 - profile.At(d)

				i := row + x*4
				dstData[i+0] = multiply(srcData[i+0], keep)
				dstData[i+1] = multiply(srcData[i+1], keep)
				dstData[i+2] = multiply(srcData[i+2], keep)
				dstData[i+3] = srcData[i+3]
			}
		}
	})
}

// multiply scales a channel and rounds half to even.
func multiply(c uint8, keep float64) uint8 {
	v := float64(c) * keep
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.RoundToEven(v))
}
