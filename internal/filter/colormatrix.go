// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package filter

import (
	"math"

	"github.com/gogpu/retouch/internal/image"
	"github.com/gogpu/retouch/internal/parallel"
)

// ColorMatrixFilter applies a 4x5 color transformation matrix to an image.
// The transformation is:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// The fifth column provides bias/offset values.
// Color values are straight alpha in [0, 255] during transformation,
// then rounded and clamped back to bytes.
type ColorMatrixFilter struct {
	// Matrix is the 4x5 transformation matrix in row-major order.
	// [0-4] = row 0 (R), [5-9] = row 1 (G), [10-14] = row 2 (B), [15-19] = row 3 (A)
	Matrix [20]float32
}

var identityMatrix = [20]float32{
	1, 0, 0, 0, 0, // R
	0, 1, 0, 0, 0, // G
	0, 0, 1, 0, 0, // B
	0, 0, 0, 1, 0, // A
}

// Luminance weights used by the W3C saturate and hue-rotate matrices.
const (
	lumR = 0.213
	lumG = 0.715
	lumB = 0.072
)

// Rec. 709 luminance weights used by the W3C grayscale matrix.
const (
	rec709R = 0.2126
	rec709G = 0.7152
	rec709B = 0.0722
)

// NewBrightnessFilter creates a filter that scales color channels.
// factor: 0.0 = black, 1.0 = unchanged, 2.0 = twice as bright
func NewBrightnessFilter(factor float32) *ColorMatrixFilter {
	return &ColorMatrixFilter{
		Matrix: [20]float32{
			factor, 0, 0, 0, 0,
			0, factor, 0, 0, 0,
			0, 0, factor, 0, 0,
			0, 0, 0, 1, 0,
		},
	}
}

// NewContrastFilter creates a filter that adjusts contrast around mid-gray.
// factor: 0.0 = gray, 1.0 = unchanged, 2.0 = high contrast
func NewContrastFilter(factor float32) *ColorMatrixFilter {
	// (color - 0.5) * factor + 0.5, in 0-255 range
	offset := 127.5 * (1 - factor)
	return &ColorMatrixFilter{
		Matrix: [20]float32{
			factor, 0, 0, 0, offset,
			0, factor, 0, 0, offset,
			0, 0, factor, 0, offset,
			0, 0, 0, 1, 0,
		},
	}
}

// NewSaturationFilter creates a filter that adjusts color saturation.
// factor: 0.0 = grayscale, 1.0 = unchanged, 2.0 = oversaturated
func NewSaturationFilter(factor float32) *ColorMatrixFilter {
	return &ColorMatrixFilter{Matrix: desaturate(lumR, lumG, lumB, factor)}
}

// NewGrayscaleFilter creates a filter that converts toward grayscale.
// amount: 0.0 = unchanged, 1.0 = fully gray. Values are clamped to [0, 1].
func NewGrayscaleFilter(amount float32) *ColorMatrixFilter {
	return &ColorMatrixFilter{Matrix: desaturate(rec709R, rec709G, rec709B, 1-clamp01(amount))}
}

// NewSepiaFilter creates a filter that mixes toward a sepia tone.
// amount: 0.0 = unchanged, 1.0 = full sepia. Values are clamped to [0, 1].
func NewSepiaFilter(amount float32) *ColorMatrixFilter {
	sepia := [20]float32{
		0.393, 0.769, 0.189, 0, 0,
		0.349, 0.686, 0.168, 0, 0,
		0.272, 0.534, 0.131, 0, 0,
		0, 0, 0, 1, 0,
	}
	return &ColorMatrixFilter{Matrix: lerpMatrix(&identityMatrix, &sepia, clamp01(amount))}
}

// NewInvertFilter creates a filter that inverts colors.
// amount: 0.0 = unchanged, 0.5 = flat gray, 1.0 = fully inverted.
// Values are clamped to [0, 1].
func NewInvertFilter(amount float32) *ColorMatrixFilter {
	invert := [20]float32{
		-1, 0, 0, 0, 255,
		0, -1, 0, 0, 255,
		0, 0, -1, 0, 255,
		0, 0, 0, 1, 0,
	}
	return &ColorMatrixFilter{Matrix: lerpMatrix(&identityMatrix, &invert, clamp01(amount))}
}

// NewHueRotateFilter creates a filter that rotates hue by the given angle (in degrees).
func NewHueRotateFilter(degrees float64) *ColorMatrixFilter {
	sin64, cos64 := math.Sincos(degrees * math.Pi / 180)
	sin, cos := float32(sin64), float32(cos64)

	return &ColorMatrixFilter{
		Matrix: [20]float32{
			lumR + cos*(1-lumR) + sin*(-lumR), lumG + cos*(-lumG) + sin*(-lumG), lumB + cos*(-lumB) + sin*(1-lumB), 0, 0,
			lumR + cos*(-lumR) + sin*(0.143), lumG + cos*(1-lumG) + sin*(0.140), lumB + cos*(-lumB) + sin*(-0.283), 0, 0,
			lumR + cos*(-lumR) + sin*(-(1 - lumR)), lumG + cos*(-lumG) + sin*(lumG), lumB + cos*(1-lumB) + sin*(lumB), 0, 0,
			0, 0, 0, 1, 0,
		},
	}
}

// desaturate blends between the luminance projection (factor 0) and
// identity (factor 1).
func desaturate(wr, wg, wb, factor float32) [20]float32 {
	inv := 1 - factor
	return [20]float32{
		wr*inv + factor, wg * inv, wb * inv, 0, 0,
		wr * inv, wg*inv + factor, wb * inv, 0, 0,
		wr * inv, wg * inv, wb*inv + factor, 0, 0,
		0, 0, 0, 1, 0,
	}
}

func lerpMatrix(a, b *[20]float32, t float32) [20]float32 {
	var m [20]float32
	for i := range m {
		m[i] = a[i] + (b[i]-a[i])*t
	}
	return m
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Apply applies the color matrix transformation to every pixel.
func (f *ColorMatrixFilter) Apply(src, dst *image.ImageBuf, pool *parallel.WorkerPool) {
	mustSameSize(src, dst)

	pool.Bands(src.Height(), func(lo, hi int) {
		f.applyRows(src.Rows(lo, hi), dst.Rows(lo, hi))
	})
}

func (f *ColorMatrixFilter) applyRows(srcData, dstData []uint8) {
	m := &f.Matrix

	for i := 0; i+3 < len(srcData); i += 4 {
		r := float32(srcData[i+0])
		g := float32(srcData[i+1])
		b := float32(srcData[i+2])
		a := float32(srcData[i+3])

		newR := m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4]
		newG := m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9]
		newB := m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14]
		newA := m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19]

		dstData[i+0] = clampUint8(newR)
		dstData[i+1] = clampUint8(newG)
		dstData[i+2] = clampUint8(newB)
		dstData[i+3] = clampUint8(newA)
	}
}
