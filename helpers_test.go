// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package retouch

import (
	"image/color"
	"testing"
)

// solidBitmap creates a w×h bitmap filled with c.
func solidBitmap(t testing.TB, w, h int, c color.NRGBA) *Bitmap {
	t.Helper()
	b, err := NewBitmap(w, h)
	if err != nil {
		t.Fatalf("NewBitmap(%d, %d): %v", w, h, err)
	}
	b.Fill(c)
	return b
}

// gradientBitmap creates a bitmap whose channels vary with position,
// including partially transparent pixels.
func gradientBitmap(t testing.TB, w, h int) *Bitmap {
	t.Helper()
	b, err := NewBitmap(w, h)
	if err != nil {
		t.Fatalf("NewBitmap(%d, %d): %v", w, h, err)
	}
	for y := range h {
		for x := range w {
			b.SetPixel(x, y, color.NRGBA{
				R: uint8(x * 255 / max(w-1, 1)),
				G: uint8(y * 255 / max(h-1, 1)),
				B: uint8((x + y) * 7),
				A: uint8(255 - (x*y)%64),
			})
		}
	}
	return b
}

// busyParams sets every filter away from identity.
func busyParams() Params {
	return Params{
		Brightness:  110,
		Contrast:    120,
		Saturate:    80,
		Blur:        1.5,
		HueRotate:   45,
		Temperature: 20,
		Tint:        -10,
		Vibrance:    130,
		Grayscale:   10,
		Sepia:       30,
		Invert:      5,
		Vignette:    50,
	}
}

func nrgba(r, g, b, a uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
