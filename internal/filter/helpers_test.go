// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package filter

import (
	"testing"

	"github.com/gogpu/retouch/internal/image"
)

// Test helper functions shared across filter tests.

type rgba struct{ r, g, b, a uint8 }

// createTestBuf creates a buffer filled with the given color.
func createTestBuf(t testing.TB, w, h int, c rgba) *image.ImageBuf {
	t.Helper()
	buf, err := image.NewImageBuf(w, h)
	if err != nil {
		t.Fatal(err)
	}
	buf.Fill(c.r, c.g, c.b, c.a)
	return buf
}

// pixelAt reads one pixel as an rgba value.
func pixelAt(buf *image.ImageBuf, x, y int) rgba {
	r, g, b, a := buf.GetRGBA(x, y)
	return rgba{r, g, b, a}
}

// setPixel writes one pixel, failing the test when out of bounds.
func setPixel(t testing.TB, buf *image.ImageBuf, x, y int, c rgba) {
	t.Helper()
	if err := buf.SetRGBA(x, y, c.r, c.g, c.b, c.a); err != nil {
		t.Fatal(err)
	}
}

// channelsNear compares two colors with a per-channel tolerance.
func channelsNear(a, b rgba, tolerance int) bool {
	return absInt(int(a.r)-int(b.r)) <= tolerance &&
		absInt(int(a.g)-int(b.g)) <= tolerance &&
		absInt(int(a.b)-int(b.b)) <= tolerance &&
		absInt(int(a.a)-int(b.a)) <= tolerance
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// absf32 returns the absolute value of a float32.
func absf32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// applyOne runs f on a 1x1 buffer holding c and returns the result.
func applyOne(t testing.TB, f Filter, c rgba) rgba {
	t.Helper()
	src := createTestBuf(t, 1, 1, c)
	dst := createTestBuf(t, 1, 1, rgba{})
	f.Apply(src, dst, nil)
	return pixelAt(dst, 0, 0)
}
