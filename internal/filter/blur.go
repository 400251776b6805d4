// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package filter

import (
	"sync"

	"github.com/gogpu/retouch/internal/image"
	"github.com/gogpu/retouch/internal/parallel"
)

// BlurFilter applies separable Gaussian blur to an image.
// The separable algorithm processes horizontal and vertical passes
// independently, achieving O(w*h*(rx+ry)) complexity instead of O(w*h*rx*ry).
//
// Color is blurred premultiplied so that transparent pixels do not bleed
// their (meaningless) RGB into opaque neighbours. Samples past the image
// edge repeat the edge pixel.
type BlurFilter struct {
	// Radius is the Gaussian standard deviation in pixels.
	Radius float64
}

// NewBlurFilter creates a new blur filter with the given standard deviation.
func NewBlurFilter(radius float64) *BlurFilter {
	return &BlurFilter{Radius: radius}
}

// Apply applies the Gaussian blur to src and writes the result to dst.
// The operation uses a two-pass separable algorithm:
//  1. Horizontal pass: premultiply and convolve each row into a float buffer
//  2. Vertical pass: convolve each column, unpremultiply, write dst
//
// The first pass finishes before the second starts, so src may equal dst.
func (f *BlurFilter) Apply(src, dst *image.ImageBuf, pool *parallel.WorkerPool) {
	mustSameSize(src, dst)

	if f.Radius <= 0 {
		if src != dst {
			copy(dst.Data(), src.Data())
		}
		return
	}

	width, height := src.Width(), src.Height()

	temp := getTempBuffer(width, height)
	defer putTempBuffer(temp)

	kernel := CachedGaussianKernel(f.Radius)

	pool.Bands(height, func(lo, hi int) {
		blurHorizontal(src, temp, lo, hi, kernel)
	})
	pool.Bands(height, func(lo, hi int) {
		blurVertical(temp, dst, lo, hi, kernel)
	})
}

// blurHorizontal convolves rows [lo, hi) of src into temp (premultiplied RGBA float32).
func blurHorizontal(src *image.ImageBuf, temp []float32, lo, hi int, kernel []float32) {
	kernelSize := len(kernel)
	halfKernel := kernelSize / 2
	width := src.Width()
	srcData := src.Data()

	for y := lo; y < hi; y++ {
		rowStart := y * width

		for x := range width {
			var r, g, b, a float32

			for k := range kernelSize {
				kx := min(max(x+k-halfKernel, 0), width-1)

				srcIdx := (rowStart + kx) * 4
				weight := kernel[k]
				alpha := float32(srcData[srcIdx+3])
				premul := alpha / 255 * weight

				r += float32(srcData[srcIdx+0]) * premul
				g += float32(srcData[srcIdx+1]) * premul
				b += float32(srcData[srcIdx+2]) * premul
				a += alpha * weight
			}

			tempIdx := (rowStart + x) * 4
			temp[tempIdx+0] = r
			temp[tempIdx+1] = g
			temp[tempIdx+2] = b
			temp[tempIdx+3] = a
		}
	}
}

// blurVertical convolves temp columns for dst rows [lo, hi) and writes
// straight-alpha bytes.
func blurVertical(temp []float32, dst *image.ImageBuf, lo, hi int, kernel []float32) {
	kernelSize := len(kernel)
	halfKernel := kernelSize / 2
	width, height := dst.Width(), dst.Height()
	dstData := dst.Data()

	for y := lo; y < hi; y++ {
		for x := range width {
			var r, g, b, a float32

			for k := range kernelSize {
				ky := min(max(y+k-halfKernel, 0), height-1)

				tempIdx := (ky*width + x) * 4
				weight := kernel[k]

				r += temp[tempIdx+0] * weight
				g += temp[tempIdx+1] * weight
				b += temp[tempIdx+2] * weight
				a += temp[tempIdx+3] * weight
			}

			dstIdx := (y*width + x) * 4
			if a <= 0 {
				dstData[dstIdx+0] = 0
				dstData[dstIdx+1] = 0
				dstData[dstIdx+2] = 0
				dstData[dstIdx+3] = 0
				continue
			}
			unpremul := 255 / a
			dstData[dstIdx+0] = clampUint8(r * unpremul)
			dstData[dstIdx+1] = clampUint8(g * unpremul)
			dstData[dstIdx+2] = clampUint8(b * unpremul)
			dstData[dstIdx+3] = clampUint8(a)
		}
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

// Temporary buffer pool for blur operations.
var tempBufferPool = sync.Pool{
	New: func() interface{} {
		return &floatBuffer{data: make([]float32, 1024*1024*4)} // ~16MB for 1024x1024 RGBA
	},
}

// getTempBuffer retrieves a temporary buffer from the pool.
// The buffer has exactly width*height*4 elements; every element is written
// by the horizontal pass before it is read.
func getTempBuffer(width, height int) []float32 {
	size := width * height * 4
	wrapper := tempBufferPool.Get().(*floatBuffer)

	if len(wrapper.data) < size {
		tempBufferPool.Put(wrapper)
		return make([]float32, size)
	}

	return wrapper.data[:size]
}

// putTempBuffer returns a temporary buffer to the pool.
func putTempBuffer(buf []float32) {
	// Only pool reasonably-sized buffers
	if cap(buf) <= 16*1024*1024 { // 64MB max
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}
