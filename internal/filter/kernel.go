// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package filter

import (
	"math"

	"github.com/gogpu/retouch/internal/cache"
)

// GaussianKernel generates a 1D Gaussian kernel with standard deviation sigma.
// The kernel is normalized so all values sum to 1.0.
//
// The kernel size is computed as 2 * ceil(sigma * 3) + 1, which covers
// 99.7% of the Gaussian distribution (3 standard deviations).
//
// For sigma <= 0, returns a single-element kernel [1.0] (identity).
func GaussianKernel(sigma float64) []float32 {
	if sigma <= 0 {
		return []float32{1.0}
	}

	size := OptimalKernelSize(sigma)
	halfSize := size / 2

	kernel := make([]float32, size)

	// G(x) = exp(-x²/(2σ²)); the constant factor cancels in normalization
	twoSigmaSq := 2 * sigma * sigma
	sum := float64(0)

	for i := range size {
		x := float64(i - halfSize)
		val := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(val)
		sum += val
	}

	invSum := float32(1.0 / sum)
	for i := range kernel {
		kernel[i] *= invSum
	}

	return kernel
}

// kernelCache caches computed Gaussian kernels to avoid recomputation.
// Keys are the exact bit pattern of sigma, so a cached kernel is always
// identical to a freshly computed one and cache history never affects output.
type kernelCache struct {
	kernels *cache.Cache[uint64, []float32]
}

var defaultKernelCache = newKernelCache(64)

func newKernelCache(maxLen int) *kernelCache {
	return &kernelCache{kernels: cache.New[uint64, []float32](maxLen)}
}

// get retrieves a kernel from cache or generates and caches it.
func (c *kernelCache) get(sigma float64) []float32 {
	return c.kernels.GetOrCreate(math.Float64bits(sigma), func() []float32 {
		return GaussianKernel(sigma)
	})
}

func (c *kernelCache) len() int {
	return c.kernels.Len()
}

// CachedGaussianKernel returns a cached Gaussian kernel for sigma.
// The returned slice is shared and must not be modified.
func CachedGaussianKernel(sigma float64) []float32 {
	return defaultKernelCache.get(sigma)
}

// OptimalKernelSize returns the kernel length GaussianKernel produces for sigma.
func OptimalKernelSize(sigma float64) int {
	if sigma <= 0 {
		return 1
	}
	halfSize := int(math.Ceil(sigma * 3))
	return halfSize*2 + 1
}
