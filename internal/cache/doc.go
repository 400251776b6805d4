// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cache provides a small generic LRU cache.
//
//	c := cache.New[uint64, []float32](64)
//	kernel := c.GetOrCreate(key, func() []float32 { return build() })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
