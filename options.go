// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package retouch

// Option configures a Pipeline during creation.
//
// Example:
//
//	// Render on four goroutines
//	p := retouch.NewPipeline(retouch.WithWorkers(4))
//	defer p.Close()
type Option func(*options)

// options holds optional configuration for Pipeline creation.
type options struct {
	workers int
}

// defaultOptions returns the default pipeline options.
func defaultOptions() options {
	return options{
		workers: 0, // GOMAXPROCS
	}
}

// WithWorkers sets the number of goroutines a Pipeline renders with.
// 1 renders on the calling goroutine; 0 or less uses GOMAXPROCS.
// The worker count never changes the output bytes.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}
