// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package retouch

import "errors"

// Parameter and preset errors. Callers match them with errors.Is; the
// returned errors wrap them with the offending name and value.
var (
	// ErrUnknownFilter is returned for a filter name that is not one of Names().
	ErrUnknownFilter = errors.New("retouch: unknown filter")

	// ErrOutOfRange is returned for a value outside its filter's range.
	ErrOutOfRange = errors.New("retouch: value out of range")

	// ErrNotFinite is returned for NaN and infinite values.
	ErrNotFinite = errors.New("retouch: value is not finite")

	// ErrUnknownPreset is returned by LookupPreset for an unknown name.
	ErrUnknownPreset = errors.New("retouch: unknown preset")

	// ErrNilBitmap is returned when Render is given a nil or zero-value
	// source bitmap.
	ErrNilBitmap = errors.New("retouch: nil bitmap")
)
