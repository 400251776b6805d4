// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package editor holds the interactive state around the retouch pipeline.
//
// A Session owns the loaded image, the current parameters and the view
// state of an editing UI: the preview/original toggle, zoom and pan. None
// of that view state reaches the pipeline. The preview and the exported
// file come from the same retouch render, so an export is byte-identical
// to what the preview showed.
//
// Basic usage:
//
//	s := editor.New()
//	defer s.Close()
//
//	if err := s.Open("photo.jpg"); err != nil {
//	    return err
//	}
//	if err := s.ApplyPreset("vintage"); err != nil {
//	    return err
//	}
//	_ = s.Set(retouch.Vignette, 60)
//
//	return s.ExportFile("", 0) // filtered-image.png
package editor
