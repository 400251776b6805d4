// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package editor

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/retouch"
)

// Common errors returned by Session operations.
var (
	// ErrNoImage is returned when an operation needs an image and none is loaded.
	ErrNoImage = errors.New("editor: no image loaded")

	// ErrSessionClosed is returned when operations are attempted on a closed session.
	ErrSessionClosed = errors.New("editor: session is closed")
)

// Zoom limits and the step used by ZoomIn and ZoomOut.
const (
	MinZoom  = 0.1
	MaxZoom  = 3.0
	ZoomStep = 0.1
)

// Session is one editing session.
//
// Session is NOT safe for concurrent use. Create one Session per goroutine,
// or use external synchronization.
type Session struct {
	pipeline *retouch.Pipeline
	original *retouch.Bitmap
	params   retouch.Params

	rendered *retouch.Bitmap // last render of original with params
	dirty    bool            // rendered is stale

	preview bool
	zoom    float64
	panX    float64
	panY    float64
	closed  bool
}

// New creates an empty session in preview mode with identity parameters.
// opts configure the session's render pipeline.
func New(opts ...retouch.Option) *Session {
	return &Session{
		pipeline: retouch.NewPipeline(opts...),
		params:   retouch.Default(),
		preview:  true,
		zoom:     1,
		dirty:    true,
	}
}

// Close releases the session's render workers. Close is safe to call
// multiple times.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.pipeline.Close()
	s.rendered = nil
}

// Open loads the image file at path. See SetImage.
func (s *Session) Open(path string) error {
	if s.closed {
		return ErrSessionClosed
	}
	b, _, err := retouch.Load(path)
	if err != nil {
		return err
	}
	return s.SetImage(b)
}

// Load decodes an image from r. See SetImage.
func (s *Session) Load(r io.Reader) error {
	if s.closed {
		return ErrSessionClosed
	}
	b, format, err := retouch.Decode(r)
	if err != nil {
		return err
	}
	retouch.Logger().Info("image loaded", "format", format,
		"width", b.Width(), "height", b.Height())
	return s.SetImage(b)
}

// SetImage replaces the source image with a copy of b. The parameters are
// kept; zoom and pan return to their defaults.
func (s *Session) SetImage(b *retouch.Bitmap) error {
	if s.closed {
		return ErrSessionClosed
	}
	if b.IsEmpty() {
		return retouch.ErrNilBitmap
	}
	s.original = b.Clone()
	s.dirty = true
	s.rendered = nil
	s.zoom = 1
	s.panX, s.panY = 0, 0
	return nil
}

// HasImage reports whether an image is loaded.
func (s *Session) HasImage() bool {
	return s.original != nil
}

// Original returns a copy of the source image.
func (s *Session) Original() (*retouch.Bitmap, error) {
	if s.original == nil {
		return nil, ErrNoImage
	}
	return s.original.Clone(), nil
}

// Params returns the current parameters.
func (s *Session) Params() retouch.Params {
	return s.params
}

// SetParams replaces every parameter. Invalid parameters are rejected
// and the current ones kept.
func (s *Session) SetParams(p retouch.Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.setParams(p)
	return nil
}

// Set changes one parameter, as a slider would.
func (s *Session) Set(name string, v float64) error {
	p := s.params
	if err := p.Set(name, v); err != nil {
		return err
	}
	s.setParams(p)
	return nil
}

// ApplyPreset resets every parameter to identity and then applies the
// values of the named built-in preset.
func (s *Session) ApplyPreset(name string) error {
	pr, err := retouch.LookupPreset(name)
	if err != nil {
		return err
	}
	return s.ApplyPresetValues(pr)
}

// ApplyPresetValues is ApplyPreset for a preset that is not built in.
func (s *Session) ApplyPresetValues(pr retouch.Preset) error {
	p, err := pr.Params()
	if err != nil {
		return fmt.Errorf("editor: preset %q: %w", pr.Name, err)
	}
	s.setParams(p)
	retouch.Logger().Info("preset applied", "preset", pr.Name)
	return nil
}

// Reset returns every parameter to its identity value.
func (s *Session) Reset() {
	s.setParams(retouch.Default())
}

func (s *Session) setParams(p retouch.Params) {
	if p == s.params {
		return
	}
	s.params = p
	s.dirty = true
}

// TogglePreview switches between the rendered preview and the untouched
// original and returns true when the preview is now shown.
func (s *Session) TogglePreview() bool {
	s.preview = !s.preview
	return s.preview
}

// Previewing reports whether View shows the rendered image.
func (s *Session) Previewing() bool {
	return s.preview
}

// render returns the render of the original with the current parameters,
// rendering only when something changed since the last call.
func (s *Session) render() (*retouch.Bitmap, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	if s.original == nil {
		return nil, ErrNoImage
	}
	if s.dirty || s.rendered == nil {
		out, err := s.pipeline.Render(s.original, s.params)
		if err != nil {
			return nil, err
		}
		s.rendered = out
		s.dirty = false
	}
	return s.rendered, nil
}

// Rendered returns a copy of the original rendered with the current
// parameters, regardless of the preview toggle.
func (s *Session) Rendered() (*retouch.Bitmap, error) {
	out, err := s.render()
	if err != nil {
		return nil, err
	}
	return out.Clone(), nil
}

// View returns what the UI shows at full size: the rendered image in
// preview mode, the original otherwise. The result is a copy.
func (s *Session) View() (*retouch.Bitmap, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	if !s.preview {
		return s.Original()
	}
	return s.Rendered()
}

// Zoom adds delta to the zoom factor, clamped to [MinZoom, MaxZoom], and
// returns the new factor. Zoom affects Display only, never exports.
func (s *Session) Zoom(delta float64) float64 {
	s.zoom = min(max(s.zoom+delta, MinZoom), MaxZoom)
	return s.zoom
}

// ZoomIn zooms in by one step.
func (s *Session) ZoomIn() float64 { return s.Zoom(ZoomStep) }

// ZoomOut zooms out by one step.
func (s *Session) ZoomOut() float64 { return s.Zoom(-ZoomStep) }

// ZoomLevel returns the current zoom factor.
func (s *Session) ZoomLevel() float64 {
	return s.zoom
}

// ZoomLabel returns the zoom factor as a whole percentage, e.g. "110%".
func (s *Session) ZoomLabel() string {
	return fmt.Sprintf("%d%%", int(math.Round(s.zoom*100)))
}

// Pan moves the view by a screen-space drag of (dx, dy). The drag is
// divided by the zoom so the image follows the pointer.
func (s *Session) Pan(dx, dy float64) {
	s.panX += dx / s.zoom
	s.panY += dy / s.zoom
}

// Offset returns the pan offset in image pixels.
func (s *Session) Offset() (x, y float64) {
	return s.panX, s.panY
}

// Display returns the view scaled by the zoom factor, ready for a screen.
// The scaled size is rounded to whole pixels and never below 1×1.
func (s *Session) Display() (*image.RGBA, error) {
	view, err := s.View()
	if err != nil {
		return nil, err
	}

	w := max(1, int(math.Round(float64(view.Width())*s.zoom)))
	h := max(1, int(math.Round(float64(view.Height())*s.zoom)))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))

	if w == view.Width() && h == view.Height() {
		xdraw.Copy(dst, image.Point{}, view, view.Bounds(), xdraw.Src, nil)
		return dst, nil
	}
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), view, view.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// Export renders the image with the current parameters and encodes it to
// w. The output matches the preview byte for byte before encoding, and
// neither the preview toggle nor zoom changes it.
func (s *Session) Export(w io.Writer, format retouch.Format, quality int) error {
	out, err := s.render()
	if err != nil {
		return err
	}
	if err := out.Encode(w, format, quality); err != nil {
		return err
	}
	retouch.Logger().Info("image exported", "format", format.String(),
		"width", out.Width(), "height", out.Height())
	return nil
}

// ExportFile renders and saves the image to path, choosing the format
// from the extension. An empty path saves to retouch.DefaultExportName.
func (s *Session) ExportFile(path string, quality int) error {
	if path == "" {
		path = retouch.DefaultExportName
	}
	out, err := s.render()
	if err != nil {
		return err
	}
	if err := out.Save(path, quality); err != nil {
		return err
	}
	retouch.Logger().Info("image exported", "path", path,
		"width", out.Width(), "height", out.Height())
	return nil
}
