// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package retouch

import (
	"bytes"
	"image"
	"image/color"

	intImage "github.com/gogpu/retouch/internal/image"
)

// Bitmap is a fixed-size grid of straight-alpha RGBA pixels, 8 bits per
// channel. Rendering never changes its dimensions.
//
// Create bitmaps with NewBitmap, NewBitmapFromRGBA, FromImage or the
// decoders. The zero value holds no pixels and is rejected by Render.
type Bitmap struct {
	buf *intImage.ImageBuf
}

// IsEmpty reports whether b is nil or holds no pixel buffer.
func (b *Bitmap) IsEmpty() bool {
	return b == nil || b.buf == nil
}

// NewBitmap creates a transparent black bitmap.
func NewBitmap(width, height int) (*Bitmap, error) {
	buf, err := intImage.NewImageBuf(width, height)
	if err != nil {
		return nil, err
	}
	return &Bitmap{buf: buf}, nil
}

// NewBitmapFromRGBA copies width*height*4 bytes of RGBA data into a new
// bitmap. Extra trailing bytes are ignored.
func NewBitmapFromRGBA(pix []byte, width, height int) (*Bitmap, error) {
	buf, err := intImage.FromRaw(pix, width, height)
	if err != nil {
		return nil, err
	}
	return &Bitmap{buf: buf.Clone()}, nil
}

// FromImage converts any image.Image into a bitmap.
func FromImage(img image.Image) (*Bitmap, error) {
	buf, err := intImage.FromStdImage(img)
	if err != nil {
		return nil, err
	}
	return &Bitmap{buf: buf}, nil
}

// Width returns the width of the bitmap.
func (b *Bitmap) Width() int {
	return b.buf.Width()
}

// Height returns the height of the bitmap.
func (b *Bitmap) Height() int {
	return b.buf.Height()
}

// Pix returns the raw RGBA bytes, row by row with no padding.
// Writes through the slice modify the bitmap.
func (b *Bitmap) Pix() []byte {
	return b.buf.Data()
}

// Clone returns a deep copy.
func (b *Bitmap) Clone() *Bitmap {
	return &Bitmap{buf: b.buf.Clone()}
}

// Equal reports whether both bitmaps have the same size and bytes.
func (b *Bitmap) Equal(o *Bitmap) bool {
	if b == nil || o == nil {
		return b == o
	}
	return b.buf.SameSize(o.buf) && bytes.Equal(b.buf.Data(), o.buf.Data())
}

// Pixel returns the color at (x, y), or transparent black outside the bitmap.
func (b *Bitmap) Pixel(x, y int) color.NRGBA {
	r, g, bl, a := b.buf.GetRGBA(x, y)
	return color.NRGBA{R: r, G: g, B: bl, A: a}
}

// SetPixel sets the color at (x, y). Coordinates outside the bitmap are ignored.
func (b *Bitmap) SetPixel(x, y int, c color.NRGBA) {
	_ = b.buf.SetRGBA(x, y, c.R, c.G, c.B, c.A)
}

// Fill sets every pixel to c.
func (b *Bitmap) Fill(c color.NRGBA) {
	b.buf.Fill(c.R, c.G, c.B, c.A)
}

// ToImage converts the bitmap to a freshly allocated image.NRGBA.
func (b *Bitmap) ToImage() *image.NRGBA {
	return b.buf.ToStdImage()
}

// At implements the image.Image interface.
func (b *Bitmap) At(x, y int) color.Color {
	return b.Pixel(x, y)
}

// Bounds implements the image.Image interface.
func (b *Bitmap) Bounds() image.Rectangle {
	return b.buf.Bounds()
}

// ColorModel implements the image.Image interface.
func (b *Bitmap) ColorModel() color.Model {
	return color.NRGBAModel
}
