// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package retouch

import (
	"io"

	intImage "github.com/gogpu/retouch/internal/image"
)

// Format identifies an encoded image file format for export.
type Format = intImage.Format

// Export formats.
const (
	FormatPNG  = intImage.FormatPNG
	FormatJPEG = intImage.FormatJPEG
	FormatBMP  = intImage.FormatBMP
	FormatTIFF = intImage.FormatTIFF
)

// DefaultExportName is the file name used when the caller does not pick one.
const DefaultExportName = "filtered-image.png"

// ExportName returns the default file name for an export in format,
// for example "filtered-image.jpg".
func ExportName(format Format) string {
	return "filtered-image" + format.Extension()
}

// I/O errors.
var (
	// ErrUnsupportedFormat is returned for content or names that are not a
	// supported image format.
	ErrUnsupportedFormat = intImage.ErrUnsupportedFormat

	// ErrEmptyData is returned when an image file or buffer holds no bytes.
	ErrEmptyData = intImage.ErrEmptyData
)

// ParseFormat maps "png", "jpg", ".tiff" and similar names to a Format.
func ParseFormat(s string) (Format, error) {
	return intImage.ParseFormat(s)
}

// FormatFromPath picks the export format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return intImage.FormatFromPath(path)
}

// Load decodes the image file at path. It accepts PNG, JPEG, GIF, BMP,
// TIFF and WebP and returns the detected format name.
func Load(path string) (*Bitmap, string, error) {
	buf, name, err := intImage.Load(path)
	if err != nil {
		return nil, "", err
	}
	Logger().Info("image loaded", "path", path, "format", name,
		"width", buf.Width(), "height", buf.Height())
	return &Bitmap{buf: buf}, name, nil
}

// Decode decodes an image from r. See Load.
func Decode(r io.Reader) (*Bitmap, string, error) {
	buf, name, err := intImage.Decode(r)
	if err != nil {
		return nil, "", err
	}
	return &Bitmap{buf: buf}, name, nil
}

// Encode writes b to w. quality applies to JPEG only; 0 selects the
// default quality.
func (b *Bitmap) Encode(w io.Writer, format Format, quality int) error {
	return b.buf.Encode(w, format, quality)
}

// Save writes b to path, choosing the format from the file extension.
func (b *Bitmap) Save(path string, quality int) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return b.buf.Save(path, format, quality)
}
