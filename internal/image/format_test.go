// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package image

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"png", FormatPNG},
		{".PNG", FormatPNG},
		{"jpg", FormatJPEG},
		{"jpeg", FormatJPEG},
		{".bmp", FormatBMP},
		{"tif", FormatTIFF},
		{"TIFF", FormatTIFF},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if err != nil {
				t.Fatalf("ParseFormat(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFormat_Unsupported(t *testing.T) {
	for _, in := range []string{"", "gif", "webp", "exe"} {
		if _, err := ParseFormat(in); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("ParseFormat(%q) error = %v, want ErrUnsupportedFormat", in, err)
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	got, err := FormatFromPath("/tmp/filtered-image.jpeg")
	if err != nil || got != FormatJPEG {
		t.Errorf("FormatFromPath() = %v, %v; want jpeg, nil", got, err)
	}
	if _, err := FormatFromPath("noext"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("FormatFromPath(noext) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestFormat_StringAndExtension(t *testing.T) {
	tests := []struct {
		f    Format
		name string
		ext  string
	}{
		{FormatPNG, "png", ".png"},
		{FormatJPEG, "jpeg", ".jpg"},
		{FormatBMP, "bmp", ".bmp"},
		{FormatTIFF, "tiff", ".tiff"},
	}
	for _, tt := range tests {
		if tt.f.String() != tt.name {
			t.Errorf("String() = %q, want %q", tt.f.String(), tt.name)
		}
		if tt.f.Extension() != tt.ext {
			t.Errorf("Extension() = %q, want %q", tt.f.Extension(), tt.ext)
		}
		if !tt.f.IsValid() {
			t.Errorf("%v.IsValid() = false", tt.f)
		}
	}
	if Format(42).IsValid() {
		t.Error("Format(42) should be invalid")
	}
	if Format(42).String() != "Format(42)" {
		t.Errorf("Format(42).String() = %q", Format(42).String())
	}
}
