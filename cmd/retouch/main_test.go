// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/retouch"
)

func writeInput(t *testing.T) string {
	t.Helper()
	b, err := retouch.NewBitmap(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	b.Fill(color.NRGBA{R: 100, G: 150, B: 200, A: 255})
	path := filepath.Join(t.TempDir(), "in.png")
	if err := b.Save(path, 0); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunWritesFile(t *testing.T) {
	in := writeInput(t)
	out := filepath.Join(t.TempDir(), "out.png")

	var stdout, stderr bytes.Buffer
	err := run([]string{"-in", in, "-out", out, "-set", "temperature=30", "-workers", "2"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run: %v\n%s", err, stderr.String())
	}

	got, _, err := retouch.Load(out)
	if err != nil {
		t.Fatal(err)
	}
	if c := got.Pixel(0, 0); c != (color.NRGBA{R: 109, G: 153, B: 200, A: 255}) {
		t.Errorf("pixel = %v, want {109 153 200 255}", c)
	}
}

func TestRunStdout(t *testing.T) {
	in := writeInput(t)

	var stdout, stderr bytes.Buffer
	if err := run([]string{"-in", in, "-out", "-", "-format", "bmp", "-set", "vignette=100"}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	got, name, err := retouch.Decode(&stdout)
	if err != nil {
		t.Fatal(err)
	}
	if name != "bmp" {
		t.Errorf("format = %q, want bmp", name)
	}
	if c := got.Pixel(0, 0); c != (color.NRGBA{R: 20, G: 30, B: 40, A: 255}) {
		t.Errorf("corner = %v, want {20 30 40 255}", c)
	}
}

func TestRunExplicitFormat(t *testing.T) {
	in := writeInput(t)
	out := filepath.Join(t.TempDir(), "result.img")

	var stdout, stderr bytes.Buffer
	if err := run([]string{"-in", in, "-out", out, "-format", "tiff"}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, name, err := retouch.Load(out); err != nil || name != "tiff" {
		t.Errorf("Load = %q, %v; want tiff", name, err)
	}
}

func TestRunDefaultOutputName(t *testing.T) {
	in := writeInput(t)
	t.Chdir(t.TempDir())

	tests := []struct {
		args []string
		file string
		name string
	}{
		{[]string{"-in", in}, "filtered-image.png", "png"},
		{[]string{"-in", in, "-format", "jpeg"}, "filtered-image.jpg", "jpeg"},
		{[]string{"-in", in, "-format", "bmp"}, "filtered-image.bmp", "bmp"},
	}
	for _, tt := range tests {
		var stdout, stderr bytes.Buffer
		if err := run(tt.args, &stdout, &stderr); err != nil {
			t.Fatalf("run(%q): %v", tt.args, err)
		}
		if _, name, err := retouch.Load(tt.file); err != nil || name != tt.name {
			t.Errorf("run(%q): Load(%s) = %q, %v; want %s", tt.args, tt.file, name, err, tt.name)
		}
	}
}

func TestRunListPresets(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-presets"}, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}
	out := stdout.String()
	for _, want := range []string{"Vintage", "Cinematic", "Soft", "blur 0.5px", "temperature -25"} {
		if !strings.Contains(out, want) {
			t.Errorf("preset list missing %q:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "\n"); n != 6 {
		t.Errorf("preset list has %d lines, want 6", n)
	}
}

func TestRunPrintParams(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-preset", "dramatic", "-set", "vignette=10", "-set", "hue-rotate=45", "-print-params"}, &stdout, &stderr)
	if err != nil {
		t.Fatal(err)
	}
	want := "brightness: 80\ncontrast: 160\nsaturate: 130\nhue-rotate: 45\nvignette: 10\n"
	if got := stdout.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRunParamsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "look.yaml")
	var buf bytes.Buffer
	p := retouch.Default()
	p.Sepia = 70
	if err := retouch.WriteParams(&buf, p); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if err := run([]string{"-params", path, "-print-params"}, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}
	if got := stdout.String(); got != "sepia: 70\n" {
		t.Errorf("output = %q", got)
	}
}

func TestRunErrors(t *testing.T) {
	in := writeInput(t)

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unknown preset", []string{"-in", in, "-preset", "noir"}, retouch.ErrUnknownPreset},
		{"out of range", []string{"-in", in, "-set", "tint=99"}, retouch.ErrOutOfRange},
		{"unknown filter", []string{"-in", in, "-set", "exposure=1"}, retouch.ErrUnknownFilter},
		{"bad format", []string{"-in", in, "-out", "-", "-format", "gif"}, retouch.ErrUnsupportedFormat},
		{"bad format default name", []string{"-in", in, "-format", "gif"}, retouch.ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if err := run(tt.args, &stdout, &stderr); !errors.Is(err, tt.want) {
				t.Errorf("run error = %v, want %v", err, tt.want)
			}
		})
	}

	for _, args := range [][]string{
		{},
		{"-set", "tint"},
		{"-set", "tint=warm"},
		{"-preset", "warm", "-params", "x.yaml"},
		{"-in", in, "extra"},
		{"-in", filepath.Join(t.TempDir(), "missing.png")},
	} {
		var stdout, stderr bytes.Buffer
		if err := run(args, &stdout, &stderr); err == nil {
			t.Errorf("run(%q) = nil error", args)
		}
	}
}

func TestRunVerboseLogs(t *testing.T) {
	in := writeInput(t)
	out := filepath.Join(t.TempDir(), "out.png")

	var stdout, stderr bytes.Buffer
	if err := run([]string{"-v", "-in", in, "-out", out, "-set", "sepia=10"}, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr.String(), "msg=render") {
		t.Errorf("verbose run did not log the render:\n%s", stderr.String())
	}
}
