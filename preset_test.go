// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package retouch

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPresetsBuiltin(t *testing.T) {
	presets := Presets()

	var names []string
	for _, pr := range presets {
		names = append(names, pr.Name)
		if err := pr.Validate(); err != nil {
			t.Errorf("built-in preset %q: %v", pr.Name, err)
		}
	}
	want := []string{"vintage", "cinematic", "warm", "cool", "dramatic", "soft"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("preset names mismatch (-want +got):\n%s", diff)
	}
}

func TestPresetParams(t *testing.T) {
	tests := []struct {
		preset string
		want   func(*Params)
	}{
		{"vintage", func(p *Params) {
			p.Brightness, p.Contrast, p.Saturate = 110, 120, 80
			p.Sepia, p.Temperature, p.Vignette = 30, 20, 25
		}},
		{"cinematic", func(p *Params) {
			p.Brightness, p.Contrast, p.Saturate = 90, 140, 110
			p.Temperature, p.Tint, p.Vignette = -10, 5, 15
		}},
		{"warm", func(p *Params) {
			p.Brightness, p.Contrast, p.Saturate = 105, 110, 120
			p.Temperature, p.Tint = 30, -5
		}},
		{"cool", func(p *Params) {
			p.Brightness, p.Contrast, p.Saturate = 95, 105, 90
			p.Temperature, p.Tint = -25, 10
		}},
		{"dramatic", func(p *Params) {
			p.Brightness, p.Contrast, p.Saturate, p.Vignette = 80, 160, 130, 40
		}},
		{"soft", func(p *Params) {
			p.Brightness, p.Contrast, p.Saturate = 115, 85, 90
			p.Blur, p.Temperature = 0.5, 10
		}},
	}

	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			pr, err := LookupPreset(tt.preset)
			if err != nil {
				t.Fatalf("LookupPreset: %v", err)
			}
			got, err := pr.Params()
			if err != nil {
				t.Fatalf("Params: %v", err)
			}
			want := Default()
			tt.want(&want)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("preset params mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPresetResetsUnlistedFilters(t *testing.T) {
	pr, _ := LookupPreset("dramatic")
	got, err := pr.Params()
	if err != nil {
		t.Fatal(err)
	}
	if got.Temperature != 0 || got.Blur != 0 || got.Vibrance != 100 {
		t.Errorf("unlisted filters not at identity: %+v", got)
	}
}

func TestPresetLabel(t *testing.T) {
	tests := map[string]string{
		"vintage":     "Vintage",
		"cinematic":   "Cinematic",
		"golden hour": "Golden Hour",
		"":            "",
	}
	for name, want := range tests {
		if got := (Preset{Name: name}).Label(); got != want {
			t.Errorf("Label(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestLookupPresetUnknown(t *testing.T) {
	_, err := LookupPreset("noir")
	if !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("LookupPreset(noir) error = %v, want ErrUnknownPreset", err)
	}
}

func TestPresetsReturnsCopies(t *testing.T) {
	first := Presets()
	first[0].Values[Brightness] = 0
	first[0].Name = "changed"

	again := Presets()
	if again[0].Name != "vintage" || again[0].Values[Brightness] != 110 {
		t.Errorf("Presets() exposed shared state: %+v", again[0])
	}
}

func TestParsePresetsErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{
			name: "unknown filter",
			yaml: "- name: x\n  values:\n    exposure: 10\n",
			want: ErrUnknownFilter,
		},
		{
			name: "out of range",
			yaml: "- name: x\n  values:\n    temperature: 80\n",
			want: ErrOutOfRange,
		},
		{
			name: "null value",
			yaml: "- name: x\n  values:\n    brightness: ~\n",
			want: ErrNotFinite,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePresets([]byte(tt.yaml))
			if !errors.Is(err, tt.want) {
				t.Errorf("ParsePresets error = %v, want %v", err, tt.want)
			}
		})
	}

	for _, doc := range []string{
		"- values:\n    blur: 1\n",
		"- name: a\n- name: a\n",
		"- name: a\n  colour: red\n",
		"- name: a\n  values:\n    blur: soft\n",
		"name: a\n",
	} {
		if _, err := ParsePresets([]byte(doc)); err == nil {
			t.Errorf("ParsePresets(%q) = nil error", doc)
		}
	}
}

func TestLoadPresets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "looks.yaml")
	doc := "- name: faded\n  values:\n    contrast: 70\n    saturate: 60\n- name: night\n  values:\n    hue-rotate: 200\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	presets, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("LoadPresets: %v", err)
	}
	if len(presets) != 2 || presets[1].Name != "night" {
		t.Fatalf("LoadPresets = %+v", presets)
	}
	p, err := presets[1].Params()
	if err != nil {
		t.Fatal(err)
	}
	if p.HueRotate != 200 {
		t.Errorf("HueRotate = %v, want 200", p.HueRotate)
	}

	if _, err := LoadPresets(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadPresets(missing) = nil error")
	}
}

func TestOverlayKeepsBase(t *testing.T) {
	base := Default()
	base.Sepia = 40

	got, err := Overlay(base, map[string]float64{Tint: 5})
	if err != nil {
		t.Fatal(err)
	}
	if got.Sepia != 40 || got.Tint != 5 {
		t.Errorf("Overlay = %+v", got)
	}
	if base.Tint != 0 {
		t.Error("Overlay modified its base")
	}
}

func TestReadParams(t *testing.T) {
	got, err := ReadParams(strings.NewReader("temperature: 30\nblur: 1.5\nhue-rotate: 90\n"))
	if err != nil {
		t.Fatalf("ReadParams: %v", err)
	}
	want := Default()
	want.Temperature = 30
	want.Blur = 1.5
	want.HueRotate = 90
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadParams mismatch (-want +got):\n%s", diff)
	}
}

func TestReadParamsErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown key", "exposure: 2\n", ErrUnknownFilter},
		{"out of range", "vignette: 101\n", ErrOutOfRange},
		{"nan", "tint: .nan\n", ErrNotFinite},
		{"null", "brightness: null\n", ErrNotFinite},
		{"empty value", "sepia:\n", ErrNotFinite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadParams(strings.NewReader(tt.doc))
			if !errors.Is(err, tt.want) {
				t.Errorf("ReadParams error = %v, want %v", err, tt.want)
			}
		})
	}

	for _, doc := range []string{"temperature: warm\n", "- 1\n- 2\n", "blur: [1, 2]\n"} {
		if _, err := ReadParams(strings.NewReader(doc)); err == nil {
			t.Errorf("ReadParams(%q) = nil error", doc)
		}
	}
}

func TestWriteParamsRoundTrip(t *testing.T) {
	for _, p := range []Params{Default(), busyParams()} {
		var buf bytes.Buffer
		if err := WriteParams(&buf, p); err != nil {
			t.Fatalf("WriteParams: %v", err)
		}
		got, err := ReadParams(&buf)
		if err != nil {
			t.Fatalf("ReadParams(%q): %v", buf.String(), err)
		}
		if diff := cmp.Diff(p, got); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestWriteParamsListsChangedInOrder(t *testing.T) {
	p := Default()
	p.Vignette = 25
	p.Contrast = 120

	var buf bytes.Buffer
	if err := WriteParams(&buf, p); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "contrast: 120\nvignette: 25\n"; got != want {
		t.Errorf("WriteParams = %q, want %q", got, want)
	}
}

func TestLoadParams(t *testing.T) {
	path := filepath.Join(t.TempDir(), "look.yaml")
	if err := os.WriteFile(path, []byte("sepia: 55\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	p, err := LoadParams(path)
	if err != nil {
		t.Fatalf("LoadParams: %v", err)
	}
	if p.Sepia != 55 || p.Brightness != 100 {
		t.Errorf("LoadParams = %+v", p)
	}
}
