// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package retouch

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/mitchellh/mapstructure"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

// Preset is a named partial set of filter values.
type Preset struct {
	Name   string             `yaml:"name"`
	Values map[string]float64 `yaml:"values"`
}

// UnmarshalYAML decodes a preset, rejecting values left empty in the
// document instead of reading them as zero.
func (pr *Preset) UnmarshalYAML(unmarshal func(any) error) error {
	var raw struct {
		Name   string         `yaml:"name"`
		Values map[string]any `yaml:"values"`
	}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	if err := checkPresent(raw.Values); err != nil {
		return fmt.Errorf("preset %q: %w", raw.Name, err)
	}

	pr.Name = raw.Name
	pr.Values = nil
	if len(raw.Values) == 0 {
		return nil
	}
	if err := mapstructure.Decode(raw.Values, &pr.Values); err != nil {
		return fmt.Errorf("preset %q: %w", raw.Name, err)
	}
	return nil
}

// checkPresent rejects keys whose value is null.
func checkPresent(m map[string]any) error {
	for _, name := range slices.Sorted(maps.Keys(m)) {
		if m[name] == nil {
			return fmt.Errorf("%w: %s has no value", ErrNotFinite, name)
		}
	}
	return nil
}

// Label returns the preset name formatted for display, e.g. "Cinematic".
func (pr Preset) Label() string {
	return cases.Title(language.English).String(pr.Name)
}

// Params resets every filter to identity and overlays the preset's values.
// Filters the preset does not mention keep their identity value.
func (pr Preset) Params() (Params, error) {
	return Overlay(Default(), pr.Values)
}

// Validate checks that every key names a filter and every value is legal.
func (pr Preset) Validate() error {
	_, err := pr.Params()
	if err != nil {
		return fmt.Errorf("preset %q: %w", pr.Name, err)
	}
	return nil
}

//go:embed presets.yaml
var builtinPresetsYAML []byte

var builtinPresets = sync.OnceValue(func() []Preset {
	presets, err := ParsePresets(builtinPresetsYAML)
	if err != nil {
		panic(fmt.Sprintf("retouch: built-in presets: %v", err))
	}
	return presets
})

// Presets returns the built-in presets in display order.
// The returned slice and its maps are copies the caller may modify.
func Presets() []Preset {
	src := builtinPresets()
	out := make([]Preset, len(src))
	for i, pr := range src {
		out[i] = Preset{Name: pr.Name, Values: maps.Clone(pr.Values)}
	}
	return out
}

// LookupPreset returns the built-in preset with the given name.
func LookupPreset(name string) (Preset, error) {
	for _, pr := range Presets() {
		if pr.Name == name {
			return pr, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// ParsePresets decodes a YAML list of presets and validates each of them.
func ParsePresets(data []byte) ([]Preset, error) {
	var presets []Preset
	if err := yaml.UnmarshalStrict(data, &presets); err != nil {
		logYAMLErrors(err)
		return nil, fmt.Errorf("retouch: decode presets: %w", err)
	}
	seen := make(map[string]bool, len(presets))
	for _, pr := range presets {
		if pr.Name == "" {
			return nil, errors.New("retouch: preset without a name")
		}
		if seen[pr.Name] {
			return nil, fmt.Errorf("retouch: duplicate preset %q", pr.Name)
		}
		seen[pr.Name] = true
		if err := pr.Validate(); err != nil {
			return nil, err
		}
	}
	return presets, nil
}

// LoadPresets reads a YAML preset file.
func LoadPresets(path string) ([]Preset, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("retouch: read presets: %w", err)
	}
	return ParsePresets(data)
}

// Overlay returns base with the given values written over it.
// Every key must be a filter name and the result must validate.
func Overlay(base Params, values map[string]float64) (Params, error) {
	for _, name := range slices.Sorted(maps.Keys(values)) {
		if _, err := lookup(name); err != nil {
			return Params{}, err
		}
	}

	generic := make(map[string]any, len(values))
	for k, v := range values {
		generic[k] = v
	}
	p := base
	if err := decodeParams(generic, &p); err != nil {
		return Params{}, err
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// decodeParams writes the keys of m into p, leaving absent fields alone.
func decodeParams(m map[string]any, p *Params) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      p,
		ErrorUnused: true,
	})
	if err != nil {
		return fmt.Errorf("retouch: params decoder: %w", err)
	}
	if err := dec.Decode(m); err != nil {
		return fmt.Errorf("retouch: decode params: %w", err)
	}
	return nil
}

// ReadParams decodes a YAML mapping of filter values from r and overlays
// it on the identity parameters, the same reset-then-overlay rule a
// preset follows.
func ReadParams(r io.Reader) (Params, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Params{}, fmt.Errorf("retouch: read params: %w", err)
	}

	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		logYAMLErrors(err)
		return Params{}, fmt.Errorf("retouch: decode params: %w", err)
	}
	for _, name := range slices.Sorted(maps.Keys(m)) {
		if _, err := lookup(name); err != nil {
			return Params{}, err
		}
	}
	if err := checkPresent(m); err != nil {
		return Params{}, err
	}

	p := Default()
	if err := decodeParams(m, &p); err != nil {
		return Params{}, err
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// LoadParams reads a YAML params file. See ReadParams.
func LoadParams(path string) (Params, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return Params{}, fmt.Errorf("retouch: open params: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ReadParams(f)
}

// WriteParams encodes the values that differ from identity as YAML.
// Reading the output back with ReadParams yields p again.
func WriteParams(w io.Writer, p Params) error {
	changed := p.Changed()
	doc := make(yaml.MapSlice, 0, len(changed))
	for _, name := range changed {
		v, _ := p.Get(name)
		doc = append(doc, yaml.MapItem{Key: name, Value: v})
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("retouch: encode params: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func logYAMLErrors(err error) {
	var te *yaml.TypeError
	if errors.As(err, &te) {
		for _, msg := range te.Errors {
			Logger().Warn("yaml type error", "error", msg)
		}
	}
}
