// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package retouch

import (
	"fmt"
	"math"
	"strconv"
)

// Filter names, in pipeline order.
const (
	Brightness  = "brightness"
	Contrast    = "contrast"
	Saturate    = "saturate"
	Blur        = "blur"
	HueRotate   = "hue-rotate"
	Temperature = "temperature"
	Tint        = "tint"
	Vibrance    = "vibrance"
	Grayscale   = "grayscale"
	Sepia       = "sepia"
	Invert      = "invert"
	Vignette    = "vignette"
)

// Params holds the value of every adjustment in slider units.
//
// The zero Params is not the identity: brightness, contrast, saturate and
// vibrance are percentages whose identity is 100. Start from Default.
type Params struct {
	Brightness  float64 `yaml:"brightness" mapstructure:"brightness"`
	Contrast    float64 `yaml:"contrast" mapstructure:"contrast"`
	Saturate    float64 `yaml:"saturate" mapstructure:"saturate"`
	Blur        float64 `yaml:"blur" mapstructure:"blur"`
	HueRotate   float64 `yaml:"hue-rotate" mapstructure:"hue-rotate"`
	Temperature float64 `yaml:"temperature" mapstructure:"temperature"`
	Tint        float64 `yaml:"tint" mapstructure:"tint"`
	Vibrance    float64 `yaml:"vibrance" mapstructure:"vibrance"`
	Grayscale   float64 `yaml:"grayscale" mapstructure:"grayscale"`
	Sepia       float64 `yaml:"sepia" mapstructure:"sepia"`
	Invert      float64 `yaml:"invert" mapstructure:"invert"`
	Vignette    float64 `yaml:"vignette" mapstructure:"vignette"`
}

// Range describes the legal values of one filter.
type Range struct {
	Min      float64
	Max      float64
	Identity float64
}

// Contains reports whether v is a finite value inside the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

type descriptor struct {
	name  string
	rng   Range
	unit  string
	field func(*Params) *float64
}

var descriptors = [...]descriptor{
	{Brightness, Range{0, 200, 100}, "%", func(p *Params) *float64 { return &p.Brightness }},
	{Contrast, Range{0, 200, 100}, "%", func(p *Params) *float64 { return &p.Contrast }},
	{Saturate, Range{0, 200, 100}, "%", func(p *Params) *float64 { return &p.Saturate }},
	{Blur, Range{0, 20, 0}, "px", func(p *Params) *float64 { return &p.Blur }},
	{HueRotate, Range{0, 360, 0}, "°", func(p *Params) *float64 { return &p.HueRotate }},
	{Temperature, Range{-50, 50, 0}, "", func(p *Params) *float64 { return &p.Temperature }},
	{Tint, Range{-50, 50, 0}, "", func(p *Params) *float64 { return &p.Tint }},
	{Vibrance, Range{0, 200, 100}, "%", func(p *Params) *float64 { return &p.Vibrance }},
	{Grayscale, Range{0, 100, 0}, "%", func(p *Params) *float64 { return &p.Grayscale }},
	{Sepia, Range{0, 100, 0}, "%", func(p *Params) *float64 { return &p.Sepia }},
	{Invert, Range{0, 100, 0}, "%", func(p *Params) *float64 { return &p.Invert }},
	{Vignette, Range{0, 100, 0}, "%", func(p *Params) *float64 { return &p.Vignette }},
}

func lookup(name string) (*descriptor, error) {
	for i := range descriptors {
		if descriptors[i].name == name {
			return &descriptors[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
}

// Names returns every filter name in pipeline order.
func Names() []string {
	names := make([]string, len(descriptors))
	for i := range descriptors {
		names[i] = descriptors[i].name
	}
	return names
}

// RangeOf returns the legal range and identity value of a filter.
func RangeOf(name string) (Range, error) {
	d, err := lookup(name)
	if err != nil {
		return Range{}, err
	}
	return d.rng, nil
}

// Default returns the identity parameters: rendering with them returns
// the source unchanged.
func Default() Params {
	var p Params
	for i := range descriptors {
		*descriptors[i].field(&p) = descriptors[i].rng.Identity
	}
	return p
}

// IsDefault reports whether every value equals its identity.
func (p Params) IsDefault() bool {
	return p == Default()
}

// Get returns the value of the named filter.
func (p Params) Get(name string) (float64, error) {
	d, err := lookup(name)
	if err != nil {
		return 0, err
	}
	return *d.field(&p), nil
}

// Set validates v and stores it under the named filter.
// On error p is left unchanged.
func (p *Params) Set(name string, v float64) error {
	d, err := lookup(name)
	if err != nil {
		return err
	}
	if err := d.check(v); err != nil {
		return err
	}
	*d.field(p) = v
	return nil
}

// Validate returns an error for the first value, in pipeline order, that
// is not finite or lies outside its range. Values are never clamped.
func (p Params) Validate() error {
	for i := range descriptors {
		if err := descriptors[i].check(*descriptors[i].field(&p)); err != nil {
			return err
		}
	}
	return nil
}

func (d *descriptor) check(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s = %v", ErrNotFinite, d.name, v)
	}
	if !d.rng.Contains(v) {
		return fmt.Errorf("%w: %s = %v, want [%v, %v]", ErrOutOfRange, d.name, v, d.rng.Min, d.rng.Max)
	}
	return nil
}

// Map returns the parameters keyed by filter name.
func (p Params) Map() map[string]float64 {
	m := make(map[string]float64, len(descriptors))
	for i := range descriptors {
		m[descriptors[i].name] = *descriptors[i].field(&p)
	}
	return m
}

// Changed returns the names of the filters that differ from identity,
// in pipeline order.
func (p Params) Changed() []string {
	var names []string
	for i := range descriptors {
		if *descriptors[i].field(&p) != descriptors[i].rng.Identity {
			names = append(names, descriptors[i].name)
		}
	}
	return names
}

// Unit returns the display unit of a filter: "%", "px", "°" or "" for the
// signed temperature and tint biases. Unknown names have no unit.
func Unit(name string) string {
	d, err := lookup(name)
	if err != nil {
		return ""
	}
	return d.unit
}

// FormatValue renders a value with its unit the way a slider label shows it,
// for example "120%", "0.5px", "90°" or "-10".
func FormatValue(name string, v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + Unit(name)
}
