// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command retouch applies photo adjustments to an image file.
//
// Usage:
//
//	retouch -in photo.jpg -preset vintage -set vignette=40 -out result.png
//	retouch -in photo.jpg -params look.yaml -out - > result.png
//	retouch -presets
//
// Parameters are applied in this order: the preset or params file (both
// reset every filter first), then each -set in command line order.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/gogpu/retouch"
	"github.com/gogpu/retouch/editor"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "retouch:", err)
		os.Exit(1)
	}
}

// setFlags collects repeated -set name=value arguments.
type setFlags []setting

type setting struct {
	name  string
	value float64
}

func (s *setFlags) String() string {
	parts := make([]string, len(*s))
	for i, kv := range *s {
		parts[i] = kv.name + "=" + strconv.FormatFloat(kv.value, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (s *setFlags) Set(arg string) error {
	name, raw, ok := strings.Cut(arg, "=")
	if !ok {
		return fmt.Errorf("want name=value, got %q", arg)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*s = append(*s, setting{name: strings.TrimSpace(name), value: v})
	return nil
}

type config struct {
	in          string
	out         string
	format      string
	preset      string
	paramsFile  string
	sets        setFlags
	listPresets bool
	printParams bool
	quality     int
	workers     int
	verbose     bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	var cfg config

	fs := flag.NewFlagSet("retouch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.in, "in", "", "input image (png, jpeg, gif, bmp, tiff, webp)")
	fs.StringVar(&cfg.out, "out", "", "output file, or - for stdout (default filtered-image.<ext>)")
	fs.StringVar(&cfg.format, "format", "", "output format (png, jpeg, bmp, tiff); default from -out")
	fs.StringVar(&cfg.preset, "preset", "", "built-in preset to start from")
	fs.StringVar(&cfg.paramsFile, "params", "", "YAML file of filter values to start from")
	fs.Var(&cfg.sets, "set", "filter value as name=value (repeatable)")
	fs.BoolVar(&cfg.listPresets, "presets", false, "list the built-in presets and exit")
	fs.BoolVar(&cfg.printParams, "print-params", false, "print the resolved parameters as YAML and exit")
	fs.IntVar(&cfg.quality, "quality", 0, "JPEG quality 1-100 (0 = default)")
	fs.IntVar(&cfg.workers, "workers", 0, "render goroutines (0 = GOMAXPROCS)")
	fs.BoolVar(&cfg.verbose, "v", false, "verbose logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if cfg.preset != "" && cfg.paramsFile != "" {
		return nil, errors.New("-preset and -params are mutually exclusive")
	}
	if cfg.out == "" {
		cfg.out = retouch.DefaultExportName
		if cfg.format != "" {
			format, err := retouch.ParseFormat(cfg.format)
			if err != nil {
				return nil, err
			}
			cfg.out = retouch.ExportName(format)
		}
	}
	return &cfg, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	retouch.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer retouch.SetLogger(nil)

	if cfg.listPresets {
		return listPresets(stdout)
	}

	params, err := resolveParams(cfg)
	if err != nil {
		return err
	}
	if cfg.printParams {
		return retouch.WriteParams(stdout, params)
	}

	if cfg.in == "" {
		return errors.New("no input image: use -in")
	}

	s := editor.New(retouch.WithWorkers(cfg.workers))
	defer s.Close()

	if err := s.Open(cfg.in); err != nil {
		return err
	}
	if err := s.SetParams(params); err != nil {
		return err
	}

	if cfg.out != "-" {
		if cfg.format != "" {
			return exportAs(s, cfg.out, cfg.format, cfg.quality)
		}
		return s.ExportFile(cfg.out, cfg.quality)
	}

	if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return errors.New("refusing to write image data to a terminal; redirect stdout or use -out")
	}
	format := retouch.FormatPNG
	if cfg.format != "" {
		if format, err = retouch.ParseFormat(cfg.format); err != nil {
			return err
		}
	}
	return s.Export(stdout, format, cfg.quality)
}

// exportAs writes the render to path in an explicit format, whatever the
// file extension says.
func exportAs(s *editor.Session, path, name string, quality int) error {
	format, err := retouch.ParseFormat(name)
	if err != nil {
		return err
	}
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}
	if err := s.Export(f, format, quality); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// resolveParams builds the parameters from the preset or params file and
// the -set overrides.
func resolveParams(cfg *config) (retouch.Params, error) {
	params := retouch.Default()

	switch {
	case cfg.preset != "":
		pr, err := retouch.LookupPreset(cfg.preset)
		if err != nil {
			return retouch.Params{}, err
		}
		if params, err = pr.Params(); err != nil {
			return retouch.Params{}, err
		}
	case cfg.paramsFile != "":
		var err error
		if params, err = retouch.LoadParams(cfg.paramsFile); err != nil {
			return retouch.Params{}, err
		}
	}

	for _, kv := range cfg.sets {
		if err := params.Set(kv.name, kv.value); err != nil {
			return retouch.Params{}, err
		}
	}
	return params, nil
}

func listPresets(w io.Writer) error {
	for _, pr := range retouch.Presets() {
		p, err := pr.Params()
		if err != nil {
			return err
		}
		var parts []string
		for _, name := range p.Changed() {
			v, _ := p.Get(name)
			parts = append(parts, name+" "+retouch.FormatValue(name, v))
		}
		if _, err := fmt.Fprintf(w, "%-10s %s\n", pr.Label(), strings.Join(parts, ", ")); err != nil {
			return err
		}
	}
	return nil
}
