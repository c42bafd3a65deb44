// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package optfile loads option declarations from TOML or YAML files.
package optfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/getopt/pkg/getopt"
	"gopkg.in/yaml.v3"
)

// Option declares one option.
type Option struct {
	Name        string   `toml:"name" yaml:"name"`
	Arity       string   `toml:"arity,omitempty" yaml:"arity,omitempty"`
	Required    bool     `toml:"required,omitempty" yaml:"required,omitempty"`
	Description string   `toml:"description,omitempty" yaml:"description,omitempty"`
	Pattern     string   `toml:"pattern,omitempty" yaml:"pattern,omitempty"`
	Choices     []string `toml:"choices,omitempty" yaml:"choices,omitempty"`
}

// File is a complete declaration file.
type File struct {
	Program      string   `toml:"program,omitempty" yaml:"program,omitempty"`
	AllowUnknown bool     `toml:"allow_unknown,omitempty" yaml:"allow_unknown,omitempty"`
	Header       string   `toml:"header,omitempty" yaml:"header,omitempty"`
	Examples     []string `toml:"examples,omitempty" yaml:"examples,omitempty"`
	Footer       string   `toml:"footer,omitempty" yaml:"footer,omitempty"`
	Options      []Option `toml:"option" yaml:"options"`
}

// Load reads a declaration file, picking the format from its extension.
func Load(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f *File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		f, err = DecodeTOML(bytes.NewReader(b))
	case ".yaml", ".yml":
		f, err = DecodeYAML(bytes.NewReader(b))
	default:
		return nil, fmt.Errorf("unsupported option file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return f, nil
}

// DecodeTOML decodes a declaration file in TOML. Options are given as
// [[option]] tables.
func DecodeTOML(r io.Reader) (*File, error) {
	var f File
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	return &f, nil
}

// DecodeYAML decodes a declaration file in YAML.
func DecodeYAML(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, err
	}
	return &f, nil
}

// Register declares every option of f on reg. It fails on an unknown
// arity or an invalid pattern before registering anything.
func (f *File) Register(reg *getopt.Registry) error {
	type decl struct {
		opt   Option
		arity getopt.Arity
		re    *regexp.Regexp
	}
	decls := make([]decl, 0, len(f.Options))
	for _, o := range f.Options {
		arity, err := getopt.ParseArity(o.Arity)
		if err != nil {
			return fmt.Errorf("option %q: %w", o.Name, err)
		}
		var re *regexp.Regexp
		if o.Pattern != "" {
			re, err = regexp.Compile("^(?:" + o.Pattern + ")$")
			if err != nil {
				return fmt.Errorf("option %q: invalid pattern: %w", o.Name, err)
			}
		}
		decls = append(decls, decl{opt: o, arity: arity, re: re})
	}
	for _, d := range decls {
		opts := []getopt.OptionOpt{getopt.WithDescription(d.opt.Description)}
		if v := validator(d.re, d.opt.Choices); v != nil {
			opts = append(opts, getopt.WithValidator(v))
		}
		reg.Add(d.opt.Name, d.arity, d.opt.Required, opts...)
	}
	return nil
}

// validator checks every value of an occurrence against the pattern and
// the allowed choices. Occurrences without a value always pass.
func validator(re *regexp.Regexp, choices []string) getopt.Validator {
	if re == nil && len(choices) == 0 {
		return nil
	}
	return getopt.ValidatorFunc(func(v getopt.Value) bool {
		for _, s := range v.Strings() {
			if re != nil && !re.MatchString(s) {
				return false
			}
			if len(choices) > 0 && !slices.Contains(choices, s) {
				return false
			}
		}
		return true
	})
}

// AppOptions returns the App settings declared in f.
func (f *File) AppOptions() []getopt.AppOption {
	opts := []getopt.AppOption{getopt.WithAllowUnknown(f.AllowUnknown)}
	if f.Program != "" {
		opts = append(opts, getopt.WithName(f.Program))
	}
	hooks := getopt.UsageHooks{}
	if f.Header != "" {
		hooks.Header = func(w io.Writer) { fmt.Fprintln(w, strings.TrimRight(f.Header, "\n")) }
	}
	if len(f.Examples) > 0 {
		hooks.Examples = func(w io.Writer, prog string) {
			for _, ex := range f.Examples {
				fmt.Fprintf(w, "  %s\n", strings.ReplaceAll(ex, "{prog}", prog))
			}
			fmt.Fprintln(w)
		}
	}
	if f.Footer != "" {
		hooks.Footer = func(w io.Writer) { fmt.Fprintln(w, strings.TrimRight(f.Footer, "\n")) }
	}
	return append(opts, getopt.WithUsageHooks(hooks))
}
