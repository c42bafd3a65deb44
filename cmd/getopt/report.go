// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kballard/go-shellquote"
	"github.com/yeetrun/getopt/pkg/env"
	"github.com/yeetrun/getopt/pkg/getopt"
	"gopkg.in/yaml.v3"
)

// report is what getopt prints for one parse.
type report struct {
	Options    map[string]getopt.Value `json:"options" yaml:"options"`
	Unknown    map[string]any          `json:"unknown,omitempty" yaml:"unknown,omitempty"`
	Positional []string                `json:"positional" yaml:"positional"`

	args  []string
	order []string // option names in registration order
}

func newReport(inv *getopt.Invocation) *report {
	r := &report{
		Options:    make(map[string]getopt.Value),
		Positional: inv.Unparsed.Positional(),
	}
	if r.Positional == nil {
		r.Positional = []string{}
	}
	for _, o := range inv.Registry.Options() {
		v := o.Value()
		if !v.IsSet() {
			continue
		}
		name := o.Long
		if name == "" {
			name = o.Short
		}
		r.Options[name] = v
		r.order = append(r.order, name)
		r.args = append(r.args, optionArgs(o, v)...)
	}
	for _, e := range inv.Unparsed.Options() {
		if r.Unknown == nil {
			r.Unknown = make(map[string]any)
		}
		switch {
		case !e.HasValue:
			r.Unknown[e.Key] = true
			r.args = append(r.args, e.Flag())
		case len(e.Key) > 1:
			r.Unknown[e.Key] = e.Value
			r.args = append(r.args, e.Flag()+"="+e.Value)
		default:
			r.Unknown[e.Key] = e.Value
			r.args = append(r.args, e.Flag()+e.Value)
		}
	}
	r.args = append(r.args, "--")
	r.args = append(r.args, r.Positional...)
	return r
}

// optionArgs renders every occurrence of o in a form getopt-style shell
// loops understand: long options as --name[=value], short-only options
// as -s value, or -svalue when the value is optional.
func optionArgs(o *getopt.Option, v getopt.Value) []string {
	var out []string
	for _, occ := range v.Occurrences() {
		switch {
		case o.Long != "" && occ.HasValue:
			out = append(out, "--"+o.Long+"="+occ.Value)
		case o.Long != "":
			out = append(out, "--"+o.Long)
		case !occ.HasValue:
			out = append(out, "-"+o.Short)
		case o.Arity == getopt.OptionalValue:
			out = append(out, "-"+o.Short+occ.Value)
		default:
			out = append(out, "-"+o.Short, occ.Value)
		}
	}
	return out
}

type encoder func(w io.Writer, r *report) error

func encoderFor(format, envPrefix string) (encoder, error) {
	switch format {
	case "", "shell":
		return encodeShell, nil
	case "json":
		return encodeJSON, nil
	case "yaml":
		return encodeYAML, nil
	case "env":
		return func(w io.Writer, r *report) error {
			return env.Marshal(w, r.envVars(envPrefix))
		}, nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

// envVars maps each given option to one variable: its last value, or the
// number of times it was given when it never carried a value. Positional
// arguments go to <prefix>ARGS as a shell-quoted list.
func (r *report) envVars(prefix string) []env.Var {
	vars := make([]env.Var, 0, len(r.order)+1)
	for _, name := range r.order {
		v := r.Options[name]
		val := fmt.Sprint(v.Count())
		if len(v.Strings()) > 0 {
			val = v.String()
		}
		vars = append(vars, env.Var{Name: env.Name(prefix, name), Value: val})
	}
	return append(vars, env.Var{Name: prefix + "ARGS", Value: shellquote.Join(r.Positional...)})
}

func encodeShell(w io.Writer, r *report) error {
	_, err := fmt.Fprintln(w, shellquote.Join(r.args...))
	return err
}

func encodeJSON(w io.Writer, r *report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func encodeYAML(w io.Writer, r *report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
