// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package getopt

import (
	"errors"
	"io"

	"github.com/spf13/pflag"
)

// noValue is handed to pflag as NoOptDefVal. pflag passes it to Set when
// a flag or optional-value option appears without a value.
const noValue = "\x00"

// recorder collects every occurrence pflag reports for one alias key.
type recorder struct {
	arity Arity
	occ   []Occurrence
}

func (r *recorder) Set(s string) error {
	if r.arity == Flag && s != noValue {
		return errors.New("option does not take a value")
	}
	if s == noValue {
		r.occ = append(r.occ, Occurrence{})
		return nil
	}
	r.occ = append(r.occ, Occurrence{Value: s, HasValue: true})
	return nil
}

func (r *recorder) String() string { return "" }

func (r *recorder) Type() string {
	if r.arity == Flag {
		return "bool"
	}
	return "string"
}

// shortFlagName is the pflag name of a short-only alias. pflag rejects
// "--" followed by "-", so the name cannot be reached in long form.
func shortFlagName(short string) string { return "-" + short }

// Parse runs the native option grammar over args, which must not include
// the program name, and returns what each alias key received. It does not
// touch the registered options; Dispatch does that.
func (r *Registry) Parse(args []string) (Parsed, error) {
	parsed := make(Parsed)
	if len(r.keys) == 0 {
		return parsed, nil
	}

	fs := pflag.NewFlagSet("getopt", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SetInterspersed(true)
	fs.ParseErrorsWhitelist.UnknownFlags = true

	recs := make(map[string]*recorder, len(r.keys))
	for _, key := range r.keys {
		o := r.byKey[key]
		rec := &recorder{arity: o.Arity}
		recs[key] = rec
		f := &pflag.Flag{
			Name:  key,
			Usage: o.Description,
			Value: rec,
		}
		if len(key) == 1 && key == o.Short {
			f.Name = shortFlagName(key)
			f.Shorthand = key
			f.Hidden = true
		}
		if o.Arity != RequiredValue {
			f.NoOptDefVal = noValue
		}
		fs.AddFlag(f)
	}

	// pflag stops at an undeclared -h or --help. Sinks keep it going; the
	// token is not recorded, so reconciliation reports it as unknown.
	if _, ok := r.byKey["help"]; !ok {
		fs.AddFlag(&pflag.Flag{Name: "help", Value: &recorder{}, NoOptDefVal: noValue, Hidden: true})
	}
	if _, ok := r.byKey["h"]; !ok {
		fs.AddFlag(&pflag.Flag{Name: shortFlagName("h"), Shorthand: "h", Value: &recorder{}, NoOptDefVal: noValue, Hidden: true})
	}

	if err := fs.Parse(r.normalize(args)); err != nil {
		return nil, &UsageError{Reason: err.Error()}
	}
	for key, rec := range recs {
		if len(rec.occ) > 0 {
			parsed[key] = Value{occ: rec.occ}
		}
	}
	return parsed, nil
}

// normalize rewrites "-oVALUE" to "-o=VALUE" for short options with an
// optional value; pflag would otherwise read the tail as more shorthands.
// Tokens that are the separate value of a required option are left alone.
func (r *Registry) normalize(args []string) []string {
	out := args
	copied := false
	takesNext := false
	for i, arg := range args {
		if takesNext {
			takesNext = false
			continue
		}
		if arg == "--" {
			break
		}
		key, long := lookupKey(arg)
		o, ok := r.byKey[key]
		if !ok || (long && key != o.Long) || (!long && key != o.Short) {
			continue
		}
		if o.Arity == RequiredValue && !attachedValue(arg) {
			takesNext = true
			continue
		}
		if long || o.Arity != OptionalValue || len(arg) < 3 || arg[2] == '=' {
			continue
		}
		if !copied {
			out = append([]string(nil), args...)
			copied = true
		}
		out[i] = arg[:2] + "=" + arg[2:]
	}
	return out
}
