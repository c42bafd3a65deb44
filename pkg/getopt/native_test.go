// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package getopt

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"tailscale.com/types/logger"
)

func TestParseEmptyRegistry(t *testing.T) {
	r := NewRegistry(logger.Discard)
	parsed, err := r.Parse([]string{"-x", "--anything", "value"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(parsed) != 0 {
		t.Errorf("Parse = %v, want empty", parsed)
	}
}

func TestParseForms(t *testing.T) {
	r := NewRegistry(logger.Discard)
	r.Add("v|verbose", Flag, false).
		Add("o|output", RequiredValue, false).
		Add("c|color", OptionalValue, false).
		Add("level", RequiredValue, false)

	tests := []struct {
		name string
		args []string
		want map[string]any
	}{
		{
			name: "short separate value",
			args: []string{"-o", "result.txt"},
			want: map[string]any{"o": "result.txt"},
		},
		{
			name: "short attached value",
			args: []string{"-oresult.txt"},
			want: map[string]any{"o": "result.txt"},
		},
		{
			name: "long forms",
			args: []string{"--output=a.txt", "--level", "3"},
			want: map[string]any{"output": "a.txt", "level": "3"},
		},
		{
			name: "flags",
			args: []string{"-v", "--verbose"},
			want: map[string]any{"v": true, "verbose": true},
		},
		{
			name: "repeated option accumulates",
			args: []string{"-o", "a", "-ob", "-v", "-v"},
			want: map[string]any{"o": []any{"a", "b"}, "v": []any{true, true}},
		},
		{
			name: "optional value without value",
			args: []string{"--color", "auto"},
			want: map[string]any{"color": true},
		},
		{
			name: "optional value attached",
			args: []string{"--color=auto", "-calways"},
			want: map[string]any{"color": "auto", "c": "always"},
		},
		{
			name: "optional short as value of required option",
			args: []string{"-o", "-cx"},
			want: map[string]any{"o": "-cx"},
		},
		{
			name: "short cluster",
			args: []string{"-vc"},
			want: map[string]any{"v": true, "c": true},
		},
		{
			name: "unknown options are skipped",
			args: []string{"-x", "--nope=1", "-o", "a"},
			want: map[string]any{"o": "a"},
		},
		{
			name: "terminator stops parsing",
			args: []string{"-v", "--", "-o", "a"},
			want: map[string]any{"v": true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := r.Parse(tt.args)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			got := make(map[string]any, len(parsed))
			for k, v := range parsed {
				got[k] = v.Interface()
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseContinuesPastUndeclaredHelp(t *testing.T) {
	r := NewRegistry(logger.Discard)
	r.Add("o|output", RequiredValue, false)
	argv := []string{"prog", "--help", "-h", "-o", "a"}
	parsed, err := r.Parse(argv[1:])
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := parsed["o"].String(); got != "a" {
		t.Errorf("o = %q, want a", got)
	}
	if parsed.Has("help") || parsed.Has("h") {
		t.Errorf("undeclared help recorded: %v", parsed)
	}
	want := Survivors{Tokens: []string{"--help", "-h"}}
	if diff := cmp.Diff(want, Reconcile(argv, parsed)); diff != "" {
		t.Errorf("Reconcile mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMissingValue(t *testing.T) {
	r := NewRegistry(logger.Discard)
	r.Add("o|output", RequiredValue, false)
	_, err := r.Parse([]string{"--output"})
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("Parse error = %v, want *UsageError", err)
	}
}

func TestParseFlagRejectsValue(t *testing.T) {
	for _, args := range [][]string{
		{"--help=false"},
		{"-h=x"},
	} {
		r := newTestRegistry()
		_, err := r.Parse(args)
		var uerr *UsageError
		if !errors.As(err, &uerr) {
			t.Errorf("Parse(%q) error = %v, want *UsageError", args, err)
		}
	}
}

func TestParseRepeatedOptionalKeepsPositional(t *testing.T) {
	for _, argv := range [][]string{
		{"prog", "-ox", "-o", "x"},
		{"prog", "--out=x", "--out", "x"},
	} {
		r := NewRegistry(logger.Discard)
		r.Add("o|out", OptionalValue, false)
		parsed, err := r.Parse(argv[1:])
		if err != nil {
			t.Fatalf("Parse(%q): %v", argv, err)
		}
		u := Classify(Reconcile(argv, parsed))
		if diff := cmp.Diff([]string{"x"}, u.Positional()); diff != "" {
			t.Errorf("%q: positional mismatch (-want +got):\n%s", argv, diff)
		}
	}
}

func TestParseDoesNotMutateArgs(t *testing.T) {
	r := NewRegistry(logger.Discard)
	r.Add("c|color", OptionalValue, false)
	args := []string{"-cauto"}
	if _, err := r.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if args[0] != "-cauto" {
		t.Errorf("args[0] = %q, want -cauto", args[0])
	}
}

// Each accepted form of a required short option consumes the same tokens
// and resolves to the same value.
func TestShortValueFormsAgree(t *testing.T) {
	for _, argv := range [][]string{
		{"prog", "-o", "value"},
		{"prog", "-ovalue"},
		{"prog", "--output", "value"},
		{"prog", "--output=value"},
	} {
		r := newTestRegistry()
		parsed, err := r.Parse(argv[1:])
		if err != nil {
			t.Fatalf("Parse(%q): %v", argv, err)
		}
		if err := r.Dispatch(parsed); err != nil {
			t.Fatalf("Dispatch(%q): %v", argv, err)
		}
		if v, _ := r.Value("o"); v.String() != "value" {
			t.Errorf("%q: value = %q, want value", argv, v.String())
		}
		if s := Reconcile(argv, parsed); len(s.Tokens)+len(s.Rest) != 0 {
			t.Errorf("%q: survivors = %+v, want none", argv, s)
		}
	}
}
