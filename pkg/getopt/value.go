// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package getopt

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Arity describes whether an option takes a value.
type Arity int

const (
	// Flag options take no value.
	Flag Arity = iota
	// RequiredValue options must be given a value, attached or as the next token.
	RequiredValue
	// OptionalValue options accept a value only when it is attached.
	OptionalValue
)

func (a Arity) String() string {
	switch a {
	case Flag:
		return "flag"
	case RequiredValue:
		return "required"
	case OptionalValue:
		return "optional"
	default:
		return fmt.Sprintf("Arity(%d)", int(a))
	}
}

// ParseArity parses the names produced by Arity.String.
func ParseArity(s string) (Arity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "flag":
		return Flag, nil
	case "required", "required-value":
		return RequiredValue, nil
	case "optional", "optional-value":
		return OptionalValue, nil
	}
	return Flag, fmt.Errorf("unknown arity %q", s)
}

// Occurrence is a single appearance of an option in argv.
type Occurrence struct {
	Value    string
	HasValue bool
}

// Value is what the parser resolved for one option key. The zero Value
// means the option was not given.
type Value struct {
	occ []Occurrence
}

// FlagValue returns a Value for an option given once without a value.
func FlagValue() Value {
	return Value{occ: []Occurrence{{}}}
}

// StringValue returns a Value for an option given once with s.
func StringValue(s string) Value {
	return Value{occ: []Occurrence{{Value: s, HasValue: true}}}
}

// IsSet reports whether the option occurred at all.
func (v Value) IsSet() bool { return len(v.occ) > 0 }

// IsBool reports whether the option occurred exactly once and without a value.
func (v Value) IsBool() bool { return len(v.occ) == 1 && !v.occ[0].HasValue }

// IsMulti reports whether the option occurred more than once.
func (v Value) IsMulti() bool { return len(v.occ) > 1 }

// Count returns the number of occurrences.
func (v Value) Count() int { return len(v.occ) }

// Occurrences returns a copy of the individual occurrences in argv order.
func (v Value) Occurrences() []Occurrence {
	return append([]Occurrence(nil), v.occ...)
}

// String returns the value of the last occurrence that carried one.
func (v Value) String() string {
	for i := len(v.occ) - 1; i >= 0; i-- {
		if v.occ[i].HasValue {
			return v.occ[i].Value
		}
	}
	return ""
}

// Strings returns the values of all occurrences that carried one.
func (v Value) Strings() []string {
	var out []string
	for _, o := range v.occ {
		if o.HasValue {
			out = append(out, o.Value)
		}
	}
	return out
}

// claims reports whether tok is one of the values recorded for v.
func (v Value) claims(tok string) bool {
	for _, o := range v.occ {
		if o.HasValue && o.Value == tok {
			return true
		}
	}
	return false
}

// allValued reports whether every occurrence carried a value.
func (v Value) allValued() bool {
	for _, o := range v.occ {
		if !o.HasValue {
			return false
		}
	}
	return true
}

func (v Value) split() []Value {
	out := make([]Value, len(v.occ))
	for i, o := range v.occ {
		out[i] = Value{occ: []Occurrence{o}}
	}
	return out
}

func (v Value) merge(o Value) Value {
	occ := make([]Occurrence, 0, len(v.occ)+len(o.occ))
	occ = append(occ, v.occ...)
	occ = append(occ, o.occ...)
	return Value{occ: occ}
}

// Interface returns the value in its loosely typed form: nil, true, a
// string, or a []any mixing true and strings for repeated options.
func (v Value) Interface() any {
	switch len(v.occ) {
	case 0:
		return nil
	case 1:
		return occurrenceInterface(v.occ[0])
	}
	out := make([]any, len(v.occ))
	for i, o := range v.occ {
		out[i] = occurrenceInterface(o)
	}
	return out
}

func occurrenceInterface(o Occurrence) any {
	if !o.HasValue {
		return true
	}
	return o.Value
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

func (v Value) MarshalYAML() (any, error) {
	return v.Interface(), nil
}

// Parsed maps an option key (short or long alias) to its resolved value.
type Parsed map[string]Value

// Has reports whether key was given.
func (p Parsed) Has(key string) bool {
	v, ok := p[key]
	return ok && v.IsSet()
}
