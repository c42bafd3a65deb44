// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package getopt

import "strings"

// Survivors are the argv tokens a native parse did not account for.
type Survivors struct {
	// Tokens become unknown options or positional arguments.
	Tokens []string
	// Rest holds everything after a "--" terminator. It is always positional.
	Rest []string
}

// lookupKey returns the option key a token refers to: the name after
// "--" up to any "=", or the single character after "-". Positional
// tokens, including a lone "-", have no key.
func lookupKey(tok string) (key string, long bool) {
	switch {
	case strings.HasPrefix(tok, "--"):
		key, _, _ = strings.Cut(tok[2:], "=")
		return key, true
	case len(tok) > 1 && tok[0] == '-':
		return tok[1:2], false
	}
	return "", false
}

// attachedValue reports whether an option token carries its own value
// ("--name=v" or "-xv").
func attachedValue(tok string) bool {
	if strings.HasPrefix(tok, "--") {
		return strings.Contains(tok, "=")
	}
	return len(tok) > 2
}

// Reconcile walks argv (program name first) against what the native parse
// returned and collects the tokens that were not part of a recognized
// option occurrence.
//
// The parser only says which keys got which values, so attribution is
// by key. A recognized token is always consumed. For a key given once
// with a value, the following token is consumed too when it equals that
// value. For a repeated key, a token without an attached value consumes
// the following token when it is one of the recorded values, but only if
// every occurrence carried a value; a valueless occurrence means the
// option never takes a separate token.
func Reconcile(argv []string, parsed Parsed) Survivors {
	var s Survivors
	for i := 1; i < len(argv); i++ {
		tok := argv[i]
		if tok == "--" {
			s.Rest = append(s.Rest, argv[i+1:]...)
			break
		}
		key, _ := lookupKey(tok)
		v, ok := parsed[key]
		if key == "" || !ok || !v.IsSet() {
			s.Tokens = append(s.Tokens, tok)
			continue
		}
		if i+1 < len(argv) && consumesNext(tok, v, argv[i+1]) {
			i++
		}
	}
	return s
}

func consumesNext(tok string, v Value, next string) bool {
	if !v.IsMulti() {
		return !v.IsBool() && v.String() == next
	}
	return !attachedValue(tok) && v.allValued() && v.claims(next)
}

// Entry is one leftover item of argv.
type Entry struct {
	// Key is the option name for unknown options and empty for positionals.
	Key string
	// Position is the index among positional entries.
	Position int
	Value    string
	HasValue bool
}

// IsOption reports whether e is an unknown option rather than a positional.
func (e Entry) IsOption() bool { return e.Key != "" }

// Flag renders the option as it would be typed, "-k" or "--key".
func (e Entry) Flag() string {
	if len(e.Key) > 1 {
		return "--" + e.Key
	}
	return "-" + e.Key
}

// Unparsed is the ordered set of leftover argv items.
type Unparsed struct {
	entries []Entry
	index   map[string]int
	npos    int
}

// Classify sorts survivors into unknown options and positional arguments.
// A key seen twice keeps its first position and the last value.
func Classify(s Survivors) *Unparsed {
	u := &Unparsed{index: make(map[string]int)}
	for _, tok := range s.Tokens {
		switch {
		case strings.HasPrefix(tok, "--") && len(tok) > 2 && tok[2] != '=':
			key, val, found := strings.Cut(tok[2:], "=")
			u.setOption(key, val, found)
		case len(tok) > 1 && tok[0] == '-' && tok[1] != '-':
			u.setOption(tok[1:2], tok[2:], len(tok) > 2)
		default:
			u.addPositional(tok)
		}
	}
	for _, tok := range s.Rest {
		u.addPositional(tok)
	}
	return u
}

func (u *Unparsed) setOption(key, val string, hasValue bool) {
	e := Entry{Key: key, Value: val, HasValue: hasValue}
	if i, ok := u.index[key]; ok {
		u.entries[i] = e
		return
	}
	u.index[key] = len(u.entries)
	u.entries = append(u.entries, e)
}

func (u *Unparsed) addPositional(tok string) {
	u.entries = append(u.entries, Entry{Position: u.npos, Value: tok, HasValue: true})
	u.npos++
}

// Entries returns all leftover items in argv order.
func (u *Unparsed) Entries() []Entry {
	return append([]Entry(nil), u.entries...)
}

// Len returns the number of leftover items.
func (u *Unparsed) Len() int { return len(u.entries) }

// Options returns the unknown options in argv order.
func (u *Unparsed) Options() []Entry {
	var out []Entry
	for _, e := range u.entries {
		if e.IsOption() {
			out = append(out, e)
		}
	}
	return out
}

// Positional returns the positional arguments in argv order.
func (u *Unparsed) Positional() []string {
	var out []string
	for _, e := range u.entries {
		if !e.IsOption() {
			out = append(out, e.Value)
		}
	}
	return out
}

// Lookup returns the unknown option recorded under key.
func (u *Unparsed) Lookup(key string) (Entry, bool) {
	i, ok := u.index[key]
	if !ok {
		return Entry{}, false
	}
	return u.entries[i], true
}
