// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package getopt

import (
	"log"
	"reflect"
	"strings"

	"github.com/fatih/color"
	"tailscale.com/types/logger"
)

// Validator reports whether a raw option value is acceptable.
type Validator interface {
	Validate(v Value) bool
}

// ValidatorFunc adapts a function to a Validator.
type ValidatorFunc func(Value) bool

func (f ValidatorFunc) Validate(v Value) bool { return f(v) }

// Callback is invoked with the value of every occurrence of an option.
type Callback interface {
	OnParsed(v Value)
}

// CallbackFunc adapts a function to a Callback.
type CallbackFunc func(Value)

func (f CallbackFunc) OnParsed(v Value) { f(v) }

// Option is the registered metadata for one logical option. An option
// declared with both a short and a long name is indexed under both keys.
type Option struct {
	Short       string
	Long        string
	Arity       Arity
	Required    bool
	Description string

	validator Validator
	callback  Callback
	value     Value
}

// Name returns the option name in registration form ("s", "long" or "s|long").
func (o *Option) Name() string {
	switch {
	case o.Short != "" && o.Long != "":
		return o.Short + "|" + o.Long
	case o.Short != "":
		return o.Short
	}
	return o.Long
}

// Value returns what the last dispatch stored for this option.
func (o *Option) Value() Value { return o.value }

func (o *Option) keys() []string {
	var keys []string
	if o.Short != "" {
		keys = append(keys, o.Short)
	}
	if o.Long != "" {
		keys = append(keys, o.Long)
	}
	return keys
}

// OptionOpt configures an Option at registration time.
type OptionOpt func(*optionHooks)

type optionHooks struct {
	validator   Validator
	callback    Callback
	description string
}

// WithValidator attaches a validator to the option.
func WithValidator(v Validator) OptionOpt {
	return func(h *optionHooks) { h.validator = v }
}

// WithCallback attaches a callback to the option.
func WithCallback(c Callback) OptionOpt {
	return func(h *optionHooks) { h.callback = c }
}

// WithDescription sets the help text of the option.
func WithDescription(desc string) OptionOpt {
	return func(h *optionHooks) { h.description = desc }
}

// Registry holds the declared options. The zero value is not usable; use
// NewRegistry.
type Registry struct {
	logf    logger.Logf
	byKey   map[string]*Option
	keys    []string // alias keys in registration order
	options []*Option
}

// NewRegistry returns an empty registry. Registration warnings are
// written to logf; a nil logf logs through the standard logger.
func NewRegistry(logf logger.Logf) *Registry {
	if logf == nil {
		logf = warnLogf
	}
	return &Registry{
		logf:  logf,
		byKey: make(map[string]*Option),
	}
}

func warnLogf(format string, args ...any) {
	log.Print(color.YellowString("warning: "+format, args...))
}

// Add registers an option and returns r so calls can be chained.
//
// Invalid names and nil hooks are reported through the registry's
// logger; a nil hook is dropped and the option is still registered.
func (r *Registry) Add(name string, arity Arity, required bool, opts ...OptionOpt) *Registry {
	short, long, ok := splitName(name)
	if !ok {
		r.logf("invalid option name %q, option not registered", name)
		return r
	}
	if arity < Flag || arity > OptionalValue {
		r.logf("invalid arity %d for %s param, treating as flag", int(arity), name)
		arity = Flag
	}

	var h optionHooks
	for _, opt := range opts {
		opt(&h)
	}
	o := &Option{
		Short:       short,
		Long:        long,
		Arity:       arity,
		Required:    required,
		Description: h.description,
	}
	if h.validator != nil {
		if isNilHook(h.validator) {
			r.logf("invalid validator callback for %s param", name)
		} else {
			o.validator = h.validator
		}
	}
	if h.callback != nil {
		if isNilHook(h.callback) {
			r.logf("invalid callback supplied for %s param", name)
		} else {
			o.callback = h.callback
		}
	}

	for _, key := range o.keys() {
		if prev, exists := r.byKey[key]; exists {
			r.logf("option %q redeclared by %s param", key, name)
			r.unbind(prev, key)
		} else {
			r.keys = append(r.keys, key)
		}
		r.byKey[key] = o
	}
	r.options = append(r.options, o)
	return r
}

// unbind detaches key from prev, dropping prev entirely once it has no
// keys left.
func (r *Registry) unbind(prev *Option, key string) {
	switch key {
	case prev.Short:
		prev.Short = ""
	case prev.Long:
		prev.Long = ""
	}
	if prev.Short != "" || prev.Long != "" {
		return
	}
	for i, o := range r.options {
		if o == prev {
			r.options = append(r.options[:i], r.options[i+1:]...)
			break
		}
	}
}

func splitName(name string) (short, long string, ok bool) {
	if s, l, found := strings.Cut(name, "|"); found {
		short, long = s, l
		if short == "" && long == "" {
			return "", "", false
		}
		if len(short) > 1 || short == long {
			return "", "", false
		}
	} else if len(name) > 1 {
		long = name
	} else {
		short = name
	}
	for _, part := range []string{short, long} {
		if part == "" {
			continue
		}
		if strings.HasPrefix(part, "-") || strings.ContainsAny(part, "= \t\n|") {
			return "", "", false
		}
	}
	return short, long, short != "" || long != ""
}

func isNilHook(h any) bool {
	rv := reflect.ValueOf(h)
	switch rv.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Chan, reflect.Interface, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

// Lookup returns the option registered under key.
func (r *Registry) Lookup(key string) (*Option, bool) {
	o, ok := r.byKey[key]
	return o, ok
}

// Options returns each registered option once, in registration order.
func (r *Registry) Options() []*Option {
	return append([]*Option(nil), r.options...)
}

// Keys returns every alias key in registration order.
func (r *Registry) Keys() []string {
	return append([]string(nil), r.keys...)
}

// Len returns the number of registered options.
func (r *Registry) Len() int { return len(r.options) }

// Value returns the value stored for the option registered under name.
func (r *Registry) Value(name string) (Value, bool) {
	o, ok := r.byKey[name]
	if !ok || !o.value.IsSet() {
		return Value{}, false
	}
	return o.value, true
}

// ValueOr returns the string value of name, or def when the option was
// not given or carried no value.
func (r *Registry) ValueOr(name, def string) string {
	v, ok := r.Value(name)
	if !ok {
		return def
	}
	if s := v.Strings(); len(s) > 0 {
		return s[len(s)-1]
	}
	return def
}

// Missing returns the required options that have no value after dispatch.
// Requiredness is not enforced by the parser; callers decide what to do.
func (r *Registry) Missing() []*Option {
	var out []*Option
	for _, o := range r.options {
		if o.Required && !o.value.IsSet() {
			out = append(out, o)
		}
	}
	return out
}
