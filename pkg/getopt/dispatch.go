// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package getopt

import (
	"errors"
	"fmt"
)

var (
	// ErrNotCommandLine is returned when there is no argv to parse.
	ErrNotCommandLine = errors.New("program can only be run from the command line")
)

// UsageError reports input that does not satisfy the declared options.
// It always leads to usage text and ExitBadUsage.
type UsageError struct {
	// Option is the key the error is about, if any.
	Option string
	Reason string
}

func (e *UsageError) Error() string {
	return e.Reason
}

// Dispatch applies validators and callbacks to the parsed values and stores
// them on the registered options. Keys are visited in registration order.
//
// A non-flag option given under both its short and long name is rejected
// as ambiguous. A flag given both ways is accepted and its occurrences
// are merged.
func (r *Registry) Dispatch(parsed Parsed) error {
	for _, o := range r.options {
		o.value = Value{}
	}
	for _, key := range r.keys {
		v, ok := parsed[key]
		if !ok || !v.IsSet() {
			continue
		}
		o := r.byKey[key]
		if o.Short != "" && o.Long != "" && parsed.Has(o.Short) && parsed.Has(o.Long) && o.Arity != Flag {
			return &UsageError{
				Option: key,
				Reason: fmt.Sprintf("option given as both -%s and --%s", o.Short, o.Long),
			}
		}
		for _, occ := range v.split() {
			if o.validator != nil && !o.validator.Validate(occ) {
				return &UsageError{
					Option: key,
					Reason: fmt.Sprintf("invalid value for '%s'", key),
				}
			}
			if o.callback != nil {
				o.callback.OnParsed(occ)
			}
		}
		o.value = o.value.merge(v)
	}
	return nil
}
