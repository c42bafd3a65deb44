// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package getopt

import (
	"fmt"
	"io"
	"strings"

	"tailscale.com/util/set"
)

// UsageHooks customizes the help screen. Every hook is optional.
type UsageHooks struct {
	// Header is written above the "Usage:" line.
	Header func(w io.Writer)
	// Examples is written right below the "Usage:" line.
	Examples func(w io.Writer, prog string)
	// Footer is written after the option list.
	Footer func(w io.Writer)
}

// WriteUsage renders the help screen for prog. Each option is listed once
// even when it has two names. Rendering does not change the registry.
func (r *Registry) WriteUsage(w io.Writer, prog string, hooks UsageHooks) {
	if hooks.Header != nil {
		hooks.Header(w)
	}
	fmt.Fprintf(w, "Usage: %s\n", prog)
	if hooks.Examples != nil {
		hooks.Examples(w, prog)
	}

	displayed := make(set.Set[*Option])
	for _, key := range r.keys {
		o := r.byKey[key]
		if displayed.Contains(o) {
			continue
		}
		displayed.Add(o)
		fmt.Fprintf(w, "  %-4s%-16s  %s\n", shortColumn(o), longColumn(o), o.Description)
	}

	if hooks.Footer != nil {
		hooks.Footer(w)
	}
}

// Usage returns the help screen as a string.
func (r *Registry) Usage(prog string, hooks UsageHooks) string {
	var b strings.Builder
	r.WriteUsage(&b, prog, hooks)
	return b.String()
}

func shortColumn(o *Option) string {
	if o.Short == "" {
		return ""
	}
	if o.Long != "" {
		return "-" + o.Short + ", "
	}
	return "-" + o.Short
}

func longColumn(o *Option) string {
	var b strings.Builder
	if o.Long != "" {
		b.WriteString("--")
		b.WriteString(o.Long)
	}
	switch o.Arity {
	case RequiredValue:
		b.WriteString("=VALUE")
	case OptionalValue:
		b.WriteString("[=VALUE]")
	}
	return b.String()
}
