// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package env renders variables as sh-compatible assignments.
package env

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kballard/go-shellquote"
)

// Var is one NAME=value assignment.
type Var struct {
	Name  string
	Value string
}

// Name builds a variable name from prefix and an option name: letters
// are upper-cased and anything outside [A-Z0-9_] becomes '_'.
func Name(prefix, option string) string {
	var b strings.Builder
	b.WriteString(prefix)
	for _, r := range strings.ToUpper(option) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Marshal writes one assignment per line, in order, with values quoted
// for sh.
func Marshal(w io.Writer, vars []Var) error {
	for _, v := range vars {
		if _, err := fmt.Fprintf(w, "%s=%s\n", v.Name, shellquote.Join(v.Value)); err != nil {
			return err
		}
	}
	return nil
}

// Write writes vars to the file name, replacing it.
func Write(name string, vars []Var) error {
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create file: %v", err)
	}
	defer f.Close()
	if err := Marshal(f, vars); err != nil {
		return fmt.Errorf("failed to marshal env: %v", err)
	}
	return f.Close()
}
