// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lineedit

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Choice is one entry of a menu. Action, if set, runs when the choice is
// selected.
type Choice struct {
	Label  string
	Action func()
}

var digits = regexp.MustCompile(`^\d+$`)

// Menu prints the choices numbered from 1 and prompts until a valid
// number is entered. It returns the selected number, or 0 and io.EOF if
// input ends first.
func Menu(r LineReader, w io.Writer, choices []Choice) (int, error) {
	if len(choices) == 0 {
		return 0, errors.New("menu has no choices")
	}
	for i, c := range choices {
		fmt.Fprintf(w, "  %-3s %s\n", strconv.Itoa(i+1)+".", c.Label)
	}
	prompt := fmt.Sprintf("Enter selection [1-%d]:", len(choices))
	for {
		line, err := r.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		line = strings.TrimSpace(line)
		if !digits.MatchString(line) {
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(choices) {
			continue
		}
		if a := choices[n-1].Action; a != nil {
			a()
		}
		return n, nil
	}
}

// Confirm asks a yes/no question. Only "y" or "Y" counts as yes; an empty
// answer is no.
func Confirm(r io.Reader, w io.Writer, msg string) (bool, error) {
	fmt.Fprintf(w, "%s [y/N]: ", msg)

	var confirm string
	_, err := fmt.Fscanln(r, &confirm)
	if err != nil && err.Error() != "unexpected newline" {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	return strings.ToLower(confirm) == "y", nil
}
