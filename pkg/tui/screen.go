// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Control sequences written by Screen.
const (
	Reset       = "\x1b[0m"
	ClearScreen = "\x1b[2J"
	EraseLine   = "\x1b[2K"
)

// Screen writes cursor and screen control sequences to a terminal.
type Screen struct {
	out io.Writer
}

// NewScreen returns a Screen writing to out.
func NewScreen(out io.Writer) *Screen {
	return &Screen{out: out}
}

// Clear erases the whole screen without moving the cursor.
func (s *Screen) Clear() *Screen {
	io.WriteString(s.out, ClearScreen)
	return s
}

// EraseLine erases the current line.
func (s *Screen) EraseLine() *Screen {
	io.WriteString(s.out, EraseLine)
	return s
}

// SetCursor moves the cursor to row and column, both starting at 1.
func (s *Screen) SetCursor(row, col int) *Screen {
	fmt.Fprintf(s.out, "\x1b[%d;%dH", row, col)
	return s
}

// ResetScreen clears the screen and homes the cursor.
func (s *Screen) ResetScreen() *Screen {
	return s.Clear().SetCursor(1, 1)
}

// ClearStyle resets all text attributes.
func (s *Screen) ClearStyle() *Screen {
	io.WriteString(s.out, Reset)
	return s
}

// Apply writes the style's sequence and clears the style.
func (s *Screen) Apply(st *Style) *Screen {
	st.WriteTo(s.out)
	return s
}

// Size returns the width and height of the terminal on f. It returns
// zeros when f is not a terminal.
func Size(f *os.File) (width, height int) {
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0
	}
	return w, h
}
