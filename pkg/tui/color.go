// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"bytes"
	"io"
	"os"

	"github.com/fatih/color"
)

// Basic colors accepted by Style.Foreground and Style.Background.
const (
	Black = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// Colorizer decides whether styled output is written at all.
type Colorizer struct {
	Enabled bool
}

// NewColorizer returns an enabled Colorizer unless enabled is false,
// NO_COLOR is set, or TERM is empty or "dumb".
func NewColorizer(enabled bool) Colorizer {
	if !enabled {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	term := os.Getenv("TERM")
	if term == "" || term == "dumb" {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

// Wrap surrounds text with the style's sequence and a reset.
func (c Colorizer) Wrap(s *Style, text string) string {
	if !c.Enabled || s == nil || s.Len() == 0 {
		return text
	}
	return s.Sequence() + text + Reset
}

// Style accumulates SGR attributes and emits them as one sequence.
// The zero value is an empty style.
type Style struct {
	attrs []color.Attribute
}

// NewStyle returns an empty style.
func NewStyle() *Style { return &Style{} }

// Bold adds the bold attribute.
func (s *Style) Bold() *Style {
	s.attrs = append(s.attrs, color.Bold)
	return s
}

// Reverse adds the reverse-video attribute.
func (s *Style) Reverse() *Style {
	s.attrs = append(s.attrs, color.ReverseVideo)
	return s
}

// Foreground adds a bright foreground color. Colors outside Black..White
// become Black.
func (s *Style) Foreground(c int) *Style {
	s.attrs = append(s.attrs, color.FgHiBlack+color.Attribute(clampColor(c)))
	return s
}

// Background adds a bright background color. Colors outside Black..White
// become Black.
func (s *Style) Background(c int) *Style {
	s.attrs = append(s.attrs, color.BgHiBlack+color.Attribute(clampColor(c)))
	return s
}

// Len returns the number of attributes added so far.
func (s *Style) Len() int { return len(s.attrs) }

// Sequence returns the escape sequence for the style, for example
// "\x1b[1;91m". It is emitted even when color output is globally off.
func (s *Style) Sequence() string {
	var buf bytes.Buffer
	c := color.New(s.attrs...)
	c.EnableColor()
	c.SetWriter(&buf)
	return buf.String()
}

// WriteTo writes the style's sequence to w and clears the style.
func (s *Style) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.Sequence())
	s.attrs = s.attrs[:0]
	return int64(n), err
}

func clampColor(c int) int {
	if c < Black || c > White {
		return Black
	}
	return c
}
