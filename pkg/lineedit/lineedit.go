// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lineedit reads prompted lines from a console, with history,
// numbered menus and confirmations.
package lineedit

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/yeetrun/getopt/pkg/history"
	"golang.org/x/term"
)

// LineReader reads one line of input after showing a prompt. It returns
// io.EOF once input is exhausted.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// Terminal reads lines with editing and history through x/term. The
// underlying terminal is expected to be in raw mode.
type Terminal struct {
	t *term.Terminal
}

// NewTerminal returns a Terminal over rw. Entered lines are recorded in h
// when h is non-nil.
func NewTerminal(rw io.ReadWriter, h *history.History) *Terminal {
	t := term.NewTerminal(rw, "")
	if h != nil {
		t.History = h
	}
	return &Terminal{t: t}
}

// ReadLine implements LineReader. A non-empty prompt is followed by a space.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		prompt += " "
	}
	t.t.SetPrompt(prompt)
	return t.t.ReadLine()
}

// Plain reads lines from a non-interactive reader. Blank lines are
// skipped and surrounding whitespace is trimmed.
type Plain struct {
	sc *bufio.Scanner
	w  io.Writer
	h  *history.History
}

// NewPlain returns a Plain reader. The prompt is written to w.
func NewPlain(r io.Reader, w io.Writer, h *history.History) *Plain {
	return &Plain{sc: bufio.NewScanner(r), w: w, h: h}
}

// ReadLine implements LineReader.
func (p *Plain) ReadLine(prompt string) (string, error) {
	for {
		if prompt != "" {
			io.WriteString(p.w, prompt+" ")
		}
		if !p.sc.Scan() {
			if err := p.sc.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		line := strings.TrimSpace(p.sc.Text())
		if line == "" {
			continue
		}
		if p.h != nil {
			p.h.Add(line)
		}
		return line, nil
	}
}

// Console is a LineReader bound to a process's standard streams.
type Console struct {
	LineReader
	restore func() error
}

// Close puts the terminal back into the mode it had before Open.
func (c *Console) Close() error {
	if c.restore == nil {
		return nil
	}
	return c.restore()
}

// Open returns a Console over in and out. When in is a terminal it is
// switched to raw mode and read through a Terminal; otherwise lines are
// read plainly.
func Open(in, out *os.File, h *history.History) (*Console, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return &Console{LineReader: NewPlain(in, out, h)}, nil
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	rw := struct {
		io.Reader
		io.Writer
	}{in, out}
	return &Console{
		LineReader: NewTerminal(rw, h),
		restore:    func() error { return term.Restore(fd, state) },
	}, nil
}
