// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lineedit

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/yeetrun/getopt/pkg/history"
	"github.com/yeetrun/getopt/pkg/tui"
)

type fakeTerm struct {
	in  io.Reader
	out bytes.Buffer
}

func (f *fakeTerm) Read(p []byte) (int, error)  { return f.in.Read(p) }
func (f *fakeTerm) Write(p []byte) (int, error) { return f.out.Write(p) }

func TestPlainSkipsBlankLines(t *testing.T) {
	var out bytes.Buffer
	var h history.History
	p := NewPlain(strings.NewReader("\n  \n  hello  \nworld\n"), &out, &h)

	line, err := p.ReadLine(">")
	if err != nil || line != "hello" {
		t.Fatalf("ReadLine = %q, %v; want hello", line, err)
	}
	if got := out.String(); got != "> > > " {
		t.Errorf("prompts = %q, want one per line read", got)
	}
	if line, _ := p.ReadLine(""); line != "world" {
		t.Errorf("ReadLine = %q, want world", line)
	}
	if _, err := p.ReadLine(""); !errors.Is(err, io.EOF) {
		t.Errorf("ReadLine at end = %v, want io.EOF", err)
	}
	if diff := cmp.Diff([]string{"hello", "world"}, h.Entries()); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
}

func TestTerminalRecordsHistory(t *testing.T) {
	var h history.History
	ft := &fakeTerm{in: strings.NewReader("first\rsecond\r")}
	tr := NewTerminal(ft, &h)
	for _, want := range []string{"first", "second"} {
		got, err := tr.ReadLine("name?")
		if err != nil || got != want {
			t.Fatalf("ReadLine = %q, %v; want %q", got, err, want)
		}
	}
	if _, err := tr.ReadLine("name?"); !errors.Is(err, io.EOF) {
		t.Errorf("ReadLine at end = %v, want io.EOF", err)
	}
	if diff := cmp.Diff([]string{"first", "second"}, h.Entries()); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(ft.out.String(), "name? ") {
		t.Errorf("prompt not written: %q", ft.out.String())
	}
}

func TestMenu(t *testing.T) {
	var out bytes.Buffer
	ran := ""
	choices := []Choice{
		{Label: "Start", Action: func() { ran = "start" }},
		{Label: "Stop", Action: func() { ran = "stop" }},
		{Label: "Quit"},
	}
	r := NewPlain(strings.NewReader("abc\n0\n9\n2\n"), &out, nil)
	n, err := Menu(r, &out, choices)
	if err != nil || n != 2 {
		t.Fatalf("Menu = %d, %v; want 2", n, err)
	}
	if ran != "stop" {
		t.Errorf("action ran = %q, want stop", ran)
	}
	wantList := "  1.  Start\n  2.  Stop\n  3.  Quit\n"
	if !strings.HasPrefix(out.String(), wantList) {
		t.Errorf("menu output = %q", out.String())
	}
	if got := strings.Count(out.String(), "Enter selection [1-3]: "); got != 4 {
		t.Errorf("prompted %d times, want 4", got)
	}
}

func TestMenuEOF(t *testing.T) {
	var out bytes.Buffer
	r := NewPlain(strings.NewReader("x\n"), &out, nil)
	n, err := Menu(r, &out, []Choice{{Label: "Only"}})
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("Menu = %d, %v; want 0, io.EOF", n, err)
	}
	if _, err := Menu(r, &out, nil); err == nil {
		t.Error("Menu with no choices succeeded")
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"n\n", false},
		{"\n", false},
		{"yes\n", false},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		got, err := Confirm(strings.NewReader(tt.in), &out, "Proceed?")
		if err != nil {
			t.Fatalf("Confirm(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Confirm(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if out.String() != "Proceed? [y/N]: " {
			t.Errorf("prompt = %q", out.String())
		}
	}
}

func TestWaitForKey(t *testing.T) {
	var out bytes.Buffer
	pressed, err := WaitForKey(context.Background(), strings.NewReader("\n"), &out, 3, tui.WithInterval(time.Hour))
	if err != nil || !pressed {
		t.Fatalf("WaitForKey = %v, %v; want true", pressed, err)
	}
	if !strings.Contains(out.String(), "Waiting for 3 seconds, press any key to continue...") {
		t.Errorf("output = %q", out.String())
	}

	out.Reset()
	pressed, err = WaitForKey(context.Background(), strings.NewReader(""), &out, 1, tui.WithInterval(time.Millisecond))
	if err != nil || pressed {
		t.Errorf("WaitForKey without input = %v, %v; want false", pressed, err)
	}

	if _, err := WaitForKey(context.Background(), strings.NewReader(""), &out, 0); !errors.Is(err, tui.ErrInvalidTimeout) {
		t.Errorf("WaitForKey(0) error = %v, want ErrInvalidTimeout", err)
	}
}
