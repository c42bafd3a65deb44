// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestStyleSequence(t *testing.T) {
	tests := []struct {
		name  string
		style *Style
		want  string
	}{
		{"empty", NewStyle(), "\x1b[m"},
		{"bold", NewStyle().Bold(), "\x1b[1m"},
		{"bold reverse", NewStyle().Bold().Reverse(), "\x1b[1;7m"},
		{"colors", NewStyle().Foreground(Red).Background(Blue), "\x1b[91;104m"},
		{"out of range", NewStyle().Foreground(9).Background(-1), "\x1b[90;100m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.style.Sequence(); got != tt.want {
				t.Errorf("Sequence() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStyleWriteToClears(t *testing.T) {
	var buf bytes.Buffer
	s := NewStyle().Bold().Foreground(Green)
	if _, err := s.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if got := buf.String(); got != "\x1b[1;92m" {
		t.Errorf("WriteTo wrote %q", got)
	}
	if s.Len() != 0 {
		t.Errorf("Len() after WriteTo = %d, want 0", s.Len())
	}
}

func TestColorizerWrap(t *testing.T) {
	s := NewStyle().Bold()
	if got := (Colorizer{}).Wrap(s, "x"); got != "x" {
		t.Errorf("disabled Wrap = %q", got)
	}
	if got := (Colorizer{Enabled: true}).Wrap(s, "x"); got != "\x1b[1mx\x1b[0m" {
		t.Errorf("enabled Wrap = %q", got)
	}
}

func TestNewColorizer(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "xterm")
	if !NewColorizer(true).Enabled {
		t.Error("colorizer disabled on xterm")
	}
	t.Setenv("TERM", "dumb")
	if NewColorizer(true).Enabled {
		t.Error("colorizer enabled on dumb terminal")
	}
	t.Setenv("TERM", "xterm")
	t.Setenv("NO_COLOR", "1")
	if NewColorizer(true).Enabled {
		t.Error("colorizer enabled with NO_COLOR")
	}
}

func TestScreen(t *testing.T) {
	var buf bytes.Buffer
	NewScreen(&buf).ResetScreen().EraseLine().Apply(NewStyle().Reverse()).ClearStyle()
	want := "\x1b[2J\x1b[1;1H\x1b[2K\x1b[7m\x1b[0m"
	if got := buf.String(); got != want {
		t.Errorf("Screen wrote %q, want %q", got, want)
	}
}

func TestCountdownExpires(t *testing.T) {
	var buf bytes.Buffer
	c := NewCountdown(&buf, WithInterval(time.Millisecond))
	pressed, err := c.Wait(context.Background(), 2, nil)
	if err != nil || pressed {
		t.Fatalf("Wait = %v, %v; want false, nil", pressed, err)
	}
	out := buf.String()
	for _, want := range []string{"Waiting for 2 seconds", "Waiting for 1 seconds"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
	if !strings.HasSuffix(out, EraseLine+"\r") {
		t.Errorf("output %q does not end by erasing the line", out)
	}
}

func TestCountdownKey(t *testing.T) {
	var buf bytes.Buffer
	keys := make(chan struct{}, 1)
	keys <- struct{}{}
	c := NewCountdown(&buf, WithInterval(time.Hour))
	pressed, err := c.Wait(context.Background(), 5, keys)
	if err != nil || !pressed {
		t.Fatalf("Wait = %v, %v; want true, nil", pressed, err)
	}
	if !strings.HasSuffix(buf.String(), "continue...\n") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestCountdownCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := NewCountdown(&bytes.Buffer{}, WithInterval(time.Hour))
	if _, err := c.Wait(ctx, 5, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait error = %v, want context.Canceled", err)
	}
}

func TestCountdownInvalid(t *testing.T) {
	c := NewCountdown(&bytes.Buffer{})
	for _, n := range []int{0, -3} {
		if _, err := c.Wait(context.Background(), n, nil); !errors.Is(err, ErrInvalidTimeout) {
			t.Errorf("Wait(%d) error = %v, want ErrInvalidTimeout", n, err)
		}
	}
}
