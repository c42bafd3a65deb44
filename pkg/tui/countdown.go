// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ErrInvalidTimeout is returned by Countdown.Wait for a count below one.
var ErrInvalidTimeout = errors.New("timeout must be an integer greater than 0")

// Countdown shows a "press any key" message that counts down once per
// interval.
type Countdown struct {
	out        io.Writer
	interval   time.Duration
	hideCursor bool
	color      Colorizer
	style      *Style
}

type CountdownOption func(*Countdown)

// WithInterval sets how long each count lasts. The default is a second.
func WithInterval(d time.Duration) CountdownOption {
	return func(c *Countdown) {
		if d > 0 {
			c.interval = d
		}
	}
}

func WithHideCursor(hide bool) CountdownOption {
	return func(c *Countdown) {
		c.hideCursor = hide
	}
}

// WithColor styles the message when colorizer is enabled.
func WithColor(colorizer Colorizer, style *Style) CountdownOption {
	return func(c *Countdown) {
		c.color = colorizer
		c.style = style
	}
}

func NewCountdown(out io.Writer, opts ...CountdownOption) *Countdown {
	c := &Countdown{
		out:      out,
		interval: time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Wait counts down from seconds. It reports true as soon as a value
// arrives on keys and false once the count runs out; on expiry the
// message is erased. If ctx ends first, Wait returns ctx.Err().
func (c *Countdown) Wait(ctx context.Context, seconds int, keys <-chan struct{}) (bool, error) {
	if seconds < 1 {
		return false, ErrInvalidTimeout
	}
	if c.hideCursor {
		fmt.Fprint(c.out, "\x1b[?25l")
		defer fmt.Fprint(c.out, "\x1b[?25h")
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for remaining := seconds; remaining > 0; remaining-- {
		c.render(remaining)
		select {
		case <-keys:
			fmt.Fprintln(c.out)
			return true, nil
		case <-ctx.Done():
			c.clearLine()
			return false, ctx.Err()
		case <-ticker.C:
		}
	}
	c.clearLine()
	return false, nil
}

func (c *Countdown) render(remaining int) {
	msg := fmt.Sprintf("Waiting for %d seconds, press any key to continue...", remaining)
	fmt.Fprintf(c.out, "\r%s%s", EraseLine, c.color.Wrap(c.style, msg))
}

func (c *Countdown) clearLine() {
	fmt.Fprint(c.out, EraseLine+"\r")
}
