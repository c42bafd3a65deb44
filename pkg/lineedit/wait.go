// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lineedit

import (
	"context"
	"io"
	"os"

	"github.com/yeetrun/getopt/pkg/tui"
	"golang.org/x/term"
)

// WaitForKey shows a countdown on w and waits up to seconds for input on
// r. It reports whether input arrived. When r is a terminal it is read in
// raw mode so a single key is enough; otherwise a full line is needed.
//
// The byte or line that ends the wait is consumed. If the countdown runs
// out, the pending read is left to finish on the next input.
func WaitForKey(ctx context.Context, r io.Reader, w io.Writer, seconds int, opts ...tui.CountdownOption) (bool, error) {
	c := tui.NewCountdown(w, opts...)
	if seconds < 1 {
		return c.Wait(ctx, seconds, nil)
	}
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		state, err := term.MakeRaw(int(f.Fd()))
		if err != nil {
			return false, err
		}
		defer term.Restore(int(f.Fd()), state)
		return c.Wait(ctx, seconds, readKeys(r, true))
	}
	return c.Wait(ctx, seconds, readKeys(r, false))
}

// readKeys signals once when r yields a byte (raw) or a full line.
// Nothing is sent if r fails first.
func readKeys(r io.Reader, raw bool) <-chan struct{} {
	keys := make(chan struct{}, 1)
	go func() {
		var b [1]byte
		for {
			k, err := r.Read(b[:])
			if k == 0 {
				if err != nil {
					return
				}
				continue
			}
			if raw || b[0] == '\n' {
				keys <- struct{}{}
				return
			}
		}
	}()
	return keys
}
