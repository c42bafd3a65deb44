// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sigreg registers handlers for a small, portable set of process
// signals.
package sigreg

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

// Signal names a catchable process signal independent of the platform.
type Signal int

const (
	Hangup Signal = iota + 1
	Interrupt
	Quit
	Kill
	User1
	User2
)

var names = map[Signal]string{
	Hangup:    "hangup",
	Interrupt: "interrupt",
	Quit:      "quit",
	Kill:      "kill",
	User1:     "user1",
	User2:     "user2",
}

func (s Signal) String() string {
	if n, ok := names[s]; ok {
		return n
	}
	return fmt.Sprintf("Signal(%d)", int(s))
}

var (
	// ErrUncatchable is returned for signals a process cannot handle.
	ErrUncatchable = errors.New("signal cannot be caught")
	// ErrUnknownSignal is returned for values outside the declared set.
	ErrUnknownSignal = errors.New("unrecognized signal")
)

// Supported reports whether sig can be delivered on this platform.
func Supported(sig Signal) bool {
	_, ok := osSignal(sig)
	return ok
}

// Handle calls fn each time sig is delivered until ctx is done. Calls
// are serialized on one goroutine. On platforms without sig, Handle does
// nothing and returns nil.
func Handle(ctx context.Context, sig Signal, fn func(Signal)) error {
	if _, ok := names[sig]; !ok {
		return fmt.Errorf("%w %d", ErrUnknownSignal, int(sig))
	}
	if sig == Kill {
		return fmt.Errorf("%v: %w", sig, ErrUncatchable)
	}
	if fn == nil {
		return errors.New("nil signal handler")
	}
	s, ok := osSignal(sig)
	if !ok {
		return nil
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, s)
	go func() {
		defer signal.Stop(sigCh)
		for {
			select {
			case <-ctx.Done():
				return
			case <-sigCh:
				fn(sig)
			}
		}
	}()
	return nil
}
