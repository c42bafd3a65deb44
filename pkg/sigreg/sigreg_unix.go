// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows

package sigreg

import (
	"os"

	"golang.org/x/sys/unix"
)

var unixSignals = map[Signal]unix.Signal{
	Hangup:    unix.SIGHUP,
	Interrupt: unix.SIGINT,
	Quit:      unix.SIGQUIT,
	Kill:      unix.SIGKILL,
	User1:     unix.SIGUSR1,
	User2:     unix.SIGUSR2,
}

func osSignal(sig Signal) (os.Signal, bool) {
	s, ok := unixSignals[sig]
	return s, ok
}
