// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package sigreg

import "os"

func osSignal(sig Signal) (os.Signal, bool) {
	if sig == Interrupt {
		return os.Interrupt, true
	}
	return nil, false
}
