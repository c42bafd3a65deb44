// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package history keeps line-editing history with named snapshots and a
// stack of saved histories.
package history

import (
	"slices"
	"sync"

	"tailscale.com/util/mak"
)

// History is an ordered list of entered lines. It satisfies the History
// interface of golang.org/x/term, so it can back a term.Terminal.
// It is safe for concurrent use.
type History struct {
	mu      sync.Mutex
	entries []string
	named   map[string][]string
	stack   [][]string
}

// Add appends a line. Empty lines are ignored.
func (h *History) Add(line string) {
	if line == "" {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, line)
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// At returns the entry idx steps back from the most recent one; At(0) is
// the newest. It panics if idx is out of range.
func (h *History) At(idx int) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[len(h.entries)-1-idx]
}

// Entries returns a copy of all entries, oldest first.
func (h *History) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.entries)
}

// Clear drops every entry. Saved snapshots are kept.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = nil
}

// SaveAs stores a copy of the current entries under name, replacing any
// earlier snapshot of that name.
func (h *History) SaveAs(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	mak.Set(&h.named, name, slices.Clone(h.entries))
}

// Store pushes the current entries onto the stack and clears them.
func (h *History) Store() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stack = append(h.stack, h.entries)
	h.entries = nil
}

// Restore replaces the current entries. With a name it loads that
// snapshot, which stays available; with an empty name it pops the stack.
// It reports whether anything was restored.
func (h *History) Restore(name string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if name != "" {
		saved, ok := h.named[name]
		if !ok {
			return false
		}
		h.entries = slices.Clone(saved)
		return true
	}
	if len(h.stack) == 0 {
		return false
	}
	last := len(h.stack) - 1
	h.entries = h.stack[last]
	h.stack = h.stack[:last]
	return true
}

// Depth returns the number of histories on the stack.
func (h *History) Depth() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.stack)
}
