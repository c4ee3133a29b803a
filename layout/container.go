// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"sort"
	"sync"
)

// A Container is the layout region a chart is drawn in.
type Container interface {
	// Size returns the current size of the container. mounted
	// is false if the container does not exist yet, in which
	// case w and h are meaningless.
	Size() (w, h float64, mounted bool)

	// OnResize registers f to be called with the new size after
	// every resize. The returned cancel function unregisters f;
	// calling it more than once is harmless.
	OnResize(f func(w, h float64)) (cancel func())
}

// Box is an in-memory Container whose size is set by calling Resize.
// It is safe for concurrent use. Listeners are called synchronously
// from Resize and Mount, outside of Box's lock.
type Box struct {
	mu        sync.Mutex
	w, h      float64
	mounted   bool
	next      int
	listeners map[int]func(w, h float64)
}

// NewBox returns an unmounted Box.
func NewBox() *Box {
	return &Box{listeners: make(map[int]func(w, h float64))}
}

func (b *Box) Size() (w, h float64, mounted bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.w, b.h, b.mounted
}

func (b *Box) OnResize(f func(w, h float64)) (cancel func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.next
	b.next++
	b.listeners[id] = f
	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.listeners, id)
		})
	}
}

// Mount marks b as mounted with the given size and notifies
// listeners.
func (b *Box) Mount(w, h float64) {
	b.mu.Lock()
	b.mounted = true
	b.mu.Unlock()
	b.Resize(w, h)
}

// Resize sets the size of b and, if b is mounted, notifies every
// listener. Resizes are not coalesced.
func (b *Box) Resize(w, h float64) {
	b.mu.Lock()
	b.w, b.h = w, h
	if !b.mounted {
		b.mu.Unlock()
		return
	}
	// Notify in registration order.
	ids := make([]int, 0, len(b.listeners))
	for id := range b.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fs := make([]func(w, h float64), len(ids))
	for i, id := range ids {
		fs[i] = b.listeners[id]
	}
	b.mu.Unlock()

	for _, f := range fs {
		f(w, h)
	}
}

// Unmount marks b as unmounted. Listeners stay registered and are
// notified again after the next Mount.
func (b *Box) Unmount() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.mounted = false
}

// Listeners returns the number of registered listeners.
func (b *Box) Listeners() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}
