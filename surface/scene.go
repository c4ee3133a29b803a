// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"fmt"
	"sort"
	"sync"
)

// Scene is an in-memory Surface. Primitives are painted in creation
// order; updating a primitive keeps its place.
//
// A Scene is safe for concurrent use.
type Scene struct {
	mu    sync.RWMutex
	w, h  float64
	nodes map[string]*node
	seq   uint64
	ops   Ops
}

type node struct {
	seq  uint64
	prim Primitive
}

// Ops counts the mutations applied to a Scene.
type Ops struct {
	Created, Updated, Removed int
}

// NewScene returns an empty Scene of the given size.
func NewScene(width, height float64) *Scene {
	return &Scene{w: width, h: height, nodes: make(map[string]*node)}
}

func (s *Scene) Create(key string, p Primitive) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.nodes[key]; ok {
		return fmt.Errorf("%w: %s", ErrExists, key)
	}
	s.seq++
	s.nodes[key] = &node{seq: s.seq, prim: p}
	s.ops.Created++
	return nil
}

func (s *Scene) Update(key string, p Primitive) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.nodes[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	n.prim = p
	s.ops.Updated++
	return nil
}

func (s *Scene) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.nodes[key]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	delete(s.nodes, key)
	s.ops.Removed++
	return nil
}

func (s *Scene) Resize(width, height float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w, s.h = width, height
}

// Size returns the outer size of s.
func (s *Scene) Size() (width, height float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.w, s.h
}

// Len returns the number of primitives in s.
func (s *Scene) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nodes)
}

// Get returns the primitive under key.
func (s *Scene) Get(key string) (Primitive, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nodes[key]
	if !ok {
		return Primitive{}, false
	}
	return n.prim, true
}

// Items returns the primitives of s in paint order.
func (s *Scene) Items() []Item {
	_, _, items := s.snapshot()
	return items
}

// snapshot returns the size and paint-ordered primitives of s as of
// a single instant.
func (s *Scene) snapshot() (width, height float64, items []Item) {
	type seqItem struct {
		seq uint64
		Item
	}
	s.mu.RLock()
	width, height = s.w, s.h
	all := make([]seqItem, 0, len(s.nodes))
	for k, n := range s.nodes {
		all = append(all, seqItem{n.seq, Item{k, n.prim}})
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].seq < all[j].seq })
	items = make([]Item, len(all))
	for i, it := range all {
		items[i] = it.Item
	}
	return width, height, items
}

// Ops returns the number of mutations applied to s so far.
func (s *Scene) Ops() Ops {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ops
}
