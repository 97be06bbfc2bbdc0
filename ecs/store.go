// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecs

import (
	"iter"
	"reflect"
)

// Store holds entities and their components. Components are kept in
// one sparse set per component type; any Go type (including interface
// types) can be used as a component type.
type Store struct {

	// versions is the current generation of each slot, indexed by ID-1.
	versions []uint32

	// alive records whether the slot at ID-1 is currently in use.
	alive []bool

	// free is the list of destroyed slot IDs available for reuse.
	free []uint32

	// count is the number of alive entities.
	count int

	// pools has the storage for each component type.
	pools map[reflect.Type]pool
}

// NewStore returns a new empty [Store].
func NewStore() *Store {
	return &Store{pools: make(map[reflect.Type]pool)}
}

// Create allocates a new entity with no components.
func (s *Store) Create() Entity {
	if n := len(s.free); n > 0 {
		id := s.free[n-1]
		s.free = s.free[:n-1]
		s.alive[id-1] = true
		s.count++
		return Entity{ID: id, Version: s.versions[id-1]}
	}
	s.versions = append(s.versions, 1)
	s.alive = append(s.alive, true)
	s.count++
	return Entity{ID: uint32(len(s.versions)), Version: 1}
}

// Alive returns true if the given entity was created by this store
// and has not been destroyed since.
func (s *Store) Alive(e Entity) bool {
	if e.ID == 0 || int(e.ID) > len(s.versions) {
		return false
	}
	return s.alive[e.ID-1] && s.versions[e.ID-1] == e.Version
}

// Destroy removes all components of the given entity and invalidates it.
// Destroying an invalid entity does nothing.
func (s *Store) Destroy(e Entity) {
	if !s.Alive(e) {
		return
	}
	for _, p := range s.pools {
		p.remove(e.ID)
	}
	s.alive[e.ID-1] = false
	s.versions[e.ID-1]++
	s.free = append(s.free, e.ID)
	s.count--
}

// Len returns the number of alive entities.
func (s *Store) Len() int {
	return s.count
}

// Clear destroys all entities and components. Entity values obtained
// before Clear are invalid afterwards, even once their IDs are reused.
func (s *Store) Clear() {
	for i := range s.alive {
		if s.alive[i] {
			s.alive[i] = false
			s.versions[i]++
			s.free = append(s.free, uint32(i+1))
		}
	}
	for _, p := range s.pools {
		p.clear()
	}
	s.count = 0
}

// Entities returns a sequence of all alive entities, in slot order.
// Entities destroyed during iteration are skipped.
func (s *Store) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		n := len(s.versions)
		for i := 0; i < n && i < len(s.versions); i++ {
			if !s.alive[i] {
				continue
			}
			if !yield(Entity{ID: uint32(i + 1), Version: s.versions[i]}) {
				return
			}
		}
	}
}

// entityForID returns the current entity for the given alive ID.
func (s *Store) entityForID(id uint32) Entity {
	return Entity{ID: id, Version: s.versions[id-1]}
}
