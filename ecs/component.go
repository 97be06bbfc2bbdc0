// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecs

import "reflect"

// pool is the type-erased interface of a component storage.
type pool interface {
	has(id uint32) bool
	remove(id uint32)
	clear()
	len() int
}

// storage is a sparse set of components of type T keyed by entity ID.
// Values are individually allocated so that pointers returned by [Get]
// stay valid while the component is attached, even as other components
// of the same type are added or removed.
type storage[T any] struct {

	// sparse maps ID-1 to index+1 in dense; 0 means absent.
	sparse []int32

	// dense holds the entity IDs that have this component.
	dense []uint32

	// values holds the components, parallel to dense.
	values []*T
}

func (st *storage[T]) has(id uint32) bool {
	return id != 0 && int(id) <= len(st.sparse) && st.sparse[id-1] != 0
}

func (st *storage[T]) get(id uint32) *T {
	if !st.has(id) {
		return nil
	}
	return st.values[st.sparse[id-1]-1]
}

func (st *storage[T]) set(id uint32, v T) *T {
	if st.has(id) {
		p := st.values[st.sparse[id-1]-1]
		*p = v
		return p
	}
	for int(id) > len(st.sparse) {
		st.sparse = append(st.sparse, 0)
	}
	p := new(T)
	*p = v
	st.dense = append(st.dense, id)
	st.values = append(st.values, p)
	st.sparse[id-1] = int32(len(st.dense))
	return p
}

func (st *storage[T]) remove(id uint32) {
	if !st.has(id) {
		return
	}
	idx := st.sparse[id-1] - 1
	last := int32(len(st.dense) - 1)
	lastID := st.dense[last]
	st.dense[idx] = lastID
	st.values[idx] = st.values[last]
	st.sparse[lastID-1] = idx + 1
	st.dense[last] = 0
	st.values[last] = nil
	st.dense = st.dense[:last]
	st.values = st.values[:last]
	st.sparse[id-1] = 0
}

func (st *storage[T]) clear() {
	st.sparse = nil
	st.dense = nil
	st.values = nil
}

func (st *storage[T]) len() int {
	return len(st.dense)
}

// storageFor returns the storage for component type T, or nil
// if no component of that type has ever been added.
func storageFor[T any](s *Store) *storage[T] {
	p, ok := s.pools[reflect.TypeFor[T]()]
	if !ok {
		return nil
	}
	return p.(*storage[T])
}

// makeStorageFor returns the storage for component type T,
// creating it if needed.
func makeStorageFor[T any](s *Store) *storage[T] {
	typ := reflect.TypeFor[T]()
	if p, ok := s.pools[typ]; ok {
		return p.(*storage[T])
	}
	if s.pools == nil {
		s.pools = make(map[reflect.Type]pool)
	}
	st := &storage[T]{}
	s.pools[typ] = st
	return st
}

// Emplace attaches the given component value to the given entity,
// replacing any existing component of the same type, and returns
// a pointer to the stored component. It returns nil and does nothing
// if the entity is not alive.
func Emplace[T any](s *Store, e Entity, v T) *T {
	if !s.Alive(e) {
		return nil
	}
	return makeStorageFor[T](s).set(e.ID, v)
}

// Get returns a pointer to the component of type T of the given entity,
// or nil if the entity is not alive or does not have one.
// The pointer must not be retained across destruction of the entity
// or removal of the component.
func Get[T any](s *Store, e Entity) *T {
	if !s.Alive(e) {
		return nil
	}
	st := storageFor[T](s)
	if st == nil {
		return nil
	}
	return st.get(e.ID)
}

// GetOrEmplace returns the component of type T of the given entity,
// attaching a zero value first if it does not have one. It returns
// nil if the entity is not alive.
func GetOrEmplace[T any](s *Store, e Entity) *T {
	if !s.Alive(e) {
		return nil
	}
	st := makeStorageFor[T](s)
	if c := st.get(e.ID); c != nil {
		return c
	}
	var zero T
	return st.set(e.ID, zero)
}

// Has returns true if the given entity is alive and has a component of type T.
func Has[T any](s *Store, e Entity) bool {
	return Get[T](s, e) != nil
}

// Remove detaches the component of type T from the given entity, if any.
// The entity itself stays alive, even with no components left.
func Remove[T any](s *Store, e Entity) {
	if !s.Alive(e) {
		return
	}
	if st := storageFor[T](s); st != nil {
		st.remove(e.ID)
	}
}

// Count returns the number of entities that have a component of type T.
func Count[T any](s *Store) int {
	if st := storageFor[T](s); st != nil {
		return st.len()
	}
	return 0
}
