// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ecs provides a generic entity-component store: it allocates
// opaque generational entity identifiers, attaches arbitrary component
// values to them, and answers "entities having components A, B, ..." queries
// through lazy views. It has no scene semantics of its own.
//
// A Store is not safe for concurrent use. A concurrent host must guard it
// with a single mutex and treat iteration over a view as a read-side
// critical section.
package ecs

import "strconv"

// Entity is an opaque identifier naming a logical object in a [Store].
// It is comparable and can be used as a map key. The zero value is never
// a valid entity.
//
// The ID is recycled after destruction, with an incremented Version,
// so a stale Entity value held after [Store.Destroy] is reliably invalid.
type Entity struct {

	// ID is the slot index of the entity, starting at 1.
	ID uint32

	// Version is the generation of the slot at the time of creation.
	Version uint32
}

// Nil is the zero, invalid entity.
var Nil = Entity{}

// IsNil returns true if this is the zero entity.
func (e Entity) IsNil() bool {
	return e == Nil
}

func (e Entity) String() string {
	if e.IsNil() {
		return "Entity(nil)"
	}
	return "Entity(" + strconv.FormatUint(uint64(e.ID), 10) + "v" + strconv.FormatUint(uint64(e.Version), 10) + ")"
}
