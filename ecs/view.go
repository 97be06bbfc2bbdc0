// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecs

import "iter"

// snapshot returns the entities currently holding a component of type T,
// in dense storage order.
func snapshot[T any](s *Store) []Entity {
	st := storageFor[T](s)
	if st == nil || st.len() == 0 {
		return nil
	}
	es := make([]Entity, len(st.dense))
	for i, id := range st.dense {
		es[i] = s.entityForID(id)
	}
	return es
}

// view returns a sequence over the snapshot of entities with component A,
// yielding only those for which match is true at the time they are reached.
func view[A any](s *Store, match func(e Entity) bool) iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for _, e := range snapshot[A](s) {
			if !s.Alive(e) || !Has[A](s, e) {
				continue
			}
			if match != nil && !match(e) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// View1 returns a lazy, restartable sequence of the entities that have a
// component of type A. The candidate set is taken when iteration starts,
// and membership is re-evaluated for each entity as it is reached, so
// entities destroyed (or stripped of A) during iteration are skipped.
// Each entity is yielded at most once per pass. There is no ordering
// guarantee across entities.
func View1[A any](s *Store) iter.Seq[Entity] {
	return view[A](s, nil)
}

// View2 returns a lazy sequence of the entities that have components
// of both types A and B. See [View1] for the iteration semantics.
func View2[A, B any](s *Store) iter.Seq[Entity] {
	return view[A](s, func(e Entity) bool {
		return Has[B](s, e)
	})
}

// View3 returns a lazy sequence of the entities that have components
// of types A, B and C. See [View1] for the iteration semantics.
func View3[A, B, C any](s *Store) iter.Seq[Entity] {
	return view[A](s, func(e Entity) bool {
		return Has[B](s, e) && Has[C](s, e)
	})
}
