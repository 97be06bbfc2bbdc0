// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"slices"

	"cogentcore.org/scenegraph/ecs"
	"cogentcore.org/scenegraph/math32"
)

// Hierarchy links an entity to its parent and children.
// It is attached on the first reparenting of either side.
// Invariant: child.Parent == p iff p.Children contains child exactly once.
type Hierarchy struct {

	// Parent is the parent entity, or [ecs.Nil] for a root.
	Parent ecs.Entity

	// Children is the ordered list of child entities.
	Children []ecs.Entity
}

// removeChild removes the first occurrence of the given child, if present.
func (h *Hierarchy) removeChild(child ecs.Entity) {
	if i := slices.Index(h.Children, child); i >= 0 {
		h.Children = slices.Delete(h.Children, i, i+1)
	}
}

// Bounds is the bounding sphere of an entity in its local space, plus
// the derived Reach radius covering the entity and its descendants.
type Bounds struct {

	// Center is the center of the sphere, in local space.
	Center math32.Vector3

	// Radius is the radius of the sphere around just this entity.
	Radius float32

	// Reach is the radius of a sphere around Center that covers this
	// entity and (approximately) its descendants. It is derived by the
	// propagation pass and starts out equal to Radius.
	Reach float32
}

// NewBounds returns the default unit sphere bounds.
func NewBounds() Bounds {
	return Bounds{Radius: 1, Reach: 1}
}

// SetSphere sets the local bounding sphere and resets Reach to the radius.
func (bd *Bounds) SetSphere(center math32.Vector3, radius float32) *Bounds {
	bd.Center = center
	bd.Radius = radius
	bd.Reach = radius
	return bd
}

// Tag is an optional debug name. Nothing depends on it being unique.
type Tag struct {
	Name string
}

// Velocity is a placeholder physics component: the linear velocity
// is integrated into the position on each [Scene.Update].
type Velocity struct {

	// Linear is the velocity in parent space, in units per second.
	Linear math32.Vector3
}
