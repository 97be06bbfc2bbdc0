// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyz is a 3D scene graph built on an entity-component store.
// It tracks entities connected by parent-child relationships, keeps their
// world transforms consistent with the hierarchy through a lazy
// dirty-flag propagation pass, aggregates a bounding sphere per subtree,
// collects lights into fixed-size arrays for shading, and traverses the
// hierarchy to render each visible entity through an external camera
// and renderables.
//
// All operations are total: invalid entities are silently ignored,
// so that a dropped mutation never halts a frame. The scene is not
// safe for concurrent use.
package xyz

import (
	"log/slog"
	"slices"

	"cogentcore.org/scenegraph/ecs"
	"cogentcore.org/scenegraph/math32"
)

// Scene is the overall scenegraph: it owns the component [ecs.Store]
// and implements entity lifecycle, reparenting, per-frame hierarchy
// propagation, light collection and render traversal on top of it.
type Scene struct {

	// Name is the name of the scene, used in log messages.
	Name string

	// Store holds all entities and their components.
	Store *ecs.Store

	// Options are the behavioral settings of the scene.
	Options Options

	// Materials is the registry used to resolve mesh material names on load.
	// It is supplied by the caller and may be shared across scenes.
	Materials Materials

	// updaters are called in order at the end of each Update.
	updaters []func(sc *Scene, dt float32)
}

// NewScene returns a new empty Scene with [DefaultOptions] and an empty
// material registry.
func NewScene(name string) *Scene {
	return &Scene{
		Name:      name,
		Store:     ecs.NewStore(),
		Options:   DefaultOptions(),
		Materials: Materials{},
	}
}

// Valid returns true if the given entity is alive in this scene.
func (sc *Scene) Valid(e ecs.Entity) bool {
	return sc.Store.Alive(e)
}

// NumEntities returns the number of entities in the scene.
func (sc *Scene) NumEntities() int {
	return sc.Store.Len()
}

// Clear destroys all entities. Registered updaters, options and
// materials are kept.
func (sc *Scene) Clear() {
	sc.Store.Clear()
}

// CreateEntity creates a new entity with an identity [Transform] (dirty)
// and unit [Bounds]. A [Tag] is attached if the name is non-empty.
func (sc *Scene) CreateEntity(name string) ecs.Entity {
	e := sc.Store.Create()
	ecs.Emplace(sc.Store, e, NewTransform())
	ecs.Emplace(sc.Store, e, NewBounds())
	if name != "" {
		ecs.Emplace(sc.Store, e, Tag{Name: name})
	}
	return e
}

// DestroyEntity destroys the given entity and, first, all of its
// descendants (post-order). The entity is unlinked from its parent's
// child list. Invalid entities are ignored.
func (sc *Scene) DestroyEntity(e ecs.Entity) {
	if !sc.Valid(e) {
		return
	}
	if h := ecs.Get[Hierarchy](sc.Store, e); h != nil {
		for _, c := range slices.Clone(h.Children) {
			sc.DestroyEntity(c)
		}
		if ph := sc.parentHierarchy(h); ph != nil {
			ph.removeChild(e)
		}
	}
	sc.Store.Destroy(e)
}

// SetParent makes parent the parent of child, appending child to the end of
// parent's children and removing it from its previous parent, if any.
// The child's transform is marked dirty; its descendants are not.
//
// It does nothing unless both entities are valid, and it refuses any
// reparenting that would make child its own ancestor.
func (sc *Scene) SetParent(child, parent ecs.Entity) {
	if !sc.Valid(child) || !sc.Valid(parent) {
		return
	}
	if child == parent || sc.IsAncestor(child, parent) {
		slog.Debug("xyz.Scene.SetParent: rejected cycle", "scene", sc.Name, "child", sc.label(child), "parent", sc.label(parent))
		return
	}
	ch := ecs.GetOrEmplace[Hierarchy](sc.Store, child)
	if oh := sc.parentHierarchy(ch); oh != nil {
		oh.removeChild(child)
	}
	ch.Parent = parent
	ph := ecs.GetOrEmplace[Hierarchy](sc.Store, parent)
	ph.Children = append(ph.Children, child)
	if tr := ecs.Get[Transform](sc.Store, child); tr != nil {
		tr.SetDirty()
	}
}

// Detach unlinks the given entity from its parent, making it a root.
// Its transform is marked dirty.
func (sc *Scene) Detach(e ecs.Entity) {
	h := ecs.Get[Hierarchy](sc.Store, e)
	if h == nil || h.Parent.IsNil() {
		return
	}
	if ph := sc.parentHierarchy(h); ph != nil {
		ph.removeChild(e)
	}
	h.Parent = ecs.Nil
	if tr := ecs.Get[Transform](sc.Store, e); tr != nil {
		tr.SetDirty()
	}
}

// parentHierarchy returns the Hierarchy of the valid parent recorded in h, or nil.
func (sc *Scene) parentHierarchy(h *Hierarchy) *Hierarchy {
	if h.Parent.IsNil() {
		return nil
	}
	return ecs.Get[Hierarchy](sc.Store, h.Parent)
}

// Parent returns the valid parent of the given entity, or [ecs.Nil].
func (sc *Scene) Parent(e ecs.Entity) ecs.Entity {
	h := ecs.Get[Hierarchy](sc.Store, e)
	if h == nil || !sc.Valid(h.Parent) {
		return ecs.Nil
	}
	return h.Parent
}

// Children returns the children of the given entity, in order.
// The returned slice must not be modified.
func (sc *Scene) Children(e ecs.Entity) []ecs.Entity {
	h := ecs.Get[Hierarchy](sc.Store, e)
	if h == nil {
		return nil
	}
	return h.Children
}

// IsRoot returns true if the given entity is valid and has no valid parent.
func (sc *Scene) IsRoot(e ecs.Entity) bool {
	return sc.Valid(e) && sc.Parent(e).IsNil()
}

// Roots returns every entity with a [Transform] and no valid parent,
// in store view order.
func (sc *Scene) Roots() []ecs.Entity {
	var roots []ecs.Entity
	for e := range ecs.View1[Transform](sc.Store) {
		if sc.Parent(e).IsNil() {
			roots = append(roots, e)
		}
	}
	return roots
}

// IsAncestor returns true if anc is a strict ancestor of e.
func (sc *Scene) IsAncestor(anc, e ecs.Entity) bool {
	for p := sc.Parent(e); !p.IsNil(); p = sc.Parent(p) {
		if p == anc {
			return true
		}
	}
	return false
}

// WalkDown calls the given function on the given entity and then all of its
// descendants in depth-first pre-order. If fun returns false, the children
// of that entity are skipped.
func (sc *Scene) WalkDown(e ecs.Entity, fun func(e ecs.Entity) bool) {
	if !sc.Valid(e) {
		return
	}
	if !fun(e) {
		return
	}
	for _, c := range sc.Children(e) {
		sc.WalkDown(c, fun)
	}
}

// Descendants returns all descendants of the given entity, depth-first pre-order,
// not including the entity itself.
func (sc *Scene) Descendants(e ecs.Entity) []ecs.Entity {
	var ds []ecs.Entity
	sc.WalkDown(e, func(d ecs.Entity) bool {
		if d != e {
			ds = append(ds, d)
		}
		return true
	})
	return ds
}

// EntityName returns the [Tag] name of the given entity, or "" if it has none.
func (sc *Scene) EntityName(e ecs.Entity) string {
	if tg := ecs.Get[Tag](sc.Store, e); tg != nil {
		return tg.Name
	}
	return ""
}

// FindByName returns the first entity, in store order, whose [Tag] has the
// given name, or [ecs.Nil].
func (sc *Scene) FindByName(name string) ecs.Entity {
	for e := range ecs.View1[Tag](sc.Store) {
		if ecs.Get[Tag](sc.Store, e).Name == name {
			return e
		}
	}
	return ecs.Nil
}

// Transform returns the [Transform] of the given entity, or nil.
func (sc *Scene) Transform(e ecs.Entity) *Transform {
	return ecs.Get[Transform](sc.Store, e)
}

// Bounds returns the [Bounds] of the given entity, or nil.
func (sc *Scene) Bounds(e ecs.Entity) *Bounds {
	return ecs.Get[Bounds](sc.Store, e)
}

// WorldPos returns the world position of the given entity from its cached
// world matrix, which is current as of the last propagation pass.
func (sc *Scene) WorldPos(e ecs.Entity) math32.Vector3 {
	if tr := sc.Transform(e); tr != nil {
		return tr.WorldPos()
	}
	return math32.Vector3{}
}

// WorldSphere returns the bounding sphere of the given entity and its
// descendants in world space: the bounds center transformed by the cached
// world matrix, with Reach scaled by the largest world axis scale.
func (sc *Scene) WorldSphere(e ecs.Entity) math32.Sphere {
	tr := sc.Transform(e)
	if tr == nil {
		return math32.Sphere{}
	}
	bd := sc.Bounds(e)
	if bd == nil {
		return math32.NewSphere(tr.WorldPos(), 0)
	}
	return math32.NewSphere(bd.Center, bd.Reach).MulMatrix4(&tr.WorldMatrix)
}

// label returns a human readable label for log messages.
func (sc *Scene) label(e ecs.Entity) string {
	if nm := sc.EntityName(e); nm != "" {
		return nm + " " + e.String()
	}
	return e.String()
}
