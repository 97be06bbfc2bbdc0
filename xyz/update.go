// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/scenegraph/ecs"
	"cogentcore.org/scenegraph/math32"
)

// Update runs one frame of scene logic: it propagates transforms through
// the hierarchy, integrates [Velocity] into positions, and then calls
// every function registered with [Scene.AddUpdater], in order.
// Pose changes made after propagation are picked up on the next frame.
func (sc *Scene) Update(dt float32) {
	sc.UpdateHierarchy()
	for e := range ecs.View2[Velocity, Transform](sc.Store) {
		v := ecs.Get[Velocity](sc.Store, e)
		if v.Linear == (math32.Vector3{}) {
			continue
		}
		tr := ecs.Get[Transform](sc.Store, e)
		tr.Pos.SetAdd(v.Linear.MulScalar(dt))
		tr.SetDirty()
	}
	for _, fun := range sc.updaters {
		fun(sc, dt)
	}
}

// AddUpdater adds a function called at the end of each [Scene.Update].
func (sc *Scene) AddUpdater(fun func(sc *Scene, dt float32)) {
	sc.updaters = append(sc.updaters, fun)
}

// UpdateHierarchy propagates world matrices and bounds Reach from every
// root, according to [Options.Propagation].
func (sc *Scene) UpdateHierarchy() {
	for _, root := range sc.Roots() {
		sc.PropagateFrom(root)
	}
}

// PropagateFrom propagates world matrices and bounds Reach from the given
// entity down through its subtree. The parent world matrix is taken from
// the cached value of the parent, as is.
func (sc *Scene) PropagateFrom(e ecs.Entity) {
	sc.propagate(e, false)
}

// propagate updates e and its subtree. force recomputes e even when clean.
func (sc *Scene) propagate(e ecs.Entity, force bool) {
	tr := ecs.Get[Transform](sc.Store, e)
	if tr == nil {
		return
	}
	recompute := tr.Dirty || force
	if !recompute && sc.Options.Propagation == ShortCircuit {
		return
	}
	if recompute {
		tr.UpdateWorldMatrix(sc.parentWorld(e))
	}
	bd := ecs.Get[Bounds](sc.Store, e)
	if bd != nil {
		bd.Reach = bd.Radius
	}
	cascade := recompute && sc.Options.Propagation == Cascade
	for _, c := range sc.Children(e) {
		sc.propagate(c, cascade)
		cb := ecs.Get[Bounds](sc.Store, c)
		if bd == nil || cb == nil {
			continue
		}
		bd.Reach = math32.Max(bd.Reach, sc.centerDistance(e, bd, c, cb)+cb.Reach)
	}
}

// parentWorld returns the cached world matrix of the valid parent of e,
// or nil for a root.
func (sc *Scene) parentWorld(e ecs.Entity) *math32.Matrix4 {
	p := sc.Parent(e)
	if p.IsNil() {
		return nil
	}
	if ptr := ecs.Get[Transform](sc.Store, p); ptr != nil {
		return &ptr.WorldMatrix
	}
	return nil
}

// centerDistance returns the distance between the bounds centers of an
// entity and its child, in local space or, with [Options.WorldBounds],
// in world space.
func (sc *Scene) centerDistance(e ecs.Entity, bd *Bounds, c ecs.Entity, cb *Bounds) float32 {
	if !sc.Options.WorldBounds {
		return bd.Center.DistanceTo(cb.Center)
	}
	ec := bd.Center.MulMatrix4(&ecs.Get[Transform](sc.Store, e).WorldMatrix)
	cc := cb.Center
	if ctr := ecs.Get[Transform](sc.Store, c); ctr != nil {
		cc = cc.MulMatrix4(&ctr.WorldMatrix)
	}
	return ec.DistanceTo(cc)
}
