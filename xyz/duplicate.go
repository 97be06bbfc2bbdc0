// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"log/slog"

	"cogentcore.org/scenegraph/ecs"
	"github.com/jinzhu/copier"
)

// Duplicate makes a copy of the given entity and all of its descendants,
// attaching the copy to the same parent (after the existing children),
// and returns it. Components are deep copied, except that a [Mesh] copy
// shares its material and drawer with the original. The copies are dirty.
// It returns [ecs.Nil] for an invalid entity.
func (sc *Scene) Duplicate(e ecs.Entity) ecs.Entity {
	if !sc.Valid(e) {
		return ecs.Nil
	}
	ne := sc.duplicateTree(e)
	if p := sc.Parent(e); !p.IsNil() {
		sc.SetParent(ne, p)
	}
	return ne
}

func (sc *Scene) duplicateTree(e ecs.Entity) ecs.Entity {
	ne := sc.Store.Create()
	copyComponent[Transform](sc, ne, e)
	copyComponent[Bounds](sc, ne, e)
	copyComponent[Tag](sc, ne, e)
	copyComponent[Velocity](sc, ne, e)
	copyComponent[DirectionalLight](sc, ne, e)
	copyComponent[PointLight](sc, ne, e)
	copyComponent[SpotLight](sc, ne, e)
	if tr := sc.Transform(ne); tr != nil {
		tr.SetDirty()
	}
	if rd := sc.Renderable(e); rd != nil {
		if ms, ok := rd.(*Mesh); ok {
			nm := *ms
			rd = &nm
		}
		sc.SetRenderable(ne, rd)
	}
	for _, c := range sc.Children(e) {
		sc.SetParent(sc.duplicateTree(c), ne)
	}
	return ne
}

// copyComponent deep copies the T component of from, if any, onto to.
func copyComponent[T any](sc *Scene, to, from ecs.Entity) {
	src := ecs.Get[T](sc.Store, from)
	if src == nil {
		return
	}
	dst := ecs.GetOrEmplace[T](sc.Store, to)
	if err := copier.CopyWithOption(dst, src, copier.Option{CaseSensitive: true, DeepCopy: true}); err != nil {
		slog.Error("xyz.Scene.Duplicate", "err", err)
	}
}
