// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/scenegraph/ecs"
	"cogentcore.org/scenegraph/math32"
)

// Drawer submits mesh geometry for drawing. It is implemented outside of
// the scene graph, by the code that owns the geometry and the GPU.
type Drawer interface {

	// Draw draws the given mesh with its resolved material (which may be nil),
	// using the given matrices and lights.
	Draw(ms *Mesh, world, view, projection *math32.Matrix4, lights *LightContext)
}

// Mesh is the built-in [Renderable]: a named mesh reference drawn with a
// named material. The geometry itself lives behind the [Drawer].
type Mesh struct {

	// Name is the name of the mesh geometry.
	Name string

	// MaterialName is the name of the material in the [Materials] registry.
	MaterialName string

	// Material is the resolved material, or nil if it has not been
	// resolved or could not be.
	Material *Material

	// Hidden turns off rendering of the mesh.
	Hidden bool

	// Drawer draws the mesh. Nothing is drawn if it is nil.
	Drawer Drawer
}

// NewMesh returns a new mesh with the given mesh and material names.
func NewMesh(name, material string) *Mesh {
	return &Mesh{Name: name, MaterialName: material}
}

// IsVisible returns true unless the mesh is hidden.
func (ms *Mesh) IsVisible() bool {
	return !ms.Hidden
}

// Render draws the mesh through its [Drawer].
func (ms *Mesh) Render(time float32, world, view, projection *math32.Matrix4, lights *LightContext) {
	if ms.Drawer == nil {
		return
	}
	ms.Drawer.Draw(ms, world, view, projection, lights)
}

// ResolveMaterial sets Material from the given registry by MaterialName,
// returning an error if the name is set but not found.
func (ms *Mesh) ResolveMaterial(mats Materials) error {
	ms.Material = nil
	if ms.MaterialName == "" {
		return nil
	}
	mt, err := mats.MaterialTry(ms.MaterialName)
	if err != nil {
		return err
	}
	ms.Material = mt
	return nil
}

// SetRenderable attaches the given renderable to the given entity,
// replacing any existing one.
func (sc *Scene) SetRenderable(e ecs.Entity, rd Renderable) {
	ecs.Emplace(sc.Store, e, rd)
}

// Renderable returns the renderable of the given entity, or nil.
func (sc *Scene) Renderable(e ecs.Entity) Renderable {
	if rd := ecs.Get[Renderable](sc.Store, e); rd != nil {
		return *rd
	}
	return nil
}

// SetMesh attaches the given mesh as the renderable of the given entity,
// resolving its material against [Scene.Materials]. An unresolved
// material leaves the mesh without one, and the error is returned.
func (sc *Scene) SetMesh(e ecs.Entity, ms *Mesh) error {
	err := ms.ResolveMaterial(sc.Materials)
	sc.SetRenderable(e, ms)
	return err
}

// Mesh returns the renderable of the given entity if it is a [Mesh], or nil.
func (sc *Scene) Mesh(e ecs.Entity) *Mesh {
	ms, _ := sc.Renderable(e).(*Mesh)
	return ms
}
