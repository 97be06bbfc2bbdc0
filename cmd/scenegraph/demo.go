// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"

	"cogentcore.org/scenegraph/base/errors"
	"cogentcore.org/scenegraph/ecs"
	"cogentcore.org/scenegraph/math32"
	"cogentcore.org/scenegraph/xyz"
)

// logDrawer is a [xyz.Drawer] that logs and counts draw calls
// in place of GPU submission.
type logDrawer struct {
	draws int
}

func (ld *logDrawer) Draw(ms *xyz.Mesh, world, view, projection *math32.Matrix4, lights *xyz.LightContext) {
	ld.draws++
	mat := "none"
	if ms.Material != nil {
		mat = ms.MaterialName
	}
	slog.Debug("draw", "mesh", ms.Name, "material", mat, "pos", world.Pos(), "lights", lights.NDir+lights.NPoint+lights.NSpot)
}

// attachDrawer sets the drawer of every mesh in the scene.
func attachDrawer(sc *xyz.Scene, dr xyz.Drawer) {
	for e := range ecs.View1[xyz.Renderable](sc.Store) {
		if ms := sc.Mesh(e); ms != nil {
			ms.Drawer = dr
		}
	}
}

// buildDemo fills the scene with a small solar system: a sun with two
// orbiting planets, one of which has a moon, plus lights.
func buildDemo(sc *xyz.Scene) {
	sun := sc.CreateEntity("sun")
	sc.Bounds(sun).SetSphere(math32.Vector3{}, 2)
	errors.Log(sc.SetMesh(sun, xyz.NewMesh("sphere", "red")))
	ecs.Emplace(sc.Store, sun, xyz.NewPointLight(1, xyz.DirectSun))

	planet := func(name, material string, parent ecs.Entity, dist, radius float32) ecs.Entity {
		pivot := sc.CreateEntity(name + "-orbit")
		sc.SetParent(pivot, parent)
		e := sc.CreateEntity(name)
		sc.SetParent(e, pivot)
		sc.Transform(e).SetPos(dist, 0, 0)
		sc.Bounds(e).SetSphere(math32.Vector3{}, radius)
		errors.Log(sc.SetMesh(e, xyz.NewMesh("sphere", material)))
		return e
	}
	earth := planet("earth", "glass", sun, 10, 1)
	planet("moon", "gray", earth, 2, 0.3)
	planet("mars", "red", sun, 16, 0.6)

	sky := sc.CreateEntity("sky")
	ecs.Emplace(sc.Store, sky, xyz.NewDirectionalLight(0.3, xyz.Overcast))

	spot := sc.CreateEntity("spot")
	sc.Transform(spot).SetPos(0, 20, 20).LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
	ecs.Emplace(sc.Store, spot, xyz.NewSpotLight(0.8, xyz.Halogen))

	comet := sc.CreateEntity("comet")
	sc.Transform(comet).SetPos(-30, 0, 0)
	ecs.Emplace(sc.Store, comet, xyz.Velocity{Linear: math32.Vec3(4, 0, 1)})
	errors.Log(sc.SetMesh(comet, xyz.NewMesh("cube", "gray")))
}

// spinOrbits rotates every orbit pivot about the Y axis, at a rate
// that decreases with the distance of its planet. The subtree of each
// pivot is marked dirty, so its world matrices follow the rotation
// under every propagation policy.
func spinOrbits(sc *xyz.Scene, dt float32) {
	for e := range ecs.View2[xyz.Tag, xyz.Transform](sc.Store) {
		kids := sc.Children(e)
		if len(kids) != 1 || sc.Mesh(e) != nil {
			continue
		}
		dist := sc.Transform(kids[0]).Pos.Length()
		if dist == 0 {
			continue
		}
		sc.Transform(e).RotateOnAxis(0, 1, 0, 360*dt/dist)
		for _, d := range sc.Descendants(e) {
			if tr := sc.Transform(d); tr != nil {
				tr.SetDirty()
			}
		}
	}
}
