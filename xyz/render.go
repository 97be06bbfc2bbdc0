// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/scenegraph/ecs"
	"cogentcore.org/scenegraph/math32"
)

// Camera supplies the view and projection matrices for rendering,
// and decides which bounding spheres are visible.
type Camera interface {

	// ViewMatrix returns the current view matrix.
	ViewMatrix() *math32.Matrix4

	// ProjectionMatrix returns the current projection matrix.
	ProjectionMatrix() *math32.Matrix4

	// IsInFrustum returns true if the given world space sphere is
	// at least partially visible.
	IsInFrustum(center math32.Vector3, radius float32) bool
}

// Renderable is the component of an entity that can be drawn.
// [Mesh] is the built-in implementation.
type Renderable interface {

	// IsVisible returns false if the renderable should be skipped.
	IsVisible() bool

	// Render draws the renderable with the given world matrix of its
	// entity, the camera matrices, and the lights of the frame.
	Render(time float32, world, view, projection *math32.Matrix4, lights *LightContext)
}

// StaticCamera is a [Camera] with fixed matrices that sees everything,
// which is the configuration for rendering without culling.
type StaticCamera struct {
	View       math32.Matrix4
	Projection math32.Matrix4
}

// NewStaticCamera returns a camera at the given eye position, looking at
// the target, with an identity projection.
func NewStaticCamera(eye, target, up math32.Vector3) *StaticCamera {
	cam := &StaticCamera{}
	var q math32.Quat
	q.SetFromRotationMatrix(math32.NewLookAt(eye, target, up))
	inv := q.Conjugate()
	cam.View.SetTransform(eye.Negate().MulQuat(inv), inv, math32.Vector3Scalar(1))
	cam.Projection.SetIdentity()
	return cam
}

func (cam *StaticCamera) ViewMatrix() *math32.Matrix4       { return &cam.View }
func (cam *StaticCamera) ProjectionMatrix() *math32.Matrix4 { return &cam.Projection }

func (cam *StaticCamera) IsInFrustum(center math32.Vector3, radius float32) bool { return true }

// Render draws every visible renderable reachable from the roots, and
// returns the number drawn. Lights are collected once, up front.
// The camera visibility test is applied to the world bounding sphere of
// each entity when [Options.Culling] is on; children are visited whether
// or not their parent is visible. A nil camera uses identity matrices.
func (sc *Scene) Render(time float32, cam Camera) int {
	lights := sc.CollectLights()
	view, proj := math32.Identity4(), math32.Identity4()
	if cam != nil {
		view, proj = cam.ViewMatrix(), cam.ProjectionMatrix()
	}
	n := 0
	for _, root := range sc.Roots() {
		n += sc.renderFrom(root, time, cam, view, proj, lights)
	}
	return n
}

func (sc *Scene) renderFrom(e ecs.Entity, time float32, cam Camera, view, proj *math32.Matrix4, lights *LightContext) int {
	tr := ecs.Get[Transform](sc.Store, e)
	if tr == nil {
		return 0
	}
	n := 0
	if rd := sc.Renderable(e); rd != nil && rd.IsVisible() && sc.isVisible(e, cam) {
		rd.Render(time, &tr.WorldMatrix, view, proj, lights)
		n++
	}
	for _, c := range sc.Children(e) {
		n += sc.renderFrom(c, time, cam, view, proj, lights)
	}
	return n
}

// isVisible applies the camera test to the world sphere of e.
func (sc *Scene) isVisible(e ecs.Entity, cam Camera) bool {
	if cam == nil || !sc.Options.Culling {
		return true
	}
	sp := sc.WorldSphere(e)
	return cam.IsInFrustum(sp.Center, sp.Radius)
}
