// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/scenegraph/math32"
)

// Transform is the pose component of every scene entity: position,
// rotation and scale relative to the parent, plus the cached local
// and world matrices derived from them.
//
// All of the setter methods mark the transform Dirty, so that the next
// propagation pass recomputes its matrices. Code that writes the pose
// fields directly must call [Transform.SetDirty] itself.
type Transform struct {

	// Pos is the position of the center of the entity, relative to the parent.
	Pos math32.Vector3

	// Scale is the scale relative to the parent.
	Scale math32.Vector3

	// Quat is the rotation relative to the parent, as a quaternion.
	Quat math32.Quat

	// Matrix is the local matrix (translate * rotate * scale), recomputed on demand.
	Matrix math32.Matrix4

	// WorldMatrix maps local space to scene-root space.
	// It is valid whenever Dirty is false.
	WorldMatrix math32.Matrix4

	// Dirty is set when the pose has changed since the world matrix
	// was last computed.
	Dirty bool
}

// NewTransform returns a new identity transform, marked dirty.
func NewTransform() Transform {
	tr := Transform{Dirty: true}
	tr.Defaults()
	tr.Matrix.SetIdentity()
	tr.WorldMatrix.SetIdentity()
	return tr
}

// Defaults sets defaults only if current values are nil
func (tr *Transform) Defaults() {
	if tr.Scale.IsNil() {
		tr.Scale.Set(1, 1, 1)
	}
	if tr.Quat.IsNil() {
		tr.Quat.SetIdentity()
	}
}

// SetDirty marks the transform as needing its matrices recomputed.
func (tr *Transform) SetDirty() {
	tr.Dirty = true
}

// UpdateMatrix updates the local transform matrix based on its position,
// quaternion, and scale, and returns it.
// Also checks for degenerate nil values.
func (tr *Transform) UpdateMatrix() *math32.Matrix4 {
	tr.Defaults()
	tr.Matrix.SetTransform(tr.Pos, tr.Quat, tr.Scale)
	return &tr.Matrix
}

// UpdateWorldMatrix updates the local matrix and then the world matrix from
// the given parent world matrix (nil = identity), and clears Dirty.
func (tr *Transform) UpdateWorldMatrix(parentWorld *math32.Matrix4) {
	tr.UpdateMatrix()
	if parentWorld == nil {
		tr.WorldMatrix = tr.Matrix
	} else {
		tr.WorldMatrix.MulMatrices(parentWorld, &tr.Matrix)
	}
	tr.Dirty = false
}

// SetPos sets the position, relative to the parent.
func (tr *Transform) SetPos(x, y, z float32) *Transform {
	tr.Pos.Set(x, y, z)
	tr.Dirty = true
	return tr
}

// SetScale sets the scale, relative to the parent.
func (tr *Transform) SetScale(x, y, z float32) *Transform {
	tr.Scale.Set(x, y, z)
	tr.Dirty = true
	return tr
}

// SetQuat sets the rotation quaternion, relative to the parent.
func (tr *Transform) SetQuat(q math32.Quat) *Transform {
	tr.Quat = q
	tr.Dirty = true
	return tr
}

// SetAxisRotation sets rotation from local axis and angle in degrees.
func (tr *Transform) SetAxisRotation(x, y, z, angle float32) *Transform {
	tr.Quat.SetFromAxisAngle(math32.Vec3(x, y, z).Normal(), math32.DegToRad(angle))
	tr.Dirty = true
	return tr
}

// SetEulerRotation sets the rotation in Euler angles (degrees).
func (tr *Transform) SetEulerRotation(x, y, z float32) *Transform {
	tr.Quat.SetFromEuler(math32.Vec3(x, y, z).MulScalar(math32.DegToRadFactor))
	tr.Dirty = true
	return tr
}

// MoveOnAxis moves (translates) the specified distance on the specified local axis,
// relative to the current rotation orientation.
func (tr *Transform) MoveOnAxis(x, y, z, dist float32) *Transform {
	tr.Pos.SetAdd(math32.Vec3(x, y, z).Normal().MulQuat(tr.Quat).MulScalar(dist))
	tr.Dirty = true
	return tr
}

// RotateOnAxis rotates around the specified local axis the specified angle in degrees.
func (tr *Transform) RotateOnAxis(x, y, z, angle float32) *Transform {
	tr.Quat.SetMul(math32.NewQuatAxisAngle(math32.Vec3(x, y, z).Normal(), math32.DegToRad(angle)))
	tr.Dirty = true
	return tr
}

// LookAt points the entity at given target location using given up direction.
// The unrotated entity faces down the -Z axis.
func (tr *Transform) LookAt(target, upDir math32.Vector3) *Transform {
	tr.Quat.SetFromRotationMatrix(math32.NewLookAt(tr.Pos, target, upDir))
	tr.Dirty = true
	return tr
}

// WorldPos returns the current world position, from the cached world matrix.
func (tr *Transform) WorldPos() math32.Vector3 {
	return tr.WorldMatrix.Pos()
}

// Forward returns the normalized world-space forward (-Z) axis
// of the cached world matrix.
func (tr *Transform) Forward() math32.Vector3 {
	return math32.Vec3(0, 0, -1).MulMatrix4AsVector4(&tr.WorldMatrix, 0).Normal()
}
