// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Sphere represents a 3D sphere defined by its center point and a radius
type Sphere struct {
	Center Vector3 // center of the sphere
	Radius float32 // radius of the sphere
}

// NewSphere creates and returns a new sphere with the given center and radius.
func NewSphere(center Vector3, radius float32) Sphere {
	return Sphere{center, radius}
}

// IsEmpty checks if this sphere is empty (radius <= 0)
func (s Sphere) IsEmpty() bool {
	return s.Radius <= 0
}

// ContainsPoint returns if this sphere contains the specified point.
func (s Sphere) ContainsPoint(point Vector3) bool {
	return point.DistanceToSquared(s.Center) <= s.Radius*s.Radius
}

// IntersectSphere returns if other sphere intersects this one.
func (s Sphere) IntersectSphere(other Sphere) bool {
	radiusSum := s.Radius + other.Radius
	return other.Center.DistanceToSquared(s.Center) <= radiusSum*radiusSum
}

// MulMatrix4 returns the sphere transformed by the given matrix:
// the center is transformed as a point and the radius is scaled
// by the largest axis scale of the matrix.
func (s Sphere) MulMatrix4(m *Matrix4) Sphere {
	return Sphere{s.Center.MulMatrix4(m), s.Radius * m.MaxScaleOnAxis()}
}
