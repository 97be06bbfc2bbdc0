// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "image/color"

// NewVector3Color returns a Vector3 with the r, g, b components of the
// given color, normalized to 0-1. Alpha is ignored.
func NewVector3Color(clr color.Color) Vector3 {
	r, g, b, _ := clr.RGBA()
	return Vec3(float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff)
}

// SRGBToLinearComp converts an sRGB color component to linear space (removes gamma).
func SRGBToLinearComp(srgb float32) float32 {
	if srgb <= 0.04045 {
		return srgb / 12.92
	}
	return Pow((srgb+0.055)/1.055, 2.4)
}

// SRGBToLinear returns the vector, taken as sRGB color components,
// converted to linear space.
func (v Vector3) SRGBToLinear() Vector3 {
	return Vec3(SRGBToLinearComp(v.X), SRGBToLinearComp(v.Y), SRGBToLinearComp(v.Z))
}
