// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"image/color"
)

// Material describes the material properties of a surface (colors, shininess)
// i.e., phong lighting parameters.
// Main color is used for both ambient and diffuse color, and alpha component
// is used for opacity.  The Emissive color is only for glowing objects.
// The Specular color is always white (multiplied by light color).
type Material struct {

	// Color is the main color of surface, used for both ambient and diffuse color in standard Phong model -- alpha component determines transparency
	Color color.RGBA

	// Emissive is the color that surface emits independent of any lighting -- i.e., glow
	Emissive color.RGBA

	// Shiny is the specular shininess factor -- how focally vs. broad the surface shines back directional light -- this is an exponential factor, with 0 = very broad diffuse reflection, and higher values having a smaller more focal specular reflection.
	Shiny float32

	// Reflective is the specular reflectiveness factor -- how much it shines back directional light.
	Reflective float32

	// Bright is an overall multiplier on final computed color value
	Bright float32
}

// NewMaterial returns a new material with default parameters and the given color.
func NewMaterial(clr color.RGBA) *Material {
	mt := &Material{}
	mt.Defaults()
	mt.Color = clr
	return mt
}

// Defaults sets default surface parameters
func (mt *Material) Defaults() {
	mt.Color = color.RGBA{128, 128, 128, 255}
	mt.Emissive = color.RGBA{0, 0, 0, 0}
	mt.Shiny = 30
	mt.Reflective = 1
	mt.Bright = 1
}

// IsTransparent returns true if the color has alpha < 255
func (mt *Material) IsTransparent() bool {
	return mt.Color.A < 255
}

// Materials is a registry of named materials, supplied to a [Scene]
// for resolving mesh material references.
type Materials map[string]*Material

// Add adds the given material under the given name, replacing any existing one.
func (ms Materials) Add(name string, mt *Material) {
	ms[name] = mt
}

// Material returns the material of the given name, or nil.
func (ms Materials) Material(name string) *Material {
	return ms[name]
}

// MaterialTry returns the material of the given name, or an error if not found.
func (ms Materials) MaterialTry(name string) (*Material, error) {
	mt, ok := ms[name]
	if !ok || mt == nil {
		return nil, fmt.Errorf("Material named: %v not found", name)
	}
	return mt, nil
}
