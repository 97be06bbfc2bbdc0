// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"
	"log/slog"

	"cogentcore.org/scenegraph/ecs"
	"cogentcore.org/scenegraph/math32"
)

// Capacities of the [LightContext] arrays, per kind of light.
const (
	MaxDirLights   = 1
	MaxPointLights = 8
	MaxSpotLights  = 4
)

// LightBase has the properties shared by all light components.
type LightBase struct {

	// On is whether the light is turned on.
	On bool

	// Color is the color of the light at full intensity.
	Color color.RGBA

	// Lumens is the brightness/intensity/strength of the light in normalized 0-1 units.
	// It is just multiplied by the color, and is convenient for easily modulating overall brightness.
	Lumens float32
}

// Defaults turns the light on at full intensity with the given standard color.
func (lb *LightBase) Defaults(clr LightColors) {
	lb.On = true
	lb.Color = LightColorMap[clr]
	lb.Lumens = 1
}

// LinearColor returns the light color in linear space, scaled by Lumens.
func (lb *LightBase) LinearColor() math32.Vector3 {
	return math32.NewVector3Color(lb.Color).SRGBToLinear().MulScalar(lb.Lumens)
}

// DirectionalLight is a light with a direction and no attenuation, like the Sun.
// It is positioned by the world matrix of its entity.
type DirectionalLight struct {
	LightBase

	// UseTransform takes the direction from the forward (-Z) axis of the
	// entity world matrix, instead of Direction.
	UseTransform bool

	// Direction is the direction the light travels in, in the local space
	// of the entity, used when UseTransform is off.
	Direction math32.Vector3
}

// NewDirectionalLight returns a directional light pointing down and
// toward the default camera, with the given standard color and lumens.
func NewDirectionalLight(lumens float32, clr LightColors) DirectionalLight {
	lt := DirectionalLight{Direction: math32.Vec3(0, -1, -1)}
	lt.Defaults(clr)
	lt.Lumens = lumens
	return lt
}

// PointLight is an omnidirectional light at the position of its entity,
// with decay factors which divide the light intensity as a function of
// linear and quadratic distance. The quadratic factor dominates at longer distances.
type PointLight struct {
	LightBase

	// Distance linear decay factor: defaults to .1
	LinDecay float32

	// Distance quadratic decay factor: defaults to .01
	QuadDecay float32
}

// NewPointLight returns a point light with the given standard color and lumens.
func NewPointLight(lumens float32, clr LightColors) PointLight {
	lt := PointLight{LinDecay: .1, QuadDecay: .01}
	lt.Defaults(clr)
	lt.Lumens = lumens
	return lt
}

// SpotLight is a light at the position of its entity, pointing down the
// forward (-Z) axis of its world matrix, with angular and distance decay.
type SpotLight struct {
	LightBase

	// Angular decay factor: defaults to 15
	AngDecay float32

	// Cut off angle (in degrees): defaults to 45, max of 90
	CutoffAngle float32

	// Distance linear decay factor: defaults to .01
	LinDecay float32

	// Distance quadratic decay factor: defaults to .001
	QuadDecay float32
}

// NewSpotLight returns a spot light with the given standard color and lumens.
// Use [Transform.LookAt] on its entity to point it.
func NewSpotLight(lumens float32, clr LightColors) SpotLight {
	lt := SpotLight{AngDecay: 15, CutoffAngle: 45, LinDecay: .01, QuadDecay: .001}
	lt.Defaults(clr)
	lt.Lumens = lumens
	return lt
}

// DirLightData is a collected directional light in world space.
type DirLightData struct {
	Entity    ecs.Entity
	Color     math32.Vector3
	Direction math32.Vector3
}

// PointLightData is a collected point light in world space.
type PointLightData struct {
	Entity    ecs.Entity
	Color     math32.Vector3
	Pos       math32.Vector3
	LinDecay  float32
	QuadDecay float32
}

// SpotLightData is a collected spot light in world space.
type SpotLightData struct {
	Entity      ecs.Entity
	Color       math32.Vector3
	Pos         math32.Vector3
	Direction   math32.Vector3
	AngDecay    float32
	CutoffAngle float32
	LinDecay    float32
	QuadDecay   float32
}

// LightContext is the set of lights passed to renderables for one frame,
// in fixed capacity arrays. Only the first N* entries of each array are valid.
type LightContext struct {
	NDir   int
	NPoint int
	NSpot  int

	Dir   [MaxDirLights]DirLightData
	Point [MaxPointLights]PointLightData
	Spot  [MaxSpotLights]SpotLightData
}

// DirLights returns the valid directional lights.
func (lc *LightContext) DirLights() []DirLightData { return lc.Dir[:lc.NDir] }

// PointLights returns the valid point lights.
func (lc *LightContext) PointLights() []PointLightData { return lc.Point[:lc.NPoint] }

// SpotLights returns the valid spot lights.
func (lc *LightContext) SpotLights() []SpotLightData { return lc.Spot[:lc.NSpot] }

// CollectLights gathers the lights that are on into a new [LightContext],
// in world space, using the cached world matrices. For each kind, lights
// are taken in view order up to the capacity, and the rest are dropped.
func (sc *Scene) CollectLights() *LightContext {
	lc := &LightContext{}
	dropped := 0
	for e := range ecs.View2[DirectionalLight, Transform](sc.Store) {
		lt := ecs.Get[DirectionalLight](sc.Store, e)
		if !lt.On {
			continue
		}
		if lc.NDir == MaxDirLights {
			dropped++
			continue
		}
		tr := ecs.Get[Transform](sc.Store, e)
		dir := tr.Forward()
		if !lt.UseTransform {
			dir = lt.Direction.MulMatrix4AsVector4(&tr.WorldMatrix, 0).Normal()
		}
		lc.Dir[lc.NDir] = DirLightData{Entity: e, Color: lt.LinearColor(), Direction: dir}
		lc.NDir++
	}
	for e := range ecs.View2[PointLight, Transform](sc.Store) {
		lt := ecs.Get[PointLight](sc.Store, e)
		if !lt.On {
			continue
		}
		if lc.NPoint == MaxPointLights {
			dropped++
			continue
		}
		tr := ecs.Get[Transform](sc.Store, e)
		lc.Point[lc.NPoint] = PointLightData{Entity: e, Color: lt.LinearColor(), Pos: tr.WorldPos(), LinDecay: lt.LinDecay, QuadDecay: lt.QuadDecay}
		lc.NPoint++
	}
	for e := range ecs.View2[SpotLight, Transform](sc.Store) {
		lt := ecs.Get[SpotLight](sc.Store, e)
		if !lt.On {
			continue
		}
		if lc.NSpot == MaxSpotLights {
			dropped++
			continue
		}
		tr := ecs.Get[Transform](sc.Store, e)
		lc.Spot[lc.NSpot] = SpotLightData{Entity: e, Color: lt.LinearColor(), Pos: tr.WorldPos(), Direction: tr.Forward(),
			AngDecay: lt.AngDecay, CutoffAngle: lt.CutoffAngle, LinDecay: lt.LinDecay, QuadDecay: lt.QuadDecay}
		lc.NSpot++
	}
	if dropped > 0 {
		slog.Debug("xyz.Scene.CollectLights: lights over capacity were dropped", "scene", sc.Name, "dropped", dropped)
	}
	return lc
}

// http://planetpixelemporium.com/tutorialpages/light.html

// LightColors are standard light colors for different light sources
type LightColors int32

const (
	DirectSun LightColors = iota
	CarbonArc
	Halogen
	Tungsten100W
	Tungsten40W
	Candle
	Overcast
	FluorWarm
	FluorStd
	FluorCool
	FluorFull
	FluorGrow
	MercuryVapor
	SodiumVapor
	MetalHalide
)

// LightColorMap provides a map of named light colors
var LightColorMap = map[LightColors]color.RGBA{
	DirectSun:    {255, 255, 255, 255},
	CarbonArc:    {255, 250, 244, 255},
	Halogen:      {255, 241, 224, 255},
	Tungsten100W: {255, 214, 170, 255},
	Tungsten40W:  {255, 197, 143, 255},
	Candle:       {255, 147, 41, 255},
	Overcast:     {201, 226, 255, 255},
	FluorWarm:    {255, 244, 229, 255},
	FluorStd:     {244, 255, 250, 255},
	FluorCool:    {212, 235, 255, 255},
	FluorFull:    {255, 244, 242, 255},
	FluorGrow:    {255, 239, 247, 255},
	MercuryVapor: {216, 247, 255, 255},
	SodiumVapor:  {255, 209, 178, 255},
	MetalHalide:  {242, 252, 255, 255},
}
