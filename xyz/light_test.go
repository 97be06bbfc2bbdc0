// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"
	"testing"

	"cogentcore.org/scenegraph/base/tolassert"
	"cogentcore.org/scenegraph/ecs"
	"cogentcore.org/scenegraph/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var colorRed = color.RGBA{255, 0, 0, 255}

func TestLightCap(t *testing.T) {
	sc := NewScene("test")
	var es []ecs.Entity
	for i := range 10 {
		e := sc.CreateEntity("")
		sc.Transform(e).SetPos(float32(i), 0, 0)
		ecs.Emplace(sc.Store, e, NewPointLight(1, DirectSun))
		es = append(es, e)
	}
	sc.UpdateHierarchy()

	var order []ecs.Entity
	for e := range ecs.View1[PointLight](sc.Store) {
		order = append(order, e)
	}
	lc := sc.CollectLights()
	require.Equal(t, MaxPointLights, lc.NPoint)
	pls := lc.PointLights()
	require.Len(t, pls, 8)
	for i, pl := range pls {
		assert.Equal(t, order[i], pl.Entity)
		assertVector(t, sc.WorldPos(pl.Entity), pl.Pos)
		tolassert.Equal(t, 0.1, pl.LinDecay)
	}
	assert.Zero(t, lc.NDir)
	assert.Zero(t, lc.NSpot)
}

func TestCollectLights(t *testing.T) {
	sc := NewScene("test")
	sun := sc.CreateEntity("sun")
	dl := ecs.Emplace(sc.Store, sun, NewDirectionalLight(0.5, DirectSun))
	sc.Transform(sun).SetAxisRotation(1, 0, 0, 90)

	other := sc.CreateEntity("other")
	ecs.Emplace(sc.Store, other, NewDirectionalLight(1, Candle))

	off := sc.CreateEntity("off")
	pl := NewPointLight(1, Candle)
	pl.On = false
	ecs.Emplace(sc.Store, off, pl)

	parent := sc.CreateEntity("parent")
	sc.Transform(parent).SetPos(0, 10, 0)
	spot := sc.CreateEntity("spot")
	sc.SetParent(spot, parent)
	sc.Transform(spot).SetPos(1, 0, 0)
	ecs.Emplace(sc.Store, spot, NewSpotLight(1, DirectSun))
	sc.UpdateHierarchy()

	lc := sc.CollectLights()
	require.Equal(t, 1, lc.NDir)
	assert.Equal(t, sun, lc.Dir[0].Entity)
	// (0,-1,-1) turned 90 degrees about X
	assertVector(t, math32.Vec3(0, 1, -1).Normal(), lc.Dir[0].Direction)
	assertVector(t, math32.Vec3(0.5, 0.5, 0.5), lc.Dir[0].Color)

	dl.UseTransform = true
	lc = sc.CollectLights()
	assertVector(t, math32.Vec3(0, 1, 0), lc.Dir[0].Direction)

	assert.Zero(t, lc.NPoint)
	require.Equal(t, 1, lc.NSpot)
	sl := lc.Spot[0]
	assert.Equal(t, spot, sl.Entity)
	assertVector(t, math32.Vec3(1, 10, 0), sl.Pos)
	assertVector(t, math32.Vec3(0, 0, -1), sl.Direction)
	tolassert.Equal(t, 45, sl.CutoffAngle)
	tolassert.Equal(t, 15, sl.AngDecay)
}

func TestLightColor(t *testing.T) {
	lb := LightBase{On: true, Color: color.RGBA{255, 0, 0, 255}, Lumens: 2}
	assertVector(t, math32.Vec3(2, 0, 0), lb.LinearColor())
	lb.Color = color.RGBA{128, 128, 128, 255}
	lb.Lumens = 1
	// sRGB mid gray is about 0.216 linear
	tolassert.EqualTol(t, 0.2158, lb.LinearColor().X, 0.001)
	assert.Equal(t, LightColorMap[Candle], NewPointLight(1, Candle).Color)
}
