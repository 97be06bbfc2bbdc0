// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/scenegraph/ecs"
	"cogentcore.org/scenegraph/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenConfig(t *testing.T) {
	dir := t.TempDir()
	tf := filepath.Join(dir, "cfg.toml")
	require.NoError(t, os.WriteFile(tf, []byte(`
scene = "solar.json"
frames = 5

[options]
propagation = "cascade"
worldBounds = true
culling = false

[materials.blue]
color = [0, 0, 255, 255]
`), 0666))
	cfg := DefaultConfig()
	require.NoError(t, cfg.OpenConfig(tf))
	assert.Equal(t, "solar.json", cfg.Scene)
	assert.Equal(t, 5, cfg.Frames)
	assert.Equal(t, float32(60), cfg.FPS)
	assert.Equal(t, xyz.Options{Propagation: xyz.Cascade, WorldBounds: true}, cfg.Options)
	mats := cfg.MaterialRegistry()
	require.NotNil(t, mats.Material("blue"))
	assert.Equal(t, uint8(255), mats.Material("blue").Color.B)
	assert.Equal(t, float32(30), mats.Material("blue").Shiny)

	yf := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, cfg.SaveConfig(yf))
	ycfg := &Config{}
	require.NoError(t, ycfg.OpenConfig(yf))
	assert.Equal(t, cfg, ycfg)

	assert.Error(t, cfg.OpenConfig(filepath.Join(dir, "cfg.ini")))
}

func TestDemoScene(t *testing.T) {
	sc := xyz.NewScene("demo")
	sc.Materials = DefaultConfig().MaterialRegistry()
	dr := &logDrawer{}
	require.NoError(t, loadScene(sc, "", dr))
	assert.Equal(t, 10, sc.NumEntities())

	earth := sc.FindByName("earth")
	moon := sc.FindByName("moon")
	start := sc.Transform(sc.Parent(earth)).Quat
	sc.Update(0)
	earthPos := sc.WorldPos(earth)
	moonPos := sc.WorldPos(moon)
	assert.InDelta(t, 10, earthPos.Length(), 1e-4)
	for range 3 {
		sc.Update(0.1)
	}
	assert.NotEqual(t, start, sc.Transform(sc.Parent(earth)).Quat)
	assert.NotEqual(t, earthPos, sc.WorldPos(earth))
	assert.NotEqual(t, moonPos, sc.WorldPos(moon))
	assert.InDelta(t, 10, sc.WorldPos(earth).Length(), 1e-3)
	lc := sc.CollectLights()
	assert.Equal(t, 1, lc.NDir)
	assert.Equal(t, 1, lc.NPoint)
	assert.Equal(t, 1, lc.NSpot)

	n := sc.Render(0, nil)
	assert.Equal(t, 5, n)
	assert.Equal(t, 5, dr.draws)
	for e := range ecs.View1[xyz.Renderable](sc.Store) {
		require.NotNil(t, sc.Mesh(e).Material, sc.EntityName(e))
	}

	file := filepath.Join(t.TempDir(), "demo.json")
	require.NoError(t, sc.Save(file))
	ld := xyz.NewScene("loaded")
	ld.Materials = sc.Materials
	require.NoError(t, loadScene(ld, file, dr))
	assert.Equal(t, sc.NumEntities(), ld.NumEntities())
	assert.Equal(t, 5, ld.Render(0, nil))
}
