// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/scenegraph/base/tolassert"
	"cogentcore.org/scenegraph/ecs"
	"cogentcore.org/scenegraph/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMaterials() Materials {
	mats := Materials{}
	mats.Add("red", NewMaterial(colorRed))
	return mats
}

// chainScene makes a 3 entity chain with a point light and a mesh.
func chainScene(t *testing.T) *Scene {
	sc := NewScene("chain")
	sc.Materials = testMaterials()
	a := sc.CreateEntity("a")
	b := sc.CreateEntity("b")
	c := sc.CreateEntity("c")
	sc.SetParent(b, a)
	sc.SetParent(c, b)
	sc.Transform(a).SetPos(1, 2, 3).SetAxisRotation(0, 1, 0, 30)
	sc.Transform(b).SetPos(0, 1, 0).SetScale(2, 2, 2)
	sc.Transform(c).SetPos(0, 0, -4)
	sc.Bounds(c).SetSphere(math32.Vec3(0, 0.5, 0), 3)
	pl := NewPointLight(0.75, Halogen)
	pl.QuadDecay = 0.05
	ecs.Emplace(sc.Store, b, pl)
	require.NoError(t, sc.SetMesh(c, NewMesh("sphere", "red")))
	return sc
}

func TestRoundTrip(t *testing.T) {
	sc := chainScene(t)
	fname := filepath.Join(t.TempDir(), "chain.json")
	require.NoError(t, sc.Save(fname))

	ld := NewScene("loaded")
	ld.Materials = testMaterials()
	ld.CreateEntity("stale")
	require.NoError(t, ld.Open(fname))
	assert.Equal(t, 3, ld.NumEntities())
	assert.Equal(t, ecs.Nil, ld.FindByName("stale"))

	for _, nm := range []string{"a", "b", "c"} {
		oe, le := sc.FindByName(nm), ld.FindByName(nm)
		require.True(t, ld.Valid(le), nm)
		assert.Equal(t, sc.EntityName(sc.Parent(oe)), ld.EntityName(ld.Parent(le)), nm)
		ot, lt := sc.Transform(oe), ld.Transform(le)
		assertVector(t, ot.Pos, lt.Pos)
		assertVector(t, ot.Scale, lt.Scale)
		assert.True(t, ot.Quat.IsEqualTol(lt.Quat, testTol), nm)
		assert.True(t, lt.Dirty)
		assert.Equal(t, *sc.Bounds(oe), *ld.Bounds(le))
	}

	b := ld.FindByName("b")
	pl := ecs.Get[PointLight](ld.Store, b)
	require.NotNil(t, pl)
	assert.Equal(t, *ecs.Get[PointLight](sc.Store, sc.FindByName("b")), *pl)

	ms := ld.Mesh(ld.FindByName("c"))
	require.NotNil(t, ms)
	assert.Equal(t, "sphere", ms.Name)
	assert.Same(t, ld.Materials.Material("red"), ms.Material)

	// world matrices agree after propagation
	sc.UpdateHierarchy()
	ld.UpdateHierarchy()
	assertVector(t, sc.WorldPos(sc.FindByName("c")), ld.WorldPos(ld.FindByName("c")))
}

func TestWriteFormat(t *testing.T) {
	sc := chainScene(t)
	var buf bytes.Buffer
	require.NoError(t, sc.Write(&buf))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	tolassert.Equal(t, 1, doc["version"].(float64))
	ents := doc["entities"].([]any)
	require.Len(t, ents, 3)
	parents := []float64{-1, 0, 1}
	for i, e := range ents {
		em := e.(map[string]any)
		tolassert.Equal(t, float64(i), em["index"].(float64))
		tolassert.Equal(t, parents[i], em["parentIndex"].(float64))
		tr := em["transform"].(map[string]any)
		assert.Len(t, tr["position"], 3)
		assert.Len(t, tr["rotation"], 4)
		assert.Len(t, tr["scale"], 3)
	}
	b := ents[1].(map[string]any)
	assert.Equal(t, "b", b["name"])
	pl := b["pointLight"].(map[string]any)
	assert.Equal(t, true, pl["on"])
	tolassert.Equal(t, 0.75, pl["intensity"].(float64))
	assert.Len(t, pl["color"], 4)
	mesh := ents[2].(map[string]any)["mesh"].(map[string]any)
	assert.Equal(t, "sphere", mesh["name"])
	assert.Equal(t, "red", mesh["material"])
}

func TestChildOrderRoundTrip(t *testing.T) {
	sc := NewScene("order")
	root := sc.CreateEntity("root")
	for _, nm := range []string{"z", "y", "x"} {
		sc.SetParent(sc.CreateEntity(nm), root)
	}
	// move z to the end, by way of x
	sc.SetParent(sc.FindByName("z"), sc.FindByName("x"))
	sc.SetParent(sc.FindByName("z"), root)

	var buf bytes.Buffer
	require.NoError(t, sc.Write(&buf))
	ld := NewScene("loaded")
	require.NoError(t, ld.Read(&buf))
	var got []string
	for _, c := range ld.Children(ld.FindByName("root")) {
		got = append(got, ld.EntityName(c))
	}
	assert.Equal(t, []string{"y", "x", "z"}, got)
}

func TestReadErrors(t *testing.T) {
	sc := NewScene("test")
	keep := sc.CreateEntity("keep")

	assert.Error(t, sc.Read(strings.NewReader("{not json")))
	assert.Error(t, sc.Read(strings.NewReader(`{"version":2,"entities":[]}`)))
	assert.Error(t, sc.Open(filepath.Join(t.TempDir(), "missing.json")))
	assert.True(t, sc.Valid(keep), "failed loads leave the scene alone")

	// unknown material: load completes and the error is reported
	doc := `{"version":1,"entities":[
		{"index":0,"name":"a","transform":{"position":[1,0,0],"rotation":[0,0,0,1],"scale":[1,1,1]},"parentIndex":-1,
		 "mesh":{"name":"cube","material":"missing"}},
		{"index":1,"name":"b","transform":{"position":[0,0,0],"rotation":[0,0,0,1],"scale":[1,1,1]},"parentIndex":7}]}`
	err := sc.Read(strings.NewReader(doc))
	assert.Error(t, err)
	assert.False(t, sc.Valid(keep))
	assert.Equal(t, 2, sc.NumEntities())
	a := sc.FindByName("a")
	ms := sc.Mesh(a)
	require.NotNil(t, ms)
	assert.Equal(t, "missing", ms.MaterialName)
	assert.Nil(t, ms.Material)
	assert.True(t, sc.IsRoot(sc.FindByName("b")), "out of range parent is ignored")
}
