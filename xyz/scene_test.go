// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"math/rand/v2"
	"testing"

	"cogentcore.org/scenegraph/ecs"
	"cogentcore.org/scenegraph/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertTree checks that parent and child links agree in both directions.
func assertTree(t *testing.T, sc *Scene) {
	t.Helper()
	for e := range sc.Store.Entities() {
		if p := sc.Parent(e); !p.IsNil() {
			n := 0
			for _, c := range sc.Children(p) {
				if c == e {
					n++
				}
			}
			assert.Equal(t, 1, n, "%v in children of parent %v", e, p)
		}
		for _, c := range sc.Children(e) {
			assert.True(t, sc.Valid(c), "dangling child %v of %v", c, e)
			assert.Equal(t, e, sc.Parent(c))
		}
		assert.False(t, sc.IsAncestor(e, e), "cycle at %v", e)
	}
}

func TestCreateEntity(t *testing.T) {
	sc := NewScene("test")
	a := sc.CreateEntity("a")
	b := sc.CreateEntity("")
	assert.Equal(t, 2, sc.NumEntities())
	require.NotNil(t, sc.Transform(a))
	assert.True(t, sc.Transform(a).Dirty)
	assert.Equal(t, math32.Vec3(1, 1, 1), sc.Transform(a).Scale)
	require.NotNil(t, sc.Bounds(a))
	assert.Equal(t, float32(1), sc.Bounds(a).Radius)
	assert.Equal(t, float32(1), sc.Bounds(a).Reach)
	assert.Equal(t, "a", sc.EntityName(a))
	assert.False(t, ecs.Has[Tag](sc.Store, b))
	assert.False(t, ecs.Has[Hierarchy](sc.Store, a))
	assert.Equal(t, a, sc.FindByName("a"))
	assert.Equal(t, ecs.Nil, sc.FindByName("none"))
	assert.ElementsMatch(t, []ecs.Entity{a, b}, sc.Roots())
}

func TestSetParent(t *testing.T) {
	sc := NewScene("test")
	a := sc.CreateEntity("a")
	b := sc.CreateEntity("b")
	c := sc.CreateEntity("c")
	sc.UpdateHierarchy()

	sc.SetParent(b, a)
	sc.SetParent(c, a)
	assert.Equal(t, []ecs.Entity{b, c}, sc.Children(a))
	assert.Equal(t, a, sc.Parent(b))
	assert.True(t, sc.Transform(b).Dirty)
	assert.False(t, sc.Transform(a).Dirty)
	assert.Equal(t, []ecs.Entity{a}, sc.Roots())
	assert.True(t, sc.IsRoot(a))
	assert.False(t, sc.IsRoot(b))

	// reparenting moves to the end of the new parent
	sc.SetParent(b, c)
	assert.Equal(t, []ecs.Entity{c}, sc.Children(a))
	assert.Equal(t, []ecs.Entity{b}, sc.Children(c))
	assert.Equal(t, []ecs.Entity{c, b}, sc.Descendants(a))
	assert.True(t, sc.IsAncestor(a, b))
	assertTree(t, sc)

	// invalid entities are ignored
	sc.SetParent(b, ecs.Nil)
	sc.SetParent(ecs.Nil, a)
	assert.Equal(t, c, sc.Parent(b))

	sc.Detach(c)
	assert.True(t, sc.IsRoot(c))
	assert.Empty(t, sc.Children(a))
	assert.ElementsMatch(t, []ecs.Entity{a, c}, sc.Roots())
	assertTree(t, sc)
}

func TestSetParentRejectsCycles(t *testing.T) {
	sc := NewScene("test")
	a := sc.CreateEntity("a")
	b := sc.CreateEntity("b")
	c := sc.CreateEntity("c")
	sc.SetParent(b, a)
	sc.SetParent(c, b)

	sc.SetParent(a, a)
	sc.SetParent(a, c)
	sc.SetParent(a, b)
	assert.True(t, sc.IsRoot(a))
	assert.Equal(t, []ecs.Entity{b}, sc.Children(a))
	assert.Equal(t, []ecs.Entity{c}, sc.Children(b))
	assertTree(t, sc)
}

func TestDestroyEntity(t *testing.T) {
	sc := NewScene("test")
	a := sc.CreateEntity("a")
	b := sc.CreateEntity("b")
	c := sc.CreateEntity("c")
	d := sc.CreateEntity("d")
	sc.SetParent(b, a)
	sc.SetParent(c, b)
	sc.SetParent(d, a)

	sc.DestroyEntity(b)
	assert.False(t, sc.Valid(b))
	assert.False(t, sc.Valid(c))
	assert.Equal(t, []ecs.Entity{d}, sc.Children(a))
	assert.Equal(t, 2, sc.NumEntities())
	assertTree(t, sc)

	sc.DestroyEntity(b)
	sc.DestroyEntity(ecs.Nil)
	assert.Equal(t, 2, sc.NumEntities())

	// a recycled id is not confused with the destroyed child
	e := sc.CreateEntity("e")
	assert.True(t, sc.IsRoot(e))
	assert.Equal(t, []ecs.Entity{d}, sc.Children(a))
}

func TestTreeInvariantRandom(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	sc := NewScene("random")
	var es []ecs.Entity
	pick := func() ecs.Entity {
		if len(es) == 0 {
			return ecs.Nil
		}
		return es[rnd.IntN(len(es))]
	}
	for range 500 {
		switch rnd.IntN(4) {
		case 0, 1:
			es = append(es, sc.CreateEntity(""))
		case 2:
			sc.SetParent(pick(), pick())
		case 3:
			sc.DestroyEntity(pick())
		}
	}
	assertTree(t, sc)
}

func TestDuplicate(t *testing.T) {
	sc := NewScene("test")
	sc.Materials.Add("red", NewMaterial(colorRed))
	root := sc.CreateEntity("root")
	a := sc.CreateEntity("a")
	b := sc.CreateEntity("b")
	sc.SetParent(a, root)
	sc.SetParent(b, a)
	sc.Transform(a).SetPos(1, 2, 3)
	sc.Bounds(b).SetSphere(math32.Vec3(0, 1, 0), 2)
	ecs.Emplace(sc.Store, b, NewPointLight(0.5, Candle))
	require.NoError(t, sc.SetMesh(b, NewMesh("cube", "red")))
	sc.UpdateHierarchy()

	a2 := sc.Duplicate(a)
	require.True(t, sc.Valid(a2))
	assert.NotEqual(t, a, a2)
	assert.Equal(t, []ecs.Entity{a, a2}, sc.Children(root))
	assert.Equal(t, "a", sc.EntityName(a2))
	assert.Equal(t, math32.Vec3(1, 2, 3), sc.Transform(a2).Pos)
	assert.True(t, sc.Transform(a2).Dirty)

	kids := sc.Children(a2)
	require.Len(t, kids, 1)
	b2 := kids[0]
	assert.NotEqual(t, b, b2)
	assert.Equal(t, float32(2), sc.Bounds(b2).Radius)
	require.NotNil(t, ecs.Get[PointLight](sc.Store, b2))
	assert.Equal(t, *ecs.Get[PointLight](sc.Store, b), *ecs.Get[PointLight](sc.Store, b2))

	// components are copies
	sc.Transform(a2).SetPos(5, 5, 5)
	assert.Equal(t, math32.Vec3(1, 2, 3), sc.Transform(a).Pos)
	ms, ms2 := sc.Mesh(b), sc.Mesh(b2)
	require.NotNil(t, ms2)
	assert.NotSame(t, ms, ms2)
	assert.Equal(t, "cube", ms2.Name)
	assert.Same(t, ms.Material, ms2.Material)
	assertTree(t, sc)

	assert.Equal(t, ecs.Nil, sc.Duplicate(ecs.Nil))
}
