// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"io"
	"log/slog"

	"cogentcore.org/scenegraph/base/errors"
	"cogentcore.org/scenegraph/base/iox/jsonx"
	"cogentcore.org/scenegraph/ecs"
	"cogentcore.org/scenegraph/math32"
)

// FileVersion is the version of the scene file format written by [Scene.Save].
const FileVersion = 1

// sceneFile is the document form of a scene.
type sceneFile struct {
	Version  int          `json:"version"`
	Entities []entityFile `json:"entities"`
}

// entityFile is the document form of one entity. Index is the position in
// the entities array, which is what ParentIndex refers to (-1 for a root).
type entityFile struct {
	Index            int                   `json:"index"`
	Name             string                `json:"name,omitempty"`
	Transform        transformFile         `json:"transform"`
	Bounds           *boundsFile           `json:"bounds,omitempty"`
	ParentIndex      int                   `json:"parentIndex"`
	DirectionalLight *directionalLightFile `json:"directionalLight,omitempty"`
	PointLight       *pointLightFile       `json:"pointLight,omitempty"`
	SpotLight        *spotLightFile        `json:"spotLight,omitempty"`
	Mesh             *meshFile             `json:"mesh,omitempty"`
}

type transformFile struct {
	Position [3]float32 `json:"position"`
	Rotation [4]float32 `json:"rotation"`
	Scale    [3]float32 `json:"scale"`
}

type boundsFile struct {
	Center [3]float32 `json:"center"`
	Radius float32    `json:"radius"`
}

type lightFile struct {
	On        bool     `json:"on"`
	Color     [4]uint8 `json:"color"`
	Intensity float32  `json:"intensity"`
}

type directionalLightFile struct {
	lightFile
	UseTransform bool       `json:"useTransform"`
	Direction    [3]float32 `json:"direction"`
}

type pointLightFile struct {
	lightFile
	LinDecay  float32 `json:"linDecay"`
	QuadDecay float32 `json:"quadDecay"`
}

type spotLightFile struct {
	lightFile
	AngDecay    float32 `json:"angDecay"`
	CutoffAngle float32 `json:"cutoffAngle"`
	LinDecay    float32 `json:"linDecay"`
	QuadDecay   float32 `json:"quadDecay"`
}

type meshFile struct {
	Name     string `json:"name"`
	Material string `json:"material,omitempty"`
}

func vec3ToFile(v math32.Vector3) [3]float32 { return [3]float32{v.X, v.Y, v.Z} }

func vec3FromFile(a [3]float32) math32.Vector3 { return math32.Vec3(a[0], a[1], a[2]) }

func lightToFile(lb *LightBase) lightFile {
	return lightFile{On: lb.On, Color: [4]uint8{lb.Color.R, lb.Color.G, lb.Color.B, lb.Color.A}, Intensity: lb.Lumens}
}

func (lf *lightFile) toLight(lb *LightBase) {
	lb.On = lf.On
	lb.Color.R, lb.Color.G, lb.Color.B, lb.Color.A = lf.Color[0], lf.Color[1], lf.Color[2], lf.Color[3]
	lb.Lumens = lf.Intensity
}

// Save saves the scene to the given JSON file.
func (sc *Scene) Save(filename string) error {
	return errors.Log(jsonx.Save(sc.toFile(), filename))
}

// Write writes the scene as JSON to the given writer.
func (sc *Scene) Write(w io.Writer) error {
	return errors.Log(jsonx.Write(sc.toFile(), w))
}

// Open replaces the contents of the scene with the given JSON file.
// See [Scene.Read] for the handling of problems in the document.
func (sc *Scene) Open(filename string) error {
	sf := &sceneFile{}
	if err := errors.Log(jsonx.Open(sf, filename)); err != nil {
		return err
	}
	return sc.fromFile(sf)
}

// Read replaces the contents of the scene with the JSON read from
// the given reader. The scene is cleared first, unless the document
// cannot be parsed or has an unsupported version. Out of range parent
// indexes are logged and ignored. Mesh materials that are not in
// [Scene.Materials] are logged and left unset; the load completes and
// the joined error is returned.
func (sc *Scene) Read(r io.Reader) error {
	sf := &sceneFile{}
	if err := errors.Log(jsonx.Read(sf, r)); err != nil {
		return err
	}
	return sc.fromFile(sf)
}

// toFile returns the document form of the scene: all entities with a
// Transform, in depth-first pre-order from each root, so that loading
// preserves the order of children.
func (sc *Scene) toFile() *sceneFile {
	sf := &sceneFile{Version: FileVersion}
	index := map[ecs.Entity]int{}
	for _, root := range sc.Roots() {
		sc.WalkDown(root, func(e ecs.Entity) bool {
			ef := entityFile{Index: len(sf.Entities), Name: sc.EntityName(e), ParentIndex: -1}
			index[e] = ef.Index
			if pi, ok := index[sc.Parent(e)]; ok {
				ef.ParentIndex = pi
			}
			sc.entityToFile(e, &ef)
			sf.Entities = append(sf.Entities, ef)
			return true
		})
	}
	return sf
}

func (sc *Scene) entityToFile(e ecs.Entity, ef *entityFile) {
	tr := sc.Transform(e)
	if tr == nil {
		tr = &Transform{}
	}
	tr.Defaults()
	ef.Transform = transformFile{
		Position: vec3ToFile(tr.Pos),
		Rotation: [4]float32{tr.Quat.X, tr.Quat.Y, tr.Quat.Z, tr.Quat.W},
		Scale:    vec3ToFile(tr.Scale),
	}
	if bd := sc.Bounds(e); bd != nil {
		ef.Bounds = &boundsFile{Center: vec3ToFile(bd.Center), Radius: bd.Radius}
	}
	if lt := ecs.Get[DirectionalLight](sc.Store, e); lt != nil {
		ef.DirectionalLight = &directionalLightFile{lightFile: lightToFile(&lt.LightBase), UseTransform: lt.UseTransform, Direction: vec3ToFile(lt.Direction)}
	}
	if lt := ecs.Get[PointLight](sc.Store, e); lt != nil {
		ef.PointLight = &pointLightFile{lightFile: lightToFile(&lt.LightBase), LinDecay: lt.LinDecay, QuadDecay: lt.QuadDecay}
	}
	if lt := ecs.Get[SpotLight](sc.Store, e); lt != nil {
		ef.SpotLight = &spotLightFile{lightFile: lightToFile(&lt.LightBase), AngDecay: lt.AngDecay, CutoffAngle: lt.CutoffAngle, LinDecay: lt.LinDecay, QuadDecay: lt.QuadDecay}
	}
	if ms := sc.Mesh(e); ms != nil {
		ef.Mesh = &meshFile{Name: ms.Name, Material: ms.MaterialName}
	}
}

// fromFile clears the scene and creates the entities of the given document.
func (sc *Scene) fromFile(sf *sceneFile) error {
	if sf.Version != FileVersion {
		return errors.Log(fmt.Errorf("xyz.Scene.Read: unsupported scene file version %d, expected %d", sf.Version, FileVersion))
	}
	sc.Clear()
	es := make([]ecs.Entity, len(sf.Entities))
	var errs []error
	for i := range sf.Entities {
		ef := &sf.Entities[i]
		es[i] = sc.CreateEntity(ef.Name)
		if err := sc.entityFromFile(es[i], ef); err != nil {
			slog.Warn("xyz.Scene.Read: mesh material not resolved", "scene", sc.Name, "entity", i, "err", err)
			errs = append(errs, err)
		}
	}
	for i := range sf.Entities {
		pi := sf.Entities[i].ParentIndex
		if pi < 0 {
			continue
		}
		if pi >= len(es) || pi == i {
			slog.Warn("xyz.Scene.Read: invalid parent index ignored", "scene", sc.Name, "entity", i, "parentIndex", pi)
			continue
		}
		sc.SetParent(es[i], es[pi])
	}
	return errors.Join(errs...)
}

// entityFromFile sets the components of e from ef. The returned error
// is for an unresolved mesh material, which is otherwise not fatal.
func (sc *Scene) entityFromFile(e ecs.Entity, ef *entityFile) error {
	tr := sc.Transform(e)
	tf := &ef.Transform
	tr.Pos = vec3FromFile(tf.Position)
	tr.Quat = math32.NewQuat(tf.Rotation[0], tf.Rotation[1], tf.Rotation[2], tf.Rotation[3])
	tr.Scale = vec3FromFile(tf.Scale)
	tr.Defaults()
	tr.SetDirty()
	if ef.Bounds != nil {
		sc.Bounds(e).SetSphere(vec3FromFile(ef.Bounds.Center), ef.Bounds.Radius)
	}
	if lf := ef.DirectionalLight; lf != nil {
		lt := DirectionalLight{UseTransform: lf.UseTransform, Direction: vec3FromFile(lf.Direction)}
		lf.toLight(&lt.LightBase)
		ecs.Emplace(sc.Store, e, lt)
	}
	if lf := ef.PointLight; lf != nil {
		lt := PointLight{LinDecay: lf.LinDecay, QuadDecay: lf.QuadDecay}
		lf.toLight(&lt.LightBase)
		ecs.Emplace(sc.Store, e, lt)
	}
	if lf := ef.SpotLight; lf != nil {
		lt := SpotLight{AngDecay: lf.AngDecay, CutoffAngle: lf.CutoffAngle, LinDecay: lf.LinDecay, QuadDecay: lf.QuadDecay}
		lf.toLight(&lt.LightBase)
		ecs.Emplace(sc.Store, e, lt)
	}
	if mf := ef.Mesh; mf != nil {
		return sc.SetMesh(e, NewMesh(mf.Name, mf.Material))
	}
	return nil
}
