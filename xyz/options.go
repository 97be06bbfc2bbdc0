// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"strings"
)

// Propagation selects how [Scene.UpdateHierarchy] walks the hierarchy
// when only some transforms are dirty. The choice changes which world
// matrices can be observed as stale after a pass.
type Propagation int32

const (
	// DescendFlagged always descends into every child, but only recomputes
	// the world matrix of entities that are themselves Dirty. A clean
	// ancestor does not hide a dirty descendant, but a clean child of a
	// recomputed entity keeps its previous world matrix until it is
	// marked dirty itself.
	DescendFlagged Propagation = iota

	// ShortCircuit stops at the first clean entity on each path: the
	// subtree under a clean entity is not visited at all, so dirty
	// descendants of a clean entity stay stale.
	ShortCircuit

	// Cascade always descends, and recomputing an entity forces its whole
	// subtree to be recomputed. World matrices are never stale after a pass.
	Cascade
)

var propagationNames = [...]string{"DescendFlagged", "ShortCircuit", "Cascade"}

func (pr Propagation) String() string {
	if pr < 0 || int(pr) >= len(propagationNames) {
		return fmt.Sprintf("Propagation(%d)", int32(pr))
	}
	return propagationNames[pr]
}

// SetString sets the value from its name, case insensitively.
func (pr *Propagation) SetString(s string) error {
	for i, nm := range propagationNames {
		if strings.EqualFold(nm, s) {
			*pr = Propagation(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Propagation", s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (pr Propagation) MarshalText() ([]byte, error) {
	return []byte(pr.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (pr *Propagation) UnmarshalText(text []byte) error {
	return pr.SetString(string(text))
}

// Options are the behavioral settings of a [Scene].
type Options struct {

	// Propagation is the policy for walking partially dirty hierarchies.
	Propagation Propagation `json:"propagation" toml:"propagation" yaml:"propagation"`

	// WorldBounds measures the distance between parent and child bounds
	// centers in world space when aggregating Reach. By default the
	// distance uses the centers as stored, in their own local spaces,
	// which under- or over-estimates Reach whenever intermediate
	// transforms translate, rotate or scale.
	WorldBounds bool `json:"worldBounds" toml:"worldBounds" yaml:"worldBounds"`

	// Culling consults the camera visibility test during [Scene.Render].
	// When off, every entity is treated as visible.
	Culling bool `json:"culling" toml:"culling" yaml:"culling"`
}

// DefaultOptions returns the default scene options.
func DefaultOptions() Options {
	return Options{Propagation: DescendFlagged, Culling: true}
}
