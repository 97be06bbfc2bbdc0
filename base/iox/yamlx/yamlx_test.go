// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testOptions struct {
	Name    string `json:"name" toml:"name" yaml:"name"`
	Frames  int    `json:"frames" toml:"frames" yaml:"frames"`
	Culling bool   `json:"culling" toml:"culling" yaml:"culling"`
}

func TestRoundTrip(t *testing.T) {
	in := &testOptions{Name: "main", Frames: 60, Culling: true}

	var buf bytes.Buffer
	require.NoError(t, Write(in, &buf))
	out := &testOptions{}
	require.NoError(t, Read(out, &buf))
	assert.Equal(t, in, out)

	b, err := WriteBytes(in)
	require.NoError(t, err)
	out = &testOptions{}
	require.NoError(t, ReadBytes(out, b))
	assert.Equal(t, in, out)

	fn := filepath.Join(t.TempDir(), "opts.yaml")
	require.NoError(t, Save(in, fn))
	out = &testOptions{}
	require.NoError(t, Open(out, fn))
	assert.Equal(t, in, out)

	assert.Error(t, Open(out, filepath.Join(t.TempDir(), "missing.yaml")))
}
