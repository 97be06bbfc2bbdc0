// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	old := UserLevel
	t.Cleanup(func() { UserLevel = old })
	UserLevel = slog.LevelInfo

	var buf bytes.Buffer
	lg := slog.New(NewHandler(&buf, termenv.WithProfile(termenv.Ascii)))
	lg.Debug("hidden")
	lg.Info("propagated", "roots", 3)
	lg.With("scene", "main").WithGroup("lights").Warn("dropped", "kind", "point")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "INFO propagated roots=3\n")
	assert.Contains(t, buf.String(), "WARN dropped scene=main lights.kind=point\n")

	UserLevel = slog.LevelDebug
	lg.Debug("shown")
	assert.Contains(t, buf.String(), "DEBUG shown\n")
}
