// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"cogentcore.org/scenegraph/base/iox/tomlx"
	"cogentcore.org/scenegraph/base/iox/yamlx"
	"cogentcore.org/scenegraph/xyz"
)

// Config is the configuration of the frame driver.
type Config struct {

	// Scene is the JSON scene file to load. The demo scene is used if empty.
	Scene string `toml:"scene" yaml:"scene"`

	// Frames is the number of frames to run.
	Frames int `toml:"frames" yaml:"frames"`

	// FPS is the target frame rate; 0 runs frames back to back.
	FPS float32 `toml:"fps" yaml:"fps"`

	// Options are the scene options.
	Options xyz.Options `toml:"options" yaml:"options"`

	// Materials are the named materials available to meshes in the scene.
	Materials map[string]MaterialConfig `toml:"materials" yaml:"materials"`
}

// MaterialConfig is the file form of a [xyz.Material].
type MaterialConfig struct {
	Color      [4]uint8 `toml:"color" yaml:"color"`
	Emissive   [4]uint8 `toml:"emissive" yaml:"emissive"`
	Shiny      float32  `toml:"shiny" yaml:"shiny"`
	Reflective float32  `toml:"reflective" yaml:"reflective"`
	Bright     float32  `toml:"bright" yaml:"bright"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Frames:  60,
		FPS:     60,
		Options: xyz.DefaultOptions(),
		Materials: map[string]MaterialConfig{
			"gray":  {Color: [4]uint8{128, 128, 128, 255}, Shiny: 30, Reflective: 1, Bright: 1},
			"red":   {Color: [4]uint8{220, 40, 40, 255}, Shiny: 30, Reflective: 1, Bright: 1},
			"glass": {Color: [4]uint8{200, 220, 255, 128}, Shiny: 100, Reflective: 1, Bright: 1},
		},
	}
}

// OpenConfig reads the given TOML or YAML file, by extension,
// on top of the current values.
func (cfg *Config) OpenConfig(filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return tomlx.Open(cfg, filename)
	case ".yaml", ".yml":
		return yamlx.Open(cfg, filename)
	}
	return fmt.Errorf("config file %q: unsupported extension, use .toml, .yaml or .yml", filename)
}

// SaveConfig writes the config to the given TOML or YAML file, by extension.
func (cfg *Config) SaveConfig(filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return tomlx.Save(cfg, filename)
	case ".yaml", ".yml":
		return yamlx.Save(cfg, filename)
	}
	return fmt.Errorf("config file %q: unsupported extension, use .toml, .yaml or .yml", filename)
}

// MaterialRegistry returns the configured materials as a registry.
func (cfg *Config) MaterialRegistry() xyz.Materials {
	mats := xyz.Materials{}
	for name, mc := range cfg.Materials {
		mt := xyz.NewMaterial(rgba(mc.Color))
		mt.Emissive = rgba(mc.Emissive)
		if mc.Shiny != 0 {
			mt.Shiny = mc.Shiny
		}
		if mc.Reflective != 0 {
			mt.Reflective = mc.Reflective
		}
		if mc.Bright != 0 {
			mt.Bright = mc.Bright
		}
		mats.Add(name, mt)
	}
	return mats
}

func rgba(c [4]uint8) color.RGBA {
	return color.RGBA{c[0], c[1], c[2], c[3]}
}
