// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command scenegraph drives a scene through a number of frames of
// update and render, without a GPU: draw calls are logged and counted.
// It can load a scene from a JSON file, optionally reloading it whenever
// the file changes, and save the scene at the end.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"cogentcore.org/scenegraph/base/errors"
	"cogentcore.org/scenegraph/base/logx"
	"cogentcore.org/scenegraph/math32"
	"cogentcore.org/scenegraph/xyz"
	"github.com/fsnotify/fsnotify"
)

var (
	configFile = flag.String("config", "", "TOML or YAML config file")
	sceneFile  = flag.String("scene", "", "JSON scene file to load, overriding the config")
	frames     = flag.Int("frames", -1, "number of frames to run, overriding the config")
	saveFile   = flag.String("save", "", "JSON file to save the scene to after the last frame")
	writeCfg   = flag.String("write-config", "", "TOML or YAML file to write the effective config to")
	watch      = flag.Bool("watch", false, "reload the scene file when it changes")
	verbose    = flag.Bool("v", false, "verbose logging")
	veryVerb   = flag.Bool("vv", false, "very verbose (debug) logging")
	quiet      = flag.Bool("q", false, "only log warnings and errors")
)

func main() {
	flag.Usage = Usage
	flag.Parse()
	logx.UserLevel = logx.LevelFromFlags(*veryVerb, *verbose, *quiet)
	logx.SetDefaultLogger()
	if err := run(); err != nil {
		os.Exit(1)
	}
}

// Usage is a replacement usage function for the flags package.
func Usage() {
	_, _ = fmt.Fprintf(os.Stderr, "Scenegraph runs frames of a 3D scene graph and logs its draw calls.\n")
	_, _ = fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
	_, _ = fmt.Fprintf(os.Stderr, "\tscenegraph [flags]\n")
	_, _ = fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}

func run() error {
	cfg := DefaultConfig()
	if *configFile != "" {
		if err := errors.Log(cfg.OpenConfig(*configFile)); err != nil {
			return err
		}
	}
	if *sceneFile != "" {
		cfg.Scene = *sceneFile
	}
	if *frames >= 0 {
		cfg.Frames = *frames
	}
	if *writeCfg != "" {
		errors.Log(cfg.SaveConfig(*writeCfg))
	}

	sc := xyz.NewScene("scenegraph")
	sc.Options = cfg.Options
	sc.Materials = cfg.MaterialRegistry()
	dr := &logDrawer{}
	if err := loadScene(sc, cfg.Scene, dr); err != nil {
		return err
	}

	var reload <-chan fsnotify.Event
	if *watch && cfg.Scene != "" {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			return errors.Log(err)
		}
		defer w.Close()
		// watch the directory, so that editors that replace the file are seen
		if err := errors.Log(w.Add(filepath.Dir(cfg.Scene))); err != nil {
			return err
		}
		reload = w.Events
		go func() {
			for err := range w.Errors {
				slog.Error("scenegraph: watcher", "err", err)
			}
		}()
	}

	cam := xyz.NewStaticCamera(math32.Vec3(0, 10, 40), math32.Vector3{}, math32.Vec3(0, 1, 0))
	var tick <-chan time.Time
	dt := float32(1) / 60
	if cfg.FPS > 0 {
		dt = 1 / cfg.FPS
		ticker := time.NewTicker(time.Duration(float32(time.Second) / cfg.FPS))
		defer ticker.Stop()
		tick = ticker.C
	}

	start := time.Now()
	drawn := 0
	for frame := 0; frame < cfg.Frames; frame++ {
		if tick != nil {
			<-tick
		}
		select {
		case ev := <-reload:
			if filepath.Clean(ev.Name) == filepath.Clean(cfg.Scene) && ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				slog.Info("scenegraph: reloading scene", "file", cfg.Scene, "frame", frame)
				errors.Log(loadScene(sc, cfg.Scene, dr))
			}
		default:
		}
		sc.Update(dt)
		drawn += sc.Render(float32(frame)*dt, cam)
	}
	slog.Info("scenegraph: done", "frames", cfg.Frames, "entities", sc.NumEntities(), "rendered", drawn, "draws", dr.draws, "elapsed", time.Since(start))

	if *saveFile != "" {
		return sc.Save(*saveFile)
	}
	return nil
}

// loadScene loads the given scene file, or builds the demo scene if it is
// empty, and attaches the drawer to its meshes. Unresolved materials are
// logged by the scene and do not stop the load.
func loadScene(sc *xyz.Scene, filename string, dr xyz.Drawer) error {
	if filename == "" {
		sc.Clear()
		buildDemo(sc)
		sc.AddUpdater(spinOrbits)
	} else if err := sc.Open(filename); err != nil && sc.NumEntities() == 0 {
		return err
	}
	attachDrawer(sc, dr)
	slog.Info("scenegraph: scene loaded", "file", filename, "entities", sc.NumEntities(), "roots", len(sc.Roots()))
	return nil
}
