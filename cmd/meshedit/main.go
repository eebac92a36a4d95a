// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command meshedit is a headless driver for the subcomponent editing
// engine: it imports a mesh, optionally runs an edit script against
// it, writes the result as OBJ, and can serve the websocket bridge or
// watch the input file and re-run on change.
//
// Usage: meshedit [flags] input-mesh
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/meshedit/bridge"
	"cogentcore.org/meshedit/meshio"
	"github.com/fsnotify/fsnotify"
)

func main() {
	if err := run(); err != nil {
		logx.PrintlnError(err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configFile = flag.String("config", "", "TOML or YAML config file")
		scriptFile = flag.String("script", "", "edit script to run against the mesh")
		outFile    = flag.String("out", "", "write the resulting mesh to this OBJ file")
		serveAddr  = flag.String("serve", "", "serve the websocket bridge at this address")
		watch      = flag.Bool("watch", false, "re-run the script when the input mesh changes")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	cfg := &Config{}
	cfg.Defaults()
	if *configFile != "" {
		if err := cfg.LoadFile(*configFile); err != nil {
			return err
		}
	}
	if *serveAddr != "" {
		cfg.Serve = *serveAddr
	}
	if *verbose {
		cfg.Verbose = true
	}
	if cfg.Verbose {
		logx.UserLevel = slog.LevelDebug
	}

	if flag.NArg() != 1 {
		flag.Usage()
		return fmt.Errorf("need one input mesh file")
	}
	input := flag.Arg(0)

	var br *bridge.Bridge
	process := func() error {
		var err error
		br, err = load(input, cfg)
		if err != nil {
			return err
		}
		if *scriptFile != "" {
			rn := &Runner{Bridge: br}
			if err := rn.RunFile(*scriptFile); err != nil {
				return err
			}
		}
		if *outFile != "" {
			if err := meshio.SaveOBJ(*outFile, br.Session.Mesh); err != nil {
				return err
			}
			logx.PrintlnInfo("saved " + *outFile)
		}
		return nil
	}
	if err := process(); err != nil {
		return err
	}

	switch {
	case *watch:
		return watchLoop(input, process)
	case cfg.Serve != "":
		return serve(br, cfg.Serve)
	}
	return nil
}

// load imports the input mesh and wraps it in a bridge configured from
// the config.
func load(input string, cfg *Config) (*bridge.Bridge, error) {
	ms, err := meshio.Open(input)
	if err != nil {
		return nil, err
	}
	logx.PrintlnDebug(fmt.Sprintf("loaded %s: %d vertices, %d triangles",
		input, ms.NumVertex(), ms.NumIndex()/3))
	br := bridge.NewBridge(ms, ms.Name)
	br.Session.Params = cfg.Edit
	br.Session.Pick = cfg.Pick
	return br, nil
}

// watchLoop re-runs process whenever the input file is written.
// Watching the directory catches editors that replace the file on
// save.
func watchLoop(input string, process func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(input)); err != nil {
		return err
	}
	logx.PrintlnInfo("watching " + input)
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(input) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logx.PrintlnInfo("reloading " + input)
			if err := process(); err != nil {
				logx.PrintlnError(err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logx.PrintlnError(err)
		}
	}
}

// serve mounts the bridge at /ws and listens on the given address.
func serve(br *bridge.Bridge, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", br)
	logx.PrintlnWarn("Serving at ws://" + addr + "/ws")
	return http.ListenAndServe(addr, mux)
}
