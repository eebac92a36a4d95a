// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/math32"
	"cogentcore.org/meshedit/bridge"
)

// Runner executes script commands against a session the way an
// interactive host would, one command per line. Blank lines and #
// comments are skipped. Commands:
//
//	flag <name> on|off      set a selection option (verts, edges, faces)
//	explode on|off          set explode grouping
//	pick <x> <y> <z>        toggle pick with a -Z ray from this origin
//	pickray <ox oy oz dx dy dz>  toggle pick with the given ray
//	move <dx> <dy> <dz>     apply a world-space delta to the selection
//	commit [id]             commit the accumulated delta as an action
//	undo                    undo the last committed action
//	redo                    redo the last undone action
//	weld accept|decline     propose a weld and decide it
//	cancel                  restore the baseline positions
//	clear                   clear the selection
//	center                  report the selection centers
//	pose <px py pz rx ry rz sx sy sz>  set the mesh pose (degrees)
//
// Since a script has no interactive pause, weld makes the proposal and
// decides it in one step; declining just reports the candidate.
type Runner struct {

	// Bridge supplies the session and history the commands drive.
	Bridge *bridge.Bridge
}

// RunFile runs the script file at the given path.
func (rn *Runner) RunFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("script: %w", err)
	}
	defer f.Close()
	return rn.Run(f)
}

// Run runs the script from the reader, stopping at the first error.
func (rn *Runner) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		logx.PrintlnDebug("> " + text)
		if err := rn.command(strings.Fields(text)); err != nil {
			return fmt.Errorf("script line %d: %w", line, err)
		}
	}
	return sc.Err()
}

func (rn *Runner) command(fields []string) error {
	ss := rn.Bridge.Session
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "flag":
		if len(args) != 2 {
			return fmt.Errorf("flag needs: name on|off")
		}
		on, err := parseOnOff(args[1])
		if err != nil {
			return err
		}
		ss.SetOption(args[0], on)
	case "explode":
		if len(args) != 1 {
			return fmt.Errorf("explode needs: on|off")
		}
		on, err := parseOnOff(args[0])
		if err != nil {
			return err
		}
		ss.SetExplode(on)
	case "pick":
		v, err := parseFloats(args, 3)
		if err != nil {
			return err
		}
		ray := math32.Ray{Origin: math32.Vec3(v[0], v[1], v[2]), Dir: math32.Vec3(0, 0, -1)}
		if !ss.TogglePick(ray) {
			logx.PrintlnDebug("pick: no hit")
		}
	case "pickray":
		v, err := parseFloats(args, 6)
		if err != nil {
			return err
		}
		ray := math32.Ray{Origin: math32.Vec3(v[0], v[1], v[2]), Dir: math32.Vec3(v[3], v[4], v[5]).Normal()}
		if !ss.TogglePick(ray) {
			logx.PrintlnDebug("pickray: no hit")
		}
	case "move":
		v, err := parseFloats(args, 3)
		if err != nil {
			return err
		}
		ss.ApplyWorldDelta(math32.Vec3(v[0], v[1], v[2]))
	case "commit":
		id := rn.Bridge.TargetID
		if len(args) > 0 {
			id = args[0]
		}
		act := ss.Commit(id)
		if act == nil {
			logx.PrintlnDebug("commit: nothing to commit")
			return nil
		}
		rn.Bridge.History.Save(act)
		data, err := json.Marshal(act)
		if err != nil {
			return err
		}
		logx.PrintlnInfo(string(data))
	case "undo":
		if act := rn.Bridge.History.Undo(); act != nil {
			ss.ApplyInverse(act)
		} else {
			logx.PrintlnDebug("undo: nothing to undo")
		}
	case "redo":
		if act := rn.Bridge.History.Redo(); act != nil {
			ss.ApplyForward(act)
		} else {
			logx.PrintlnDebug("redo: nothing to redo")
		}
	case "weld":
		if len(args) != 1 || (args[0] != "accept" && args[0] != "decline") {
			return fmt.Errorf("weld needs: accept|decline")
		}
		pr := ss.ProposeWeld()
		if pr == nil {
			logx.PrintlnDebug("weld: no candidate in range")
			return nil
		}
		wc := pr.Candidate
		logx.PrintlnInfo(fmt.Sprintf("weld candidate %s at distance %g", wc.TargetKey, wc.Distance))
		if args[0] == "accept" {
			pr.Accept()
		} else {
			pr.Decline()
		}
	case "cancel":
		ss.CancelToBaseline()
	case "clear":
		ss.ClearSelection()
	case "center":
		lc, ok := ss.SelectionCenterLocal()
		if !ok {
			logx.PrintlnInfo("center: no selection")
			return nil
		}
		wc, _ := ss.SelectionCenterWorld()
		logx.PrintlnInfo(fmt.Sprintf("center local (%g %g %g) world (%g %g %g)",
			lc.X, lc.Y, lc.Z, wc.X, wc.Y, wc.Z))
	case "pose":
		v, err := parseFloats(args, 9)
		if err != nil {
			return err
		}
		ps := &ss.Mesh.Pose
		ps.Pos = math32.Vec3(v[0], v[1], v[2])
		ps.SetEulerRotation(v[3], v[4], v[5])
		ps.Scale = math32.Vec3(v[6], v[7], v[8])
		ps.Update()
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

// parseFloats parses exactly n float32 arguments.
func parseFloats(args []string, n int) ([]float32, error) {
	if len(args) != n {
		return nil, fmt.Errorf("need %d numbers, have %d", n, len(args))
	}
	vals := make([]float32, n)
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", a, err)
		}
		vals[i] = float32(f)
	}
	return vals, nil
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("need on or off, not %q", s)
}
