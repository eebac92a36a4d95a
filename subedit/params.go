// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subedit

// Params are the tunable parameters of an editing session.
// Meshes come at arbitrary scales, so both values are configuration
// rather than constants; a [Session] copies its Params at creation
// and they can be adjusted before use.
type Params struct {

	// Epsilon is the quantization step for grouping coincident
	// vertices: positions are snapped to an Epsilon-spaced grid, and
	// vertices landing in the same cell form one logical point.
	Epsilon float32 `default:"0.0001"`

	// WeldRadius is the maximum distance from the selection centroid
	// to a candidate group for a weld to be proposed.
	WeldRadius float32 `default:"0.28"`
}

// Defaults sets default parameter values.
func (pr *Params) Defaults() {
	pr.Epsilon = 1e-4
	pr.WeldRadius = 0.28
}
