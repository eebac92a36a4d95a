// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bridge serves an editing session to UI hosts over a websocket
JSON protocol. Each request names an op and carries its arguments;
the response echoes the op with ok plus op-specific fields. Requests
are handled strictly in arrival order, one at a time across all
connections, matching the engine's cooperative single-threaded model.
*/
package bridge

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/meshedit/mesh"
	"cogentcore.org/meshedit/subedit"
	"github.com/gorilla/websocket"
)

// Bridge wraps one editing session and its undo history behind the
// websocket protocol. It is an [http.Handler]; mount it wherever the
// host serves HTTP.
type Bridge struct {

	// Session is the editing session the protocol drives.
	Session *subedit.Session

	// History records committed actions for undo and redo.
	History subedit.History

	// TargetID identifies the mesh in committed action records.
	TargetID string

	// pending is the weld proposal from the last dragEnd, awaiting
	// a weld op to accept or decline it.
	pending *subedit.WeldProposal

	upgrader websocket.Upgrader

	// mu serializes request handling across connections.
	mu sync.Mutex
}

// NewBridge returns a bridge editing the given mesh, which is
// identified as targetID in committed action records.
func NewBridge(ms *mesh.Mesh, targetID string) *Bridge {
	br := &Bridge{Session: subedit.NewSession(ms), TargetID: targetID}
	br.upgrader.CheckOrigin = func(r *http.Request) bool { return true }
	return br
}

//////// 	Protocol

// Request is one protocol command.
type Request struct {

	// Op is the operation to perform: option, pick, drag, dragEnd,
	// weld, commit, undo, redo, cancel, clear, center, info.
	Op string `json:"op"`

	// Name is the option name for the option op.
	Name string `json:"name,omitempty"`

	// On sets the named option when present; when absent, the option
	// op just reports the current value.
	On *bool `json:"on,omitempty"`

	// Origin and Dir give the world-space pick ray for the pick op.
	Origin *subedit.Vec `json:"origin,omitempty"`
	Dir    *subedit.Vec `json:"dir,omitempty"`

	// Delta is the world-space movement for the drag op.
	Delta *subedit.Vec `json:"delta,omitempty"`

	// Accept tells the weld op to apply the pending proposal rather
	// than decline it.
	Accept bool `json:"accept,omitempty"`
}

// Response answers one request. Fields beyond Op and Ok are set only
// when the op produces them; absent fields mean their zero value.
type Response struct {
	Op string `json:"op"`
	Ok bool   `json:"ok"`

	// Error says what went wrong when Ok is false.
	Error string `json:"error,omitempty"`

	// Name and On echo the option op.
	Name string `json:"name,omitempty"`
	On   *bool  `json:"on,omitempty"`

	// Picked reports whether the pick op toggled anything.
	Picked bool `json:"picked,omitempty"`

	// Selected is the number of selection entries after a pick.
	Selected int `json:"selected,omitempty"`

	// Accum is the uncommitted delta after a drag.
	Accum *subedit.Vec `json:"accum,omitempty"`

	// Candidate is the weld candidate found by dragEnd, if any.
	Candidate *WeldInfo `json:"candidate,omitempty"`

	// Action is the record committed, undone, or redone.
	Action *subedit.Action `json:"action,omitempty"`

	// Local and World are the selection centers for the center op.
	Local *subedit.Vec `json:"local,omitempty"`
	World *subedit.Vec `json:"world,omitempty"`

	// Info is the session state for the info op.
	Info *SessionInfo `json:"info,omitempty"`
}

// WeldInfo describes a weld candidate on the wire.
type WeldInfo struct {
	TargetKey string      `json:"targetKey"`
	Target    subedit.Vec `json:"target"`
	Distance  float32     `json:"distance"`
}

// SessionInfo reports the session state for the info op.
type SessionInfo struct {
	Mesh      string      `json:"mesh"`
	Vertices  int         `json:"vertices"`
	Triangles int         `json:"triangles"`
	Selection []string    `json:"selection"`
	Verts     bool        `json:"verts"`
	Edges     bool        `json:"edges"`
	Faces     bool        `json:"faces"`
	Explode   bool        `json:"explode"`
	Accum     subedit.Vec `json:"accum"`
	UndoAvail bool        `json:"undoAvail"`
	RedoAvail bool        `json:"redoAvail"`
}

//////// 	Serving

// ServeHTTP upgrades the connection and answers protocol requests
// until it closes.
func (br *Bridge) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := br.upgrader.Upgrade(w, r, nil)
	if errors.Log(err) != nil {
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		data, err := json.Marshal(br.Handle(msg))
		if errors.Log(err) != nil {
			return
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); errors.Log(err) != nil {
			return
		}
	}
}

// Handle decodes and runs one request, returning its response. It is
// exported for hosts carrying the protocol over another transport.
func (br *Bridge) Handle(msg []byte) *Response {
	br.mu.Lock()
	defer br.mu.Unlock()

	var req Request
	if err := json.Unmarshal(msg, &req); err != nil {
		return &Response{Error: fmt.Sprintf("bad request: %v", err)}
	}
	return br.run(&req)
}

// fail returns an error response for the request.
func fail(req *Request, format string, args ...any) *Response {
	return &Response{Op: req.Op, Error: fmt.Sprintf(format, args...)}
}

func (br *Bridge) run(req *Request) *Response {
	ss := br.Session
	resp := &Response{Op: req.Op, Ok: true}
	switch req.Op {
	case "option":
		if req.Name == "" {
			return fail(req, "option needs name")
		}
		if req.On != nil {
			ss.SetOption(req.Name, *req.On)
		}
		on := ss.Option(req.Name)
		resp.Name = req.Name
		resp.On = &on
	case "pick":
		if req.Origin == nil || req.Dir == nil {
			return fail(req, "pick needs origin and dir")
		}
		ray := math32.Ray{Origin: req.Origin.V(), Dir: req.Dir.V()}
		resp.Picked = ss.TogglePick(ray)
		resp.Selected = len(ss.Selection())
	case "drag":
		if req.Delta == nil {
			return fail(req, "drag needs delta")
		}
		ss.ApplyWorldDelta(req.Delta.V())
		accum := subedit.VecOf(ss.AccumulatedDelta())
		resp.Accum = &accum
	case "dragEnd":
		br.pending = ss.ProposeWeld()
		if br.pending != nil {
			wc := br.pending.Candidate
			resp.Candidate = &WeldInfo{
				TargetKey: wc.TargetKey,
				Target:    subedit.VecOf(wc.TargetPositionLocal),
				Distance:  wc.Distance,
			}
		}
	case "weld":
		if br.pending == nil {
			return fail(req, "no weld proposal pending")
		}
		if req.Accept {
			br.pending.Accept()
		} else {
			br.pending.Decline()
		}
		br.pending = nil
	case "commit":
		if act := ss.Commit(br.TargetID); act != nil {
			br.History.Save(act)
			resp.Action = act
		}
	case "undo":
		if act := br.History.Undo(); act != nil {
			ss.ApplyInverse(act)
			resp.Action = act
		}
	case "redo":
		if act := br.History.Redo(); act != nil {
			ss.ApplyForward(act)
			resp.Action = act
		}
	case "cancel":
		ss.CancelToBaseline()
	case "clear":
		ss.ClearSelection()
	case "center":
		if lc, ok := ss.SelectionCenterLocal(); ok {
			l := subedit.VecOf(lc)
			resp.Local = &l
		}
		if wc, ok := ss.SelectionCenterWorld(); ok {
			w := subedit.VecOf(wc)
			resp.World = &w
		}
	case "info":
		resp.Info = br.info()
	default:
		return fail(req, "unknown op %q", req.Op)
	}
	return resp
}

// info snapshots the session state.
func (br *Bridge) info() *SessionInfo {
	ss := br.Session
	si := &SessionInfo{
		Mesh:      ss.Mesh.Name,
		Vertices:  ss.Mesh.NumVertex(),
		Triangles: ss.Mesh.NumIndex() / 3,
		Verts:     ss.Option("verts"),
		Edges:     ss.Option("edges"),
		Faces:     ss.Option("faces"),
		Explode:   ss.Explode(),
		Accum:     subedit.VecOf(ss.AccumulatedDelta()),
		UndoAvail: br.History.IsUndoAvail(),
		RedoAvail: br.History.IsRedoAvail(),
	}
	for _, se := range ss.Selection() {
		si.Selection = append(si.Selection, se.Key)
	}
	return si
}
