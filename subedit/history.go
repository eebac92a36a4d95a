// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subedit

// History is an undo/redo stack of committed actions. The stack only
// stores records; the caller applies them through
// [Session.ApplyInverse] and [Session.ApplyForward]. The zero value
// is usable. No locking: the stack follows the same single-threaded
// cooperative model as the session.
type History struct {

	// Idx is the index of the record that will be undone next;
	// -1 when everything has been undone.
	Idx int

	// Recs are the committed action records.
	Recs []*Action
}

// Save adds a new record as the next action to be undone, discarding
// any redo tail beyond the current position. A nil action is ignored.
func (hs *History) Save(act *Action) {
	if act == nil {
		return
	}
	if hs.Recs == nil {
		hs.Recs = []*Action{act}
		hs.Idx = 0
		return
	}
	hs.Idx++
	if len(hs.Recs) > hs.Idx {
		hs.Recs = hs.Recs[:hs.Idx+1]
		hs.Recs[hs.Idx] = act
	} else {
		hs.Recs = append(hs.Recs, act)
	}
}

// IsUndoAvail reports whether there is a record to undo.
func (hs *History) IsUndoAvail() bool {
	return hs.Idx >= 0 && hs.Idx < len(hs.Recs)
}

// IsRedoAvail reports whether there is a record to redo.
func (hs *History) IsRedoAvail() bool {
	return hs.Idx < len(hs.Recs)-1
}

// Undo returns the record to invert and moves the cursor back;
// nil if already at the start.
func (hs *History) Undo() *Action {
	if !hs.IsUndoAvail() {
		return nil
	}
	act := hs.Recs[hs.Idx]
	hs.Idx--
	return act
}

// Redo moves the cursor forward and returns the record to re-apply;
// nil if already at the end.
func (hs *History) Redo() *Action {
	if !hs.IsRedoAvail() {
		return nil
	}
	hs.Idx++
	return hs.Recs[hs.Idx]
}

// Reset clears the stack.
func (hs *History) Reset() {
	hs.Recs = nil
	hs.Idx = -1
}
