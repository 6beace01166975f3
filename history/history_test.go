//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package history

import (
	"testing"

	"github.com/timburks/chartedit/score"
)

// version returns a score with n taps.
func version(n int) *score.Score {
	s := score.New()
	for i := 0; i < n; i++ {
		note := score.NewNote(score.NoteTap)
		note.ID = i
		s.AddNote(note)
	}
	return s
}

func TestUndoRedo(t *testing.T) {
	h := New(0)
	if _, ok := h.Undo(); ok {
		t.Errorf("Undo on an empty history should do nothing")
	}
	h.Push("one", version(0), version(1))
	h.Push("two", version(1), version(2))
	if h.UndoDescription() != "two" {
		t.Errorf("Unexpected undo description: %s", h.UndoDescription())
	}
	s, ok := h.Undo()
	if !ok || len(s.Notes) != 1 {
		t.Errorf("Unexpected undo result: %+v", s)
	}
	s, _ = h.Undo()
	if len(s.Notes) != 0 {
		t.Errorf("Unexpected undo result: %d notes", len(s.Notes))
	}
	if _, ok := h.Undo(); ok {
		t.Errorf("Undo at the oldest position should do nothing")
	}
	if h.RedoDescription() != "one" {
		t.Errorf("Unexpected redo description: %s", h.RedoDescription())
	}
	h.Redo()
	s, ok = h.Redo()
	if !ok || len(s.Notes) != 2 {
		t.Errorf("Unexpected redo result: %+v", s)
	}
	if _, ok := h.Redo(); ok {
		t.Errorf("Redo at the newest position should do nothing")
	}
}

func TestPushTruncatesRedo(t *testing.T) {
	h := New(0)
	h.Push("one", version(0), version(1))
	h.Push("two", version(1), version(2))
	h.Undo()
	h.Push("three", version(1), version(3))
	if h.Len() != 2 || h.HasRedo() {
		t.Errorf("Push should discard the redo tail: %d entries", h.Len())
	}
	if h.UndoDescription() != "three" {
		t.Errorf("Unexpected undo description: %s", h.UndoDescription())
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	h := New(0)
	before, after := version(1), version(2)
	h.Push("edit", before, after)
	after.Notes[0].Lane = 5
	s, _ := h.Undo()
	s.Notes[0].Lane = 7
	s, _ = h.Redo()
	if s.Notes[0].Lane != 0 {
		t.Errorf("Stored snapshot was modified: lane %d", s.Notes[0].Lane)
	}
}

func TestLimit(t *testing.T) {
	h := New(2)
	h.Push("one", version(0), version(1))
	h.Push("two", version(1), version(2))
	h.Push("three", version(2), version(3))
	if h.Len() != 2 {
		t.Errorf("Unexpected length: %d", h.Len())
	}
	h.Undo()
	s, _ := h.Undo()
	if len(s.Notes) != 1 || h.HasUndo() {
		t.Errorf("Oldest entry should have been dropped")
	}
}
