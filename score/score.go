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

package score

import (
	"fmt"
	"sort"

	"golang.org/x/exp/constraints"
)

// NoParent marks a note that does not belong to a hold.
const NoParent = -1

// A Note is a single point in a chart.
type Note struct {
	ID       int
	Tick     int
	Lane     int
	Width    int
	Type     NoteType
	Critical bool
	Flick    FlickType
	ParentID int // start ID of the owning hold, for mids and ends
}

// NewNote returns a note of the given type with no parent.
func NewNote(t NoteType) *Note {
	return &Note{Type: t, Width: MinNoteWidth, ParentID: NoParent}
}

// HasEase reports whether the note carries an ease curve.
func (n *Note) HasEase() bool {
	return n.Type == NoteHoldStart || n.Type == NoteHoldMid
}

// IsFlick reports whether the note requires a flick.
func (n *Note) IsFlick() bool {
	return n.Flick != FlickNone && !n.HasEase()
}

// IsHold reports whether the note is part of a hold.
func (n *Note) IsHold() bool {
	return n.Type != NoteTap
}

// HoldID returns the start ID of the hold that owns the note.
func (n *Note) HoldID() int {
	if n.Type == NoteHoldStart {
		return n.ID
	}
	return n.ParentID
}

// A HoldStep attaches a step type and an ease to a hold point.
type HoldStep struct {
	ID   int
	Type StepType
	Ease EaseType
}

// A HoldNote ties a start, an end and any number of steps into one hold.
// The steps slice is the only record of which mids belong to the hold.
type HoldNote struct {
	Start HoldStep
	End   int
	Steps []HoldStep
}

func (h *HoldNote) clone() *HoldNote {
	c := &HoldNote{Start: h.Start, End: h.End}
	if h.Steps != nil {
		c.Steps = make([]HoldStep, len(h.Steps))
		copy(c.Steps, h.Steps)
	}
	return c
}

func (h *HoldNote) equal(other *HoldNote) bool {
	if h.Start != other.Start || h.End != other.End || len(h.Steps) != len(other.Steps) {
		return false
	}
	for i := range h.Steps {
		if h.Steps[i] != other.Steps[i] {
			return false
		}
	}
	return true
}

// A Score is a chart document.
type Score struct {
	Notes     map[int]*Note
	HoldNotes map[int]*HoldNote // keyed by the hold's start note ID
}

func New() *Score {
	return &Score{
		Notes:     make(map[int]*Note),
		HoldNotes: make(map[int]*HoldNote),
	}
}

// Clone returns a deep copy that shares nothing with s.
func (s *Score) Clone() *Score {
	c := &Score{
		Notes:     make(map[int]*Note, len(s.Notes)),
		HoldNotes: make(map[int]*HoldNote, len(s.HoldNotes)),
	}
	for id, note := range s.Notes {
		n := *note
		c.Notes[id] = &n
	}
	for id, hold := range s.HoldNotes {
		c.HoldNotes[id] = hold.clone()
	}
	return c
}

// Equal reports whether two scores hold the same notes and holds.
func (s *Score) Equal(other *Score) bool {
	if len(s.Notes) != len(other.Notes) || len(s.HoldNotes) != len(other.HoldNotes) {
		return false
	}
	for id, note := range s.Notes {
		o, ok := other.Notes[id]
		if !ok || *o != *note {
			return false
		}
	}
	for id, hold := range s.HoldNotes {
		o, ok := other.HoldNotes[id]
		if !ok || !hold.equal(o) {
			return false
		}
	}
	return true
}

// MustNote returns a note that the data model guarantees to exist.
func (s *Score) MustNote(id int) *Note {
	note, ok := s.Notes[id]
	if !ok {
		panic(fmt.Sprintf("score: missing note %d", id))
	}
	return note
}

// MustHold returns a hold that the data model guarantees to exist.
func (s *Score) MustHold(id int) *HoldNote {
	hold, ok := s.HoldNotes[id]
	if !ok {
		panic(fmt.Sprintf("score: missing hold %d", id))
	}
	return hold
}

// HoldOf returns the hold that owns a hold note.
func (s *Score) HoldOf(note *Note) *HoldNote {
	return s.MustHold(note.HoldID())
}

// AddNote inserts or replaces a note.
func (s *Score) AddNote(note *Note) {
	s.Notes[note.ID] = note
}

// RemoveNote deletes a note. Holds that refer to it are left to the caller.
func (s *Score) RemoveNote(id int) {
	delete(s.Notes, id)
}

// Insert adds the notes and holds of another score, replacing any with the same IDs.
func (s *Score) Insert(other *Score) {
	for id, note := range other.Notes {
		n := *note
		s.Notes[id] = &n
	}
	for id, hold := range other.HoldNotes {
		s.HoldNotes[id] = hold.clone()
	}
}

// FindHoldStep returns the index of the step with the given ID, or -1.
func FindHoldStep(hold *HoldNote, id int) int {
	for i, step := range hold.Steps {
		if step.ID == id {
			return i
		}
	}
	return -1
}

// SortHoldSteps orders the steps of a hold by tick, then lane.
func (s *Score) SortHoldSteps(hold *HoldNote) {
	sort.SliceStable(hold.Steps, func(i, j int) bool {
		a := s.MustNote(hold.Steps[i].ID)
		b := s.MustNote(hold.Steps[j].ID)
		if a.Tick == b.Tick {
			return a.Lane < b.Lane
		}
		return a.Tick < b.Tick
	})
}

// Flip mirrors a note across the lane range and swaps left and right flicks.
func Flip(note *Note) {
	note.Lane = MaxLane - note.Lane - note.Width + 1
	note.Flick = note.Flick.Mirror()
}

// SortedIDs returns the note IDs of the score in ascending order.
func (s *Score) SortedIDs() []int {
	ids := make([]int, 0, len(s.Notes))
	for id := range s.Notes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// SortedHoldIDs returns the hold start IDs of the score in ascending order.
func (s *Score) SortedHoldIDs() []int {
	ids := make([]int, 0, len(s.HoldNotes))
	for id := range s.HoldNotes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Clamp limits v to the range [lo, hi].
func Clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
