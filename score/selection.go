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

import "sort"

// These queries answer questions about a set of selected note IDs.
// IDs that are not in the score are ignored.

func (s *Score) any(ids []int, f func(*Note) bool) bool {
	for _, id := range ids {
		if note, ok := s.Notes[id]; ok && f(note) {
			return true
		}
	}
	return false
}

// HasEase reports whether any selected note carries an ease.
func (s *Score) HasEase(ids []int) bool {
	return s.any(ids, func(n *Note) bool { return n.HasEase() })
}

// HasStep reports whether any selected note is a hold mid.
func (s *Score) HasStep(ids []int) bool {
	return s.any(ids, func(n *Note) bool { return n.Type == NoteHoldMid })
}

// HasFlickable reports whether any selected note can take a flick.
func (s *Score) HasFlickable(ids []int) bool {
	return s.any(ids, func(n *Note) bool { return !n.HasEase() })
}

// ConnectPair returns the hold end and hold start that a two-note selection
// would join, and false if the selection cannot be connected.
func (s *Score) ConnectPair(ids []int) (end *Note, start *Note, ok bool) {
	if len(ids) != 2 {
		return nil, nil, false
	}
	n1, ok1 := s.Notes[ids[0]]
	n2, ok2 := s.Notes[ids[1]]
	if !ok1 || !ok2 {
		return nil, nil, false
	}
	if n1.Tick == n2.Tick {
		switch {
		case n1.Type == NoteHoldEnd && n2.Type == NoteHoldStart:
			end, start = n1, n2
		case n1.Type == NoteHoldStart && n2.Type == NoteHoldEnd:
			end, start = n2, n1
		default:
			return nil, nil, false
		}
	} else {
		earlier, later := n1, n2
		if n2.Tick < n1.Tick {
			earlier, later = n2, n1
		}
		if earlier.Type != NoteHoldEnd || later.Type != NoteHoldStart {
			return nil, nil, false
		}
		end, start = earlier, later
	}
	// a hold can't be connected to itself
	if end.ParentID == start.ID {
		return nil, nil, false
	}
	return end, start, true
}

// CanConnect reports whether a selection can be joined into one hold.
func (s *Score) CanConnect(ids []int) bool {
	_, _, ok := s.ConnectPair(ids)
	return ok
}

// CanSplit reports whether a selection is a single hold mid.
func (s *Score) CanSplit(ids []int) bool {
	if len(ids) != 1 {
		return false
	}
	note, ok := s.Notes[ids[0]]
	return ok && note.Type == NoteHoldMid
}

// HoldsOf returns the start IDs of the holds touched by a selection.
func (s *Score) HoldsOf(ids []int) []int {
	seen := make(map[int]bool)
	holds := make([]int, 0)
	for _, id := range ids {
		note, ok := s.Notes[id]
		if !ok || !note.IsHold() {
			continue
		}
		holdID := note.HoldID()
		if _, ok := s.HoldNotes[holdID]; ok && !seen[holdID] {
			seen[holdID] = true
			holds = append(holds, holdID)
		}
	}
	sort.Ints(holds)
	return holds
}

// MinTick returns the earliest tick in a selection.
func (s *Score) MinTick(ids []int) (int, bool) {
	found := false
	min := 0
	for _, id := range ids {
		note, ok := s.Notes[id]
		if !ok {
			continue
		}
		if !found || note.Tick < min {
			min = note.Tick
			found = true
		}
	}
	return min, found
}
