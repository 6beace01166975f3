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

import "fmt"

// Validate checks the structural invariants of a score and returns an error
// describing the first violation it finds.
func (s *Score) Validate() error {
	for _, id := range s.SortedHoldIDs() {
		hold := s.HoldNotes[id]
		if hold.Start.ID != id {
			return fmt.Errorf("hold %d: start references note %d", id, hold.Start.ID)
		}
		start, ok := s.Notes[id]
		if !ok || start.Type != NoteHoldStart {
			return fmt.Errorf("hold %d: start note missing or not a hold start", id)
		}
		end, ok := s.Notes[hold.End]
		if !ok || end.Type != NoteHoldEnd {
			return fmt.Errorf("hold %d: end note %d missing or not a hold end", id, hold.End)
		}
		if end.ParentID != id {
			return fmt.Errorf("hold %d: end note %d has parent %d", id, end.ID, end.ParentID)
		}
		var previous *Note
		for _, step := range hold.Steps {
			mid, ok := s.Notes[step.ID]
			if !ok || mid.Type != NoteHoldMid {
				return fmt.Errorf("hold %d: step %d missing or not a hold mid", id, step.ID)
			}
			if mid.ParentID != id {
				return fmt.Errorf("hold %d: step %d has parent %d", id, mid.ID, mid.ParentID)
			}
			if previous != nil && (mid.Tick < previous.Tick ||
				(mid.Tick == previous.Tick && mid.Lane < previous.Lane)) {
				return fmt.Errorf("hold %d: step %d is out of order", id, mid.ID)
			}
			previous = mid
		}
	}
	for _, id := range s.SortedIDs() {
		note := s.Notes[id]
		if note.ID != id {
			return fmt.Errorf("note %d: stored under key %d", note.ID, id)
		}
		if note.Width < MinNoteWidth {
			return fmt.Errorf("note %d: width %d", id, note.Width)
		}
		switch note.Type {
		case NoteHoldStart:
			if _, ok := s.HoldNotes[id]; !ok {
				return fmt.Errorf("note %d: hold start without a hold", id)
			}
		case NoteHoldMid:
			hold, ok := s.HoldNotes[note.ParentID]
			if !ok || FindHoldStep(hold, id) == -1 {
				return fmt.Errorf("note %d: not a step of hold %d", id, note.ParentID)
			}
		case NoteHoldEnd:
			hold, ok := s.HoldNotes[note.ParentID]
			if !ok || hold.End != id {
				return fmt.Errorf("note %d: not the end of hold %d", id, note.ParentID)
			}
		}
	}
	return nil
}
