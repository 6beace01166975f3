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

package operations

import (
	"github.com/timburks/chartedit/score"
	gott "github.com/timburks/chartedit/types"
)

// DeleteSelection removes the selected notes. Deleting a hold start or end
// removes the whole hold; deleting a mid removes only that step.
type DeleteSelection struct{}

func (op *DeleteSelection) Perform(e gott.Editor) string {
	ids := e.GetSelection()
	if len(ids) == 0 {
		return ""
	}
	s := e.GetScore()
	for _, id := range ids {
		note, ok := s.Notes[id]
		if !ok {
			// already removed with its hold
			continue
		}
		switch note.Type {
		case score.NoteTap:
			s.RemoveNote(id)
		case score.NoteHoldMid:
			if hold, ok := s.HoldNotes[note.ParentID]; ok {
				if pos := score.FindHoldStep(hold, id); pos != -1 {
					hold.Steps = append(hold.Steps[:pos], hold.Steps[pos+1:]...)
				}
			}
			s.RemoveNote(id)
		default:
			holdID := note.HoldID()
			hold := s.MustHold(holdID)
			s.RemoveNote(hold.Start.ID)
			s.RemoveNote(hold.End)
			for _, step := range hold.Steps {
				s.RemoveNote(step.ID)
			}
			delete(s.HoldNotes, holdID)
		}
	}
	e.ClearSelection()
	return "Delete notes"
}
