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
	"fmt"

	"github.com/timburks/chartedit/score"
	gott "github.com/timburks/chartedit/types"
)

// SplitHold cuts a hold in two at the selected step. The step becomes the
// end of the first hold and the start of the second.
type SplitHold struct{}

func (op *SplitHold) Perform(e gott.Editor) string {
	s := e.GetScore()
	ids := e.GetSelection()
	if !s.CanSplit(ids) {
		return ""
	}
	note := s.MustNote(ids[0])
	hold := s.HoldOf(note)
	pos := score.FindHoldStep(hold, note.ID)
	if pos == -1 {
		panic(fmt.Sprintf("operations: step %d missing from hold %d", note.ID, hold.Start.ID))
	}
	step := hold.Steps[pos]
	holdStart := s.MustNote(hold.Start.ID)

	newEnd := score.NewNote(score.NoteHoldEnd)
	newEnd.ID = e.NextID()
	newEnd.Tick = note.Tick
	newEnd.Lane = note.Lane
	newEnd.Width = note.Width
	newEnd.Critical = note.Critical
	newEnd.ParentID = holdStart.ID

	newStart := score.NewNote(score.NoteHoldStart)
	newStart.ID = e.NextID()
	newStart.Tick = note.Tick
	newStart.Lane = note.Lane
	newStart.Width = note.Width
	newStart.Critical = holdStart.Critical

	newHold := &score.HoldNote{
		Start: score.HoldStep{ID: newStart.ID, Type: step.Type, Ease: step.Ease},
		End:   hold.End,
	}
	s.MustNote(hold.End).ParentID = newStart.ID
	for _, later := range hold.Steps[pos+1:] {
		s.MustNote(later.ID).ParentID = newStart.ID
		newHold.Steps = append(newHold.Steps, later)
	}
	hold.Steps = append([]score.HoldStep(nil), hold.Steps[:pos]...)
	hold.End = newEnd.ID

	s.RemoveNote(note.ID)
	s.AddNote(newEnd)
	s.AddNote(newStart)
	s.HoldNotes[newStart.ID] = newHold
	s.SortHoldSteps(hold)
	s.SortHoldSteps(newHold)
	e.SetSelection([]int{newStart.ID, newEnd.ID})
	return "Split hold"
}
