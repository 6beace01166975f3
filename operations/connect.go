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

// ConnectHolds joins two holds at a selected hold end and hold start.
// The later hold is merged into the earlier one and both boundary notes
// become steps. When the two boundaries coincide they become one step.
type ConnectHolds struct{}

func (op *ConnectHolds) Perform(e gott.Editor) string {
	s := e.GetScore()
	end, start, ok := s.ConnectPair(e.GetSelection())
	if !ok {
		return ""
	}
	earlierHold := s.HoldOf(end)
	laterHold := s.MustHold(start.ID)
	holdStart := s.MustNote(earlierHold.Start.ID)

	earlierHold.End = laterHold.End
	s.MustNote(laterHold.End).ParentID = holdStart.ID
	for _, step := range laterHold.Steps {
		s.MustNote(step.ID).ParentID = holdStart.ID
		earlierHold.Steps = append(earlierHold.Steps, step)
	}

	addMid := func(at *score.Note, t score.StepType, ease score.EaseType) int {
		mid := score.NewNote(score.NoteHoldMid)
		mid.ID = e.NextID()
		mid.Tick = at.Tick
		mid.Lane = at.Lane
		mid.Width = at.Width
		mid.Critical = holdStart.Critical
		mid.ParentID = holdStart.ID
		s.AddNote(mid)
		earlierHold.Steps = append(earlierHold.Steps, score.HoldStep{ID: mid.ID, Type: t, Ease: ease})
		return mid.ID
	}
	var selection []int
	if end.Tick == start.Tick && end.Lane == start.Lane && end.Width == start.Width {
		selection = []int{addMid(start, laterHold.Start.Type, laterHold.Start.Ease)}
	} else {
		selection = []int{
			addMid(end, score.StepNormal, score.EaseLinear),
			addMid(start, laterHold.Start.Type, laterHold.Start.Ease),
		}
	}

	s.RemoveNote(end.ID)
	s.RemoveNote(start.ID)
	delete(s.HoldNotes, start.ID)
	s.SortHoldSteps(earlierHold)
	e.SetSelection(selection)
	return "Connect holds"
}
