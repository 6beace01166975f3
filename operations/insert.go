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

// place keeps a note of the given width inside the lanes.
func place(lane, width int) (int, int) {
	width = score.Clamp(width, score.MinNoteWidth, score.MaxNoteWidth)
	lane = score.Clamp(lane, score.MinLane, score.MaxLane-width+1)
	return lane, width
}

// InsertTap adds a tap and selects it.
type InsertTap struct {
	Tick     int
	Lane     int
	Width    int
	Critical bool
	Flick    score.FlickType
}

func (op *InsertTap) Perform(e gott.Editor) string {
	note := score.NewNote(score.NoteTap)
	note.ID = e.NextID()
	note.Tick = max(op.Tick, 0)
	note.Lane, note.Width = place(op.Lane, op.Width)
	note.Critical = op.Critical
	note.Flick = op.Flick
	e.GetScore().AddNote(note)
	e.SetSelection([]int{note.ID})
	return "Insert note"
}

// InsertHold adds a hold with no steps and selects its start and end.
// The end must be later than the start.
type InsertHold struct {
	Tick    int
	Lane    int
	Width   int
	EndTick int
	EndLane int
}

func (op *InsertHold) Perform(e gott.Editor) string {
	tick := max(op.Tick, 0)
	if op.EndTick <= tick {
		return ""
	}
	s := e.GetScore()
	start := score.NewNote(score.NoteHoldStart)
	start.ID = e.NextID()
	start.Tick = tick
	start.Lane, start.Width = place(op.Lane, op.Width)

	end := score.NewNote(score.NoteHoldEnd)
	end.ID = e.NextID()
	end.Tick = op.EndTick
	end.Lane, end.Width = place(op.EndLane, op.Width)
	end.ParentID = start.ID

	s.AddNote(start)
	s.AddNote(end)
	s.HoldNotes[start.ID] = &score.HoldNote{
		Start: score.HoldStep{ID: start.ID, Type: score.StepNormal, Ease: score.EaseLinear},
		End:   end.ID,
	}
	e.SetSelection([]int{start.ID, end.ID})
	return "Insert hold"
}
