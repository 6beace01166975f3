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

// SetEase sets the ease of every selected hold start and hold step.
type SetEase struct {
	Ease score.EaseType
}

func (op *SetEase) Perform(e gott.Editor) string {
	return changeEases(e, func(step *score.HoldStep) {
		step.Ease = op.Ease
	})
}

// CycleEase advances each selected hold start and hold step to its next ease.
type CycleEase struct{}

func (op *CycleEase) Perform(e gott.Editor) string {
	return changeEases(e, func(step *score.HoldStep) {
		step.Ease = step.Ease.Next()
	})
}

func changeEases(e gott.Editor, change func(step *score.HoldStep)) string {
	notes := selectedNotes(e)
	if len(notes) == 0 {
		return ""
	}
	s := e.GetScore()
	for _, note := range notes {
		switch note.Type {
		case score.NoteHoldStart:
			change(&s.MustHold(note.ID).Start)
		case score.NoteHoldMid:
			if step := stepOf(s, note); step != nil {
				change(step)
			}
		}
	}
	return "Change ease"
}
