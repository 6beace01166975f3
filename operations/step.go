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

// SetStepType sets the step type of every selected hold step.
type SetStepType struct {
	Type score.StepType
}

func (op *SetStepType) Perform(e gott.Editor) string {
	return changeSteps(e, func(step *score.HoldStep) {
		step.Type = op.Type
	})
}

// CycleStepType advances each selected hold step to its next step type.
type CycleStepType struct{}

func (op *CycleStepType) Perform(e gott.Editor) string {
	return changeSteps(e, func(step *score.HoldStep) {
		step.Type = step.Type.Next()
	})
}

func changeSteps(e gott.Editor, change func(step *score.HoldStep)) string {
	notes := selectedNotes(e)
	if len(notes) == 0 {
		return ""
	}
	s := e.GetScore()
	for _, note := range notes {
		if note.Type != score.NoteHoldMid {
			continue
		}
		if step := stepOf(s, note); step != nil {
			change(step)
		}
	}
	return "Change step type"
}
