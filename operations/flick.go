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

// SetFlick sets the flick of every selected note that can be flicked.
type SetFlick struct {
	Flick score.FlickType
}

func (op *SetFlick) Perform(e gott.Editor) string {
	return changeFlicks(e, func(note *score.Note) {
		note.Flick = op.Flick
	})
}

// CycleFlick advances each flickable selected note to its next flick.
type CycleFlick struct{}

func (op *CycleFlick) Perform(e gott.Editor) string {
	return changeFlicks(e, func(note *score.Note) {
		note.Flick = note.Flick.Next()
	})
}

// Notes with an ease (hold starts and mids) are never flicked.
func changeFlicks(e gott.Editor, change func(note *score.Note)) string {
	notes := selectedNotes(e)
	if len(notes) == 0 {
		return ""
	}
	for _, note := range notes {
		if !note.HasEase() {
			change(note)
		}
	}
	return "Change flick"
}
