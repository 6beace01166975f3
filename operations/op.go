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

// selectedNotes returns the selected notes of the working score in ID order.
func selectedNotes(e gott.Editor) []*score.Note {
	s := e.GetScore()
	notes := make([]*score.Note, 0)
	for _, id := range e.GetSelection() {
		if note, ok := s.Notes[id]; ok {
			notes = append(notes, note)
		}
	}
	return notes
}

// stepOf returns the hold step that describes a mid note.
func stepOf(s *score.Score, note *score.Note) *score.HoldStep {
	hold := s.HoldOf(note)
	pos := score.FindHoldStep(hold, note.ID)
	if pos == -1 {
		return nil
	}
	return &hold.Steps[pos]
}
