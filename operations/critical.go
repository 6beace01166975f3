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

// ToggleCriticals toggles the critical flag of the selected notes.
// Taps toggle on their own. A flicking hold end toggles on its own unless
// its hold is critical, in which case it stays critical. Any other selected
// hold note toggles its whole hold, following the hold start.
type ToggleCriticals struct{}

func (op *ToggleCriticals) Perform(e gott.Editor) string {
	notes := selectedNotes(e)
	if len(notes) == 0 {
		return ""
	}
	s := e.GetScore()
	holds := make([]int, 0)
	seen := make(map[int]bool)
	for _, note := range notes {
		switch {
		case note.Type == score.NoteTap:
			note.Critical = !note.Critical
		case note.Type == score.NoteHoldEnd && note.IsFlick():
			if s.MustNote(note.ParentID).Critical {
				note.Critical = true
			} else {
				note.Critical = !note.Critical
			}
		default:
			id := note.HoldID()
			if !seen[id] {
				seen[id] = true
				holds = append(holds, id)
			}
		}
	}
	for _, id := range holds {
		hold := s.MustHold(id)
		critical := !s.MustNote(hold.Start.ID).Critical
		s.MustNote(hold.Start.ID).Critical = critical
		s.MustNote(hold.End).Critical = critical
		for _, step := range hold.Steps {
			s.MustNote(step.ID).Critical = critical
		}
	}
	return "Change note"
}
