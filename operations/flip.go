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

// FlipSelection mirrors the selected notes across the lanes.
// Steps that share a tick are reordered by their new lanes.
type FlipSelection struct{}

func (op *FlipSelection) Perform(e gott.Editor) string {
	notes := selectedNotes(e)
	if len(notes) == 0 {
		return ""
	}
	for _, note := range notes {
		score.Flip(note)
	}
	s := e.GetScore()
	for _, id := range s.HoldsOf(e.GetSelection()) {
		s.SortHoldSteps(s.MustHold(id))
	}
	return "Flip notes"
}
