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
	"sort"

	"github.com/timburks/chartedit/score"
	gott "github.com/timburks/chartedit/types"
)

// ShrinkSelection packs the selected notes onto consecutive ticks,
// keeping their order. Toward later, the earliest note stays in place;
// toward earlier, the latest does. A shrink that would move a note
// before tick 0 does nothing.
type ShrinkSelection struct {
	Direction score.Direction
}

func (op *ShrinkSelection) Perform(e gott.Editor) string {
	notes := selectedNotes(e)
	if len(notes) < 2 {
		return ""
	}
	sort.SliceStable(notes, func(i, j int) bool {
		if notes[i].Tick == notes[j].Tick {
			return notes[i].Lane < notes[j].Lane
		}
		return notes[i].Tick < notes[j].Tick
	})
	factor := 1
	if op.Direction == score.TowardEarlier {
		for i, j := 0, len(notes)-1; i < j; i, j = i+1, j-1 {
			notes[i], notes[j] = notes[j], notes[i]
		}
		factor = -1
	}
	first := notes[0].Tick
	if first+(len(notes)-1)*factor < 0 {
		return ""
	}
	for i, note := range notes {
		note.Tick = first + i*factor
	}
	s := e.GetScore()
	for _, id := range s.HoldsOf(e.GetSelection()) {
		s.SortHoldSteps(s.MustHold(id))
	}
	return "Shrink notes"
}
