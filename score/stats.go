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

package score

// Stats summarizes the contents of a score.
type Stats struct {
	Taps      int
	Flicks    int
	Holds     int
	Steps     int
	Criticals int
	Total     int
}

// Calculate recomputes the counts from a score.
func (st *Stats) Calculate(s *Score) {
	*st = Stats{}
	for _, note := range s.Notes {
		st.Total++
		if note.Critical {
			st.Criticals++
		}
		if note.IsFlick() {
			st.Flicks++
		}
		switch note.Type {
		case NoteTap:
			st.Taps++
		case NoteHoldMid:
			st.Steps++
		}
	}
	st.Holds = len(s.HoldNotes)
}
