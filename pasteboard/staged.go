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

package pasteboard

import "github.com/timburks/chartedit/score"

// Staged holds decoded clipboard contents that have not been committed.
// Its notes are numbered from zero, independently of any live score.
type Staged struct {
	Score         *score.Score
	MinLaneOffset int // smallest lane offset that keeps every note in range
	MaxLaneOffset int // largest lane offset that keeps every note in range
	MidLane       int // lane at the middle of the staged notes
	LaneOffset    int // placement chosen by the caller
	TickOffset    int
}

func NewStaged(s *score.Score) *Staged {
	p := &Staged{Score: s}
	p.Bounds()
	return p
}

// Flip mirrors every staged note.
func (p *Staged) Flip() {
	for _, note := range p.Score.Notes {
		score.Flip(note)
	}
	for _, hold := range p.Score.HoldNotes {
		p.Score.SortHoldSteps(hold)
	}
	p.Bounds()
	p.Move(p.LaneOffset, p.TickOffset)
}

// Move sets the placement offsets, keeping the lane offset in range.
func (p *Staged) Move(lane, tick int) {
	p.LaneOffset = score.Clamp(lane, p.MinLaneOffset, p.MaxLaneOffset)
	p.TickOffset = tick
}

// Bounds recomputes the lane offsets that keep the staged notes in range.
func (p *Staged) Bounds() {
	left := score.MaxLane
	right := score.MinLane
	leftmost := score.MaxLane
	rightmost := score.MinLane
	for _, note := range p.Score.Notes {
		leftmost = min(leftmost, note.Lane)
		rightmost = max(rightmost, note.Lane+note.Width-1)
		left = min(left, note.Lane+note.Width)
		right = max(right, note.Lane)
	}
	p.MinLaneOffset = score.MinLane - leftmost
	p.MaxLaneOffset = score.MaxLane - rightmost
	p.MidLane = (left + right) / 2
}

// Remap moves staged notes into the live ID space. Every ID is offset by
// nextID, lanes and ticks by the placement offsets. It returns the remapped
// notes and holds, their IDs in ascending order, and the next free ID.
func Remap(staged *score.Score, nextID, laneOffset, tickOffset int) (*score.Score, []int, int) {
	out := score.New()
	ids := make([]int, 0, len(staged.Notes))
	next := nextID
	for _, id := range staged.SortedIDs() {
		note := *staged.Notes[id]
		note.ID += nextID
		if note.ParentID != score.NoParent {
			note.ParentID += nextID
		}
		note.Lane += laneOffset
		note.Tick += tickOffset
		out.AddNote(&note)
		ids = append(ids, note.ID)
		next = max(next, note.ID+1)
	}
	for _, id := range staged.SortedHoldIDs() {
		hold := staged.HoldNotes[id]
		remapped := &score.HoldNote{
			Start: hold.Start,
			End:   hold.End + nextID,
		}
		remapped.Start.ID += nextID
		for _, step := range hold.Steps {
			step.ID += nextID
			remapped.Steps = append(remapped.Steps, step)
		}
		out.HoldNotes[remapped.Start.ID] = remapped
	}
	return out, ids, next
}
