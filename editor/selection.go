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

package editor

import "sort"

// The selection holds note IDs only. It is cleared whenever the notes it
// refers to might have been replaced.

func (e *Editor) GetSelection() []int {
	ids := make([]int, 0, len(e.selection))
	for id := range e.selection {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// SetSelection replaces the selection, ignoring IDs that are not in the score.
func (e *Editor) SetSelection(ids []int) {
	e.selection = make(map[int]bool)
	e.Select(ids...)
}

func (e *Editor) ClearSelection() {
	e.selection = make(map[int]bool)
}

func (e *Editor) Select(ids ...int) {
	s := e.GetScore()
	for _, id := range ids {
		if _, ok := s.Notes[id]; ok {
			e.selection[id] = true
		}
	}
}

func (e *Editor) Deselect(ids ...int) {
	for _, id := range ids {
		delete(e.selection, id)
	}
}

func (e *Editor) ToggleSelect(id int) {
	if e.selection[id] {
		e.Deselect(id)
	} else {
		e.Select(id)
	}
}

func (e *Editor) SelectAll() {
	e.SetSelection(e.GetScore().SortedIDs())
}

func (e *Editor) IsSelected(id int) bool {
	return e.selection[id]
}

func (e *Editor) SelectionCount() int {
	return len(e.selection)
}

func (e *Editor) SelectionHasEase() bool {
	return e.GetScore().HasEase(e.GetSelection())
}

func (e *Editor) SelectionHasStep() bool {
	return e.GetScore().HasStep(e.GetSelection())
}

func (e *Editor) SelectionHasFlickable() bool {
	return e.GetScore().HasFlickable(e.GetSelection())
}

func (e *Editor) SelectionCanConnect() bool {
	return e.GetScore().CanConnect(e.GetSelection())
}

func (e *Editor) SelectionCanSplit() bool {
	return e.GetScore().CanSplit(e.GetSelection())
}
