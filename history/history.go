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

// Package history keeps whole-score snapshots for undo and redo.
// Snapshots are copied when they are stored and again when they are
// restored, so a stored snapshot never aliases a live score.
package history

import "github.com/timburks/chartedit/score"

type Entry struct {
	Description string
	Before      *score.Score
	After       *score.Score
}

// History is a stack of entries with a current position. Entries below
// the position have been applied; entries at or above it can be redone.
type History struct {
	entries  []Entry
	position int
	limit    int // maximum number of entries, 0 for no limit
}

func New(limit int) *History {
	if limit < 0 {
		limit = 0
	}
	return &History{limit: limit}
}

// Push records an edit and discards anything that could have been redone.
func (h *History) Push(description string, before, after *score.Score) {
	h.entries = append(h.entries[:h.position], Entry{
		Description: description,
		Before:      before.Clone(),
		After:       after.Clone(),
	})
	if h.limit > 0 && len(h.entries) > h.limit {
		drop := len(h.entries) - h.limit
		h.entries = append([]Entry(nil), h.entries[drop:]...)
	}
	h.position = len(h.entries)
}

func (h *History) HasUndo() bool {
	return h.position > 0
}

func (h *History) HasRedo() bool {
	return h.position < len(h.entries)
}

// Undo steps back and returns a copy of the score before the last edit.
func (h *History) Undo() (*score.Score, bool) {
	if !h.HasUndo() {
		return nil, false
	}
	h.position--
	return h.entries[h.position].Before.Clone(), true
}

// Redo steps forward and returns a copy of the score after the next edit.
func (h *History) Redo() (*score.Score, bool) {
	if !h.HasRedo() {
		return nil, false
	}
	h.position++
	return h.entries[h.position-1].After.Clone(), true
}

func (h *History) UndoDescription() string {
	if !h.HasUndo() {
		return ""
	}
	return h.entries[h.position-1].Description
}

func (h *History) RedoDescription() string {
	if !h.HasRedo() {
		return ""
	}
	return h.entries[h.position].Description
}

func (h *History) Len() int {
	return len(h.entries)
}

func (h *History) Clear() {
	h.entries = nil
	h.position = 0
}
