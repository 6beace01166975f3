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

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/timburks/chartedit/history"
	"github.com/timburks/chartedit/pasteboard"
	"github.com/timburks/chartedit/score"
	gott "github.com/timburks/chartedit/types"
)

// A ModifiedIndicator displays whether a document has unsaved changes.
type ModifiedIndicator interface {
	SetModified(fileName string, modified bool)
}

// The Editor owns one editing session: the score, the selection, the ID
// counter, the history and any staged paste.
type Editor struct {
	id        uuid.UUID
	logger    *log.Logger
	score     *score.Score         // live document
	working   *score.Score         // working copy while an operation is performed
	selection map[int]bool         // selected note IDs
	nextID    int                  // next note ID, never reused
	history   *history.History     // snapshots for undo and redo
	staged    *pasteboard.Staged   // staged paste, nil when not pasting
	board     pasteboard.Transport // used to cut/copy and paste
	previous  gott.Operation       // last operation performed, available to repeat
	cursor    gott.Cursor
	fileName  string
	upToDate  bool
	stats     score.Stats
	indicator ModifiedIndicator
}

type Option func(*Editor)

// WithHistoryLimit bounds the number of undo entries.
func WithHistoryLimit(limit int) Option {
	return func(e *Editor) {
		e.history = history.New(limit)
	}
}

// WithModifiedIndicator sets the collaborator that shows unsaved changes.
func WithModifiedIndicator(indicator ModifiedIndicator) Option {
	return func(e *Editor) {
		e.indicator = indicator
	}
}

func NewEditor(board pasteboard.Transport, options ...Option) *Editor {
	e := &Editor{
		id:        uuid.New(),
		score:     score.New(),
		selection: make(map[int]bool),
		history:   history.New(0),
		board:     board,
		upToDate:  true,
	}
	e.logger = log.New(log.Writer(), fmt.Sprintf("[%s] ", e.id.String()[:8]), log.Flags())
	for _, option := range options {
		option(e)
	}
	e.stats.Calculate(e.score)
	return e
}

// Perform runs an operation on a working copy of the score. The copy
// replaces the score and is recorded in the history only if the operation
// describes an edit and something actually changed.
func (e *Editor) Perform(op gott.Operation) bool {
	e.working = e.score.Clone()
	description := op.Perform(e)
	working := e.working
	e.working = nil
	// save the operation for repeats
	e.previous = op
	if description == "" || working.Equal(e.score) {
		return false
	}
	previous := e.score
	e.score = working
	e.history.Push(description, previous, working)
	e.logger.Printf("%s (%d notes, %d holds)", description, len(working.Notes), len(working.HoldNotes))
	e.documentChanged()
	return true
}

// Repeat performs the last operation again.
func (e *Editor) Repeat() {
	if e.previous != nil {
		e.Perform(e.previous)
	}
}

func (e *Editor) PerformUndo() bool {
	description := e.history.UndoDescription()
	s, ok := e.history.Undo()
	if !ok {
		return false
	}
	e.logger.Printf("undo %s (%d notes)", description, len(s.Notes))
	e.restore(s)
	return true
}

func (e *Editor) PerformRedo() bool {
	description := e.history.RedoDescription()
	s, ok := e.history.Redo()
	if !ok {
		return false
	}
	e.logger.Printf("redo %s (%d notes)", description, len(s.Notes))
	e.restore(s)
	return true
}

func (e *Editor) restore(s *score.Score) {
	e.score = s
	// IDs are not guaranteed to survive a jump between snapshots
	e.ClearSelection()
	e.documentChanged()
}

func (e *Editor) documentChanged() {
	e.upToDate = false
	e.stats.Calculate(e.score)
	if e.indicator != nil {
		e.indicator.SetModified(e.fileName, true)
	}
}

func (e *Editor) HasUndo() bool {
	return e.history.HasUndo()
}

func (e *Editor) HasRedo() bool {
	return e.history.HasRedo()
}

func (e *Editor) UndoDescription() string {
	return e.history.UndoDescription()
}

func (e *Editor) RedoDescription() string {
	return e.history.RedoDescription()
}

func (e *Editor) SetModifiedIndicator(indicator ModifiedIndicator) {
	e.indicator = indicator
	if indicator != nil {
		indicator.SetModified(e.fileName, !e.upToDate)
	}
}

// GetScore returns the working copy while an operation is performed, and
// the live score otherwise.
func (e *Editor) GetScore() *score.Score {
	if e.working != nil {
		return e.working
	}
	return e.score
}

func (e *Editor) GetStats() score.Stats {
	return e.stats
}

func (e *Editor) IsModified() bool {
	return !e.upToDate
}

func (e *Editor) GetFileName() string {
	return e.fileName
}

func (e *Editor) SetFileName(name string) {
	e.fileName = name
}

// ids

func (e *Editor) NextID() int {
	id := e.nextID
	e.nextID++
	return id
}

func (e *Editor) GetNextID() int {
	return e.nextID
}

// SetNextID advances the ID counter. IDs are never handed out twice, so
// the counter does not move backwards.
func (e *Editor) SetNextID(id int) {
	if id > e.nextID {
		e.nextID = id
	}
}

// pasteboard

func (e *Editor) SetPasteBoard(payload []byte) {
	e.board.Write(payload)
}

func (e *Editor) GetPasteBoard() ([]byte, bool) {
	return e.board.Read()
}

func (e *Editor) GetStaged() *pasteboard.Staged {
	return e.staged
}

func (e *Editor) SetStaged(staged *pasteboard.Staged) {
	e.staged = staged
}

func (e *Editor) IsPasting() bool {
	return e.staged != nil
}

// MovePaste moves staged notes by a number of lanes and ticks.
func (e *Editor) MovePaste(lanes, ticks int) {
	if e.staged != nil {
		e.staged.Move(e.staged.LaneOffset+lanes, e.staged.TickOffset+ticks)
	}
}

// SetPasteOffset places staged notes at a lane offset and a tick.
func (e *Editor) SetPasteOffset(lane, tick int) {
	if e.staged != nil {
		e.staged.Move(lane, tick)
	}
}

// cursor

func (e *Editor) GetCursor() gott.Cursor {
	return e.cursor
}

func (e *Editor) SetCursor(cursor gott.Cursor) {
	cursor.Lane = score.Clamp(cursor.Lane, score.MinLane, score.MaxLane)
	if cursor.Tick < 0 {
		cursor.Tick = 0
	}
	e.cursor = cursor
}

// MoveCursor moves the cursor by one lane or by one row of ticks.
func (e *Editor) MoveCursor(direction int, rowTicks int, multiplier int) {
	cursor := e.cursor
	switch direction {
	case gott.MoveUp:
		cursor.Tick += rowTicks * multiplier
	case gott.MoveDown:
		cursor.Tick -= rowTicks * multiplier
	case gott.MoveLeft:
		cursor.Lane -= multiplier
	case gott.MoveRight:
		cursor.Lane += multiplier
	}
	e.SetCursor(cursor)
}

// NoteAtCursor returns the note covering the cursor lane within one row of
// ticks of the cursor, preferring the lowest ID.
func (e *Editor) NoteAtCursor(rowTicks int) (int, bool) {
	s := e.GetScore()
	for _, id := range s.SortedIDs() {
		note := s.Notes[id]
		if note.Tick >= e.cursor.Tick && note.Tick < e.cursor.Tick+rowTicks &&
			e.cursor.Lane >= note.Lane && e.cursor.Lane < note.Lane+note.Width {
			return id, true
		}
	}
	return 0, false
}
