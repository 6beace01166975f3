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

package types

import (
	"github.com/timburks/chartedit/pasteboard"
	"github.com/timburks/chartedit/score"
)

// Commander modes
const (
	ModeEdit    = 0
	ModePaste   = 1
	ModeCommand = 2
	ModeLisp    = 3
	ModeQuit    = 9999
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// A Cursor is a position in a chart.
type Cursor struct {
	Tick int
	Lane int
}

// Editor is the view of an editing session that operations work through.
// While an operation is being performed, GetScore returns a working copy
// that is committed only if the operation changed it.
type Editor interface {
	GetScore() *score.Score
	GetSelection() []int // ascending
	SetSelection(ids []int)
	ClearSelection()

	NextID() int    // allocates a fresh ID
	GetNextID() int // the next ID that will be allocated
	SetNextID(id int)

	SetPasteBoard(payload []byte)
	GetPasteBoard() ([]byte, bool)
	GetStaged() *pasteboard.Staged
	SetStaged(staged *pasteboard.Staged)
}

// Operation is a single undoable edit.
type Operation interface {
	// Perform applies the operation and returns the description to record
	// in the history, or "" if there is nothing to record.
	Perform(e Editor) string
}

// Document is the read-only view of a session used for display.
type Document interface {
	GetScore() *score.Score
	IsSelected(id int) bool
	GetCursor() Cursor
	GetStaged() *pasteboard.Staged
	GetFileName() string
	IsModified() bool
	GetStats() score.Stats
}

type Commander interface {
	SetMode(int)
	GetMode() int
	GetCommand() string
	GetLispText() string
	GetMessage() string
}
