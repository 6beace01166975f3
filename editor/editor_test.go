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
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/timburks/chartedit/operations"
	"github.com/timburks/chartedit/pasteboard"
	"github.com/timburks/chartedit/score"
	gott "github.com/timburks/chartedit/types"
)

const source = "testdata/sample.chart"

func setup(t *testing.T) *Editor {
	editor := NewEditor(pasteboard.NewMemory())
	if err := editor.ReadFile(source); err != nil {
		t.Fatalf("Read failed: %+v", err)
	}
	return editor
}

// moveNote shifts one note by a number of lanes.
type moveNote struct {
	id    int
	lanes int
}

func (op *moveNote) Perform(e gott.Editor) string {
	if note, ok := e.GetScore().Notes[op.id]; ok {
		note.Lane += op.lanes
	}
	return "Move note"
}

type indicator struct {
	fileName string
	modified bool
	calls    int
}

func (i *indicator) SetModified(fileName string, modified bool) {
	i.fileName = fileName
	i.modified = modified
	i.calls++
}

// read and write a file without changing it
func TestReadWriteInvariance(t *testing.T) {
	editor := setup(t)
	out := filepath.Join(t.TempDir(), "final.chart")
	if err := editor.WriteFile(out); err != nil {
		t.Fatalf("Write failed: %+v", err)
	}
	other := NewEditor(pasteboard.NewMemory())
	if err := other.ReadFile(out); err != nil {
		t.Fatalf("Reread failed: %+v", err)
	}
	if !other.GetScore().Equal(editor.GetScore()) {
		t.Errorf("Score changed by a write and read")
	}
	// a second write is byte for byte the same
	again := filepath.Join(t.TempDir(), "again.chart")
	if err := other.WriteFile(again); err != nil {
		t.Fatalf("Write failed: %+v", err)
	}
	if err := exec.Command("diff", out, again).Run(); err != nil {
		t.Errorf("Diff failed: %+v", err)
	}
}

func stepCriticals(s *score.Score) map[int]bool {
	criticals := make(map[int]bool)
	for _, note := range s.Notes {
		if note.Type == score.NoteHoldMid {
			criticals[note.Tick] = note.Critical
		}
	}
	return criticals
}

// a merged hold keeps the critical flag of each of its steps
func TestWriteKeepsStepCriticals(t *testing.T) {
	editor := setup(t)
	editor.SetSelection([]int{4})
	editor.Perform(&operations.ToggleCriticals{})
	editor.Perform(&operations.InsertHold{Tick: 0, Lane: 0, Width: 2, EndTick: 240})
	editor.SetSelection([]int{9, 2})
	if !editor.Perform(&operations.ConnectHolds{}) {
		t.Fatalf("Connect failed")
	}
	before := stepCriticals(editor.GetScore())
	if !before[960] || before[240] {
		t.Fatalf("Unexpected step criticals before writing: %v", before)
	}
	out := filepath.Join(t.TempDir(), "merged.chart")
	if err := editor.WriteFile(out); err != nil {
		t.Fatalf("Write failed: %+v", err)
	}
	other := NewEditor(pasteboard.NewMemory())
	if err := other.ReadFile(out); err != nil {
		t.Fatalf("Reread failed: %+v", err)
	}
	after := stepCriticals(other.GetScore())
	if len(after) != len(before) {
		t.Fatalf("Expected %d steps, got %d", len(before), len(after))
	}
	for tick, critical := range before {
		if after[tick] != critical {
			t.Errorf("Step at tick %d: critical %v became %v", tick, critical, after[tick])
		}
	}
}

func TestReadRejectsBrokenFiles(t *testing.T) {
	editor := NewEditor(pasteboard.NewMemory())
	if err := editor.ReadFile("testdata/missing.chart"); err == nil {
		t.Errorf("Expected an error for a missing file")
	}
	if err := editor.ReadFile("editor.go"); err == nil {
		t.Errorf("Expected an error for a file that is not a chart")
	}
}

func TestPerformAndUndo(t *testing.T) {
	editor := setup(t)
	if editor.IsModified() {
		t.Errorf("New document is modified")
	}
	editor.Perform(&moveNote{id: 0, lanes: 1})
	if lane := editor.GetScore().Notes[0].Lane; lane != 3 {
		t.Errorf("Unexpected lane after move: %d", lane)
	}
	if !editor.IsModified() || editor.UndoDescription() != "Move note" {
		t.Errorf("Move not recorded")
	}
	editor.SetSelection([]int{0, 1, 99})
	if ids := editor.GetSelection(); len(ids) != 2 {
		t.Errorf("Selection kept unknown IDs: %v", ids)
	}
	editor.PerformUndo()
	if lane := editor.GetScore().Notes[0].Lane; lane != 2 {
		t.Errorf("Unexpected lane after undo: %d", lane)
	}
	if editor.SelectionCount() != 0 {
		t.Errorf("Undo did not clear the selection")
	}
	if editor.HasUndo() || !editor.HasRedo() || editor.RedoDescription() != "Move note" {
		t.Errorf("Unexpected history after undo")
	}
	editor.PerformRedo()
	if lane := editor.GetScore().Notes[0].Lane; lane != 3 {
		t.Errorf("Unexpected lane after redo: %d", lane)
	}
	// a new edit drops the redo tail
	editor.PerformUndo()
	editor.Perform(&moveNote{id: 1, lanes: -1})
	if editor.HasRedo() {
		t.Errorf("Redo still available after a new edit")
	}
}

func TestUnchangedScoreRecordsNothing(t *testing.T) {
	editor := setup(t)
	editor.Perform(&moveNote{id: 0, lanes: 0})
	editor.Perform(&moveNote{id: 42, lanes: 1})
	if editor.HasUndo() || editor.IsModified() {
		t.Errorf("Operation without a change was recorded")
	}
}

func TestRepeat(t *testing.T) {
	editor := setup(t)
	editor.Perform(&moveNote{id: 1, lanes: 1})
	editor.Repeat()
	if lane := editor.GetScore().Notes[1].Lane; lane != 10 {
		t.Errorf("Unexpected lane after repeat: %d", lane)
	}
}

func TestHistoryLimit(t *testing.T) {
	editor := NewEditor(pasteboard.NewMemory(), WithHistoryLimit(2))
	if err := editor.ReadFile(source); err != nil {
		t.Fatalf("Read failed: %+v", err)
	}
	for i := 0; i < 4; i++ {
		editor.Perform(&moveNote{id: 1, lanes: -1})
	}
	editor.PerformUndo()
	editor.PerformUndo()
	editor.PerformUndo()
	if lane := editor.GetScore().Notes[1].Lane; lane != 6 {
		t.Errorf("Unexpected lane after undoing past the limit: %d", lane)
	}
}

func TestModifiedIndicator(t *testing.T) {
	i := &indicator{}
	editor := NewEditor(pasteboard.NewMemory(), WithModifiedIndicator(i))
	if err := editor.ReadFile(source); err != nil {
		t.Fatalf("Read failed: %+v", err)
	}
	if i.modified || i.fileName != source {
		t.Errorf("Unexpected indicator after read: %+v", i)
	}
	editor.Perform(&moveNote{id: 0, lanes: 1})
	if !i.modified {
		t.Errorf("Indicator not set after an edit")
	}
	if err := editor.WriteFile(filepath.Join(t.TempDir(), "out.chart")); err != nil {
		t.Fatalf("Write failed: %+v", err)
	}
	if i.modified {
		t.Errorf("Indicator still set after a write")
	}
}

func TestStatsFollowEdits(t *testing.T) {
	editor := setup(t)
	stats := editor.GetStats()
	if stats.Total != 8 || stats.Holds != 2 || stats.Steps != 2 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}

func TestNextIDNeverMovesBack(t *testing.T) {
	editor := setup(t)
	if id := editor.GetNextID(); id != 8 {
		t.Errorf("Unexpected next ID after read: %d", id)
	}
	editor.SetNextID(3)
	if id := editor.NextID(); id != 8 {
		t.Errorf("Next ID moved backwards: %d", id)
	}
	if id := editor.GetNextID(); id != 9 {
		t.Errorf("ID counter not advanced: %d", id)
	}
}

func TestCursor(t *testing.T) {
	editor := setup(t)
	editor.MoveCursor(gott.MoveLeft, 120, 1)
	editor.MoveCursor(gott.MoveDown, 120, 3)
	if cursor := editor.GetCursor(); cursor.Lane != 0 || cursor.Tick != 0 {
		t.Errorf("Cursor left the chart: %+v", cursor)
	}
	editor.MoveCursor(gott.MoveRight, 120, 20)
	editor.MoveCursor(gott.MoveUp, 120, 2)
	if cursor := editor.GetCursor(); cursor.Lane != 11 || cursor.Tick != 240 {
		t.Errorf("Unexpected cursor: %+v", cursor)
	}
	editor.SetCursor(gott.Cursor{Tick: 240, Lane: 9})
	if id, ok := editor.NoteAtCursor(120); !ok || id != 1 {
		t.Errorf("Expected note 1 at the cursor, got %d %t", id, ok)
	}
	editor.SetCursor(gott.Cursor{Tick: 240, Lane: 0})
	if _, ok := editor.NoteAtCursor(120); ok {
		t.Errorf("Found a note in an empty lane")
	}
}
