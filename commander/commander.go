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

package commander

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/timburks/chartedit/config"
	"github.com/timburks/chartedit/editor"
	"github.com/timburks/chartedit/operations"
	"github.com/timburks/chartedit/score"
	gott "github.com/timburks/chartedit/types"
)

// rows moved by page up and page down
const pageRows = 16

// The Commander converts user input into operations for the Editor.
type Commander struct {
	editor     *editor.Editor
	mode       int    // editor mode
	debug      bool   // debug mode displays information about events (key codes, etc)
	command    string // command as it is being typed on the command line
	lispText   string // lisp command as it is being typed
	message    string // status message
	multiplier string // multiplier string as it is being entered
	rowTicks   int    // ticks per row for cursor movement
	noteWidth  int    // width of inserted notes
}

func NewCommander(e *editor.Editor) *Commander {
	c := &Commander{
		editor:    e,
		mode:      gott.ModeEdit,
		rowTicks:  config.DefaultRowTicks,
		noteWidth: 3,
	}
	active = c
	return c
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetMode(m int) {
	c.mode = m
}

func (c *Commander) SetDebug(debug bool) {
	c.debug = debug
}

func (c *Commander) SetRowTicks(ticks int) {
	c.rowTicks = score.Clamp(ticks, config.MinRowTicks, config.MaxRowTicks)
}

func (c *Commander) GetRowTicks() int {
	return c.rowTicks
}

func (c *Commander) ProcessEvent(event *gott.Event) error {
	if c.debug {
		c.message = fmt.Sprintf("event=%+v", event)
	}
	switch event.Type {
	case gott.EventKey:
		return c.ProcessKey(event)
	case gott.EventResize:
		return c.ProcessResize(event)
	default:
		return nil
	}
}

func (c *Commander) ProcessResize(event *gott.Event) error {
	return nil
}

func (c *Commander) ProcessKey(event *gott.Event) error {
	var err error
	switch c.mode {
	case gott.ModeEdit:
		err = c.ProcessKeyEditMode(event)
	case gott.ModePaste:
		err = c.ProcessKeyPasteMode(event)
	case gott.ModeCommand:
		err = c.ProcessKeyCommandMode(event)
	case gott.ModeLisp:
		err = c.ProcessKeyLispMode(event)
	}
	return err
}

// perform runs an operation and reports the result on the message bar.
func (c *Commander) perform(op gott.Operation) bool {
	changed := c.editor.Perform(op)
	if changed {
		c.message = c.editor.UndoDescription()
	}
	return changed
}

func (c *Commander) move(direction int) {
	c.editor.MoveCursor(direction, c.rowTicks, c.Multiplier())
}

func (c *Commander) ProcessKeyEditMode(event *gott.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case gott.KeyEsc:
			e.SetStaged(nil)
			e.ClearSelection()
			c.message = ""
		case gott.KeyPgup:
			e.MoveCursor(gott.MoveUp, c.rowTicks, pageRows*c.Multiplier())
		case gott.KeyPgdn:
			e.MoveCursor(gott.MoveDown, c.rowTicks, pageRows*c.Multiplier())
		case gott.KeyArrowUp:
			c.move(gott.MoveUp)
		case gott.KeyArrowDown:
			c.move(gott.MoveDown)
		case gott.KeyArrowLeft:
			c.move(gott.MoveLeft)
		case gott.KeyArrowRight:
			c.move(gott.MoveRight)
		case gott.KeySpace:
			c.toggleAtCursor()
		case gott.KeyCtrlR:
			for i := c.Multiplier(); i > 0; i-- {
				c.redo()
			}
		}
	}
	if ch != 0 {
		switch ch {
		//
		// command multipliers apply to movement, undo and redo
		//
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			c.multiplier += string(ch)
		//
		// commands go to the message bar
		//
		case ':':
			c.mode = gott.ModeCommand
			c.command = ""
		//
		// lisp commands go to the message bar
		//
		case '(':
			c.mode = gott.ModeLisp
			c.lispText = "("
		//
		// cursor movement and selection aren't recorded
		//
		case 'h':
			c.move(gott.MoveLeft)
		case 'j':
			c.move(gott.MoveDown)
		case 'k':
			c.move(gott.MoveUp)
		case 'l':
			c.move(gott.MoveRight)
		case 'a':
			e.SelectAll()
			c.message = fmt.Sprintf("%s selected", humanize.Comma(int64(e.SelectionCount())))
		//
		// performed operations are recorded for undo and repetition
		//
		case 't':
			cursor := e.GetCursor()
			c.perform(&operations.InsertTap{Tick: cursor.Tick, Lane: cursor.Lane, Width: c.noteWidth})
		case 'H':
			cursor := e.GetCursor()
			c.perform(&operations.InsertHold{
				Tick:    cursor.Tick,
				Lane:    cursor.Lane,
				Width:   c.noteWidth,
				EndTick: cursor.Tick + c.rowTicks*c.Multiplier(),
				EndLane: cursor.Lane,
			})
		case 'x':
			c.perform(&operations.DeleteSelection{})
		case 'f':
			c.perform(&operations.FlipSelection{})
		case 'c':
			c.perform(&operations.ToggleCriticals{})
		case 'F':
			c.perform(&operations.CycleFlick{})
		case 'e':
			c.perform(&operations.CycleEase{})
		case 's':
			c.perform(&operations.CycleStepType{})
		case 'y':
			if e.SelectionCount() > 0 {
				e.Perform(&operations.CopySelection{})
				c.message = fmt.Sprintf("Copied %s notes", humanize.Comma(int64(e.SelectionCount())))
			}
		case 'd':
			c.perform(&operations.CutSelection{})
		case 'p':
			c.paste(false)
		case 'P':
			c.paste(true)
		case 'm':
			c.perform(&operations.ConnectHolds{})
		case 'S':
			c.perform(&operations.SplitHold{})
		case 'J':
			c.perform(&operations.ShrinkSelection{Direction: score.TowardLater})
		case 'K':
			c.perform(&operations.ShrinkSelection{Direction: score.TowardEarlier})
		//
		// undo
		//
		case 'u':
			for i := c.Multiplier(); i > 0; i-- {
				c.undo()
			}
		//
		// repeat
		//
		case '.':
			e.Repeat()
			if e.IsPasting() {
				c.mode = gott.ModePaste
			}
		}
	}
	return nil
}

func (c *Commander) toggleAtCursor() {
	e := c.editor
	id, ok := e.NoteAtCursor(c.rowTicks)
	if !ok {
		return
	}
	e.ToggleSelect(id)
	if e.IsSelected(id) {
		c.message = describe(e.GetScore(), e.GetScore().Notes[id])
	} else {
		c.message = ""
	}
}

// describe names a note for the message bar.
func describe(s *score.Score, note *score.Note) string {
	parts := []string{note.Type.String()}
	if note.Critical {
		parts = append(parts, "critical")
	}
	if note.IsFlick() {
		parts = append(parts, note.Flick.String()+" flick")
	}
	switch note.Type {
	case score.NoteHoldStart:
		parts = append(parts, strings.ReplaceAll(s.MustHold(note.ID).Start.Ease.String(), "_", " "))
	case score.NoteHoldMid:
		hold := s.HoldOf(note)
		if pos := score.FindHoldStep(hold, note.ID); pos != -1 {
			step := hold.Steps[pos]
			parts = append(parts, step.Type.String(), strings.ReplaceAll(step.Ease.String(), "_", " "))
		}
	}
	return cases.Title(language.English).String(strings.Join(parts, ", "))
}

func (c *Commander) undo() {
	description := c.editor.UndoDescription()
	if c.editor.PerformUndo() {
		c.message = "Undo " + strings.ToLower(description)
	}
}

func (c *Commander) redo() {
	description := c.editor.RedoDescription()
	if c.editor.PerformRedo() {
		c.message = "Redo " + strings.ToLower(description)
	}
}

// paste stages the pasteboard centered on the cursor and enters paste mode.
func (c *Commander) paste(flip bool) {
	e := c.editor
	e.Perform(&operations.Paste{Flip: flip})
	staged := e.GetStaged()
	if staged == nil {
		c.message = "Nothing to paste"
		return
	}
	cursor := e.GetCursor()
	e.SetPasteOffset(cursor.Lane-staged.MidLane, cursor.Tick)
	c.mode = gott.ModePaste
	c.message = fmt.Sprintf("Pasting %s notes", humanize.Comma(int64(len(staged.Score.Notes))))
}

func (c *Commander) ProcessKeyPasteMode(event *gott.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch
	rows := func(n int) int { return n * c.rowTicks * c.Multiplier() }
	if key != 0 {
		switch key {
		case gott.KeyEsc:
			e.Perform(&operations.CancelPaste{})
			c.mode = gott.ModeEdit
			c.message = ""
		case gott.KeyEnter:
			c.perform(&operations.ConfirmPaste{})
			c.mode = gott.ModeEdit
		case gott.KeyArrowUp:
			e.MovePaste(0, rows(1))
		case gott.KeyArrowDown:
			e.MovePaste(0, rows(-1))
		case gott.KeyArrowLeft:
			e.MovePaste(-c.Multiplier(), 0)
		case gott.KeyArrowRight:
			e.MovePaste(c.Multiplier(), 0)
		}
	}
	if ch != 0 {
		switch ch {
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			c.multiplier += string(ch)
		case 'h':
			e.MovePaste(-c.Multiplier(), 0)
		case 'j':
			e.MovePaste(0, rows(-1))
		case 'k':
			e.MovePaste(0, rows(1))
		case 'l':
			e.MovePaste(c.Multiplier(), 0)
		}
	}
	return nil
}

func (c *Commander) ProcessKeyCommandMode(event *gott.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case gott.KeyEsc:
			c.mode = gott.ModeEdit
		case gott.KeyEnter:
			c.PerformCommand()
		case gott.KeyBackspace2:
			if len(c.command) > 0 {
				c.command = c.command[0 : len(c.command)-1]
			}
		case gott.KeySpace:
			c.command += " "
		}
	}
	if ch != 0 {
		c.command = c.command + string(ch)
	}
	return nil
}

func (c *Commander) ProcessKeyLispMode(event *gott.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case gott.KeyEsc:
			c.mode = gott.ModeEdit
		case gott.KeyEnter:
			c.message = c.ParseEval(c.lispText)
			if c.mode == gott.ModeLisp {
				c.mode = gott.ModeEdit
			}
		case gott.KeyBackspace2:
			if len(c.lispText) > 0 {
				c.lispText = c.lispText[0 : len(c.lispText)-1]
			}
		case gott.KeySpace:
			c.lispText += " "
		}
	}
	if ch != 0 {
		c.lispText = c.lispText + string(ch)
	}
	return nil
}

func (c *Commander) PerformCommand() {
	e := c.editor

	c.mode = gott.ModeEdit
	parts := strings.Fields(c.command)
	c.command = ""
	if len(parts) == 0 {
		return
	}
	// a number moves the cursor to that row
	if i, err := strconv.Atoi(parts[0]); err == nil {
		cursor := e.GetCursor()
		cursor.Tick = i * c.rowTicks
		e.SetCursor(cursor)
		return
	}
	switch parts[0] {
	case "q":
		c.mode = gott.ModeQuit
	case "e":
		if len(parts) == 2 {
			c.report(e.ReadFile(parts[1]), "Read "+parts[1])
		}
	case "debug":
		if len(parts) == 2 {
			if parts[1] == "on" {
				c.debug = true
			} else if parts[1] == "off" {
				c.debug = false
				c.message = ""
			}
		}
	case "w", "wq":
		filename := e.GetFileName()
		if len(parts) == 2 {
			filename = parts[1]
		}
		if filename == "" {
			c.message = "No file name"
			return
		}
		err := e.WriteFile(filename)
		c.report(err, "Wrote "+filename)
		if err == nil && parts[0] == "wq" {
			c.mode = gott.ModeQuit
		}
	case "stats":
		c.message = Summary(e.GetStats())
	case "eval":
		c.message = c.ParseEval(strings.Join(parts[1:], " "))
	default:
		c.message = fmt.Sprintf("Unknown command: %s", parts[0])
	}
}

func (c *Commander) report(err error, success string) {
	if err != nil {
		c.message = err.Error()
	} else {
		c.message = success
	}
}

// Summary formats note counts for display.
func Summary(stats score.Stats) string {
	return fmt.Sprintf("%s notes: %s taps, %s flicks, %s holds, %s steps, %s critical",
		humanize.Comma(int64(stats.Total)),
		humanize.Comma(int64(stats.Taps)),
		humanize.Comma(int64(stats.Flicks)),
		humanize.Comma(int64(stats.Holds)),
		humanize.Comma(int64(stats.Steps)),
		humanize.Comma(int64(stats.Criticals)))
}

func (c *Commander) Multiplier() int {
	if c.multiplier == "" {
		return 1
	}
	i, err := strconv.ParseInt(c.multiplier, 10, 64)
	if err != nil {
		c.multiplier = ""
		return 1
	}
	c.multiplier = ""
	return int(i)
}

func (c *Commander) GetLispText() string {
	return c.lispText
}

func (c *Commander) GetCommand() string {
	return c.command
}

func (c *Commander) GetMessage() string {
	return c.message
}
