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

package screen

import (
	"fmt"
	"log"

	"github.com/dustin/go-humanize"
	"github.com/nsf/termbox-go"

	"github.com/timburks/chartedit/score"
	gott "github.com/timburks/chartedit/types"
)

// Layout of the chart area.
const (
	margin    = 8 // columns used by the tick labels
	laneWidth = 2 // columns per lane
	bars      = 2 // info bar and message bar
)

// The Screen draws the state of an editing session.
// Time runs up the screen: the bottom row holds the earliest ticks.
type Screen struct {
	cols     int
	rows     int
	offset   int // index of the row at the bottom of the chart area
	fileName string
	modified bool
}

func NewScreen() *Screen {
	// Open the terminal.
	err := termbox.Init()
	if err != nil {
		log.Output(1, err.Error())
		return nil
	}
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{}
}

func (s *Screen) Close() {
	termbox.Close()
}

// SetModified records the document state shown on the info bar.
func (s *Screen) SetModified(fileName string, modified bool) {
	s.fileName = fileName
	s.modified = modified
}

func (s *Screen) Render(d gott.Document, c gott.Commander, rowTicks int) {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
	s.cols, s.rows = termbox.Size()
	chartRows := s.rows - bars
	cursor := d.GetCursor()
	s.offset = scroll(s.offset, cursor.Tick/rowTicks, chartRows)

	s.RenderChart(d, rowTicks, chartRows)
	s.RenderInfoBar(d, c)
	s.RenderMessageBar(c)
	if y, ok := s.rowOf(cursor.Tick, rowTicks, chartRows); ok {
		termbox.SetCursor(margin+cursor.Lane*laneWidth, y)
	} else {
		termbox.HideCursor()
	}
	termbox.Flush()
}

// scroll returns the bottom row index that keeps row visible.
func scroll(offset, row, visible int) int {
	if visible < 1 {
		return row
	}
	if row < offset {
		return row
	}
	if row >= offset+visible {
		return row - visible + 1
	}
	return offset
}

func (s *Screen) rowOf(tick, rowTicks, chartRows int) (int, bool) {
	r := tick/rowTicks - s.offset
	if r < 0 || r >= chartRows {
		return 0, false
	}
	return chartRows - 1 - r, true
}

// glyph returns the character that draws one cell of a note.
func glyph(note *score.Note) rune {
	switch note.Type {
	case score.NoteHoldStart:
		return '['
	case score.NoteHoldMid:
		return '+'
	case score.NoteHoldEnd:
		if note.IsFlick() {
			return flickGlyph(note.Flick)
		}
		return ']'
	}
	if note.IsFlick() {
		return flickGlyph(note.Flick)
	}
	return 'o'
}

func flickGlyph(flick score.FlickType) rune {
	switch flick {
	case score.FlickLeft:
		return '<'
	case score.FlickRight:
		return '>'
	}
	return '^'
}

func color(note *score.Note) termbox.Attribute {
	switch {
	case note.Critical:
		return termbox.ColorYellow
	case note.IsHold():
		return termbox.ColorGreen
	case note.IsFlick():
		return termbox.ColorRed
	}
	return termbox.ColorCyan
}

func (s *Screen) setNote(note *score.Note, rowTicks, chartRows int, fg, bg termbox.Attribute) {
	y, ok := s.rowOf(note.Tick, rowTicks, chartRows)
	if !ok {
		return
	}
	ch := glyph(note)
	for lane := note.Lane; lane < note.Lane+note.Width && lane <= score.MaxLane; lane++ {
		x := margin + lane*laneWidth
		termbox.SetCell(x, y, ch, fg, bg)
		termbox.SetCell(x+1, y, ch, fg, bg)
	}
}

func (s *Screen) RenderChart(d gott.Document, rowTicks int, chartRows int) {
	// lanes and tick labels
	for y := 0; y < chartRows; y++ {
		row := s.offset + chartRows - 1 - y
		if row%4 == 0 {
			label := fmt.Sprintf("%7d", row*rowTicks)
			for x, ch := range label {
				termbox.SetCell(x, y, ch, termbox.ColorWhite, termbox.ColorBlack)
			}
		}
		for lane := score.MinLane; lane <= score.MaxLane+1; lane++ {
			termbox.SetCell(margin+lane*laneWidth-1, y, '|', termbox.ColorBlack|termbox.AttrBold, termbox.ColorBlack)
		}
	}
	sc := d.GetScore()
	// hold bodies, drawn under the notes
	for _, id := range sc.SortedHoldIDs() {
		hold := sc.HoldNotes[id]
		start := sc.MustNote(hold.Start.ID)
		end := sc.MustNote(hold.End)
		for tick := start.Tick + rowTicks; tick < end.Tick; tick += rowTicks {
			if y, ok := s.rowOf(tick, rowTicks, chartRows); ok {
				termbox.SetCell(margin+start.Lane*laneWidth, y, ':', termbox.ColorGreen, termbox.ColorBlack)
			}
		}
	}
	for _, id := range sc.SortedIDs() {
		note := sc.Notes[id]
		bg := termbox.ColorBlack
		if d.IsSelected(id) {
			bg = termbox.ColorBlue
		}
		s.setNote(note, rowTicks, chartRows, color(note), bg)
	}
	// staged paste
	if staged := d.GetStaged(); staged != nil {
		for _, id := range staged.Score.SortedIDs() {
			note := *staged.Score.Notes[id]
			note.Lane += staged.LaneOffset
			note.Tick += staged.TickOffset
			s.setNote(&note, rowTicks, chartRows, termbox.ColorMagenta, termbox.ColorBlack)
		}
	}
}

func (s *Screen) RenderInfoBar(d gott.Document, c gott.Commander) {
	cursor := d.GetCursor()
	stats := d.GetStats()
	finalText := fmt.Sprintf(" tick %d lane %d | %s notes ", cursor.Tick, cursor.Lane, humanize.Comma(int64(stats.Total)))
	name := s.fileName
	if name == "" {
		name = "[new chart]"
	}
	if s.modified {
		name += "*"
	}
	text := " chartedit - " + name + " "
	if c.GetMode() == gott.ModePaste {
		text += "(pasting) "
	}
	for len(text) < s.cols-len(finalText)-1 {
		text = text + " "
	}
	text += finalText
	for x, ch := range text {
		termbox.SetCell(x, s.rows-2, ch, termbox.ColorBlack, termbox.ColorWhite)
	}
}

func (s *Screen) RenderMessageBar(c gott.Commander) {
	var line string
	switch c.GetMode() {
	case gott.ModeCommand:
		line += ":" + c.GetCommand()
	case gott.ModeLisp:
		line += c.GetLispText()
	default:
		line += c.GetMessage()
	}
	if len(line) > s.cols {
		line = line[0:s.cols]
	}
	for x, ch := range line {
		termbox.SetCell(x, s.rows-1, ch, termbox.ColorWhite, termbox.ColorBlack)
	}
}

func (s *Screen) GetNextEvent() *gott.Event {
	event := termbox.PollEvent()
	if event.Type == termbox.EventResize {
		termbox.Flush()
	}
	return &gott.Event{
		Type: eventType(event.Type),
		Key:  key(event.Key),
		Ch:   event.Ch,
	}
}

func eventType(t termbox.EventType) int {
	switch t {
	case termbox.EventKey:
		return gott.EventKey
	case termbox.EventResize:
		return gott.EventResize
	default:
		return gott.EventOther
	}
}

func key(k termbox.Key) gott.Key {
	switch k {
	case termbox.KeyArrowDown:
		return gott.KeyArrowDown
	case termbox.KeyArrowLeft:
		return gott.KeyArrowLeft
	case termbox.KeyArrowRight:
		return gott.KeyArrowRight
	case termbox.KeyArrowUp:
		return gott.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return gott.KeyBackspace2
	case termbox.KeyCtrlR:
		return gott.KeyCtrlR
	case termbox.KeyEnter:
		return gott.KeyEnter
	case termbox.KeyEsc:
		return gott.KeyEsc
	case termbox.KeyPgdn:
		return gott.KeyPgdn
	case termbox.KeyPgup:
		return gott.KeyPgup
	case termbox.KeySpace:
		return gott.KeySpace
	default:
		return gott.KeyUnsupported
	}
}
