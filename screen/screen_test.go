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
	"testing"

	"github.com/nsf/termbox-go"

	"github.com/timburks/chartedit/score"
	gott "github.com/timburks/chartedit/types"
)

func TestScroll(t *testing.T) {
	if offset := scroll(0, 5, 10); offset != 0 {
		t.Errorf("Scrolled with a visible row: %d", offset)
	}
	if offset := scroll(0, 12, 10); offset != 3 {
		t.Errorf("Unexpected offset above the screen: %d", offset)
	}
	if offset := scroll(8, 2, 10); offset != 2 {
		t.Errorf("Unexpected offset below the screen: %d", offset)
	}
}

func TestRowOf(t *testing.T) {
	s := &Screen{offset: 2}
	if y, ok := s.rowOf(240, 120, 10); !ok || y != 9 {
		t.Errorf("Bottom row misplaced: %d %t", y, ok)
	}
	if y, ok := s.rowOf(1379, 120, 10); !ok || y != 0 {
		t.Errorf("Top row misplaced: %d %t", y, ok)
	}
	if _, ok := s.rowOf(100, 120, 10); ok {
		t.Errorf("Row below the screen reported visible")
	}
}

func TestGlyph(t *testing.T) {
	note := score.NewNote(score.NoteTap)
	if ch := glyph(note); ch != 'o' {
		t.Errorf("Unexpected tap glyph: %c", ch)
	}
	note.Flick = score.FlickLeft
	if ch := glyph(note); ch != '<' {
		t.Errorf("Unexpected flick glyph: %c", ch)
	}
	note = score.NewNote(score.NoteHoldStart)
	note.Flick = score.FlickRight
	if ch := glyph(note); ch != '[' {
		t.Errorf("Hold start drawn as a flick: %c", ch)
	}
}

func TestKeys(t *testing.T) {
	if k := key(termbox.KeyCtrlR); k != gott.KeyCtrlR {
		t.Errorf("Unexpected key: %d", k)
	}
	if k := key(termbox.KeyF1); k != gott.KeyUnsupported {
		t.Errorf("Unexpected key: %d", k)
	}
	if e := eventType(termbox.EventResize); e != gott.EventResize {
		t.Errorf("Unexpected event type: %d", e)
	}
}
