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

import (
	"errors"
	"testing"

	"github.com/timburks/chartedit/score"
)

const legacyPayload = Signature + `{
	"notes": [{"tick": 0, "lane": 3, "width": 2, "critical": true, "flick": "left"}],
	"holds": [{
		"start": {"tick": 240, "lane": 0, "width": 3, "critical": false},
		"end": {"tick": 960, "lane": 6, "width": 3, "critical": false},
		"steps": [
			{"tick": 720, "lane": 4, "width": 3, "type": "ignored", "ease": "out"},
			{"tick": 480, "lane": 2, "width": 3, "type": "invisible", "ease": "in"},
			{"tick": 600, "lane": 3, "width": 3}
		]
	}]
}`

func setup() *score.Score {
	s := score.New()
	s.AddNote(&score.Note{ID: 10, Tick: 1000, Lane: 1, Width: 2, Type: score.NoteTap, Flick: score.FlickRight, ParentID: score.NoParent})
	s.AddNote(&score.Note{ID: 11, Tick: 1200, Lane: 4, Width: 3, Type: score.NoteHoldStart, Critical: true, ParentID: score.NoParent})
	s.AddNote(&score.Note{ID: 12, Tick: 1800, Lane: 5, Width: 3, Type: score.NoteHoldEnd, Critical: true, Flick: score.FlickDefault, ParentID: 11})
	s.AddNote(&score.Note{ID: 13, Tick: 1500, Lane: 6, Width: 3, Type: score.NoteHoldMid, Critical: true, ParentID: 11})
	s.HoldNotes[11] = &score.HoldNote{
		Start: score.HoldStep{ID: 11, Ease: score.EaseIn},
		End:   12,
		Steps: []score.HoldStep{{ID: 13, Type: score.StepHidden, Ease: score.EaseOut}},
	}
	return s
}

func TestDecodeLegacyNames(t *testing.T) {
	staged, err := Decode([]byte(legacyPayload))
	if err != nil {
		t.Fatalf("Decode failed: %+v", err)
	}
	s := staged.Score
	if err := s.Validate(); err != nil {
		t.Errorf("Decoded score is invalid: %+v", err)
	}
	if len(s.Notes) != 6 || len(s.HoldNotes) != 1 {
		t.Fatalf("Unexpected contents: %d notes, %d holds", len(s.Notes), len(s.HoldNotes))
	}
	tap := s.Notes[0]
	if tap.Type != score.NoteTap || !tap.Critical || tap.Flick != score.FlickLeft {
		t.Errorf("Unexpected tap: %+v", tap)
	}
	hold := s.HoldNotes[1]
	if hold.Start.Ease != score.EaseNone || hold.End != 2 {
		t.Errorf("Unexpected hold: %+v", hold)
	}
	// steps are sorted by tick: 480 (invisible/in), 600 (defaults), 720 (ignored/out)
	expected := []score.HoldStep{
		{ID: 4, Type: score.StepHidden, Ease: score.EaseIn},
		{ID: 5, Type: score.StepNormal, Ease: score.EaseLinear},
		{ID: 3, Type: score.StepSkip, Ease: score.EaseOut},
	}
	for i, step := range expected {
		if hold.Steps[i] != step {
			t.Errorf("Unexpected step %d: %+v", i, hold.Steps[i])
		}
	}
}

func TestDecodeUnknownNamesUseDefaults(t *testing.T) {
	payload := Signature + `{"holds": [{
		"start": {"tick": 0, "lane": 0, "width": 2, "critical": false, "ease": "wobbly"},
		"end": {"tick": 10, "lane": 0, "width": 2, "critical": false},
		"steps": [{"tick": 5, "lane": 0, "width": 2, "type": "sparkly", "ease": "bouncy"}]
	}]}`
	staged, err := Decode([]byte(payload))
	if err != nil {
		t.Fatalf("Decode failed: %+v", err)
	}
	hold := staged.Score.HoldNotes[0]
	if hold.Start.Ease != score.EaseNone {
		t.Errorf("Unexpected start ease: %s", hold.Start.Ease)
	}
	if hold.Steps[0].Type != score.StepNormal || hold.Steps[0].Ease != score.EaseLinear {
		t.Errorf("Unexpected step: %+v", hold.Steps[0])
	}
}

func TestDecodeRejectsBadPayloads(t *testing.T) {
	if _, err := Decode([]byte(`{"notes": []}`)); !errors.Is(err, ErrNoSignature) {
		t.Errorf("Expected a signature error, got %+v", err)
	}
	if _, err := Decode([]byte("MikuMikuWorld clipboard{}")); !errors.Is(err, ErrNoSignature) {
		t.Errorf("Expected a signature error for a missing newline, got %+v", err)
	}
	if _, err := Decode([]byte(Signature + `{"notes": [`)); err == nil {
		t.Errorf("Expected an error for malformed json")
	}
	if _, err := Decode([]byte(Signature + `{}`)); !errors.Is(err, ErrEmpty) {
		t.Errorf("Expected an empty payload error, got %+v", err)
	}
	payload := Signature + `{"holds": [{"start": {"tick": 0, "lane": 0, "width": 2, "critical": false}}]}`
	if _, err := Decode([]byte(payload)); !errors.Is(err, ErrEmpty) {
		t.Errorf("A hold without an end should be skipped, got %+v", err)
	}
}

func TestEncodeIsRelativeToEarliestSelectedNote(t *testing.T) {
	s := setup()
	payload, err := Encode(s, []int{10, 13})
	if err != nil {
		t.Fatalf("Encode failed: %+v", err)
	}
	staged, err := Decode(payload)
	if err != nil {
		t.Fatalf("Decode failed: %+v", err)
	}
	c := staged.Score
	if len(c.Notes) != 4 || len(c.HoldNotes) != 1 {
		t.Fatalf("Selecting a step should copy its whole hold: %d notes", len(c.Notes))
	}
	if c.Notes[0].Tick != 0 || c.Notes[0].Flick != score.FlickRight {
		t.Errorf("Unexpected tap: %+v", c.Notes[0])
	}
	hold := c.HoldNotes[1]
	start, end := c.Notes[1], c.Notes[hold.End]
	if start.Tick != 200 || !start.Critical || hold.Start.Ease != score.EaseIn {
		t.Errorf("Unexpected start: %+v %+v", start, hold.Start)
	}
	if end.Tick != 800 || end.Flick != score.FlickDefault {
		t.Errorf("Unexpected end: %+v", end)
	}
	mid := c.Notes[hold.Steps[0].ID]
	if mid.Tick != 500 || !mid.Critical || hold.Steps[0].Type != score.StepHidden || hold.Steps[0].Ease != score.EaseOut {
		t.Errorf("Unexpected step: %+v %+v", mid, hold.Steps[0])
	}
	if _, err := Encode(s, nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("Expected an error for an empty selection")
	}
}

func TestStagedBounds(t *testing.T) {
	staged, err := Decode([]byte(legacyPayload))
	if err != nil {
		t.Fatalf("Decode failed: %+v", err)
	}
	// lanes used run from 0 to 8
	if staged.MinLaneOffset != 0 || staged.MaxLaneOffset != 3 {
		t.Errorf("Unexpected offsets: %d..%d", staged.MinLaneOffset, staged.MaxLaneOffset)
	}
	if staged.MidLane != 4 {
		t.Errorf("Unexpected mid lane: %d", staged.MidLane)
	}
	staged.Move(7, 480)
	if staged.LaneOffset != 3 || staged.TickOffset != 480 {
		t.Errorf("Lane offset should be clamped: %d", staged.LaneOffset)
	}
	staged.Flip()
	if staged.Score.Notes[0].Lane != 7 || staged.Score.Notes[0].Flick != score.FlickRight {
		t.Errorf("Unexpected flipped tap: %+v", staged.Score.Notes[0])
	}
	if staged.MinLaneOffset != -3 || staged.MaxLaneOffset != 0 || staged.LaneOffset != 0 {
		t.Errorf("Unexpected offsets after flip: %d..%d (%d)", staged.MinLaneOffset, staged.MaxLaneOffset, staged.LaneOffset)
	}
}

func TestRemap(t *testing.T) {
	staged, err := Decode([]byte(legacyPayload))
	if err != nil {
		t.Fatalf("Decode failed: %+v", err)
	}
	out, ids, next := Remap(staged.Score, 100, 2, 1000)
	if next != 106 {
		t.Errorf("Unexpected next ID: %d", next)
	}
	if len(ids) != 6 || ids[0] != 100 || ids[5] != 105 {
		t.Errorf("Unexpected IDs: %+v", ids)
	}
	if err := out.Validate(); err != nil {
		t.Errorf("Remapped score is invalid: %+v", err)
	}
	hold := out.HoldNotes[101]
	if hold == nil || hold.End != 102 || hold.Steps[0].ID != 104 {
		t.Fatalf("Unexpected remapped hold: %+v", hold)
	}
	if n := out.Notes[104]; n.Tick != 1480 || n.Lane != 4 || n.ParentID != 101 {
		t.Errorf("Unexpected remapped step: %+v", n)
	}
	if staged.Score.Notes[0].ID != 0 || staged.Score.Notes[0].Lane != 3 {
		t.Errorf("Remap modified the staged notes")
	}
}

func TestMemoryTransport(t *testing.T) {
	m := NewMemory()
	if _, ok := m.Read(); ok {
		t.Errorf("Empty clipboard should read nothing")
	}
	payload := []byte(Signature + "{}")
	m.Write(payload)
	payload[0] = 'X'
	got, ok := m.Read()
	if !ok || string(got) != Signature+"{}" {
		t.Errorf("Unexpected clipboard contents: %q", got)
	}
}
