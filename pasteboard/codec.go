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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/timburks/chartedit/score"
)

// Signature begins every clipboard payload.
const Signature = "MikuMikuWorld clipboard\n"

var (
	ErrNoSignature = errors.New("pasteboard: payload does not begin with the clipboard signature")
	ErrEmpty       = errors.New("pasteboard: payload contains no notes")
)

// Defaults for fields that older payloads may omit.
const (
	defaultStartEase = score.EaseNone
	defaultStepEase  = score.EaseLinear
	defaultStepType  = score.StepNormal
)

// Names written by earlier versions of the editor.
var (
	legacyStepTypes = map[string]score.StepType{
		"invisible": score.StepHidden,
		"ignored":   score.StepSkip,
	}
	legacyEases = map[string]score.EaseType{
		"in":  score.EaseIn,
		"out": score.EaseOut,
	}
)

// Document is the serialized form of a set of notes and holds.
type Document struct {
	Notes []NoteEntry `json:"notes,omitempty"`
	Holds []HoldEntry `json:"holds,omitempty"`
}

type NoteEntry struct {
	Tick     int    `json:"tick"`
	Lane     int    `json:"lane"`
	Width    int    `json:"width"`
	Critical bool   `json:"critical"`
	Flick    string `json:"flick,omitempty"`
}

type HoldEntry struct {
	Start *PointEntry `json:"start"`
	End   *PointEntry `json:"end"`
	Steps []StepEntry `json:"steps,omitempty"`
}

type PointEntry struct {
	Tick     int     `json:"tick"`
	Lane     int     `json:"lane"`
	Width    int     `json:"width"`
	Critical bool    `json:"critical"`
	Flick    string  `json:"flick,omitempty"`
	Ease     *string `json:"ease,omitempty"`
	Type     *string `json:"type,omitempty"`
}

type StepEntry struct {
	Tick  int     `json:"tick"`
	Lane  int     `json:"lane"`
	Width    int     `json:"width"`
	Critical *bool   `json:"critical,omitempty"` // defaults to the start's flag
	Type     *string `json:"type,omitempty"`
	Ease     *string `json:"ease,omitempty"`
}

func stepType(name *string) score.StepType {
	if name == nil {
		return defaultStepType
	}
	if t, ok := score.ParseStep(*name); ok {
		return t
	}
	if t, ok := legacyStepTypes[*name]; ok {
		return t
	}
	return defaultStepType
}

func easeType(name *string, fallback score.EaseType) score.EaseType {
	if name == nil {
		return fallback
	}
	if e, ok := score.ParseEase(*name); ok {
		return e
	}
	if e, ok := legacyEases[*name]; ok {
		return e
	}
	return fallback
}

func flickType(name string) score.FlickType {
	f, _ := score.ParseFlick(name)
	return f
}

func width(w int) int {
	return score.Clamp(w, score.MinNoteWidth, score.MaxNoteWidth)
}

func name(s fmt.Stringer) *string {
	n := s.String()
	return &n
}

// EncodeDocument serializes the selected notes with ticks relative to anchor.
// Selecting any member of a hold copies the whole hold.
func EncodeDocument(s *score.Score, ids []int, anchor int) *Document {
	doc := &Document{}
	selected := make([]int, 0, len(ids))
	for _, id := range ids {
		note, ok := s.Notes[id]
		if !ok {
			continue
		}
		selected = append(selected, id)
		if note.Type == score.NoteTap {
			doc.Notes = append(doc.Notes, NoteEntry{
				Tick:     note.Tick - anchor,
				Lane:     note.Lane,
				Width:    note.Width,
				Critical: note.Critical,
				Flick:    note.Flick.String(),
			})
		}
	}
	for _, holdID := range s.HoldsOf(selected) {
		hold := s.MustHold(holdID)
		start := s.MustNote(hold.Start.ID)
		end := s.MustNote(hold.End)
		entry := HoldEntry{
			Start: &PointEntry{
				Tick:     start.Tick - anchor,
				Lane:     start.Lane,
				Width:    start.Width,
				Critical: start.Critical,
				Ease:     name(hold.Start.Ease),
			},
			End: &PointEntry{
				Tick:     end.Tick - anchor,
				Lane:     end.Lane,
				Width:    end.Width,
				Critical: end.Critical,
			},
		}
		if hold.Start.Type != defaultStepType {
			entry.Start.Type = name(hold.Start.Type)
		}
		if end.Flick != score.FlickNone {
			entry.End.Flick = end.Flick.String()
		}
		for _, step := range hold.Steps {
			mid := s.MustNote(step.ID)
			critical := mid.Critical
			entry.Steps = append(entry.Steps, StepEntry{
				Tick:     mid.Tick - anchor,
				Lane:     mid.Lane,
				Width:    mid.Width,
				Critical: &critical,
				Type:     name(step.Type),
				Ease:     name(step.Ease),
			})
		}
		doc.Holds = append(doc.Holds, entry)
	}
	return doc
}

// Encode builds a clipboard payload for the selected notes.
// Ticks are relative to the earliest selected note.
func Encode(s *score.Score, ids []int) ([]byte, error) {
	anchor, ok := s.MinTick(ids)
	if !ok {
		return nil, ErrEmpty
	}
	data, err := json.Marshal(EncodeDocument(s, ids, anchor))
	if err != nil {
		return nil, err
	}
	return append([]byte(Signature), data...), nil
}

// Build converts a document into a score numbered from zero.
func (doc *Document) Build() *score.Score {
	s := score.New()
	nextID := 0
	for _, entry := range doc.Notes {
		note := score.NewNote(score.NoteTap)
		note.ID = nextID
		nextID++
		note.Tick = entry.Tick
		note.Lane = entry.Lane
		note.Width = width(entry.Width)
		note.Critical = entry.Critical
		note.Flick = flickType(entry.Flick)
		s.AddNote(note)
	}
	for _, entry := range doc.Holds {
		if entry.Start == nil || entry.End == nil {
			continue
		}
		start := score.NewNote(score.NoteHoldStart)
		start.ID = nextID
		nextID++
		start.Tick = entry.Start.Tick
		start.Lane = entry.Start.Lane
		start.Width = width(entry.Start.Width)
		start.Critical = entry.Start.Critical
		s.AddNote(start)

		end := score.NewNote(score.NoteHoldEnd)
		end.ID = nextID
		nextID++
		end.Tick = entry.End.Tick
		end.Lane = entry.End.Lane
		end.Width = width(entry.End.Width)
		end.Critical = entry.End.Critical
		end.Flick = flickType(entry.End.Flick)
		end.ParentID = start.ID
		s.AddNote(end)

		hold := &score.HoldNote{
			Start: score.HoldStep{
				ID:   start.ID,
				Type: stepType(entry.Start.Type),
				Ease: easeType(entry.Start.Ease, defaultStartEase),
			},
			End: end.ID,
		}
		for _, stepEntry := range entry.Steps {
			mid := score.NewNote(score.NoteHoldMid)
			mid.ID = nextID
			nextID++
			mid.Tick = stepEntry.Tick
			mid.Lane = stepEntry.Lane
			mid.Width = width(stepEntry.Width)
			mid.Critical = start.Critical
			if stepEntry.Critical != nil {
				mid.Critical = *stepEntry.Critical
			}
			mid.ParentID = start.ID
			s.AddNote(mid)
			hold.Steps = append(hold.Steps, score.HoldStep{
				ID:   mid.ID,
				Type: stepType(stepEntry.Type),
				Ease: easeType(stepEntry.Ease, defaultStepEase),
			})
		}
		s.SortHoldSteps(hold)
		s.HoldNotes[start.ID] = hold
	}
	return s
}

// DecodeDocument parses a serialized document into a score numbered from zero.
func DecodeDocument(data []byte) (*score.Score, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("pasteboard: %w", err)
	}
	return doc.Build(), nil
}

// Decode checks the signature of a clipboard payload and stages its contents.
func Decode(payload []byte) (*Staged, error) {
	if !bytes.HasPrefix(payload, []byte(Signature)) {
		return nil, ErrNoSignature
	}
	s, err := DecodeDocument(payload[len(Signature):])
	if err != nil {
		return nil, err
	}
	if len(s.Notes) == 0 {
		return nil, ErrEmpty
	}
	return NewStaged(s), nil
}
