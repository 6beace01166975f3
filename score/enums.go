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

package score

// Lane bounds
const (
	MinLane      = 0
	MaxLane      = 11
	MinNoteWidth = 1
	MaxNoteWidth = 12
)

// NoteType identifies the role a note plays in a chart.
type NoteType int

const (
	NoteTap NoteType = iota
	NoteHoldStart
	NoteHoldMid
	NoteHoldEnd
)

var noteTypeNames = []string{"tap", "hold", "step", "end"}

func (t NoteType) String() string {
	if t < 0 || int(t) >= len(noteTypeNames) {
		return "unknown"
	}
	return noteTypeNames[t]
}

// FlickType is the direction of a flick gesture.
type FlickType int

const (
	FlickNone FlickType = iota
	FlickDefault
	FlickLeft
	FlickRight
	flickTypeCount
)

var flickNames = []string{"none", "default", "left", "right"}

func (f FlickType) String() string {
	if f < 0 || f >= flickTypeCount {
		return flickNames[FlickNone]
	}
	return flickNames[f]
}

// Next returns the following flick type, wrapping to FlickNone.
func (f FlickType) Next() FlickType {
	return (f + 1) % flickTypeCount
}

// Mirror swaps left and right flicks.
func (f FlickType) Mirror() FlickType {
	switch f {
	case FlickLeft:
		return FlickRight
	case FlickRight:
		return FlickLeft
	default:
		return f
	}
}

// EaseType is the curve drawn between two consecutive hold points.
type EaseType int

const (
	EaseNone EaseType = iota
	EaseLinear
	EaseIn
	EaseOut
	easeTypeCount
)

var easeNames = []string{"none", "linear", "ease_in", "ease_out"}

func (e EaseType) String() string {
	if e < 0 || e >= easeTypeCount {
		return easeNames[EaseNone]
	}
	return easeNames[e]
}

// Next returns the following ease type, wrapping to EaseNone.
func (e EaseType) Next() EaseType {
	return (e + 1) % easeTypeCount
}

// StepType controls how a hold step is drawn and judged.
type StepType int

const (
	StepNormal StepType = iota
	StepHidden
	StepSkip
	stepTypeCount
)

var stepNames = []string{"normal", "hidden", "skip"}

func (s StepType) String() string {
	if s < 0 || s >= stepTypeCount {
		return stepNames[StepNormal]
	}
	return stepNames[s]
}

// Next returns the following step type: normal, hidden, skip, normal...
func (s StepType) Next() StepType {
	return (s + 1) % stepTypeCount
}

// ParseFlick returns the flick type with the given name.
func ParseFlick(name string) (FlickType, bool) {
	for i, n := range flickNames {
		if n == name {
			return FlickType(i), true
		}
	}
	return FlickNone, false
}

// ParseEase returns the ease type with the given name.
func ParseEase(name string) (EaseType, bool) {
	for i, n := range easeNames {
		if n == name {
			return EaseType(i), true
		}
	}
	return EaseNone, false
}

// ParseStep returns the step type with the given name.
func ParseStep(name string) (StepType, bool) {
	for i, n := range stepNames {
		if n == name {
			return StepType(i), true
		}
	}
	return StepNormal, false
}

// Direction selects which end of a selection stays fixed when it is shrunk.
type Direction int

const (
	// TowardLater keeps the earliest note in place and packs the rest after it.
	TowardLater Direction = iota
	// TowardEarlier keeps the latest note in place and packs the rest before it.
	TowardEarlier
)
