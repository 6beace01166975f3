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

package operations

import (
	"log"

	"github.com/timburks/chartedit/pasteboard"
	gott "github.com/timburks/chartedit/types"
)

// CopySelection writes the selected notes to the pasteboard.
// Selecting any note of a hold copies the whole hold.
type CopySelection struct{}

func (op *CopySelection) Perform(e gott.Editor) string {
	ids := e.GetSelection()
	if len(ids) == 0 {
		return ""
	}
	payload, err := pasteboard.Encode(e.GetScore(), ids)
	if err != nil {
		log.Printf("copy: %v", err)
		return ""
	}
	e.SetPasteBoard(payload)
	return ""
}

// CutSelection copies the selected notes and then deletes them.
type CutSelection struct{}

func (op *CutSelection) Perform(e gott.Editor) string {
	if len(e.GetSelection()) == 0 {
		return ""
	}
	(&CopySelection{}).Perform(e)
	if (&DeleteSelection{}).Perform(e) == "" {
		return ""
	}
	return "Cut notes"
}

// Paste stages the contents of the pasteboard for placement.
// Nothing is added to the score until the paste is confirmed.
type Paste struct {
	Flip bool
}

func (op *Paste) Perform(e gott.Editor) string {
	payload, ok := e.GetPasteBoard()
	if !ok {
		return ""
	}
	staged, err := pasteboard.Decode(payload)
	if err != nil {
		log.Printf("paste: %v", err)
		return ""
	}
	if op.Flip {
		staged.Flip()
	}
	e.SetStaged(staged)
	return ""
}

// ConfirmPaste commits the staged notes at their chosen placement.
// The pasted notes become the selection.
type ConfirmPaste struct{}

func (op *ConfirmPaste) Perform(e gott.Editor) string {
	staged := e.GetStaged()
	if staged == nil {
		return ""
	}
	fragment, ids, next := pasteboard.Remap(staged.Score, e.GetNextID(), staged.LaneOffset, staged.TickOffset)
	e.GetScore().Insert(fragment)
	e.SetNextID(next)
	e.SetSelection(ids)
	e.SetStaged(nil)
	return "Paste notes"
}

// CancelPaste discards the staged notes.
type CancelPaste struct{}

func (op *CancelPaste) Perform(e gott.Editor) string {
	e.SetStaged(nil)
	return ""
}
