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
	"os"

	"github.com/timburks/chartedit/pasteboard"
)

// ReadFile replaces the score with the contents of a chart file. The
// history is cleared and the document is marked as saved.
func (e *Editor) ReadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	decoded, err := pasteboard.ReadDocument(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := decoded.Validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	s, _, next := pasteboard.Remap(decoded, e.nextID, 0, 0)
	e.score = s
	e.SetNextID(next)
	e.history.Clear()
	e.ClearSelection()
	e.staged = nil
	e.fileName = path
	e.upToDate = true
	e.stats.Calculate(e.score)
	if e.indicator != nil {
		e.indicator.SetModified(e.fileName, false)
	}
	e.logger.Printf("read %s (%d notes)", path, len(s.Notes))
	return nil
}

// WriteFile saves the score to a chart file.
func (e *Editor) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := pasteboard.WriteDocument(f, e.score); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	e.fileName = path
	e.upToDate = true
	if e.indicator != nil {
		e.indicator.SetModified(e.fileName, false)
	}
	e.logger.Printf("wrote %s (%d notes)", path, len(e.score.Notes))
	return nil
}
