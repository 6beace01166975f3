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
	"encoding/json"
	"io"

	"github.com/timburks/chartedit/score"
)

// WriteDocument writes a whole score as a document with absolute ticks.
func WriteDocument(w io.Writer, s *score.Score) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(EncodeDocument(s, s.SortedIDs(), 0))
}

// ReadDocument reads a document written by WriteDocument. The notes of the
// returned score are numbered from zero.
func ReadDocument(r io.Reader) (*score.Score, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return DecodeDocument(b)
}
