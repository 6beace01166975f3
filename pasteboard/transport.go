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
	"fmt"

	"golang.design/x/clipboard"
)

// A Transport moves payloads to and from a clipboard.
// Read returns a complete payload or nothing.
type Transport interface {
	Read() ([]byte, bool)
	Write(payload []byte)
}

// Memory is a clipboard local to the process.
type Memory struct {
	payload []byte
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Read() ([]byte, bool) {
	if len(m.payload) == 0 {
		return nil, false
	}
	out := make([]byte, len(m.payload))
	copy(out, m.payload)
	return out, true
}

func (m *Memory) Write(payload []byte) {
	m.payload = make([]byte, len(payload))
	copy(m.payload, payload)
}

// System uses the clipboard of the operating system.
type System struct{}

func NewSystem() (*System, error) {
	if err := clipboard.Init(); err != nil {
		return nil, fmt.Errorf("system clipboard unavailable: %w", err)
	}
	return &System{}, nil
}

func (s *System) Read() ([]byte, bool) {
	b := clipboard.Read(clipboard.FmtText)
	return b, len(b) > 0
}

func (s *System) Write(payload []byte) {
	clipboard.Write(clipboard.FmtText, payload)
}
