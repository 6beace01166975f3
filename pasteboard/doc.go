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

// Package pasteboard converts between parts of a score and the documents
// that are exchanged through a clipboard. Decoded notes are numbered in
// their own ID space starting at zero; Remap moves them into a live score
// when a paste is confirmed. Transports carry payloads to and from the
// operating system clipboard or a process-local buffer.
package pasteboard
