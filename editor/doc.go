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

// Package editor implements the editing session of chartedit.
// Scores are changed only through operations; the editor performs each
// operation on a working copy and keeps a snapshot history so that any
// change can be undone and redone. The selection, the ID counter and any
// staged paste belong to the session and are never stored in the history.
package editor
