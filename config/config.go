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

// Package config holds the settings of chartedit. Settings come from an
// optional TOML file and may be overridden by command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Clipboard transports
const (
	ClipboardSystem = "system"
	ClipboardMemory = "memory"
)

// Default values
const (
	DefaultLogName      = ".charteditlog"
	DefaultClipboard    = ClipboardSystem
	DefaultHistoryLimit = 0 // unlimited
	DefaultRowTicks     = 120
	MinRowTicks         = 1
	MaxRowTicks         = 1920
)

// Settings is the configuration of an editing session.
type Settings struct {
	LogFile      string `toml:"log_file"`
	Clipboard    string `toml:"clipboard"`
	HistoryLimit int    `toml:"history_limit"`
	RowTicks     int    `toml:"row_ticks"`
	Debug        bool   `toml:"debug"`
}

// Default returns the settings used when no file is given.
func Default() *Settings {
	s := &Settings{
		Clipboard:    DefaultClipboard,
		HistoryLimit: DefaultHistoryLimit,
		RowTicks:     DefaultRowTicks,
	}
	if home, err := os.UserHomeDir(); err == nil {
		s.LogFile = filepath.Join(home, DefaultLogName)
	} else {
		s.LogFile = DefaultLogName
	}
	return s
}

// Load reads settings from a TOML file over the defaults. An empty path
// returns the defaults.
func Load(path string) (*Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	md, err := toml.DecodeFile(path, s)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	s.SetHistoryLimit(s.HistoryLimit)
	s.SetRowTicks(s.RowTicks)
	return s, nil
}

// Validate checks values that cannot be clamped.
func (s *Settings) Validate() error {
	switch s.Clipboard {
	case ClipboardSystem, ClipboardMemory:
		return nil
	}
	return errors.New("clipboard must be \"system\" or \"memory\"")
}

// SetHistoryLimit sets the number of undo entries kept; 0 keeps all.
func (s *Settings) SetHistoryLimit(limit int) {
	if limit < 0 {
		limit = 0
	}
	s.HistoryLimit = limit
}

// SetRowTicks sets the ticks covered by one screen row.
func (s *Settings) SetRowTicks(ticks int) {
	if ticks < MinRowTicks {
		ticks = MinRowTicks
	}
	if ticks > MaxRowTicks {
		ticks = MaxRowTicks
	}
	s.RowTicks = ticks
}
