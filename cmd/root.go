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

// Package cmd implements the chartedit command line.
package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/timburks/chartedit/config"
	"github.com/timburks/chartedit/editor"
	"github.com/timburks/chartedit/pasteboard"
)

var (
	configFile string
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "chartedit",
	Short: "A terminal editor for rhythm game charts",
	Long: `chartedit edits lane-based rhythm game charts: taps, flicks and holds
with steps. Edits can be made interactively or scripted in lisp.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "settings file (TOML)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log", "", "log file for the interactive editor")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// settings loads the configuration and applies flag overrides.
func settings() (*config.Settings, error) {
	s, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if logFile != "" {
		s.LogFile = logFile
	}
	return s, nil
}

// newEditor creates an editor with the configured clipboard.
// The system clipboard falls back to one local to the process.
func newEditor(s *config.Settings) *editor.Editor {
	var board pasteboard.Transport = pasteboard.NewMemory()
	if s.Clipboard == config.ClipboardSystem {
		if system, err := pasteboard.NewSystem(); err == nil {
			board = system
		} else {
			log.Printf("%+v", err)
		}
	}
	return editor.NewEditor(board, editor.WithHistoryLimit(s.HistoryLimit))
}

// readChart reads a chart into an editor, if a file name was given.
func readChart(e *editor.Editor, fileName string) error {
	if fileName == "" {
		return nil
	}
	return e.ReadFile(fileName)
}
