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

package cmd

import (
	"errors"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/timburks/chartedit/commander"
	"github.com/timburks/chartedit/editor"
	"github.com/timburks/chartedit/screen"
	gott "github.com/timburks/chartedit/types"
)

func init() {
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit [FILE]",
	Short: "Edit a chart in the terminal",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var fileName string
		if len(args) == 1 {
			fileName = args[0]
		}
		return edit(fileName)
	},
}

func edit(fileName string) error {
	s, err := settings()
	if err != nil {
		return err
	}

	// Open a log file before anything logs to the terminal.
	f, err := os.OpenFile(s.LogFile, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		return err
	}
	defer f.Close()
	log.SetOutput(f)

	// The editor manages all chart manipulation.
	e := newEditor(s)
	if fileName != "" {
		if _, err := os.Stat(fileName); err == nil {
			if err := e.ReadFile(fileName); err != nil {
				return err
			}
		} else {
			// a new chart is written on the first save
			e.SetFileName(fileName)
		}
	}

	// The commander converts user inputs into operations for the editor.
	c := commander.NewCommander(e)
	c.SetRowTicks(s.RowTicks)
	c.SetDebug(s.Debug)

	// Create a screen to manage display.
	sc := screen.NewScreen()
	if sc == nil {
		return errors.New("unable to open the terminal")
	}
	defer sc.Close()
	e.SetModifiedIndicator(sc)

	run(e, c, sc)
	return nil
}

// Run the main event loop.
func run(e *editor.Editor, c *commander.Commander, sc *screen.Screen) {
	for c.GetMode() != gott.ModeQuit {
		sc.Render(e, c, c.GetRowTicks())
		if err := c.ProcessEvent(sc.GetNextEvent()); err != nil {
			log.Output(1, err.Error())
		}
	}
}
