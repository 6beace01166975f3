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
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/timburks/chartedit/commander"
	"github.com/timburks/chartedit/editor"
	"github.com/timburks/chartedit/pasteboard"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats FILE",
	Short: "Print note counts of a chart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e := editor.NewEditor(pasteboard.NewMemory())
		if err := e.ReadFile(args[0]); err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, commander.Summary(e.GetStats()))
		fmt.Fprintf(out, "%s of %s holds have steps\n",
			humanize.Comma(int64(holdsWithSteps(e))),
			humanize.Comma(int64(len(e.GetScore().HoldNotes))))
		return nil
	},
}

func holdsWithSteps(e *editor.Editor) int {
	n := 0
	for _, hold := range e.GetScore().HoldNotes {
		if len(hold.Steps) > 0 {
			n++
		}
	}
	return n
}
