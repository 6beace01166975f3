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
	"os"

	"github.com/spf13/cobra"
	"github.com/steelseries/golisp"

	"github.com/timburks/chartedit/commander"
)

var (
	evalChart string
	evalOut   string
)

func init() {
	evalCmd.Flags().StringVar(&evalChart, "chart", "", "chart to read before running the script")
	evalCmd.Flags().StringVar(&evalOut, "out", "", "file to write the chart to after the script")
	rootCmd.AddCommand(evalCmd)
}

var evalCmd = &cobra.Command{
	Use:   "eval SCRIPT",
	Short: "Run a lisp script against a chart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings()
		if err != nil {
			return err
		}
		script, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		e := newEditor(s)
		if err := readChart(e, evalChart); err != nil {
			return err
		}
		c := commander.NewCommander(e)
		c.SetRowTicks(s.RowTicks)
		value, err := c.Eval(string(script))
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), golisp.String(value))
		if evalOut != "" {
			return e.WriteFile(evalOut)
		}
		return nil
	},
}
