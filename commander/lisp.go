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

package commander

import (
	"errors"
	"fmt"
	"log"

	"github.com/steelseries/golisp"

	"github.com/timburks/chartedit/operations"
	"github.com/timburks/chartedit/score"
	gott "github.com/timburks/chartedit/types"
)

// the commander that lisp primitives act on
var active *Commander

func init() {
	golisp.Global.BindTo(golisp.SymbolWithName("MIN-LANE"), golisp.IntegerWithValue(score.MinLane))
	golisp.Global.BindTo(golisp.SymbolWithName("MAX-LANE"), golisp.IntegerWithValue(score.MaxLane))

	primitive("select", "*", selectImpl)
	primitive("select-all", "0", func(c *Commander, args []*golisp.Data) (*golisp.Data, error) {
		c.editor.SelectAll()
		return integer(c.editor.SelectionCount()), nil
	})
	primitive("clear-selection", "0", func(c *Commander, args []*golisp.Data) (*golisp.Data, error) {
		c.editor.ClearSelection()
		return integer(0), nil
	})
	primitive("selection", "0", func(c *Commander, args []*golisp.Data) (*golisp.Data, error) {
		ids := c.editor.GetSelection()
		values := make([]*golisp.Data, len(ids))
		for i, id := range ids {
			values[i] = integer(id)
		}
		return golisp.ArrayToList(values), nil
	})
	primitive("tap", "*", tapImpl)
	primitive("hold", "*", holdImpl)
	primitive("delete", "0", performImpl(&operations.DeleteSelection{}))
	primitive("flip", "0", performImpl(&operations.FlipSelection{}))
	primitive("criticals", "0", performImpl(&operations.ToggleCriticals{}))
	primitive("copy", "0", performImpl(&operations.CopySelection{}))
	primitive("cut", "0", performImpl(&operations.CutSelection{}))
	primitive("confirm-paste", "0", performImpl(&operations.ConfirmPaste{}))
	primitive("cancel-paste", "0", performImpl(&operations.CancelPaste{}))
	primitive("connect", "0", performImpl(&operations.ConnectHolds{}))
	primitive("split", "0", performImpl(&operations.SplitHold{}))
	primitive("flick", "*", flickImpl)
	primitive("ease", "*", easeImpl)
	primitive("step", "*", stepImpl)
	primitive("paste", "*", pasteImpl)
	primitive("paste-offset", "2", pasteOffsetImpl)
	primitive("shrink", "1", shrinkImpl)
	primitive("undo", "0", func(c *Commander, args []*golisp.Data) (*golisp.Data, error) {
		return golisp.BooleanWithValue(c.editor.PerformUndo()), nil
	})
	primitive("redo", "0", func(c *Commander, args []*golisp.Data) (*golisp.Data, error) {
		return golisp.BooleanWithValue(c.editor.PerformRedo()), nil
	})
	primitive("note-count", "0", func(c *Commander, args []*golisp.Data) (*golisp.Data, error) {
		return integer(len(c.editor.GetScore().Notes)), nil
	})
	primitive("hold-count", "0", func(c *Commander, args []*golisp.Data) (*golisp.Data, error) {
		return integer(len(c.editor.GetScore().HoldNotes)), nil
	})
	primitive("load", "1", loadImpl)
	primitive("save", "*", saveImpl)
}

type primitiveFunc func(c *Commander, args []*golisp.Data) (*golisp.Data, error)

// primitive registers a lisp function that acts on the active commander.
func primitive(name, argCount string, f primitiveFunc) {
	golisp.MakePrimitiveFunction(name, argCount, func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		if active == nil {
			return nil, fmt.Errorf("%s: no editor", name)
		}
		values := make([]*golisp.Data, 0)
		for cell := args; !golisp.NilP(cell); cell = golisp.Cdr(cell) {
			values = append(values, golisp.Car(cell))
		}
		return f(active, values)
	})
}

func integer(i int) *golisp.Data {
	return golisp.IntegerWithValue(int64(i))
}

func intArg(name string, d *golisp.Data) (int, error) {
	switch {
	case golisp.IntegerP(d):
		return int(golisp.IntegerValue(d)), nil
	case golisp.FloatP(d):
		return int(golisp.FloatValue(d)), nil
	}
	return 0, fmt.Errorf("%s requires integer arguments, got %s", name, golisp.String(d))
}

func intArgs(name string, args []*golisp.Data) ([]int, error) {
	values := make([]int, len(args))
	for i, arg := range args {
		v, err := intArg(name, arg)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func stringArg(name string, d *golisp.Data) (string, error) {
	if !golisp.StringP(d) {
		return "", fmt.Errorf("%s requires a string argument, got %s", name, golisp.String(d))
	}
	return golisp.StringValue(d), nil
}

// performImpl returns a primitive that performs an operation on the
// selection and answers whether the score changed.
func performImpl(op gott.Operation) primitiveFunc {
	return func(c *Commander, args []*golisp.Data) (*golisp.Data, error) {
		return golisp.BooleanWithValue(c.perform(op)), nil
	}
}

func selectImpl(c *Commander, args []*golisp.Data) (*golisp.Data, error) {
	ids, err := intArgs("select", args)
	if err != nil {
		return nil, err
	}
	c.editor.Select(ids...)
	return integer(c.editor.SelectionCount()), nil
}

// (tap tick lane [width])
func tapImpl(c *Commander, args []*golisp.Data) (*golisp.Data, error) {
	values, err := intArgs("tap", args)
	if err != nil {
		return nil, err
	}
	if len(values) < 2 || len(values) > 3 {
		return nil, errors.New("tap requires a tick, a lane and an optional width")
	}
	op := &operations.InsertTap{Tick: values[0], Lane: values[1], Width: c.noteWidth}
	if len(values) == 3 {
		op.Width = values[2]
	}
	return golisp.BooleanWithValue(c.perform(op)), nil
}

// (hold tick lane end-tick end-lane [width])
func holdImpl(c *Commander, args []*golisp.Data) (*golisp.Data, error) {
	values, err := intArgs("hold", args)
	if err != nil {
		return nil, err
	}
	if len(values) < 4 || len(values) > 5 {
		return nil, errors.New("hold requires a tick, a lane, an end tick, an end lane and an optional width")
	}
	op := &operations.InsertHold{
		Tick:    values[0],
		Lane:    values[1],
		EndTick: values[2],
		EndLane: values[3],
		Width:   c.noteWidth,
	}
	if len(values) == 5 {
		op.Width = values[4]
	}
	return golisp.BooleanWithValue(c.perform(op)), nil
}

// (flick [name]) sets the flick, or cycles it without a name.
func flickImpl(c *Commander, args []*golisp.Data) (*golisp.Data, error) {
	if len(args) == 0 {
		return golisp.BooleanWithValue(c.perform(&operations.CycleFlick{})), nil
	}
	name, err := stringArg("flick", args[0])
	if err != nil {
		return nil, err
	}
	flick, ok := score.ParseFlick(name)
	if !ok {
		return nil, fmt.Errorf("unknown flick %q", name)
	}
	return golisp.BooleanWithValue(c.perform(&operations.SetFlick{Flick: flick})), nil
}

// (ease [name]) sets the ease, or cycles it without a name.
func easeImpl(c *Commander, args []*golisp.Data) (*golisp.Data, error) {
	if len(args) == 0 {
		return golisp.BooleanWithValue(c.perform(&operations.CycleEase{})), nil
	}
	name, err := stringArg("ease", args[0])
	if err != nil {
		return nil, err
	}
	ease, ok := score.ParseEase(name)
	if !ok {
		return nil, fmt.Errorf("unknown ease %q", name)
	}
	return golisp.BooleanWithValue(c.perform(&operations.SetEase{Ease: ease})), nil
}

// (step [name]) sets the step type, or cycles it without a name.
func stepImpl(c *Commander, args []*golisp.Data) (*golisp.Data, error) {
	if len(args) == 0 {
		return golisp.BooleanWithValue(c.perform(&operations.CycleStepType{})), nil
	}
	name, err := stringArg("step", args[0])
	if err != nil {
		return nil, err
	}
	step, ok := score.ParseStep(name)
	if !ok {
		return nil, fmt.Errorf("unknown step type %q", name)
	}
	return golisp.BooleanWithValue(c.perform(&operations.SetStepType{Type: step})), nil
}

// (paste ["flip"]) stages the pasteboard and answers the number of staged notes.
func pasteImpl(c *Commander, args []*golisp.Data) (*golisp.Data, error) {
	flip := false
	if len(args) > 0 {
		name, err := stringArg("paste", args[0])
		if err != nil {
			return nil, err
		}
		if name != "flip" {
			return nil, fmt.Errorf("unknown paste option %q", name)
		}
		flip = true
	}
	c.editor.Perform(&operations.Paste{Flip: flip})
	staged := c.editor.GetStaged()
	if staged == nil {
		return integer(0), nil
	}
	return integer(len(staged.Score.Notes)), nil
}

// (paste-offset lane tick)
func pasteOffsetImpl(c *Commander, args []*golisp.Data) (*golisp.Data, error) {
	values, err := intArgs("paste-offset", args)
	if err != nil {
		return nil, err
	}
	if !c.editor.IsPasting() {
		return nil, errors.New("paste-offset: nothing is staged")
	}
	c.editor.SetPasteOffset(values[0], values[1])
	return integer(c.editor.GetStaged().LaneOffset), nil
}

// (shrink "later") or (shrink "earlier")
func shrinkImpl(c *Commander, args []*golisp.Data) (*golisp.Data, error) {
	name, err := stringArg("shrink", args[0])
	if err != nil {
		return nil, err
	}
	op := &operations.ShrinkSelection{}
	switch name {
	case "later":
		op.Direction = score.TowardLater
	case "earlier":
		op.Direction = score.TowardEarlier
	default:
		return nil, fmt.Errorf("unknown shrink direction %q", name)
	}
	return golisp.BooleanWithValue(c.perform(op)), nil
}

func loadImpl(c *Commander, args []*golisp.Data) (*golisp.Data, error) {
	path, err := stringArg("load", args[0])
	if err != nil {
		return nil, err
	}
	if err := c.editor.ReadFile(path); err != nil {
		return nil, err
	}
	return integer(len(c.editor.GetScore().Notes)), nil
}

// (save [path]) writes to the path, or to the file that was read.
func saveImpl(c *Commander, args []*golisp.Data) (*golisp.Data, error) {
	path := c.editor.GetFileName()
	if len(args) > 0 {
		var err error
		if path, err = stringArg("save", args[0]); err != nil {
			return nil, err
		}
	}
	if path == "" {
		return nil, errors.New("save: no file name")
	}
	if err := c.editor.WriteFile(path); err != nil {
		return nil, err
	}
	return golisp.StringWithValue(path), nil
}

// Eval evaluates a script of lisp expressions and returns the value of the last one.
func (c *Commander) Eval(script string) (*golisp.Data, error) {
	active = c
	return golisp.ParseAndEval("(begin " + script + "\n)")
}

// ParseEval evaluates lisp text typed by the user and returns a message.
func (c *Commander) ParseEval(command string) string {
	value, err := c.Eval(command)
	if err != nil {
		log.Printf("ERR %+v", err)
		return err.Error()
	}
	log.Printf("SEXPR %+v", golisp.String(value))
	return golisp.String(value)
}
