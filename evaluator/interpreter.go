package evaluator

import (
	"strings"

	"github.com/npillmayer/smartcalc"
)

// Interpret processes a line of input. Assignments are executed, every other
// line is evaluated as an expression. If the line produced a value, the second
// return value is true. Blank lines are ignored.
//
// Interpret expects commands to have been filtered out by the caller.
func (ev *Evaluator) Interpret(line string) (smartcalc.Number, bool, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return smartcalc.Number{}, false, nil
	}
	if IsAssignment(line) {
		tracer().Debugf("assignment: %s", line)
		return smartcalc.Number{}, false, ev.Assign(line)
	}
	n, err := ev.Evaluate(line)
	if err != nil {
		return smartcalc.Number{}, false, err
	}
	return n, true, nil
}
