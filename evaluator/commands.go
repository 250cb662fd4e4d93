package evaluator

import (
	"regexp"
	"strings"

	"github.com/npillmayer/smartcalc"
	"github.com/npillmayer/smartcalc/grammar"
)

var (
	assignmentPattern = regexp.MustCompile(`^\s*\w+\s*=`)
	intLiteralPattern = regexp.MustCompile(`^[+-]?[0-9]+$`)
	varRefPattern     = regexp.MustCompile(`^([+-]?)([A-Za-z]+)$`)
)

// IsCommand is a predicate: does line start with a '/'?
func IsCommand(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "/")
}

// IsAssignment is a predicate: is line to be treated as an assignment?
// This is true for lines starting with a word followed by '='. The word is not
// checked to be a legal tag, so that "a1 = 5" is rejected by Assign with an
// InvalidIdentifier error.
func IsAssignment(line string) bool {
	return assignmentPattern.MatchString(line)
}

/*
Assign is a variable assignment.

   assignment : tag '=' [ '+' | '-' ] ( integer | tag )

(1) The line must split into exactly two non-empty sides at '='.

(2) The left side must be a legal tag (letters only).

(3) The right side is either an integer literal or a reference to a known
variable, each optionally signed. The value of a referenced variable is copied.

On error the variables remain unchanged.
*/
func (ev *Evaluator) Assign(line string) error {
	sides := strings.Split(line, "=")
	if len(sides) != 2 {
		tracer().Infof("assignment %q has %d sides", line, len(sides))
		return smartcalc.Errorf(smartcalc.InvalidAssignment, 0, "%d sides in assignment", len(sides))
	}
	lvalue, rvalue := strings.TrimSpace(sides[0]), strings.TrimSpace(sides[1])
	if lvalue == "" || rvalue == "" {
		return smartcalc.Errorf(smartcalc.InvalidAssignment, 0, "empty side in assignment")
	}
	if !grammar.IsIdentifier(lvalue) {
		tracer().P("var", lvalue).Infof("illegal tag")
		return smartcalc.Errorf(smartcalc.InvalidIdentifier, 1, "illegal tag %q", lvalue)
	}
	col := len(sides[0]) + 1 + strings.Index(sides[1], rvalue) + 1
	var n smartcalc.Number
	switch {
	case intLiteralPattern.MatchString(rvalue):
		var ok bool
		n, ok = smartcalc.ParseInt(rvalue)
		smartcalc.Assertf(ok, "integer literal %q does not parse", rvalue)
	case varRefPattern.MatchString(rvalue):
		m := varRefPattern.FindStringSubmatch(rvalue)
		v, err := grammar.ResolveIdentifier(m[2], col+len(m[1]), ev.Vars)
		if err != nil {
			tracer().P("var", lvalue).Infof("cannot assign %q: %v", rvalue, err)
			return err
		}
		if m[1] == "-" {
			v = v.Neg()
		}
		n = v
	default:
		tracer().P("var", lvalue).Infof("cannot assign %q", rvalue)
		return smartcalc.Errorf(smartcalc.InvalidAssignment, col, "illegal right side %q", rvalue)
	}
	ev.Vars.Set(lvalue, n)
	return nil
}
