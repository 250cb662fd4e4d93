package grammar

import (
	"errors"
	"regexp"
	"strings"

	"github.com/npillmayer/smartcalc"
)

// Bindings resolves identifiers to values. Lookup of an unbound name must
// return an error matching smartcalc.ErrUnknownVariable.
type Bindings interface {
	Lookup(name string) (smartcalc.Number, error)
}

var (
	numeralPattern    = regexp.MustCompile(`^[0-9]+$`)
	identPattern      = regexp.MustCompile(`^[A-Za-z]+$`)
	mixedIdentPattern = regexp.MustCompile(`^([A-Za-z]+[0-9]+|[0-9]+[A-Za-z]+)`)
)

// IsIdentifier is a predicate: is s a legal identifier, i.e. letters only?
func IsIdentifier(s string) bool {
	return identPattern.MatchString(s)
}

// Normalize converts raw chunks into tokens. Runs of signs are collapsed to a
// single operator and identifiers are replaced by their values, as found in
// vars. vars is never modified.
func Normalize(chunks []Chunk, vars Bindings) (Expression, error) {
	expr := make(Expression, 0, len(chunks))
	for _, c := range chunks {
		var t Token
		var err error
		switch c.Kind {
		case Numeral:
			t, err = numeralToken(c)
		case OperatorRun:
			t, err = collapseOperators(c)
		case OpenParen, CloseParen:
			if len(c.Text) != 1 {
				err = smartcalc.Errorf(smartcalc.InvalidExpression, c.Col, "malformed parenthesis %q", c.Text)
			} else {
				t = Paren(c.Text[0])
			}
		case Word:
			var n smartcalc.Number
			n, err = ResolveIdentifier(c.Text, c.Col, vars)
			t = Num(n)
		default:
			err = smartcalc.Errorf(smartcalc.InvalidExpression, c.Col, "unclassified chunk %q", c.Text)
		}
		if err != nil {
			tracer().Infof("normalizing %v failed: %v", c, err)
			return nil, err
		}
		t.Col = c.Col
		expr = append(expr, t)
	}
	tracer().Debugf("normalized = %v", expr)
	return expr, nil
}

func numeralToken(c Chunk) (Token, error) {
	if !numeralPattern.MatchString(c.Text) {
		return Token{}, smartcalc.Errorf(smartcalc.InvalidExpression, c.Col, "not a numeral: %q", c.Text)
	}
	n, ok := smartcalc.ParseInt(c.Text)
	smartcalc.Assertf(ok, "numeral %q does not parse", c.Text)
	return Num(n), nil
}

// collapseOperators turns an operator run into a single operator.
// A single character stands for itself. Longer runs must be made of either
// '+' or '-' only: "+++" is '+', "---" is '-', "--" is '+'.
func collapseOperators(c Chunk) (Token, error) {
	run := c.Text
	switch {
	case len(run) == 1 && strings.Contains(Operators, run):
		return Op(run[0]), nil
	case len(run) > 1 && strings.Trim(run, "+") == "":
		return Op('+'), nil
	case len(run) > 1 && strings.Trim(run, "-") == "":
		if len(run)%2 == 0 {
			return Op('+'), nil
		}
		return Op('-'), nil
	}
	return Token{}, smartcalc.Errorf(smartcalc.InvalidExpression, c.Col, "invalid operator sequence %q", run)
}

// ResolveIdentifier checks the name of a variable and returns its value.
// Names mixing letters and digits result in an InvalidIdentifier error,
// other malformed names in an InvalidExpression error, and names not bound
// in vars in an UnknownVariable error.
func ResolveIdentifier(name string, col int, vars Bindings) (smartcalc.Number, error) {
	if mixedIdentPattern.MatchString(name) {
		return smartcalc.Number{}, smartcalc.Errorf(smartcalc.InvalidIdentifier, col, "invalid identifier %q", name)
	}
	if !identPattern.MatchString(name) {
		return smartcalc.Number{}, smartcalc.Errorf(smartcalc.InvalidExpression, col, "not an identifier: %q", name)
	}
	if vars == nil {
		return smartcalc.Number{}, smartcalc.Errorf(smartcalc.UnknownVariable, col, "no variables to look up %q", name)
	}
	n, err := vars.Lookup(name)
	if err != nil {
		if errors.Is(err, smartcalc.ErrUnknownVariable) {
			return smartcalc.Number{}, smartcalc.Errorf(smartcalc.UnknownVariable, col, "unknown variable %q", name)
		}
		return smartcalc.Number{}, err
	}
	return n, nil
}
