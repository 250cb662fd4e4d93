package grammar

import (
	"github.com/npillmayer/smartcalc"
)

// Validate checks the structure of a normalized expression: parentheses must
// be balanced, and operands and operators must alternate. The expression
// may start with a sign, but it must end with an operand.
func Validate(expr Expression) error {
	if err := checkParens(expr); err != nil {
		tracer().Infof("unbalanced parentheses in %v", expr)
		return err
	}
	if err := checkAlternation(expr); err != nil {
		tracer().Infof("operands and operators do not alternate in %v", expr)
		return err
	}
	return nil
}

func checkParens(expr Expression) error {
	depth, lastOpen := 0, 0
	for _, t := range expr {
		switch t.Kind {
		case LeftParen:
			depth++
			lastOpen = t.Col
		case RightParen:
			if depth == 0 {
				return smartcalc.Errorf(smartcalc.InvalidExpression, t.Col, "unmatched closing parenthesis")
			}
			depth--
		}
	}
	if depth != 0 {
		return smartcalc.Errorf(smartcalc.InvalidExpression, lastOpen, "%d unclosed parenthesis", depth)
	}
	return nil
}

// checkAlternation looks at the expression with all parentheses removed.
// If it starts with a sign, operators are expected at even positions and
// operands at odd positions. Otherwise it is the other way round.
func checkAlternation(expr Expression) error {
	flat := make(Expression, 0, len(expr))
	for _, t := range expr {
		if !t.IsParen() {
			flat = append(flat, t)
		}
	}
	if len(flat) == 0 {
		return smartcalc.Errorf(smartcalc.InvalidExpression, 0, "expression has no operands")
	}
	if last := flat[len(flat)-1]; !last.IsOperand() {
		return smartcalc.Errorf(smartcalc.InvalidExpression, last.Col, "expression ends with operator %v", last)
	}
	operatorsAtEven := flat[0].IsSign()
	for i, t := range flat {
		wantOperator := (i%2 == 0) == operatorsAtEven
		if wantOperator && !t.IsOperator() {
			return smartcalc.Errorf(smartcalc.InvalidExpression, t.Col, "expected operator, have %v", t)
		}
		if !wantOperator && !t.IsOperand() {
			return smartcalc.Errorf(smartcalc.InvalidExpression, t.Col, "expected operand, have %v", t)
		}
	}
	return nil
}
