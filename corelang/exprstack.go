package corelang

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/linkedliststack"
	"github.com/npillmayer/smartcalc"
	"github.com/npillmayer/smartcalc/grammar"
)

// === Expression Stack ======================================================

// ExprStack is a stack of numeric values. Operations named
// <op>TOS2OS pop the top of stack (TOS) and the entry below it (OS), apply
// <op> to them and push the result. The left operand is OS, the right
// operand is TOS.
type ExprStack struct {
	stack *linkedliststack.Stack
}

// NewExprStack creates a new, empty expression stack.
func NewExprStack() *ExprStack {
	return &ExprStack{stack: linkedliststack.New()}
}

// Top returns the top of stack without removing it. If the stack is empty,
// the second return value is false.
func (es *ExprStack) Top() (smartcalc.Number, bool) {
	tos, ok := es.stack.Peek()
	if !ok {
		return smartcalc.Number{}, false
	}
	return tos.(smartcalc.Number), true
}

// Pop removes the top of stack and returns it. If the stack is empty,
// the second return value is false.
func (es *ExprStack) Pop() (smartcalc.Number, bool) {
	tos, ok := es.stack.Pop()
	if !ok {
		return smartcalc.Number{}, false
	}
	return tos.(smartcalc.Number), true
}

// Push pushes a number onto the stack.
func (es *ExprStack) Push(n smartcalc.Number) *ExprStack {
	es.stack.Push(n)
	return es
}

// IsEmpty checks for an empty stack.
func (es *ExprStack) IsEmpty() bool {
	return es.stack.Empty()
}

// Size returns the number of entries on the stack.
func (es *ExprStack) Size() int {
	return es.stack.Size()
}

// Dump is a debugging helper and prints the stack to the trace.
func (es *ExprStack) Dump() {
	tracer().P("size", es.Size()).Debugf("Expression Stack, TOS first:")
	it := es.stack.Iterator()
	for it.Next() {
		tracer().P("#", it.Index()).Debugf("    %v", it.Value())
	}
}

// CheckOperands asserts that at least n operands are on the stack.
// Will panic with an internal error otherwise.
func (es *ExprStack) CheckOperands(n int, op string) {
	if es.Size() < n {
		es.Dump()
		panic(smartcalc.InternalError(fmt.Sprintf("stack underflow: %s needs %d operands, have %d",
			op, n, es.Size())))
	}
}

// popSigned pops TOS and OS for '+' or '-'. If only one entry is present,
// the left operand is 0.
func (es *ExprStack) popSigned(op string) (a, b smartcalc.Number) {
	es.CheckOperands(1, op)
	b, _ = es.Pop()
	if a, ok := es.Pop(); ok {
		return a, b
	}
	tracer().P("op", op).Debugf("single operand, left operand is 0")
	return smartcalc.Int(0), b
}

func (es *ExprStack) pop2(op string) (a, b smartcalc.Number) {
	es.CheckOperands(2, op)
	b, _ = es.Pop()
	a, _ = es.Pop()
	return
}

// AddTOS2OS adds TOS and OS. If the stack holds just one entry, it remains
// unchanged (0 + TOS).
func (es *ExprStack) AddTOS2OS() error {
	a, b := es.popSigned("add")
	n := a.Plus(b)
	es.Push(n)
	tracer().P("op", "ADD").Debugf("result %s", n)
	return nil
}

// SubtractTOS2OS subtracts TOS from OS. If the stack holds just one entry,
// TOS gets negated (0 - TOS).
func (es *ExprStack) SubtractTOS2OS() error {
	a, b := es.popSigned("subtract")
	n := a.Minus(b)
	es.Push(n)
	tracer().P("op", "SUB").Debugf("result %s", n)
	return nil
}

// MultiplyTOS2OS multiplies TOS and OS.
func (es *ExprStack) MultiplyTOS2OS() error {
	a, b := es.pop2("multiply")
	n := a.Times(b)
	es.Push(n)
	tracer().P("op", "MUL").Debugf("result %s", n)
	return nil
}

// DivideTOS2OS divides OS by TOS. The quotient is an integer if it is
// integral, otherwise an exact real.
func (es *ExprStack) DivideTOS2OS() error {
	a, b := es.pop2("divide")
	n, err := a.Divide(b)
	if err != nil {
		tracer().P("op", "DIV").Infof("%s / %s: %v", a, b, err)
		return err
	}
	es.Push(n)
	tracer().P("op", "DIV").Debugf("result %s", n)
	return nil
}

// PowerTOS2OS raises OS to the power of TOS. Exponents beyond ±limit are
// rejected, a limit ≤ 0 disables the check.
func (es *ExprStack) PowerTOS2OS(limit int64) error {
	a, b := es.pop2("power")
	n, err := a.Power(b, limit)
	if err != nil {
		tracer().P("op", "POW").Infof("%s ^ %s: %v", a, b, err)
		return err
	}
	es.Push(n)
	tracer().P("op", "POW").Debugf("result %s", n)
	return nil
}

// === Evaluation ============================================================

// Calculate evaluates a postfix sequence. Arithmetic errors such as a
// division by zero are returned as errors of kind smartcalc.ArithmeticError.
// A malformed sequence, which cannot be produced by grammar.Parse, results in
// a panic with an internal error.
func Calculate(pf grammar.Postfix, maxExponent int64) (smartcalc.Number, error) {
	es := NewExprStack()
	for _, t := range pf {
		var err error
		switch t.Kind {
		case grammar.NumberToken:
			es.Push(t.Value)
		case grammar.OperatorToken:
			switch t.Op {
			case '+':
				err = es.AddTOS2OS()
			case '-':
				err = es.SubtractTOS2OS()
			case '*':
				err = es.MultiplyTOS2OS()
			case '/':
				err = es.DivideTOS2OS()
			case '^':
				err = es.PowerTOS2OS(maxExponent)
			default:
				panic(smartcalc.InternalError(fmt.Sprintf("unknown operator %q", t.Op)))
			}
		default:
			panic(smartcalc.InternalError(fmt.Sprintf("unexpected token in postfix sequence: %v", t)))
		}
		if err != nil {
			if e, ok := err.(*smartcalc.Error); ok && t.Col > 0 {
				return smartcalc.Number{}, e.At(t.Col)
			}
			return smartcalc.Number{}, err
		}
	}
	if es.Size() != 1 {
		es.Dump()
		panic(smartcalc.InternalError(fmt.Sprintf("evaluation of [%v] left %d values", pf, es.Size())))
	}
	result, _ := es.Pop()
	return result, nil
}
