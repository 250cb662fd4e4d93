package grammar

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/smartcalc"
)

// tokenStack is the work stack of the shunting-yard conversion.
type tokenStack struct {
	stack *arraystack.Stack
}

func newTokenStack() *tokenStack {
	return &tokenStack{stack: arraystack.New()}
}

func (ts *tokenStack) Push(t Token) {
	ts.stack.Push(t)
}

// Pop returns the top of stack, or false if the stack is empty.
func (ts *tokenStack) Pop() (Token, bool) {
	t, ok := ts.stack.Pop()
	if !ok {
		return Token{}, false
	}
	return t.(Token), true
}

// Peek returns the top of stack without removing it, or false if the stack is empty.
func (ts *tokenStack) Peek() (Token, bool) {
	t, ok := ts.stack.Peek()
	if !ok {
		return Token{}, false
	}
	return t.(Token), true
}

// ToPostfix converts a validated infix expression into postfix order,
// using the shunting-yard algorithm.
//
// All operators are treated as left-associative: an operator on the work
// stack is moved to the output if its priority is greater than or equal to
// the priority of the incoming operator. Thus "2^3^2" is (2^3)^2.
//
// expr must have passed Validate. Identifiers must have been resolved.
func ToPostfix(expr Expression) Postfix {
	work := newTokenStack()
	out := make(Postfix, 0, len(expr))
	for _, t := range expr {
		switch t.Kind {
		case NumberToken:
			out = append(out, t)
		case LeftParen:
			work.Push(t)
		case RightParen:
			for {
				top, ok := work.Pop()
				smartcalc.Assertf(ok, "unmatched ')' at column %d", t.Col)
				if top.Kind == LeftParen {
					break
				}
				out = append(out, top)
			}
		case OperatorToken:
			for {
				top, ok := work.Peek()
				if !ok || top.Kind == LeftParen || Priority(top) < Priority(t) {
					break
				}
				work.Pop()
				out = append(out, top)
			}
			work.Push(t)
		default:
			panic(smartcalc.InternalError(fmt.Sprintf("unexpected token in expression: %v", t)))
		}
	}
	for {
		top, ok := work.Pop()
		if !ok {
			break
		}
		smartcalc.Assertf(top.IsOperator(), "unmatched '(' at column %d", top.Col)
		out = append(out, top)
	}
	tracer().Debugf("postfix = %v", out)
	return out
}

// Parse runs a line through all the stages of this package and returns
// the resulting postfix sequence.
func Parse(line string, vars Bindings) (Postfix, error) {
	chunks, err := Tokenize(line)
	if err != nil {
		return nil, err
	}
	expr, err := Normalize(chunks, vars)
	if err != nil {
		return nil, err
	}
	if err = Validate(expr); err != nil {
		return nil, err
	}
	return ToPostfix(expr), nil
}
