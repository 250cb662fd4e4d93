package smartcalc

import (
	"errors"
	"fmt"
)

// ErrorKind tags the errors the expression engine reports to users.
type ErrorKind int8

// Error kinds. Every user error of the engine is of exactly one kind.
const (
	NoError ErrorKind = iota
	LexError
	InvalidExpression
	InvalidAssignment
	InvalidIdentifier
	UnknownVariable
	ArithmeticError
)

func (k ErrorKind) String() string {
	switch k {
	case NoError:
		return "NoError"
	case LexError:
		return "LexError"
	case InvalidExpression:
		return "InvalidExpression"
	case InvalidAssignment:
		return "InvalidAssignment"
	case InvalidIdentifier:
		return "InvalidIdentifier"
	case UnknownVariable:
		return "UnknownVariable"
	case ArithmeticError:
		return "ArithmeticError"
	}
	return fmt.Sprintf("<illegal error kind: %d>", k)
}

// message is the text a front end shows to the user.
func (k ErrorKind) message() string {
	switch k {
	case LexError, InvalidExpression:
		return "Invalid expression"
	case InvalidAssignment:
		return "Invalid assignment"
	case InvalidIdentifier:
		return "Invalid identifier"
	case UnknownVariable:
		return "Unknown variable"
	case ArithmeticError:
		return "Arithmetic error"
	}
	return "Calculator error"
}

// Error is a recoverable user error of the expression engine.
//
// Error() returns the message intended for the user. Col and Detail
// are for tracing only.
type Error struct {
	Kind   ErrorKind
	Col    int    // 1-based column of the offending input, 0 if unknown
	Msg    string // overrides the kind's message, if set
	Detail string // additional information for tracing
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return e.Kind.message()
}

// Is reports whether target is an *Error of the same kind. If target carries a
// message, the messages have to match as well. This lets clients match on
// sentinels with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Msg == "" || t.Msg == e.Error()
}

// Sentinels to match errors against with errors.Is.
var (
	ErrLex               = &Error{Kind: LexError}
	ErrInvalidExpression = &Error{Kind: InvalidExpression}
	ErrInvalidAssignment = &Error{Kind: InvalidAssignment}
	ErrInvalidIdentifier = &Error{Kind: InvalidIdentifier}
	ErrUnknownVariable   = &Error{Kind: UnknownVariable}
	ErrArithmetic        = &Error{Kind: ArithmeticError}

	ErrDivisionByZero   = &Error{Kind: ArithmeticError, Msg: "Division by zero"}
	ErrInvalidExponent  = &Error{Kind: ArithmeticError, Msg: "Invalid exponent"}
	ErrExponentTooLarge = &Error{Kind: ArithmeticError, Msg: "Exponent too large"}
)

// Errorf creates an error of a given kind for input column col. The formatted
// text goes to the error's detail.
func Errorf(kind ErrorKind, col int, format string, args ...interface{}) *Error {
	return &Error{
		Kind:   kind,
		Col:    col,
		Detail: fmt.Sprintf(format, args...),
	}
}

// At returns a copy of e, positioned at column col.
func (e *Error) At(col int) *Error {
	c := *e
	c.Col = col
	return &c
}

// ErrorKindOf returns the kind of err, or NoError if err is not an engine error.
func ErrorKindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return NoError
}

// InternalError flags a broken invariant inside the engine. It is never
// returned as an error value, but raised as a panic: it is a programming
// defect, not a user error.
type InternalError string

func (ie InternalError) Error() string {
	return "internal error: " + string(ie)
}

// Assertf panics with an InternalError if cond does not hold.
func Assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(InternalError(fmt.Sprintf(format, args...)))
	}
}
