package evaluator

import (
	"github.com/npillmayer/smartcalc"
	"github.com/npillmayer/smartcalc/corelang"
	"github.com/npillmayer/smartcalc/grammar"
	"github.com/npillmayer/smartcalc/variables"
)

// DefaultMaxExponent is the default bound for the absolute value of exponents.
const DefaultMaxExponent = 100000

// Evaluator is a calculator session. It is not safe for concurrent use.
type Evaluator struct {
	Vars        *variables.Store // variables of this session
	precision   int              // fractional digits for printing reals
	maxExponent int64            // bound for |b| in a^b
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithPrecision sets the number of fractional digits for printing real numbers.
// Negative values are ignored.
func WithPrecision(digits int) Option {
	return func(ev *Evaluator) {
		if digits >= 0 {
			ev.precision = digits
		}
	}
}

// WithMaxExponent sets the bound for exponents. A bound ≤ 0 disables the check,
// which makes it possible to exhaust memory with input like "9^999999999".
func WithMaxExponent(bound int64) Option {
	return func(ev *Evaluator) {
		ev.maxExponent = bound
	}
}

// New creates an evaluator for a session. If vars is nil, the evaluator
// starts with an empty set of variables.
func New(vars *variables.Store, opts ...Option) *Evaluator {
	if vars == nil {
		vars = variables.NewStore()
	}
	ev := &Evaluator{
		Vars:        vars,
		precision:   smartcalc.DefaultPrecision,
		maxExponent: DefaultMaxExponent,
	}
	for _, opt := range opts {
		opt(ev)
	}
	return ev
}

// Postfix converts an expression to postfix order, with all variables
// substituted by their values.
func (ev *Evaluator) Postfix(line string) (grammar.Postfix, error) {
	return grammar.Parse(line, ev.Vars)
}

// Evaluate calculates the value of an arithmetic expression. Evaluate never
// changes the variables of the session.
func (ev *Evaluator) Evaluate(line string) (smartcalc.Number, error) {
	pf, err := ev.Postfix(line)
	if err != nil {
		tracer().Infof("%q: %v (%s at column %d)", line, err, smartcalc.ErrorKindOf(err), columnOf(err))
		return smartcalc.Number{}, err
	}
	n, err := corelang.Calculate(pf, ev.maxExponent)
	if err != nil {
		tracer().Infof("%q: %v", line, err)
		return smartcalc.Number{}, err
	}
	tracer().Debugf("%s = %s", line, n)
	return n, nil
}

// Format returns the printable form of n, using the precision of the
// evaluator.
func (ev *Evaluator) Format(n smartcalc.Number) string {
	return n.Format(ev.precision)
}

func columnOf(err error) int {
	if e, ok := err.(*smartcalc.Error); ok {
		return e.Col
	}
	return 0
}
