/*
Package corelang implements the evaluation machine of the calculator.

Expressions arrive in postfix order, as produced by package grammar. The
machine is a stack of numbers: operands are pushed, and every operator
replaces the top two entries of the stack with its result.

Operators '+' and '-' tolerate a missing left operand and substitute 0 for it.
This is how a leading sign of an expression gets applied, as
"-3" is converted to "3 -". All other operators require two operands, and a
stack underflow is an internal error.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package corelang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'smartcalc.core'.
func tracer() tracing.Trace {
	return tracing.Select("smartcalc.core")
}
