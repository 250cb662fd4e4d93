/*
Package grammar implements the front half of the expression engine: it turns
a line of input into a postfix sequence of numbers and operators.

Processing is done in stages:

   line ──Tokenize──▶ chunks ──Normalize──▶ tokens ──Validate──▶ ──ToPostfix──▶ postfix

Tokenize merges characters of one class into chunks ("5---2" gives "5", "---", "2").
Normalize collapses runs of signs ("---" gives "-", "--" gives "+"), checks
identifiers and substitutes variable values. Validate checks parentheses and
the alternation of operands and operators. ToPostfix is a shunting-yard
conversion. All operators are binary and left-associative, including '^'.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'smartcalc.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("smartcalc.grammar")
}
