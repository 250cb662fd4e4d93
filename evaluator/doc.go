/*
Package evaluator is the entry point to the expression engine.

An Evaluator holds the variables of a session and processes input one line at
a time. A line is either an assignment

   tag = 42
   tag = -other

or an arithmetic expression, which is run through the stages of package
grammar and finally calculated by package corelang.

Commands (lines starting with '/') are not handled here; they are the
business of the front end.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package evaluator

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'smartcalc.eval'.
func tracer() tracing.Trace {
	return tracing.Select("smartcalc.eval")
}
