/*
Package variables implements the variables of a calculator session.

Variables are simple things here. A variable is named by a tag of letters
only, and tags are case-sensitive: 'a' and 'A' are different variables.
Every variable holds a number, either an integer or an exact real.

   > a = 4
   > b = -a
   > a = 5
   > b
   -4

Variables are created on first assignment and live for the rest of the
session. An assignment copies a value, it never creates an alias, as shown
above.

A Store is not safe for concurrent use. Clients sharing a store between
goroutines must serialize access themselves.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package variables

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'smartcalc.vars'.
func tracer() tracing.Trace {
	return tracing.Select("smartcalc.vars")
}
