package cli

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'smartcalc.cli'
func tracer() tracing.Trace {
	return tracing.Select("smartcalc.cli")
}
