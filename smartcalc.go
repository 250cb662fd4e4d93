// Package smartcalc is a line oriented calculator for integer arithmetic with
// exact division and session variables.
//
// The root package holds the numeric value type shared by all stages of the
// expression engine, the error taxonomy and some application-global state.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package smartcalc

import (
	"context"
	"io"
	"os"

	"github.com/knadh/koanf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'smartcalc'.
func tracer() tracing.Trace {
	return tracing.Select("smartcalc")
}

// Configuration holds global configuration values. We use koanf.
var Configuration *koanf.Koanf

// Tracefile is the file we write our log output, if not nil.
var Tracefile io.WriteCloser

// SignalContext is a global context for terminating the application by an interrupt
// signal.
var SignalContext context.Context

// Exit exits the application. It gracefully shuts down all resources.
func Exit(errcode int) {
	if Tracefile != nil {
		Tracefile.Close()
	}
	os.Exit(errcode)
}

// ConfigInt returns an integer configuration value, or dflt if no configuration
// has been loaded or the key is unset.
func ConfigInt(key string, dflt int) int {
	if Configuration == nil || !Configuration.Exists(key) {
		return dflt
	}
	return Configuration.Int(key)
}
