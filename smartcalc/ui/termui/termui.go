// Package termui provides objects and methods for interactive UI in terminal windows.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
//
package termui

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/schuko/tracing"
)

// trace traces with key 'smartcalc.cli'.
func trace() tracing.Trace {
	return tracing.Select("smartcalc.cli")
}

// Formatter writes items produced by an interpreter to an output. If it
// does not know how to format an item, it returns false.
type Formatter interface {
	Format(interface{}, io.Writer) (bool, error)
}

// DefaultFormatter formats strings, errors, tables and everything
// implementing fmt.Stringer, one item per line.
type DefaultFormatter struct{}

// Format is part of interface Formatter.
func (df DefaultFormatter) Format(item interface{}, w io.Writer) (bool, error) {
	var err error
	switch t := item.(type) {
	case nil:
		return false, nil
	case string:
		_, err = io.WriteString(w, t+"\n")
	case error:
		_, err = io.WriteString(w, t.Error()+"\n")
	case table.Writer:
		_, err = io.WriteString(w, t.Render()+"\n")
	case fmt.Stringer:
		_, err = io.WriteString(w, t.String()+"\n")
	default:
		trace().Debugf("no format for item of type %T", t)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
