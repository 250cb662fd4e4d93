package cli

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/smartcalc"
	"github.com/npillmayer/smartcalc/evaluator"
	"github.com/npillmayer/smartcalc/smartcalc/ui/termui"
)

// Formatter prints numbers with the precision of an evaluator, and
// everything else like termui.DefaultFormatter does.
type Formatter struct {
	termui.DefaultFormatter
	ev *evaluator.Evaluator
}

// Format is part of interface termui.Formatter.
func (f Formatter) Format(item interface{}, w io.Writer) (bool, error) {
	tracer().Debugf("Format called for item %T", item)
	switch t := item.(type) {
	case smartcalc.Number:
		if _, err := io.WriteString(w, f.ev.Format(t)+"\n"); err != nil {
			return false, err
		}
		return true, nil
	}
	return f.DefaultFormatter.Format(item, w)
}

// --- Tables ----------------------------------------------------------------

// variablesTable lists the variables of a session.
func variablesTable(ev *evaluator.Evaluator) table.Writer {
	tw := table.NewWriter()
	tw.SetTitle("Variables")
	tw.AppendHeader(table.Row{"name", "value", "type"})
	ev.Vars.Each(func(tag string, n smartcalc.Number) {
		typ := "integer"
		if n.IsReal() {
			typ = "real"
		}
		tw.AppendRow(table.Row{tag, ev.Format(n), typ})
	})
	if ev.Vars.Len() == 0 {
		tw.AppendRow(table.Row{"–", "–", "–"})
	}
	tw.SetStyle(table.StyleLight)
	return tw
}

func writeHelp(w io.Writer) {
	io.WriteString(w, "This is a simple calculator. Supported operations:\n")
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"operation", "syntax", "example"})
	tw.AppendRows([]table.Row{
		{"Addition", "a + b", "1 + 3 = 4"},
		{"Subtraction", "a - b", "5 - 4 = 1"},
		{"Multiplication", "a * b", "3 * 4 = 12"},
		{"Division", "a / b", "20 / 4 = 5"},
		{"Power", "a ^ b", "2 ^ 3 = 8"},
		{"Brackets", "a * (b + c)", "2 * (3 + 4) = 14"},
	})
	tw.SetStyle(table.StyleLight)
	tw.Render()
	io.WriteString(w, "Variables are assigned with 'name = value'. Commands: /help /vars /exit\n")
}
