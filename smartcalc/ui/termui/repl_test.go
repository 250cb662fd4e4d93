package termui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/smartcalc"
)

type echo struct {
	repl  *BaseREPL
	lines []string
}

func (e *echo) InterpretCommand(line string) {
	e.lines = append(e.lines, line)
	out, _ := e.repl.Outputs()
	if line == "boom" {
		panic(smartcalc.InternalError("boom"))
	}
	out.Write([]byte("<" + line + ">\n"))
}

func plainSession(input string) (*echo, string, string) {
	var out, errout bytes.Buffer
	repl := NewPlainREPL("test", "0", strings.NewReader(input), &out, &errout)
	e := &echo{repl: repl}
	repl.Interpreter = e
	repl.Prompt(false)
	return e, out.String(), errout.String()
}

func TestPlainREPL(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "smartcalc.cli")
	defer teardown()
	//
	e, out, _ := plainSession("1 + 2\n\n   \n  a = 3  \n/exit\nnot read\n")
	if len(e.lines) != 2 || e.lines[0] != "1 + 2" || e.lines[1] != "a = 3" {
		t.Errorf("unexpected lines passed to interpreter: %q", e.lines)
	}
	if out != "<1 + 2>\n<a = 3>\nBye!\n" {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestPlainREPLEndOfInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "smartcalc.cli")
	defer teardown()
	//
	e, out, _ := plainSession("x\ny")
	if len(e.lines) != 2 {
		t.Errorf("expected 2 lines, have %q", e.lines)
	}
	if strings.Contains(out, "Bye!") {
		t.Errorf("end of input should end the session silently")
	}
}

func TestREPLCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "smartcalc.cli")
	defer teardown()
	//
	e, out, errout := plainSession("/help\n/mode vi\n/vars\n/go\n")
	if !strings.Contains(out, "/exit") {
		t.Errorf("expected help text to list commands, is %q", out)
	}
	if !strings.Contains(errout, "no editing mode") {
		t.Errorf("expected /mode to be rejected for plain input, is %q", errout)
	}
	if len(e.lines) != 2 || e.lines[0] != "/vars" || e.lines[1] != "/go" {
		t.Errorf("expected other commands to reach the interpreter, have %q", e.lines)
	}
}

func TestREPLRecoversInternalErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "smartcalc.cli")
	defer teardown()
	//
	e, out, errout := plainSession("boom\nafter\n")
	if len(e.lines) != 2 {
		t.Errorf("expected session to continue after internal error, have %q", e.lines)
	}
	if !strings.Contains(errout, "internal error: boom") {
		t.Errorf("expected internal error to be reported, is %q", errout)
	}
	if out != "<after>\n" {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestDefaultFormatter(t *testing.T) {
	var w bytes.Buffer
	f := DefaultFormatter{}
	f.Format("text", &w)
	f.Format(errors.New("Unknown command"), &w)
	tw := table.NewWriter()
	tw.AppendRow(table.Row{"a", 1})
	f.Format(tw, &w)
	if ok, _ := f.Format(42, &w); ok {
		t.Errorf("expected integer item not to be formatted")
	}
	s := w.String()
	if !strings.HasPrefix(s, "text\nUnknown command\n") || !strings.Contains(s, "a") {
		t.Errorf("unexpected formatter output: %q", s)
	}
}
