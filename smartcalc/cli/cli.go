// Package cli implements the smartcalc command line interface.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package cli

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/smartcalc"
	"github.com/npillmayer/smartcalc/evaluator"
	"github.com/npillmayer/smartcalc/smartcalc/ui/termui"
	"github.com/spf13/cobra"
	"golang.org/x/text/width"
)

const version = "0.1"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "smartcalc [expression ...]",
	Short: "A calculator for arithmetic expressions with variables",
	Long: `Welcome to smartcalc V0.1

smartcalc evaluates arithmetic expressions on integers, with operators
+ - * / ^ and parentheses. Division is exact. Results may be assigned to
variables:

    > a = 4
    > b = -a
    > (a - b) / 3
    2.6666666666666667

smartcalc is able to run in interactive mode or evaluate one or more lines
given as arguments in batch-mode. If standard input is not a terminal, lines
are read from it without prompting.

`,
	Run: runCalcCmd,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called exactly once by smartcalc.main().
func Execute() {
	if rootCmd.Execute() != nil {
		smartcalc.Exit(2)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	// persistent flags which will be global for the application
	rootCmd.PersistentFlags().BoolP("interactive", "i", false, "Force run in interactive mode")
	rootCmd.PersistentFlags().String("logfile", "stderr", "URL of log output location")
	rootCmd.PersistentFlags().Int("precision", smartcalc.DefaultPrecision, "Fractional digits for printing real numbers")
	rootCmd.PersistentFlags().Int("max-exponent", evaluator.DefaultMaxExponent, "Upper bound for the absolute value of exponents")
}

func runCalcCmd(cmd *cobra.Command, args []string) {
	tracing.Infof("smartcalc called")
	ev := newEvaluator()
	if len(args) > 0 {
		runBatch(ev, args, os.Stdout)
		return
	}
	interactive, _ := cmd.Flags().GetBool("interactive")
	if !interactive && !readline.IsTerminal(int(os.Stdin.Fd())) {
		tracer().Infof("standard input is not a terminal, reading plain lines")
		repl := NewCalcREPL(termui.NewPlainREPL("smartcalc", version, os.Stdin, os.Stdout, os.Stderr), ev)
		repl.Prompt(true)
		return
	}
	repl := NewCalcREPL(termui.NewBaseREPL("smartcalc", version), ev)
	repl.Prompt(true)
}

// newEvaluator creates an evaluator, configured from the global configuration.
func newEvaluator() *evaluator.Evaluator {
	return evaluator.New(nil,
		evaluator.WithPrecision(smartcalc.ConfigInt("precision", smartcalc.DefaultPrecision)),
		evaluator.WithMaxExponent(int64(smartcalc.ConfigInt("max-exponent", evaluator.DefaultMaxExponent))),
	)
}

// runBatch interprets every argument as a line of input.
func runBatch(ev *evaluator.Evaluator, lines []string, out io.Writer) {
	intp := &calcIntpr{ev: ev, out: out, fmtr: Formatter{ev: ev}}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch line {
		case "/exit":
			io.WriteString(out, "Bye!\n")
			return
		case "/help":
			writeHelp(out)
			continue
		}
		interpretSafely(intp, line, out)
	}
}

// interpretSafely reports internal errors of the engine instead of
// terminating the batch.
func interpretSafely(intp *calcIntpr, line string, out io.Writer) {
	defer func() {
		if r := recover(); r != nil {
			ie, ok := r.(smartcalc.InternalError)
			if !ok {
				panic(r)
			}
			tracer().Errorf("%q: %v", line, ie)
			io.WriteString(out, "> "+ie.Error()+"\n")
		}
	}()
	intp.InterpretCommand(line)
}

// NewCalcREPL wraps a REPL around an evaluator.
func NewCalcREPL(base *termui.BaseREPL, ev *evaluator.Evaluator) *CalcREPL {
	repl := &CalcREPL{BaseREPL: base}
	out, _ := base.Outputs()
	repl.intp = &calcIntpr{ev: ev, out: out, fmtr: Formatter{ev: ev}}
	repl.Interpreter = repl.intp
	repl.Helper = func(w io.Writer) {
		writeHelp(w)
	}
	return repl
}

// CalcREPL is a REPL for a calculator session.
type CalcREPL struct {
	*termui.BaseREPL
	intp *calcIntpr
}

// calcIntpr routes lines to a calculator session and prints results.
// Results and error messages both go to out.
type calcIntpr struct {
	ev   *evaluator.Evaluator
	out  io.Writer
	fmtr termui.Formatter
}

// errUnknownCommand is reported for commands neither the REPL nor the
// interpreter knows.
var errUnknownCommand = errors.New("Unknown command")

// InterpretCommand is part of interface termui.REPLCommandInterpreter.
func (intp *calcIntpr) InterpretCommand(line string) {
	line = strings.Trim(line, "\x00")
	line = width.Narrow.String(line)
	var item interface{}
	switch {
	case line == "/vars":
		item = variablesTable(intp.ev)
	case evaluator.IsCommand(line):
		tracer().Infof("unknown command %q", line)
		item = errUnknownCommand
	default:
		n, ok, err := intp.ev.Interpret(line)
		if err != nil {
			item = err
		} else if ok {
			item = n
		}
	}
	if item == nil {
		return
	}
	if _, err := intp.fmtr.Format(item, intp.out); err != nil {
		tracer().Errorf("cannot write output: %v", err)
	}
}
