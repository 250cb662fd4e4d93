package termui

// Utilities for line oriented command line interfaces.

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/smartcalc"
)

// Some global defaults
var welcomeMessage = "Welcome to %s [V%s]"
var stdprompt = prtxt.FgGreen.Sprint("%s> ")
var editmode string = "emacs"

// BaseREPL is a base type to instantiate a REPL interpreter.
// Concrete REPL implementations will usually use this as a base type.
//
// A REPL either reads from a terminal with line editing and history, or
// plainly from an input stream (see NewPlainREPL). Internal commands are
// /help, /exit and /mode. Every other line, including other commands, is
// handed to the interpreter.
type BaseREPL struct {
	Interpreter REPLCommandInterpreter // the interpreter this REPL runs for
	Helper      func(io.Writer)        // print out help information
	input       lineReader
	readline    *readline.Instance // nil for plain input
	toolname    string
	version     string
}

// lineReader abstracts from the source of input lines.
type lineReader interface {
	Readline() (string, error)
	Stdout() io.Writer
	Stderr() io.Writer
	Close() error
}

// NewBaseREPL create a new REPL base object intialized for an interpreter tool
// and a given version. It reads from the terminal.
func NewBaseREPL(toolname, version string) *BaseREPL {
	rl := newReadline(toolname, version)
	repl := &BaseREPL{
		input:    rl,
		readline: rl,
		toolname: toolname,
		version:  version,
	}
	return repl
}

// NewPlainREPL creates a REPL reading lines from in, without prompting and
// line editing. Output goes to out, diagnostics to errout.
func NewPlainREPL(toolname, version string, in io.Reader, out, errout io.Writer) *BaseREPL {
	repl := &BaseREPL{
		input:    newPlainReader(in, out, errout),
		toolname: toolname,
		version:  version,
	}
	return repl
}

// REPLCommandInterpreter is an interface all interpreters have to implement.
// It is the workhorse doing interpretation of interactive
// commands.
//
// The REPL will delegate interpreting command strings (i.e. those which do not represent
// internal administrative commands) to the interpreter.
type REPLCommandInterpreter interface {
	InterpretCommand(string)
}

// Create a readline instance.
func newReadline(toolname, version string) *readline.Instance {
	histfile := fmt.Sprintf("%s/%s-repl-history.tmp", os.TempDir(), toolname)
	prompt := fmt.Sprintf(stdprompt, toolname)
	rl, err := readline.NewEx(&readline.Config{
		Prompt:              prompt,
		HistoryFile:         histfile,
		AutoComplete:        replCompleter,
		InterruptPrompt:     "^C",
		EOFPrompt:           "/exit",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterReplInput,
	})
	if err != nil {
		panic(err)
	}
	return rl
}

// displayCommands prints a help message with available commands
// We support some internal interactive sub-commands (not part of the interpreter).
func (repl *BaseREPL) displayCommands(out io.Writer) {
	io.WriteString(out, fmt.Sprintf(welcomeMessage, repl.toolname, repl.version))
	io.WriteString(out, "\n\nThe following commands are available:\n\n")
	io.WriteString(out, "  /help              : print this message\n")
	io.WriteString(out, "  /exit              : quit application\n")
	io.WriteString(out, "  /vars              : list variables\n")
	io.WriteString(out, "  /mode [mode]       : display or set current editing mode\n")
}

// Completer-tree for interactive sub-commands
var replCompleter = readline.NewPrefixCompleter(
	readline.PcItem("/help"),
	readline.PcItem("/exit"),
	readline.PcItem("/vars"),
	readline.PcItem("/mode",
		readline.PcItem("vi"),
		readline.PcItem("emacs"),
	),
)

// Outputs returns stdout and stderr of this REPL.
func (repl *BaseREPL) Outputs() (io.Writer, io.Writer) {
	return repl.input.Stdout(), repl.input.Stderr()
}

// Prompt enters a REPL and executes commands.
// Commands are either internal administrative (/help, /exit, etc.)
// or interpreted statements.
//
// Prompt returns at end of input or after /exit. If exitOnBye is set, it
// terminates the application instead.
func (repl *BaseREPL) Prompt(exitOnBye bool) {
	defer repl.input.Close()
	if repl.readline != nil {
		io.WriteString(repl.readline.Stderr(),
			fmt.Sprintf(welcomeMessage, repl.toolname, repl.version))
		if !strings.HasSuffix(welcomeMessage, "\n") {
			repl.readline.Stderr().Write([]byte{'\n'})
		}
	}
	for {
		line, err := repl.input.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			break
		} else if err != nil {
			trace().Errorf("reading input: %v", err)
			break
		}
		line = strings.TrimSpace(line)
		words := strings.Fields(line)
		command := ""
		if len(words) > 0 {
			command = words[0]
		}
		if doExit := repl.executeCommand(command, words, line); doExit {
			break
		}
	}
	if exitOnBye {
		smartcalc.Exit(0)
	}
}

// Central dispatcher function to execute internal REPL commands or interpreter
// statements. It receives the command (i.e. the first word of the line),
// a list of words (args) including the command, and the complete line of text.
// If it returns true, the REPL should terminate.
func (repl *BaseREPL) executeCommand(cmd string, args []string, line string) bool {
	stdout, stderr := repl.Outputs()
	switch {
	case cmd == "":
		// do nothing
	case line == "/help":
		if repl.Helper != nil {
			repl.Helper(stdout)
		} else {
			repl.displayCommands(stdout)
		}
	case line == "/exit":
		io.WriteString(stdout, "Bye!\n")
		return true
	case cmd == "/mode":
		if repl.readline == nil {
			io.WriteString(stderr, "> no editing mode for plain input\n")
			return false
		}
		if len(args) > 1 {
			switch args[1] {
			case "vi":
				repl.readline.SetVimMode(true)
				editmode = "vi"
				return false
			case "emacs":
				repl.readline.SetVimMode(false)
				editmode = "emacs"
				return false
			}
		}
		io.WriteString(stderr, fmt.Sprintf("> current input mode: %s\n", editmode))
	default:
		trace().Debugf("call interpreter on: '%s'", line)
		repl.interpret(line)
	}
	return false // do not exit
}

// interpret calls the interpreter, sending a statement. Internal errors of
// the interpreter are reported, but do not end the session.
func (repl *BaseREPL) interpret(line string) {
	if repl.Interpreter == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			ie, ok := r.(smartcalc.InternalError)
			if !ok {
				panic(r)
			}
			trace().Errorf("%q: %v", line, ie)
			_, stderr := repl.Outputs()
			io.WriteString(stderr, fmt.Sprintf("> %v\n", ie))
		}
	}()
	repl.Interpreter.InterpretCommand(line)
}

// Input filter for REPL. Blocks ctrl-z.
func filterReplInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// --- Plain input -----------------------------------------------------------

type plainReader struct {
	scanner *bufio.Scanner
	closer  io.Closer
	out     io.Writer
	errout  io.Writer
}

var _ lineReader = (*plainReader)(nil)

func newPlainReader(in io.Reader, out, errout io.Writer) *plainReader {
	pr := &plainReader{
		scanner: bufio.NewScanner(in),
		out:     out,
		errout:  errout,
	}
	if c, ok := in.(io.Closer); ok && in != os.Stdin {
		pr.closer = c
	}
	return pr
}

func (pr *plainReader) Readline() (string, error) {
	if pr.scanner.Scan() {
		return pr.scanner.Text(), nil
	}
	if err := pr.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (pr *plainReader) Stdout() io.Writer { return pr.out }
func (pr *plainReader) Stderr() io.Writer { return pr.errout }

func (pr *plainReader) Close() error {
	if pr.closer != nil {
		return pr.closer.Close()
	}
	return nil
}
