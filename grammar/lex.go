package grammar

import (
	"fmt"
	"sync"

	"github.com/npillmayer/smartcalc"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

var lexOnce sync.Once // monitors one-time creation of the lexer

var calcLexer *lexmachine.Lexer

// initLexer compiles the DFA for the tokenizer. Characters of one class are
// merged into a single chunk, with the exception of parentheses. Blanks
// separate chunks.
func initLexer() {
	lexOnce.Do(func() {
		lexer := lexmachine.NewLexer()
		lexer.Add([]byte(`[0-9]+`), makeChunk(Numeral))
		lexer.Add([]byte(`([a-z]|[A-Z])+`), makeChunk(Word))
		lexer.Add([]byte(`(\+|\-|\*|/|\^)+`), makeChunk(OperatorRun))
		lexer.Add([]byte(`\(`), makeChunk(OpenParen))
		lexer.Add([]byte(`\)`), makeChunk(CloseParen))
		lexer.Add([]byte(`( |\t)+`), skip)
		if err := lexer.Compile(); err != nil {
			panic(smartcalc.InternalError(fmt.Sprintf("cannot compile lexer: %v", err)))
		}
		calcLexer = lexer
	})
}

func makeChunk(kind ChunkKind) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(kind), string(m.Bytes), m), nil
	}
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// Tokenize splits a line of input into raw chunks. It performs no semantic
// checks. Any character outside of letters, digits, operators, parentheses,
// blanks and tabs results in a LexError.
func Tokenize(line string) ([]Chunk, error) {
	initLexer()
	scanner, err := calcLexer.Scanner([]byte(line))
	if err != nil {
		return nil, smartcalc.Errorf(smartcalc.LexError, 0, "cannot scan input: %v", err)
	}
	var chunks []Chunk
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if ui, is := err.(*machines.UnconsumedInput); is {
			col := ui.StartTC + 1
			tracer().Infof("illegal character at column %d of %q", col, line)
			return nil, smartcalc.Errorf(smartcalc.LexError, col, "illegal character %q", line[ui.StartTC])
		} else if err != nil {
			return nil, smartcalc.Errorf(smartcalc.LexError, 0, "%v", err)
		}
		t := tok.(*lexmachine.Token)
		chunks = append(chunks, Chunk{
			Kind: ChunkKind(t.Type),
			Text: t.Value.(string),
			Col:  t.TC + 1,
		})
	}
	tracer().Debugf("chunks = %v", chunks)
	return chunks, nil
}
