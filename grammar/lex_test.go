package grammar

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/smartcalc"
)

func TestTokenizeChunks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "smartcalc.grammar")
	defer teardown()
	//
	for i, x := range []struct {
		input  string
		chunks []Chunk
	}{
		{"42", []Chunk{{Numeral, "42", 1}}},
		{"3 + 2 * 4", []Chunk{
			{Numeral, "3", 1}, {OperatorRun, "+", 3}, {Numeral, "2", 5},
			{OperatorRun, "*", 7}, {Numeral, "4", 9},
		}},
		{"5---2", []Chunk{{Numeral, "5", 1}, {OperatorRun, "---", 2}, {Numeral, "2", 5}}},
		{"1 +\t( ab-4)", []Chunk{
			{Numeral, "1", 1}, {OperatorRun, "+", 3}, {OpenParen, "(", 5},
			{Word, "ab", 7}, {OperatorRun, "-", 9}, {Numeral, "4", 10}, {CloseParen, ")", 11},
		}},
		{"((-3))", []Chunk{
			{OpenParen, "(", 1}, {OpenParen, "(", 2}, {OperatorRun, "-", 3},
			{Numeral, "3", 4}, {CloseParen, ")", 5}, {CloseParen, ")", 6},
		}},
		{"a1", []Chunk{{Word, "a", 1}, {Numeral, "1", 2}}},
		{"+*", []Chunk{{OperatorRun, "+*", 1}}},
		{"x - - y", []Chunk{{Word, "x", 1}, {OperatorRun, "-", 3}, {OperatorRun, "-", 5}, {Word, "y", 7}}},
	} {
		chunks, err := Tokenize(x.input)
		if err != nil {
			t.Errorf("test %d: unexpected error for %q: %v", i, x.input, err)
			continue
		}
		if len(chunks) != len(x.chunks) {
			t.Errorf("test %d: expected %d chunks for %q, have %v", i, len(x.chunks), x.input, chunks)
			continue
		}
		for j, c := range chunks {
			if c != x.chunks[j] {
				t.Errorf("test %d: expected chunk #%d to be %v, is %v", i, j, x.chunks[j], c)
			}
		}
	}
}

func TestTokenizeIllegalCharacter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "smartcalc.grammar")
	defer teardown()
	//
	for i, x := range []struct {
		input string
		col   int
	}{
		{"2 % 3", 3},
		{"a = 5", 3},
		{"1.5", 2},
		{"x_y", 2},
	} {
		_, err := Tokenize(x.input)
		if !errors.Is(err, smartcalc.ErrLex) {
			t.Errorf("test %d: expected lexical error for %q, have %v", i, x.input, err)
			continue
		}
		if col := err.(*smartcalc.Error).Col; col != x.col {
			t.Errorf("test %d: expected error at column %d, is %d", i, x.col, col)
		}
	}
}
