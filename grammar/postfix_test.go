package grammar

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/smartcalc"
)

func TestToPostfix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "smartcalc.grammar")
	defer teardown()
	//
	for i, x := range []struct {
		input   string
		postfix string
	}{
		{"3 + 2 * 4", "3 2 4 * +"},
		{"(3 + 2) * 4", "3 2 + 4 *"},
		{"1 - 2 + 3", "1 2 - 3 +"},
		{"8 / 4 / 2", "8 4 / 2 /"},
		{"2 ^ 3 ^ 2", "2 3 ^ 2 ^"},
		{"2 * 3 ^ 2", "2 3 2 ^ *"},
		{"-3", "3 -"},
		{"-2 + 3", "2 - 3 +"},
		{"-(a + b)", "1 2 + -"},
		{"a * (b + 4) - 1", "1 2 4 + * 1 -"},
		{"8 * 3 + 12 * (4 - 2)", "8 3 * 12 4 2 - * +"},
	} {
		pf := ToPostfix(normalized(t, x.input))
		if pf.String() != x.postfix {
			t.Errorf("test %d: expected %q to convert to %q, is %q", i, x.input, x.postfix, pf.String())
		}
		for _, tok := range pf {
			if tok.IsParen() {
				t.Errorf("test %d: postfix must not contain parentheses: %v", i, pf)
			}
		}
	}
}

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "smartcalc.grammar")
	defer teardown()
	//
	pf, err := Parse("3 + 2 * 4", nil)
	if err != nil {
		t.Fatal(err)
	}
	expected := Postfix{
		Num(smartcalc.Int(3)), Num(smartcalc.Int(2)), Num(smartcalc.Int(4)), Op('*'), Op('+'),
	}
	if len(pf) != len(expected) {
		t.Fatalf("expected %v, have %v", expected, pf)
	}
	for i, tok := range pf {
		if !tok.Equals(expected[i]) {
			t.Errorf("expected token #%d to be %v, is %v", i, expected[i], tok)
		}
	}
	if _, err = Parse("(1 + 2", nil); !errors.Is(err, smartcalc.ErrInvalidExpression) {
		t.Errorf("expected invalid expression, have %v", err)
	}
	if _, err = Parse("x + 1", nil); !errors.Is(err, smartcalc.ErrUnknownVariable) {
		t.Errorf("expected unknown variable, have %v", err)
	}
}

func TestToPostfixPanicsOnIdentifiers(t *testing.T) {
	defer func() {
		r := recover()
		if _, ok := r.(smartcalc.InternalError); !ok {
			t.Errorf("expected internal error panic, have %v", r)
		}
	}()
	ToPostfix(Expression{Ident("x")})
}
