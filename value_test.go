package smartcalc

import (
	"errors"
	"math/big"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDivideRepresentation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "smartcalc")
	defer teardown()
	//
	for i, x := range []struct {
		a, b int64
		s    string
		real bool
	}{
		{a: 20, b: 4, s: "5", real: false},
		{a: 7, b: 2, s: "3.5", real: true},
		{a: -7, b: 2, s: "-3.5", real: true},
		{a: 1, b: 3, s: "0.3333333333333333", real: true},
		{a: 0, b: 5, s: "0", real: false},
	} {
		q, err := Int(x.a).Divide(Int(x.b))
		if err != nil {
			t.Fatalf("test %d: unexpected error %v", i, err)
		}
		if q.String() != x.s {
			t.Errorf("test %d: expected %d/%d = %s, have %s", i, x.a, x.b, x.s, q)
		}
		if q.IsReal() != x.real {
			t.Errorf("test %d: expected real=%v for %s", i, x.real, q)
		}
	}
}

func TestDivideRealToInteger(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "smartcalc")
	defer teardown()
	//
	half, _ := Int(7).Divide(Int(2))
	q, err := half.Divide(Real(big.NewRat(1, 2)))
	if err != nil {
		t.Fatal(err)
	}
	if !q.Equals(Int(7)) {
		t.Errorf("expected 3.5/0.5 to be integer 7, is %s (real=%v)", q, q.IsReal())
	}
}

func TestDivisionByZero(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "smartcalc")
	defer teardown()
	//
	_, err := Int(1).Divide(Int(0))
	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("expected division by zero, have %v", err)
	}
	if !errors.Is(err, ErrArithmetic) {
		t.Errorf("expected division by zero to be an arithmetic error")
	}
	if errors.Is(err, ErrInvalidExponent) {
		t.Errorf("division by zero must not match invalid exponent")
	}
}

func TestPower(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "smartcalc")
	defer teardown()
	//
	for i, x := range []struct {
		a, b int64
		s    string
		real bool
	}{
		{a: 2, b: 3, s: "8"},
		{a: -2, b: 3, s: "-8"},
		{a: 5, b: 0, s: "1"},
		{a: 0, b: 0, s: "1"},
		{a: 2, b: -1, s: "0.5", real: true},
		{a: 1, b: -1, s: "1.0", real: true},
		{a: 2, b: 100, s: "1267650600228229401496703205376"},
	} {
		p, err := Int(x.a).Power(Int(x.b), 1000)
		if err != nil {
			t.Fatalf("test %d: unexpected error %v", i, err)
		}
		if p.String() != x.s || p.IsReal() != x.real {
			t.Errorf("test %d: expected %d^%d = %s, have %s", i, x.a, x.b, x.s, p)
		}
	}
}

func TestPowerErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "smartcalc")
	defer teardown()
	//
	half, _ := Int(1).Divide(Int(2))
	if _, err := Int(4).Power(half, 0); !errors.Is(err, ErrInvalidExponent) {
		t.Errorf("expected invalid exponent, have %v", err)
	}
	if _, err := Int(2).Power(Int(1001), 1000); !errors.Is(err, ErrExponentTooLarge) {
		t.Errorf("expected exponent too large, have %v", err)
	}
	if _, err := Int(0).Power(Int(-2), 1000); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("expected division by zero, have %v", err)
	}
}

func TestRealContagion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "smartcalc")
	defer teardown()
	//
	half, _ := Int(1).Divide(Int(2))
	sum := half.Plus(half)
	if sum.String() != "1.0" {
		t.Errorf("expected 0.5+0.5 to print as 1.0, is %s", sum)
	}
	if d := Int(3).Minus(Int(5)); !d.Equals(Int(-2)) {
		t.Errorf("expected 3-5 = -2, is %s", d)
	}
	if p := Int(6).Times(half); p.String() != "3.0" {
		t.Errorf("expected 6*0.5 = 3.0, is %s", p)
	}
}

func TestParseInt(t *testing.T) {
	for i, x := range []struct {
		s  string
		ok bool
		v  string
	}{
		{s: "42", ok: true, v: "42"},
		{s: "-42", ok: true, v: "-42"},
		{s: "+7", ok: true, v: "7"},
		{s: "123456789012345678901234567890", ok: true, v: "123456789012345678901234567890"},
		{s: "1.5", ok: false},
		{s: "a1", ok: false},
	} {
		n, ok := ParseInt(x.s)
		if ok != x.ok {
			t.Errorf("test %d: expected ok=%v for %q", i, x.ok, x.s)
			continue
		}
		if ok && n.String() != x.v {
			t.Errorf("test %d: expected %s, have %s", i, x.v, n)
		}
	}
}

func TestErrorKinds(t *testing.T) {
	err := Errorf(UnknownVariable, 3, "variable %q not found", "x")
	if !errors.Is(err, ErrUnknownVariable) {
		t.Errorf("expected error to match its kind's sentinel")
	}
	if errors.Is(err, ErrInvalidIdentifier) {
		t.Errorf("expected error not to match a different kind")
	}
	if err.Error() != "Unknown variable" {
		t.Errorf("unexpected user message %q", err.Error())
	}
	if ErrorKindOf(err) != UnknownVariable || err.Col != 3 {
		t.Errorf("unexpected error data: %v/%d", ErrorKindOf(err), err.Col)
	}
	if ErrLex.Error() != "Invalid expression" {
		t.Errorf("lexical errors are reported as invalid expressions")
	}
}
