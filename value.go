package smartcalc

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultPrecision is the number of fractional digits used to print real numbers.
const DefaultPrecision = 16

// --- Number ----------------------------------------------------------------

// Number is an exact numeric value. It is either of integer representation
// or of (exact) real representation. Arithmetic is always exact; the
// representation decides about formatting only, but it is part of a
// number's identity: 4 and 4.0 are different numbers in this sense.
//
// Numbers are immutable. The zero value is the integer 0.
type Number struct {
	rat  *big.Rat // nil means 0
	real bool     // real representation?
}

// Int creates an integer number.
func Int(i int64) Number {
	return Number{rat: new(big.Rat).SetInt64(i)}
}

// FromBigInt creates an integer number from a big integer.
func FromBigInt(i *big.Int) Number {
	return Number{rat: new(big.Rat).SetInt(i)}
}

// Real creates a number of real representation with the value of r.
func Real(r *big.Rat) Number {
	return Number{rat: new(big.Rat).Set(r), real: true}
}

// ParseInt parses an (optionally signed) decimal integer literal.
func ParseInt(s string) (Number, bool) {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Number{}, false
	}
	return FromBigInt(i), true
}

func (n Number) r() *big.Rat {
	if n.rat == nil {
		return new(big.Rat)
	}
	return n.rat
}

// IsReal is a predicate: is n of real representation?
func (n Number) IsReal() bool {
	return n.real
}

// IsInteger is a predicate: is n of integer representation?
func (n Number) IsInteger() bool {
	return !n.real
}

// Rat returns a copy of the value of n.
func (n Number) Rat() *big.Rat {
	return new(big.Rat).Set(n.r())
}

// Sign returns -1, 0 or +1.
func (n Number) Sign() int {
	return n.r().Sign()
}

// Cmp compares the values of n and m, ignoring their representation.
func (n Number) Cmp(m Number) int {
	return n.r().Cmp(m.r())
}

// Equals is true if n and m have the same value and the same representation.
func (n Number) Equals(m Number) bool {
	return n.real == m.real && n.Cmp(m) == 0
}

// Neg is -n.
func (n Number) Neg() Number {
	return Number{rat: new(big.Rat).Neg(n.r()), real: n.real}
}

// Plus is n + m.
func (n Number) Plus(m Number) Number {
	return Number{rat: new(big.Rat).Add(n.r(), m.r()), real: n.real || m.real}
}

// Minus is n - m.
func (n Number) Minus(m Number) Number {
	return Number{rat: new(big.Rat).Sub(n.r(), m.r()), real: n.real || m.real}
}

// Times is n * m.
func (n Number) Times(m Number) Number {
	return Number{rat: new(big.Rat).Mul(n.r(), m.r()), real: n.real || m.real}
}

// Divide is n / m. The quotient is of integer representation if and only if it
// is mathematically an integer.
func (n Number) Divide(m Number) (Number, error) {
	if m.Sign() == 0 {
		return Number{}, ErrDivisionByZero
	}
	q := new(big.Rat).Quo(n.r(), m.r())
	return Number{rat: q, real: !q.IsInt()}, nil
}

// Power is n ^ m. The exponent must be integral and |m| must not exceed limit
// (limit ≤ 0 means unlimited).
// The result is of integer representation if both operands are integers
// and m is not negative.
func (n Number) Power(m Number, limit int64) (Number, error) {
	exp := m.r()
	if !exp.IsInt() {
		return Number{}, ErrInvalidExponent
	}
	e := new(big.Int).Abs(exp.Num())
	if limit > 0 && (!e.IsInt64() || e.Int64() > limit) {
		tracer().Debugf("exponent %s exceeds limit %d", exp.Num(), limit)
		return Number{}, ErrExponentTooLarge
	}
	negative := exp.Sign() < 0
	if negative && n.Sign() == 0 {
		return Number{}, ErrDivisionByZero
	}
	base := n.r()
	num := new(big.Int).Exp(base.Num(), e, nil)
	den := new(big.Int).Exp(base.Denom(), e, nil)
	p := new(big.Rat).SetFrac(num, den)
	if negative {
		p.Inv(p)
	}
	return Number{rat: p, real: n.real || m.real || negative}, nil
}

// --- Formatting ------------------------------------------------------------

func (n Number) String() string {
	return n.Format(DefaultPrecision)
}

// Format returns a decimal representation of n. Integers are printed with
// all digits. Reals are rounded to prec fractional digits, with trailing zeros
// removed; a real with integral value is printed with a trailing ".0".
func (n Number) Format(prec int) string {
	r := n.r()
	if !n.real {
		return r.Num().String()
	}
	if prec < 0 {
		prec = DefaultPrecision
	}
	num := decimal.NewFromBigInt(r.Num(), 0)
	den := decimal.NewFromBigInt(r.Denom(), 0)
	s := num.DivRound(den, int32(prec)).String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
