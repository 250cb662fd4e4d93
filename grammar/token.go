package grammar

import (
	"fmt"
	"strings"

	"github.com/npillmayer/smartcalc"
)

// --- Chunks ----------------------------------------------------------------

// ChunkKind is the lexical class of a raw chunk of input.
type ChunkKind int8

// Chunk kinds, as produced by the tokenizer.
const (
	NoChunk ChunkKind = iota
	Numeral
	Word
	OperatorRun
	OpenParen
	CloseParen
)

func (k ChunkKind) String() string {
	switch k {
	case Numeral:
		return "Numeral"
	case Word:
		return "Word"
	case OperatorRun:
		return "OperatorRun"
	case OpenParen:
		return "OpenParen"
	case CloseParen:
		return "CloseParen"
	}
	return "NoChunk"
}

// Chunk is a raw lexical unit: a run of characters of the same class.
// Chunks carry no semantics; the normalizer turns them into tokens.
type Chunk struct {
	Kind ChunkKind
	Text string
	Col  int // 1-based column of the first character
}

func (c Chunk) String() string {
	return fmt.Sprintf("%s:%q@%d", c.Kind, c.Text, c.Col)
}

// --- Tokens ----------------------------------------------------------------

// TokType is the variant tag of a token.
type TokType int8

// Token variants.
const (
	NoToken TokType = iota
	NumberToken
	IdentToken
	OperatorToken
	LeftParen
	RightParen
)

func (tt TokType) String() string {
	switch tt {
	case NumberToken:
		return "Number"
	case IdentToken:
		return "Identifier"
	case OperatorToken:
		return "Operator"
	case LeftParen:
		return "LeftParen"
	case RightParen:
		return "RightParen"
	}
	return "NoToken"
}

// Operators is the set of binary operators.
const Operators = "+-*/^"

// Token is a normalized lexical unit. Which fields are meaningful depends on
// Kind: Value for numbers, Name for identifiers, Op for operators.
type Token struct {
	Kind  TokType
	Value smartcalc.Number
	Name  string
	Op    byte
	Col   int
}

// Num creates a number token.
func Num(n smartcalc.Number) Token {
	return Token{Kind: NumberToken, Value: n}
}

// Ident creates an identifier token.
func Ident(name string) Token {
	return Token{Kind: IdentToken, Name: name}
}

// Op creates an operator token. Will panic if op is not an operator.
func Op(op byte) Token {
	smartcalc.Assertf(strings.IndexByte(Operators, op) >= 0, "not an operator: %q", op)
	return Token{Kind: OperatorToken, Op: op}
}

// Paren creates a parenthesis token for '(' or ')'.
func Paren(p byte) Token {
	if p == '(' {
		return Token{Kind: LeftParen}
	}
	smartcalc.Assertf(p == ')', "not a parenthesis: %q", p)
	return Token{Kind: RightParen}
}

// IsOperand is a predicate: is t a number?
func (t Token) IsOperand() bool {
	return t.Kind == NumberToken
}

// IsOperator is a predicate: is t a binary operator?
func (t Token) IsOperator() bool {
	return t.Kind == OperatorToken
}

// IsSign is a predicate: is t an operator which may be used as a sign?
func (t Token) IsSign() bool {
	return t.Kind == OperatorToken && (t.Op == '+' || t.Op == '-')
}

// IsParen is a predicate: is t a parenthesis?
func (t Token) IsParen() bool {
	return t.Kind == LeftParen || t.Kind == RightParen
}

func (t Token) String() string {
	switch t.Kind {
	case NumberToken:
		return t.Value.String()
	case IdentToken:
		return t.Name
	case OperatorToken:
		return string(t.Op)
	case LeftParen:
		return "("
	case RightParen:
		return ")"
	}
	return "<none>"
}

// Equals compares two tokens, ignoring their position.
func (t Token) Equals(other Token) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case NumberToken:
		return t.Value.Equals(other.Value)
	case IdentToken:
		return t.Name == other.Name
	case OperatorToken:
		return t.Op == other.Op
	}
	return true
}

// --- Operator priority -----------------------------------------------------

const parenPriority = -1000

// Priority returns the binding priority of an operator or parenthesis token.
//
//    + -   1
//    * /   2
//    ^     3
//    ( )   sentinel, lower than any operator
//
func Priority(t Token) int {
	switch t.Kind {
	case LeftParen, RightParen:
		return parenPriority
	case OperatorToken:
		switch t.Op {
		case '+', '-':
			return 1
		case '*', '/':
			return 2
		case '^':
			return 3
		}
	}
	panic(smartcalc.InternalError(fmt.Sprintf("no priority for token %v", t)))
}

// Expression is a sequence of tokens in infix order.
type Expression []Token

func (e Expression) String() string {
	return joinTokens(e)
}

// Postfix is a sequence of number and operator tokens in postfix order.
type Postfix []Token

func (p Postfix) String() string {
	return joinTokens(p)
}

func joinTokens(toks []Token) string {
	var b strings.Builder
	for i, t := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}
