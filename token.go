package shunt

import (
	"errors"
	"strconv"
	"strings"
)

// Token is a single element of a postfix expression.
type Token struct {
	// Kind is the token's kind.
	Kind TokenKind
	// Text is the token as it appears in the postfix string: decimal text for
	// numbers, the operator byte, or the function name.
	Text string

	// num is the parsed value of a number token.
	num float64
}

// TokenKind is the kind of a Token.
type TokenKind int8

const (
	// TokenNone is the zero TokenKind. No valid token has it.
	TokenNone TokenKind = iota
	// TokenNumber is a decimal number, possibly negative.
	TokenNumber
	// TokenOperator is one of Operators.
	TokenOperator
	// TokenFunction is the name of a unary function.
	TokenFunction
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -trimprefix=Token

func (t Token) String() string {
	return t.Text
}

// numToken creates a number token from decimal text. The value is parsed here
// and only here. The second result is false if text is not a decimal number.
func numToken(text string) (Token, bool) {
	if !isDecimal(text) {
		return Token{}, false
	}
	var v float64
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		v = float64(n)
	} else {
		f, err := strconv.ParseFloat(text, 64)
		// Out of range decimal text parses to ±Inf, which is fine.
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return Token{}, false
		}
		v = f
	}
	return Token{Kind: TokenNumber, Text: text, num: v}, true
}

func opToken(op byte) Token {
	return Token{Kind: TokenOperator, Text: string(op)}
}

func funcToken(name string) Token {
	return Token{Kind: TokenFunction, Text: name}
}

// Expr is an expression in postfix order, ready to be evaluated. An Expr is
// immutable and safe for concurrent use.
type Expr struct {
	toks []Token
}

// Tokens returns a copy of the expression's tokens in evaluation order.
func (e *Expr) Tokens() []Token {
	return append([]Token(nil), e.toks...)
}

// String returns the postfix form of the expression with tokens separated by
// single spaces.
func (e *Expr) String() string {
	var b strings.Builder
	for i, tok := range e.toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}
