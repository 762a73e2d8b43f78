package shunt

import (
	"math"
	"strconv"
	"strings"
)

// evaluator is the state of a single evaluation.
type evaluator struct {
	stack []float64
}

func (ev *evaluator) push(x float64) {
	ev.stack = append(ev.stack, x)
}

// pop removes the top from the stack and returns it.
func (ev *evaluator) pop() float64 {
	r := ev.stack[len(ev.stack)-1]
	ev.stack = ev.stack[:len(ev.stack)-1]
	return r
}

// Eval evaluates the expression. The result is rounded according to the
// options, by default to three decimal places. Errors are *ZeroDivisionError
// for division by zero and *DomainError for arguments outside a function's
// domain.
func (e *Expr) Eval(opts ...EvalOption) (float64, error) {
	cfg := evalcfg{places: 3}
	for _, opt := range opts {
		cfg = opt.evalOption(cfg)
	}
	switch len(e.toks) {
	case 0:
		return 0, &SyntaxError{Col: 1, Reason: "empty expression"}
	case 1:
		// A lone number needs no stack.
		if e.toks[0].Kind == TokenNumber {
			return cfg.round(e.toks[0].num), nil
		}
	}
	ev := evaluator{stack: make([]float64, 0, len(e.toks)/2+1)}
	for i, tok := range e.toks {
		switch tok.Kind {
		case TokenNumber:
			ev.push(tok.num)
		case TokenFunction:
			x := ev.pop()
			r, err := globalfuncs[tok.Text].call(tok.Text, x)
			if err != nil {
				err.(*DomainError).Index = i + 1
				return 0, err
			}
			ev.push(r)
		case TokenOperator:
			r := ev.pop()
			l := ev.pop()
			v, err := arith(tok.Text[0], l, r)
			if err != nil {
				switch err := err.(type) {
				case *ZeroDivisionError:
					err.Index = i + 1
				case *DomainError:
					err.Index = i + 1
				}
				return 0, err
			}
			ev.push(v)
		default:
			panic("shunt: invalid token kind " + tok.Kind.String())
		}
	}
	if len(ev.stack) != 1 {
		panic("shunt: inconsistent stack: " + strconv.Itoa(len(ev.stack)) + " items (bad postfix?)")
	}
	return cfg.round(ev.pop()), nil
}

// arith applies a binary operator. Any operation with no real result, such as
// a negative base with a fractional exponent or Inf-Inf, is a *DomainError.
func arith(op byte, l, r float64) (float64, error) {
	var v float64
	switch op {
	case '+':
		v = l + r
	case '-':
		v = l - r
	case '*':
		v = l * r
	case '/':
		if r == 0 {
			return 0, &ZeroDivisionError{X: l}
		}
		v = l / r
	case '^':
		v = math.Pow(l, r)
	default:
		panic("shunt: invalid operator " + strconv.QuoteRune(rune(op)))
	}
	if math.IsNaN(v) {
		return 0, &DomainError{X: l, Func: string(op)}
	}
	return v, nil
}

// ParseRPN parses a postfix expression with tokens separated by spaces, such
// as the String of an Expr. Every error returned by ParseRPN is a
// *SyntaxError whose position is a 1-based token index.
func ParseRPN(src string) (*Expr, error) {
	fields := strings.Fields(src)
	if len(fields) == 0 {
		return nil, &SyntaxError{Col: 1, Reason: "empty expression"}
	}
	toks := make([]Token, 0, len(fields))
	depth := 0
	for i, f := range fields {
		var tok Token
		switch _, fn := globalfuncs[f]; {
		case len(f) == 1 && classify(f[0]) == classOperator:
			if depth < 2 {
				return nil, &SyntaxError{Col: i + 1, Text: f, Reason: "operator needs two operands"}
			}
			depth--
			tok = opToken(f[0])
		case fn:
			if depth < 1 {
				return nil, &SyntaxError{Col: i + 1, Text: f, Reason: "function needs an operand"}
			}
			tok = funcToken(f)
		default:
			var ok bool
			tok, ok = numToken(f)
			if !ok {
				return nil, &SyntaxError{Col: i + 1, Text: f, Reason: "unknown token"}
			}
			depth++
		}
		toks = append(toks, tok)
	}
	if depth != 1 {
		return nil, &SyntaxError{Col: len(fields), Text: fields[len(fields)-1], Reason: "expression leaves " + strconv.Itoa(depth) + " values"}
	}
	return &Expr{toks: toks}, nil
}

// Evaluate parses and evaluates a postfix expression.
func Evaluate(rpn string, opts ...EvalOption) (float64, error) {
	e, err := ParseRPN(rpn)
	if err != nil {
		return 0, err
	}
	return e.Eval(opts...)
}

// EvalString is a shortcut to parse and evaluate an infix expression.
func EvalString(src string, vars Vars, opts ...EvalOption) (float64, error) {
	e, err := Parse(src, vars)
	if err != nil {
		return 0, err
	}
	return e.Eval(opts...)
}

// ZeroDivisionError is an error indicating division by zero.
type ZeroDivisionError struct {
	// X is the dividend.
	X float64
	// Index is the 1-based position of the division in the postfix
	// expression.
	Index int
}

func (err *ZeroDivisionError) Error() string {
	r := "division by zero: " + strconv.FormatFloat(err.X, 'g', -1, 64) + " / 0"
	if err.Index > 0 {
		r += " (token " + strconv.Itoa(err.Index) + ")"
	}
	return r
}
