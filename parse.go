package shunt

import (
	"strings"

	"github.com/edwingeng/deque"
)

// Expr = num | name | Call | Neg | Add | Sub | Mul | Div | Pow | '(' Expr ')'
// Call = funcname '(' Expr ')'
// Neg = '-' Expr
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr
// Div = Expr '/' Expr
// Pow = Expr '^' Expr
// num = ['-'] digit+ ['.' digit+]
// name = letter+

// Vars maps variable names to their values as decimal text. Parse reads but
// never modifies it.
type Vars map[string]string

// parser is the state of a single call to Parse.
type parser struct {
	src  string
	vars Vars
	// out is the postfix output.
	out []Token
	// ops is the operator stack. Elements are bytes: operators and '('.
	ops deque.Deque
	// calls is the stack of function calls waiting for their closing
	// parenthesis. Elements are pendingCall.
	calls deque.Deque
	// buf accumulates the number or identifier being scanned.
	buf strings.Builder
	// operand is whether the last complete item scanned was an operand, so
	// that the parser expects an operator or close bracket next.
	operand bool
}

// pendingCall is a function name waiting for the close bracket of its
// argument list.
type pendingCall struct {
	name string
	// depth is the size of the operator stack below the call's open bracket.
	depth int
}

// Parse converts an infix expression to postfix using the shunting-yard
// algorithm. Variables in the expression are replaced by their values from
// vars, which may be nil. Whitespace is not allowed.
//
// Every error returned by Parse implements InputError and is one of
// *SyntaxError, *NameError, or *BracketError.
func Parse(src string, vars Vars) (*Expr, error) {
	if err := checkBrackets(src); err != nil {
		return nil, err
	}
	p := parser{
		src:   src,
		vars:  vars,
		out:   make([]Token, 0, len(src)),
		ops:   deque.NewDeque(),
		calls: deque.NewDeque(),
	}
	for i := 0; i < len(src); i++ {
		if err := p.step(i); err != nil {
			return nil, err
		}
	}
	if err := p.finish(); err != nil {
		return nil, err
	}
	return &Expr{toks: p.out}, nil
}

// checkBrackets reports the first unmatched close bracket, or else the last
// unmatched open bracket.
func checkBrackets(src string) error {
	var open []int
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '(':
			open = append(open, i)
		case ')':
			if len(open) == 0 {
				return &BracketError{Col: i + 1, Right: ")"}
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) != 0 {
		return &BracketError{Col: open[len(open)-1] + 1, Left: "("}
	}
	return nil
}

// step handles the byte at src[i].
func (p *parser) step(i int) error {
	c := p.src[i]
	prev, next := classAt(p.src, i-1), classAt(p.src, i+1)
	k := classify(c)
	if k == classOperator && next == classOperator {
		return p.error(i, p.src[i:i+2], "adjacent operators")
	}
	switch k {
	case classDigit:
		if err := p.begin(i); err != nil {
			return err
		}
		p.buf.WriteByte(c)
		if next != classDigit && next != classPeriod {
			return p.flushNum(i)
		}
	case classPeriod:
		switch {
		case i == 0:
			return p.error(i, ".", "expression starts with a period")
		case next != classDigit:
			return p.error(i, ".", "period not followed by a digit")
		case strings.IndexByte(p.buf.String(), '.') >= 0:
			return p.error(i, ".", "second period in a number")
		}
		if err := p.begin(i); err != nil {
			return err
		}
		p.buf.WriteByte(c)
	case classOperator:
		if c == '-' && !prev.endsOperand() {
			if next == classDigit || next == classPeriod {
				// Sign of a number.
				p.buf.WriteByte(c)
				return nil
			}
			// Negation of a group, variable, or call: 0 - (...).
			p.out = append(p.out, Token{Kind: TokenNumber, Text: "0"})
			p.operand = true
		}
		return p.operator(i, c)
	case classOpen:
		if p.operand {
			return p.error(i, "(", "missing operator before bracket")
		}
		p.ops.PushBack(c)
	case classClose:
		return p.close(i)
	case classLetter:
		if prev != classLetter {
			// Start of an identifier.
			if next == classLetter && p.operand {
				return p.error(i, p.ident(i), "missing operator before name")
			}
		}
		p.buf.WriteByte(c)
		if next != classLetter {
			return p.name(i, next)
		}
	default:
		return p.error(i, p.src[i:i+1], "unexpected character")
	}
	return nil
}

// begin checks that a new number may start at src[i].
func (p *parser) begin(i int) error {
	if p.buf.Len() == 0 && p.operand {
		return p.error(i, p.src[i:i+1], "missing operator before number")
	}
	return nil
}

// flushNum emits the number in the buffer. i is the index of its last byte.
func (p *parser) flushNum(i int) error {
	text := p.buf.String()
	p.buf.Reset()
	tok, ok := numToken(text)
	if !ok {
		return &SyntaxError{Col: i + 2 - len(text), Text: text, Reason: "malformed number"}
	}
	p.out = append(p.out, tok)
	p.operand = true
	return nil
}

// operator handles the binary operator op at src[i].
func (p *parser) operator(i int, op byte) error {
	if !p.operand {
		return p.error(i, string(op), "missing operand before operator")
	}
	cur := binop(op)
	for !p.ops.Empty() {
		top := p.ops.Back().(byte)
		if top == '(' {
			break
		}
		t := binop(top)
		if t.prec < cur.prec || t.prec == cur.prec && cur.right {
			break
		}
		p.out = append(p.out, opToken(p.ops.PopBack().(byte)))
	}
	p.ops.PushBack(op)
	p.operand = false
	return nil
}

// close handles a close bracket at src[i].
func (p *parser) close(i int) error {
	if !p.operand {
		return p.error(i, ")", "missing operand before bracket")
	}
	for {
		if p.ops.Empty() {
			return &BracketError{Col: i + 1, Right: ")"}
		}
		top := p.ops.PopBack().(byte)
		if top == '(' {
			break
		}
		p.out = append(p.out, opToken(top))
	}
	if !p.calls.Empty() && p.calls.Back().(pendingCall).depth == p.ops.Len() {
		p.out = append(p.out, funcToken(p.calls.PopBack().(pendingCall).name))
	}
	return nil
}

// name resolves the identifier in the buffer, which ends at src[i].
func (p *parser) name(i int, next charClass) error {
	name := p.buf.String()
	p.buf.Reset()
	col := i + 2 - len(name)
	if len(name) > 1 && next == classOpen {
		if _, ok := globalfuncs[name]; !ok {
			return &NameError{Col: col, Name: name, Call: true}
		}
		p.calls.PushBack(pendingCall{name: name, depth: p.ops.Len()})
		return nil
	}
	val, ok := p.vars[name]
	if !ok {
		if _, fn := globalfuncs[name]; fn {
			return &SyntaxError{Col: col, Text: name, Reason: "function without argument list"}
		}
		return &NameError{Col: col, Name: name}
	}
	if p.operand {
		// Only reachable for single letters; longer names are checked when
		// they start.
		return &SyntaxError{Col: col, Text: p.src[col-2 : i+1], Reason: "missing operator before name"}
	}
	if next == classDigit || next == classPeriod {
		return &SyntaxError{Col: col, Text: p.src[col-1 : i+2], Reason: "missing operator after name"}
	}
	tok, ok := numToken(val)
	if !ok {
		return &SyntaxError{Col: col, Text: name, Reason: "variable value " + val + " is not a number"}
	}
	p.out = append(p.out, tok)
	p.operand = true
	return nil
}

// finish drains the operator stack after the scan.
func (p *parser) finish() error {
	if !p.operand {
		return &SyntaxError{Col: len(p.src) + 1, Reason: "expression ends without an operand"}
	}
	for !p.ops.Empty() {
		top := p.ops.PopBack().(byte)
		if top == '(' {
			return &BracketError{Col: len(p.src), Left: "("}
		}
		p.out = append(p.out, opToken(top))
	}
	return nil
}

// ident returns the run of letters starting at src[i].
func (p *parser) ident(i int) string {
	j := i
	for j < len(p.src) && classify(p.src[j]) == classLetter {
		j++
	}
	return p.src[i:j]
}

func (p *parser) error(i int, text, reason string) error {
	return &SyntaxError{Col: i + 1, Text: text, Reason: reason}
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
}

// binop gets the operator for an operator byte. The result for a byte not in
// Operators has prec 0.
func binop(op byte) operator {
	switch op {
	case '+', '-':
		return operator{2, false}
	case '*', '/':
		return operator{3, false}
	case '^':
		return operator{4, true}
	default:
		return operator{}
	}
}
