package shunt

import "strconv"

// SyntaxError is an error indicating malformed input: a byte outside the
// accepted alphabet, a misplaced period, adjacent operators, or operands
// touching without an operator between them. It implements InputError.
type SyntaxError struct {
	// Col is the 1-based position of the offending byte or token.
	Col int
	// Text is the offending input.
	Text string
	// Reason describes what is wrong with the input.
	Reason string
}

func (err *SyntaxError) Error() string {
	if err.Text == "" {
		return errpos(err.Col, "invalid input: "+err.Reason)
	}
	return errpos(err.Col, "invalid input "+strconv.Quote(err.Text)+": "+err.Reason)
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// NameError is an error indicating an identifier that is neither a variable
// in the parse's Vars nor a known function. It implements InputError.
type NameError struct {
	// Col is the position of the start of the identifier.
	Col int
	// Name is the identifier.
	Name string
	// Call is whether the identifier was used as a function name.
	Call bool
}

func (err *NameError) Error() string {
	if err.Call {
		return errpos(err.Col, "unknown function "+strconv.Quote(err.Name))
	}
	return errpos(err.Col, "undefined variable "+strconv.Quote(err.Name))
}

func (err *NameError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched parentheses in the input.
// It implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left is "(" for an open parenthesis that is never closed.
	Left string
	// Right is ")" for a close parenthesis with no open parenthesis.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input to Parse or ParseRPN implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based position of the error. For infix input, this is
	// a byte column; for postfix input, it is a token index.
	Pos() int
}

var (
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*NameError)(nil)
	_ InputError = (*BracketError)(nil)
)
