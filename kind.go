package shunt

import "errors"

// ErrorKind classifies errors from parsing and evaluation.
type ErrorKind int8

const (
	// NoError is the kind of a nil error.
	NoError ErrorKind = iota
	// InvalidInput is the kind of *SyntaxError.
	InvalidInput
	// UnknownInput is the kind of *NameError.
	UnknownInput
	// MismatchedParentheses is the kind of *BracketError.
	MismatchedParentheses
	// DivisionByZero is the kind of *ZeroDivisionError.
	DivisionByZero
	// MathDomain is the kind of *DomainError.
	MathDomain
	// OtherError is the kind of any error not produced by this package.
	OtherError
)

// KindOf returns the kind of err, looking through wrapped errors.
func KindOf(err error) ErrorKind {
	var (
		syn *SyntaxError
		nam *NameError
		brk *BracketError
		div *ZeroDivisionError
		dom *DomainError
	)
	switch {
	case err == nil:
		return NoError
	case errors.As(err, &syn):
		return InvalidInput
	case errors.As(err, &nam):
		return UnknownInput
	case errors.As(err, &brk):
		return MismatchedParentheses
	case errors.As(err, &div):
		return DivisionByZero
	case errors.As(err, &dom):
		return MathDomain
	default:
		return OtherError
	}
}

// String returns a short lowercase description of the kind, suitable for
// showing to users.
func (k ErrorKind) String() string {
	switch k {
	case NoError:
		return "no error"
	case InvalidInput:
		return "invalid input"
	case UnknownInput:
		return "unknown input"
	case MismatchedParentheses:
		return "mismatched parentheses"
	case DivisionByZero:
		return "division by zero"
	case MathDomain:
		return "math domain error"
	default:
		return "error"
	}
}
