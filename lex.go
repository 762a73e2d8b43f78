package shunt

// charClass is the lexical class of a single input byte.
type charClass int8

const (
	// classEnd stands in for the neighbor before the first or after the last
	// byte of the input.
	classEnd charClass = iota
	// classInvalid is any byte outside the accepted alphabet.
	classInvalid
	classDigit
	classPeriod
	// classOperator is one of Operators.
	classOperator
	// classOpen and classClose are parentheses.
	classOpen
	classClose
	// classLetter is a lowercase ASCII letter.
	classLetter
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=charClass -trimprefix=class

// Operators contains the bytes which are considered to be binary operators.
const Operators = "+-*/^"

// classify returns the lexical class of c.
func classify(c byte) charClass {
	switch {
	case '0' <= c && c <= '9':
		return classDigit
	case 'a' <= c && c <= 'z':
		return classLetter
	}
	switch c {
	case '.':
		return classPeriod
	case '+', '-', '*', '/', '^':
		return classOperator
	case '(':
		return classOpen
	case ')':
		return classClose
	default:
		return classInvalid
	}
}

// classAt returns the class of src[i], or classEnd if i is out of range.
func classAt(src string, i int) charClass {
	if i < 0 || i >= len(src) {
		return classEnd
	}
	return classify(src[i])
}

// endsOperand returns whether a byte of class k can be the last byte of an
// operand, i.e. whether a following - is subtraction rather than a sign.
func (k charClass) endsOperand() bool {
	return k == classDigit || k == classLetter || k == classClose
}

// isDecimal reports whether s is decimal number text: an optional leading
// minus sign, then digits with at most one period, with at least one digit.
func isDecimal(s string) bool {
	if len(s) > 0 && s[0] == '-' {
		s = s[1:]
	}
	dig, dot := false, false
	for i := 0; i < len(s); i++ {
		switch classify(s[i]) {
		case classDigit:
			dig = true
		case classPeriod:
			if dot {
				return false
			}
			dot = true
		default:
			return false
		}
	}
	return dig
}

// ValidName reports whether name can be used as a variable name: one or more
// lowercase ASCII letters, not shadowing a function name.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if classify(name[i]) != classLetter {
			return false
		}
	}
	_, fn := globalfuncs[name]
	return !fn
}
