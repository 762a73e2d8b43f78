package shunt

import (
	"errors"
	"math"
	"math/big"
	"sort"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// bigprec is the mantissa precision used for functions computed with
// big.Float before rounding to float64.
const bigprec = 64

// function is a unary function from reals to reals.
type function struct {
	// f computes the function. It is only called with x inside the domain.
	f func(x float64) float64
	// domain reports whether x is a valid argument. nil means all reals.
	domain func(x float64) bool
}

func (fn function) call(name string, x float64) (float64, error) {
	if fn.domain != nil && !fn.domain(x) {
		return 0, &DomainError{X: x, Func: name}
	}
	r := fn.f(x)
	if math.IsNaN(r) {
		return 0, &DomainError{X: x, Func: name}
	}
	return r, nil
}

var globalfuncs = map[string]function{
	"cos": {f: math.Cos, domain: finite},
	"sin": {f: math.Sin, domain: finite},
	"tan": {f: math.Tan, domain: finite},
	"abs": {f: math.Abs},

	"exp": {f: exp, domain: finite},
	"ln":  {f: monadic(bigfloat.Log), domain: positive},
	"lb":  {f: monadic(logBase(2)), domain: positive},
	"lg":  {f: monadic(logBase(10)), domain: positive},

	"sqrt": {f: monadic((*big.Float).Sqrt), domain: nonnegative},
}

func finite(x float64) bool {
	return !math.IsInf(x, 0)
}

func positive(x float64) bool {
	return x > 0 && finite(x)
}

func nonnegative(x float64) bool {
	return x >= 0 && finite(x)
}

var bigexp = monadic(bigfloat.Exp)

// exp computes e^x, saturating outside the range where float64 results are
// neither zero nor infinite.
func exp(x float64) float64 {
	switch {
	case x > 710:
		return math.Inf(1)
	case x < -746:
		return 0
	}
	return bigexp(x)
}

// logBase creates a logarithm function of the given base.
func logBase(base int64) func(out, in *big.Float) *big.Float {
	return func(out, in *big.Float) *big.Float {
		b := new(big.Float).SetPrec(out.Prec()).SetInt64(base)
		bigfloat.Log(out, in)
		bigfloat.Log(b, b)
		return out.Quo(out, b)
	}
}

// monadic wraps a big.Float function of one variable into a float64
// function. f must set out to its result; its return value is ignored. If f
// panics with big.ErrNaN, the result is NaN.
func monadic(f func(out, in *big.Float) *big.Float) func(float64) float64 {
	return func(x float64) (r float64) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			if err, _ := p.(error); err != nil && errors.As(err, &big.ErrNaN{}) {
				r = math.NaN()
				return
			}
			panic(p)
		}()
		in := new(big.Float).SetPrec(bigprec).SetFloat64(x)
		out := new(big.Float).SetPrec(bigprec)
		f(out, in)
		r, _ = out.Float64()
		return r
	}
}

// Funcs returns the names of the functions understood by Parse, in sorted
// order.
func Funcs() []string {
	names := make([]string, 0, len(globalfuncs))
	for k := range globalfuncs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// DomainError is an error returned when a function is called on an argument
// outside its domain, or when exponentiation has no real result.
type DomainError struct {
	// X is the out-of-domain argument. For exponentiation, it is the base.
	X float64
	// Func is a name identifying the function or operator.
	Func string
	// Index is the 1-based position of the function token in the postfix
	// expression.
	Index int
}

func (err *DomainError) Error() string {
	r := strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	if err.Index > 0 {
		r += " (token " + strconv.Itoa(err.Index) + ")"
	}
	return r
}
