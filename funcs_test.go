package shunt

import (
	"math"
	"math/big"
	"testing"
)

func TestFuncValues(t *testing.T) {
	cases := []struct {
		name string
		x    float64
		want float64
	}{
		{"cos", 0, 1},
		{"sin", math.Pi / 2, 1},
		{"tan", 0, 0},
		{"abs", -2.5, 2.5},
		{"exp", 0, 1},
		{"exp", 1, math.E},
		{"exp", 1000, math.Inf(1)},
		{"exp", -1000, 0},
		{"ln", math.E, 1},
		{"lb", 8, 3},
		{"lb", 0.5, -1},
		{"lg", 1000, 3},
		{"lg", 0.01, -2},
		{"sqrt", 0, 0},
		{"sqrt", 2, math.Sqrt2},
	}
	for _, c := range cases {
		got, err := globalfuncs[c.name].call(c.name, c.x)
		if err != nil {
			t.Errorf("%s(%g): %v", c.name, c.x, err)
			continue
		}
		if math.Abs(got-c.want) > 1e-15*math.Max(1, math.Abs(c.want)) && got != c.want {
			t.Errorf("%s(%g): want %g, got %g", c.name, c.x, c.want, got)
		}
	}
}

func TestFuncDomains(t *testing.T) {
	cases := []struct {
		name string
		x    float64
	}{
		{"sqrt", -1},
		{"ln", 0},
		{"ln", -1},
		{"lb", 0},
		{"lg", -0.5},
		{"cos", math.Inf(1)},
		{"sin", math.Inf(-1)},
		{"exp", math.Inf(1)},
		{"ln", math.Inf(1)},
	}
	for _, c := range cases {
		r, err := globalfuncs[c.name].call(c.name, c.x)
		if err == nil {
			t.Errorf("%s(%g) gave %g with no error", c.name, c.x, r)
			continue
		}
		de, ok := err.(*DomainError)
		if !ok {
			t.Errorf("%s(%g): %#v is not *DomainError", c.name, c.x, err)
			continue
		}
		if de.Func != c.name || de.X != c.x && !math.IsNaN(c.x) {
			t.Errorf("%s(%g): wrong error fields %+v", c.name, c.x, de)
		}
	}
}

func TestMonadicNaN(t *testing.T) {
	f := monadic(func(out, in *big.Float) *big.Float {
		panic(big.ErrNaN{})
	})
	if r := f(1); !math.IsNaN(r) {
		t.Errorf("want NaN, got %g", r)
	}
	defer func() {
		if recover() == nil {
			t.Error("non-NaN panic was swallowed")
		}
	}()
	g := monadic(func(out, in *big.Float) *big.Float {
		panic("other")
	})
	g(1)
}
