package shunt

import "math"

// EvalOption is an option for evaluating expressions.
type EvalOption interface {
	evalOption(evalcfg) evalcfg
}

type placesopt int

// evalcfg holds the settings for a single evaluation.
type evalcfg struct {
	// places is the number of decimal places to round results to, or
	// negative to skip rounding.
	places int
}

// Places sets the number of decimal places to which results are rounded. The
// default is 3. A negative n disables rounding.
func Places(n int) EvalOption {
	return placesopt(n)
}

func (o placesopt) evalOption(cfg evalcfg) evalcfg {
	cfg.places = int(o)
	return cfg
}

// round rounds x half away from zero to the configured number of places.
func (cfg evalcfg) round(x float64) float64 {
	if cfg.places < 0 || math.IsInf(x, 0) {
		return x
	}
	p := math.Pow10(cfg.places)
	y := math.Round(x*p) / p
	if math.IsInf(y, 0) || math.IsNaN(y) {
		// x*p overflowed; x has no digits past the rounding point anyway.
		return x
	}
	return y
}
