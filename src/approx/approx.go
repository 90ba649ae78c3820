// Package approx implements single-precision sine approximations and the
// accuracy sweep that measures them against the library baseline. The
// Chebyshev calculators evaluate the raw polynomials, not a fitted series;
// their error curves are interesting precisely because they diverge.
package approx

import "math"

// Calculator approximates sin(theta) for a single-precision input.
type Calculator func(theta float32) float32

// Standard is the baseline: math.Sin evaluated in float64 and truncated.
func Standard(theta float32) float32 {
	return float32(math.Sin(float64(theta)))
}

// Maclaurin1 keeps one term of the Maclaurin series for sine.
func Maclaurin1(theta float32) float32 { return theta }

// Maclaurin2 keeps two terms.
func Maclaurin2(theta float32) float32 {
	return theta - pow(theta, 3)/6
}

// Maclaurin3 keeps three terms.
func Maclaurin3(theta float32) float32 {
	return theta - pow(theta, 3)/6 + pow(theta, 5)/120
}

// Maclaurin4 keeps four terms.
func Maclaurin4(theta float32) float32 {
	return theta - pow(theta, 3)/6 + pow(theta, 5)/120 - pow(theta, 7)/5040
}

// Chebyshev0 is the degenerate base case T0 = 1.
func Chebyshev0(float32) float32 { return 1 }

// Chebyshev1 evaluates T1.
func Chebyshev1(theta float32) float32 { return theta }

// Chebyshev2 evaluates T2.
func Chebyshev2(theta float32) float32 {
	return 2*pow(theta, 2) - 1
}

// Chebyshev3 evaluates 3θ³ − 3θ.
func Chebyshev3(theta float32) float32 {
	return 3*pow(theta, 3) - 3*theta
}

// pow raises theta to a small positive integer power in float32.
func pow(theta float32, n int) float32 {
	r := theta
	for i := 1; i < n; i++ {
		r *= theta
	}
	return r
}

// Calculators lists every approximation with the dump name its accuracy
// trace is written under.
var Calculators = []struct {
	Name string
	Fn   Calculator
}{
	{"maclaurin_1", Maclaurin1},
	{"maclaurin_2", Maclaurin2},
	{"maclaurin_3", Maclaurin3},
	{"maclaurin_4", Maclaurin4},
	{"chebyshev_0", Chebyshev0},
	{"chebyshev_1", Chebyshev1},
	{"chebyshev_2", Chebyshev2},
	{"chebyshev_3", Chebyshev3},
}

// AccuracySweep samples |fn(θ) − sin θ| for θ from 0 to 2π inclusive in
// increments of interval. Each θ is derived from its sample index:
// accumulating float32 steps stops advancing once interval drops below the
// ulp at θ, which would loop without bound.
func AccuracySweep(fn Calculator, interval float32) []float32 {
	n := int(2*math.Pi/float64(interval)) + 1
	out := make([]float32, n)
	for i := range out {
		theta := float32(i) * interval
		out[i] = float32(math.Abs(float64(fn(theta) - Standard(theta))))
	}
	return out
}
