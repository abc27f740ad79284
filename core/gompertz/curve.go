// Package gompertz evaluates the modified Gompertz model of cumulative
// biogas yield:
//
//	G(t) = G0 * exp(-exp((k_max*e/G0)*(lambda-t) + 1))
//
// The closed form comes from Mohammadianroshanfekr et al. (2024); no
// differential equations are solved here.
package gompertz

import "math"

// expClamp bounds the inner exponent before the outer exp is applied.
// Beyond +-700 the double exponential has already saturated to 0 or G0
// within float64 precision, and clamping keeps exp(exp(x)) from
// producing Inf on the way there.
const expClamp = 700

// Yield evaluates G(t) for one point in time.
//
// G0 must be positive; callers validate via KineticParams.Validate. A
// zero KMax collapses the inner exponent to the constant 1, giving the
// flat curve G0*exp(-e) at every t. A negative KMax is evaluated as-is
// and yields a decreasing curve.
func Yield(t, g0, kMax, lambda float64) float64 {
	x := (kMax*math.E/g0)*(lambda-t) + 1
	if x > expClamp {
		x = expClamp
	} else if x < -expClamp {
		x = -expClamp
	}
	return g0 * math.Exp(-math.Exp(x))
}
