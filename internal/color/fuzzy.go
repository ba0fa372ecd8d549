package color

import "math"

// fuzzyEpsilon is the absolute tolerance used by FuzzyCompare.
// Unit-interval channel math never produces legitimate differences this small.
const fuzzyEpsilon = 1e-12

// FuzzyCompare reports whether a and b are equal within an absolute
// tolerance. Used instead of == wherever rounding error can separate values
// that are mathematically equal.
func FuzzyCompare(a, b float64) bool {
	return math.Abs(a-b) <= fuzzyEpsilon
}

// FuzzyIsZero reports whether x is zero within FuzzyCompare's tolerance.
func FuzzyIsZero(x float64) bool {
	return FuzzyCompare(x, 0)
}
