package stats

import "math"

// Descriptive statistics derived from the central moments.
//
// Variance accepts any Numeric element type; the standardized
// descriptors (StdDev, Skewness, Kurtosis) are restricted to Real
// element types because they take roots and ratios of moments.

// Variance returns the population variance of seq — the second
// central moment.
//
// Complexity: O(n) time, O(1) memory.
func Variance[T Numeric](seq []T) (T, error) {
	return Moment(seq, 2)
}

// StdDev returns the population standard deviation of seq, the
// square root of the variance.
func StdDev[T Real](seq []T) (T, error) {
	v, err := Variance(seq)
	if err != nil {
		return 0, err
	}

	return T(math.Sqrt(float64(v))), nil
}

// Skewness returns the standardized third central moment
// m3 / m2^(3/2), a measure of distribution asymmetry.
//
// Returns ErrZeroVariance for a constant sequence.
func Skewness[T Real](seq []T) (T, error) {
	mean, err := Mean(seq)
	if err != nil {
		return 0, err
	}
	m2, err := MomentAbout(seq, 2, mean)
	if err != nil {
		return 0, err
	}
	if m2 == 0 {
		return 0, ErrZeroVariance
	}
	m3, err := MomentAbout(seq, 3, mean)
	if err != nil {
		return 0, err
	}

	// m2^(3/2) as m2·√m2 keeps exactly-representable variances exact.
	v := float64(m2)

	return T(float64(m3) / (v * math.Sqrt(v))), nil
}

// Kurtosis returns the standardized fourth central moment m4 / m2²,
// a measure of tail weight. The normal distribution scores 3 (no
// excess-kurtosis offset is applied).
//
// Returns ErrZeroVariance for a constant sequence.
func Kurtosis[T Real](seq []T) (T, error) {
	mean, err := Mean(seq)
	if err != nil {
		return 0, err
	}
	m2, err := MomentAbout(seq, 2, mean)
	if err != nil {
		return 0, err
	}
	if m2 == 0 {
		return 0, ErrZeroVariance
	}
	m4, err := MomentAbout(seq, 4, mean)
	if err != nil {
		return 0, err
	}

	return T(float64(m4) / (float64(m2) * float64(m2))), nil
}
