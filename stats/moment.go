package stats

// Moment — N-th central statistical moment
//
// Description:
//
//	The N-th central moment of a sequence is the average N-th power of
//	the deviations from the mean:
//
//	    m_N = (1/n) · Σ (x_i − mean)^N
//
//	m_1 is zero by construction, m_2 is the population variance, and
//	higher orders describe the shape of the distribution (asymmetry,
//	tail weight).
//
// Algorithm Outline:
//  1. mean = Mean(seq).
//  2. For each x, accumulate (x − mean)^order via repeated
//     multiplication (order−1 products of the deviation with itself).
//  3. Divide the accumulated sum by T(len(seq)).
//
// Repeated multiplication is deliberate: it preserves exact semantics
// for negative bases and for integer element types, where a
// log-based power would not.
//
// Errors:
//   - ErrEmptyInput   — seq has no elements.
//   - ErrInvalidOrder — order < 1.

// Moment returns the order-th central moment of seq, computing the
// mean internally.
//
// Complexity: O(n·order) time, O(1) memory.
func Moment[T Numeric](seq []T, order int) (T, error) {
	mean, err := Mean(seq)
	if err != nil {
		return 0, err
	}

	return MomentAbout(seq, order, mean)
}

// MomentAbout returns the order-th central moment of seq about a
// caller-supplied mean.
//
// The mean must be the arithmetic mean of exactly this sequence; the
// function cannot verify that and the result is meaningless otherwise
// (caller contract).
//
// Complexity: O(n·order) time, O(1) memory.
func MomentAbout[T Numeric](seq []T, order int, mean T) (T, error) {
	if len(seq) == 0 {
		return 0, ErrEmptyInput
	}
	if order < 1 {
		return 0, ErrInvalidOrder
	}

	var sum T
	for _, x := range seq {
		sum += nthPower(x-mean, order)
	}

	return sum / T(len(seq)), nil
}

// nthPower raises x to the n-th power by repeated multiplication.
// n must be >= 1 (checked by the callers).
func nthPower[T Numeric](x T, n int) T {
	ret := x
	for i := 1; i < n; i++ {
		ret *= x
	}

	return ret
}
