// Package stats provides descriptive statistics over finite numeric
// sequences: arithmetic mean, N-th central moments, and the shape
// descriptors derived from them (variance, standard deviation,
// skewness, kurtosis).
//
// All functions are pure: they read the input slice, never mutate it,
// and return a single scalar plus an error. They are generic over the
// element type, so the same routines serve []int, []float32 and
// []float64 sequences; integer inputs keep integer arithmetic end to
// end (including the final truncating division by the element count).
//
// Central moments:
//
//	m_N = (1/n) · Σ (x_i − mean)^N
//
// The power is computed by repeated multiplication (N−1 products), not
// via logarithms, so negative bases and integer element types behave
// exactly as written. m_1 is zero by construction; m_2 is the
// population variance.
//
// ⚙️ Usage:
//
//	import "github.com/quantfold/sigstats/stats"
//
//	s := []float64{2, 4, 4, 4, 5, 5, 7, 9}
//	m, err := stats.Mean(s)        // 5, nil
//	v, err := stats.Moment(s, 2)   // 4, nil — population variance
//	sk, err := stats.Skewness(s)   // third standardized moment
//
// Errors:
//   - ErrEmptyInput    — the sequence has no elements.
//   - ErrInvalidOrder  — moment order N < 1.
//   - ErrZeroVariance  — skewness/kurtosis of a constant sequence.
//
// All failures are synchronous and fail-fast; no NaN is ever returned
// silently for an invalid input.
//
// Complexity: every function is O(n) time, O(1) extra memory
// (moments of order N cost O(n·N) multiplications).
package stats
