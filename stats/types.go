// Package stats - shared element-type constraints and sentinel errors.
package stats

import "errors"

var (
	// ErrEmptyInput indicates the input sequence has no elements;
	// mean and moments are undefined (division by zero count).
	ErrEmptyInput = errors.New("stats: input sequence must be non-empty")

	// ErrInvalidOrder indicates a moment order below 1. The
	// repeated-multiplication power starts from the base value, so
	// order 0 is not representable and negative orders are undefined.
	ErrInvalidOrder = errors.New("stats: moment order must be >= 1")

	// ErrZeroVariance indicates a constant sequence: standardized
	// moments (skewness, kurtosis) divide by the variance.
	ErrZeroVariance = errors.New("stats: sequence has zero variance")
)

// Numeric is the element-type set accepted by Mean and the moment
// functions: signed integers and floats. Results stay in the input
// type, so integer sequences yield truncated integer statistics.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Real is the float-only subset required by the standardized
// descriptors (StdDev, Skewness, Kurtosis), whose roots and ratios
// are only meaningful in floating point.
type Real interface {
	~float32 | ~float64
}
