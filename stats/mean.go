package stats

// Mean returns the arithmetic mean of seq in the element type T.
// For integer T the division truncates, matching the type's own
// arithmetic domain.
//
// Returns ErrEmptyInput if seq has no elements.
//
// Complexity: O(n) time, O(1) memory.
func Mean[T Numeric](seq []T) (T, error) {
	if len(seq) == 0 {
		return 0, ErrEmptyInput
	}

	var sum T
	for _, x := range seq {
		sum += x
	}

	return sum / T(len(seq)), nil
}
