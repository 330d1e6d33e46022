package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// White-box checks of the shared permutation table: its invariants
// (duplicated layout, permutation of 0..255, balanced gradient
// parity) are what keep Next bounded and well-distributed.

// TestPermutationTable_DuplicatedLayout verifies perm[i+permBase] ==
// perm[i] for every i, so perm[index+1] never needs a wrap mask.
func TestPermutationTable_DuplicatedLayout(t *testing.T) {
	assert.Len(t, perm[:], latticeSpan)
	for i := 0; i < permBase; i++ {
		assert.Equalf(t, perm[i], perm[i+permBase], "entry %d must be mirrored", i)
	}
}

// TestPermutationTable_IsPermutation verifies the base table holds
// each value 0..255 exactly once.
func TestPermutationTable_IsPermutation(t *testing.T) {
	var seen [permBase]int
	for _, v := range basePermutation {
		seen[v]++
	}
	for v, cnt := range seen {
		assert.Equalf(t, 1, cnt, "value %d must appear exactly once", v)
	}
}

// TestPermutationTable_BalancedParity verifies the gradient selector
// sees as many even as odd hashes; a permutation of 0..255 guarantees
// a perfect 128/128 split.
func TestPermutationTable_BalancedParity(t *testing.T) {
	var odd int
	for _, v := range basePermutation {
		odd += int(v & 1)
	}
	assert.Equal(t, permBase/2, odd, "half of the hash entries must be odd")
}

// TestKernels pins the interpolation kernels at their boundary
// values: fade is a smoothstep fixed at 0 and 1, lerp hits its
// endpoints, grad flips sign on the hash's low bit.
func TestKernels(t *testing.T) {
	assert.Equal(t, 0.0, fade(0))
	assert.Equal(t, 1.0, fade(1))
	assert.Equal(t, 0.5, fade(0.5), "fade is symmetric about 1/2")

	assert.Equal(t, 3.0, lerp(0, 3, 7))
	assert.Equal(t, 7.0, lerp(1, 3, 7))

	assert.Equal(t, 0.25, grad(2, 0.25), "even hash keeps the sign")
	assert.Equal(t, -0.25, grad(3, 0.25), "odd hash flips the sign")
}
