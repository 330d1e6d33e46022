package noise

import (
	"math"
	"math/rand"
)

// Generator — 1-D Perlin-style gradient noise
//
// Description:
//
//	Each call draws a continuous coordinate u uniform in [0, latticeSpan),
//	splits it into a lattice index and a fractional offset, hashes the
//	index (and its successor) through the permutation table into ±1
//	gradient selectors, and blends the two gradient contributions with
//	a quintic fade weight.
//
// Algorithm Outline (per sample):
//  1. u    = uniform draw in [0, latticeSpan)
//  2. i    = int(u) & 0xFF          (lattice index, masked to the table)
//  3. f    = u − floor(u)           (fractional offset, in [0, 1))
//  4. t    = fade(f)                (quintic smoothstep weight)
//  5. a, b = grad(perm[i], f), grad(perm[i+1], f−1)
//  6. sample = lerp(t, a, b) × 2
//
// Bounds: |f| < 1 and |f−1| ≤ 1, so |a|,|b| ≤ 1 and every sample lies
// in [−2, 2]. The table holds latticeSpan entries while i is masked to
// permBase−1, so perm[i+1] is always in range.

const (
	// permBase is the number of distinct hash entries; lattice
	// indices are masked to [0, permBase).
	permBase = 256

	// latticeSpan is the full table length and the coordinate range
	// of one draw. The second half duplicates the first so that
	// perm[i+1] needs no wrap-around mask.
	latticeSpan = 512
)

// basePermutation is the classic Perlin reference permutation of
// 0..255 — the deterministic hash source shared by every Generator.
var basePermutation = [permBase]uint8{
	151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225,
	140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23, 190, 6, 148,
	247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32,
	57, 177, 33, 88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175,
	74, 165, 71, 134, 139, 48, 27, 166, 77, 146, 158, 231, 83, 111, 229, 122,
	60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244, 102, 143, 54,
	65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169,
	200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64,
	52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212,
	207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42, 223, 183, 170, 213,
	119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104,
	218, 246, 97, 228, 251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241,
	81, 51, 145, 235, 249, 14, 239, 107, 49, 192, 214, 31, 181, 199, 106, 157,
	184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254, 138, 236, 205, 93,
	222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
}

// perm is the process-wide duplicated lookup table: perm[i+permBase]
// == perm[i]. Built once before main and read-only afterwards; safe
// for unsynchronized concurrent reads.
var perm = buildPermutation()

func buildPermutation() [latticeSpan]uint8 {
	var p [latticeSpan]uint8
	copy(p[:permBase], basePermutation[:])
	copy(p[permBase:], basePermutation[:])

	return p
}

// fade is the quintic smoothstep 6t⁵−15t⁴+10t³; zero first and second
// derivatives at t=0 and t=1.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// lerp linearly interpolates between a and b with weight t.
func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad selects the gradient contribution for x from the low bit of a
// hashed permutation entry: +x for even hashes, −x for odd ones.
func grad(hash uint8, x float64) float64 {
	if hash&1 == 0 {
		return x
	}

	return -x
}

// Generator produces a stream of smoothed pseudo-random samples.
//
// It exclusively owns its random engine; every Next call advances the
// engine state. Not safe for concurrent use — see the package docs.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator configured by opts. With Seed == 0 the
// engine is seeded from the wall clock; a non-zero seed gives a fully
// reproducible stream.
func New(opts Options) *Generator {
	return &Generator{rng: rngFromSeed(opts.Seed)}
}

// Next returns one noise sample in [-2, 2] and advances the engine.
//
// Complexity: O(1), no allocations.
func (g *Generator) Next() float64 {
	u := g.rng.Float64() * latticeSpan
	i := int(u) & (permBase - 1)
	f := u - math.Floor(u)
	t := fade(f)

	return lerp(t, grad(perm[i], f), grad(perm[i+1], f-1)) * 2
}

// Fill overwrites every element of dst with a fresh sample, in the
// same order Next would produce them.
//
// Complexity: O(len(dst)), no allocations.
func (g *Generator) Fill(dst []float64) {
	for i := range dst {
		dst[i] = g.Next()
	}
}
