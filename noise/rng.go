// Package noise - RNG construction shared by the generators.
//
// This file centralizes random-engine creation so that seeding policy
// lives in exactly one place:
//   - Determinism: a non-zero seed ⇒ identical streams across runs.
//   - Explicitness: the only time-based source in the package is here,
//     behind the documented seed==0 default.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand
//     across goroutines; construct one Generator per stream instead.
package noise

import (
	"math/rand"
	"time"
)

// rngFromSeed returns a *rand.Rand for the given seed.
// Policy: seed==0 ⇒ seed from the wall clock (fresh stream per call);
// otherwise the seed is used verbatim for full reproducibility.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(s))
}
