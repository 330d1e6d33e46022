// Package noise provides a seeded, deterministic 1-D Perlin-style
// gradient noise generator.
//
// 🚀 What is gradient noise?
//
//	A smooth pseudo-random function built by interpolating between
//	gradient contributions at lattice points. A fixed permutation
//	table hashes each lattice index into a gradient selector, and a
//	quintic fade curve shapes the interpolation weight so the result
//	has zero first and second derivatives at the lattice boundaries.
//	It's widely used for:
//	  • Synthetic test signals & dithering
//	  • Procedural textures and terrain profiles
//	  • Organic-looking jitter in simulations
//
// ✨ Key properties:
//   - Deterministic: same seed ⇒ identical sample stream across runs
//   - Bounded: every sample lies in [-2, 2]
//   - Shared immutable permutation table; no per-instance table state
//
// ⚙️ Usage:
//
//	import "github.com/quantfold/sigstats/noise"
//
//	opts := noise.DefaultOptions()
//	opts.Seed = 42 // 0 seeds from the wall clock instead
//	g := noise.New(opts)
//
//	samples := make([]float64, 1024)
//	g.Fill(samples)
//
// Concurrency:
//
//	A Generator owns a *rand.Rand engine whose state advances on every
//	call; it is NOT safe for concurrent use. Give each concurrent
//	stream its own Generator (cheap to construct) or serialize calls
//	externally. The permutation table is read-only after process start
//	and may be shared freely.
//
// Complexity: O(1) time and zero allocations per sample.
package noise
