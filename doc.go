// Package sigstats is a small numeric toolbox for offline signal and
// data analysis — pure, in-memory primitives with no I/O, persistence,
// or hidden global state.
//
// 🚀 What is sigstats?
//
//	A collection of independent, reusable numeric routines:
//		• Descriptive statistics: mean, N-th central moments,
//		  variance, standard deviation, skewness, kurtosis
//		• Gradient noise: a seeded, deterministic 1-D Perlin-style
//		  noise generator over a fixed permutation table
//
// ✨ Why choose sigstats?
//
//   - Minimal API — plain slices in, scalars out, sentinel errors
//   - Deterministic — every random stream is seed-injectable
//   - Pure Go — no cgo, no hidden deps
//   - Generic — statistics work over any integer or float element type
//
// Everything is organized under two subpackages:
//
//	stats/ — mean, central moments & descriptive derivations
//	noise/ — seeded Perlin-style noise generation
//
// Neither package depends on the other; compose them freely.
//
//	go get github.com/quantfold/sigstats
package sigstats
