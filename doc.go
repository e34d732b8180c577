// Package ldsgo is your deterministic stand-in for randomness — low-discrepancy
// sequence generators for quasi-Monte Carlo integration, sampling and
// optimization.
//
// 🎲 What is lds-go?
//
//	A small, thread-aware library that brings together:
//		• Van der Corput: the 1-D radix-reversal engine every other generator is built from
//		• Halton / HaltonN: 2-D and N-D axis composites over coprime bases
//		• Circle / Disk: evenly spread points on and inside the unit circle
//		• Sphere / Sphere3Hopf: uniform points on S² and S³ (Hopf fibration)
//		• Integer variant: fixed-point sequences with a digit-reversal lookup table
//		• SphereN / CylinN: recursive n-sphere and cylindrical extensions
//
// ✨ Why choose lds-go?
//
//   - Reproducible – same bases and seed ⇒ identical sequences on every platform
//   - Lock-free – one atomic counter per generator, everything else immutable
//   - Beginner-friendly – construct, Pop, Reseed; nothing else to learn
//   - Better coverage – lower discrepancy than pseudo-random sampling at any N
//
// Everything is organized under four subpackages:
//
//	lds/    — float engine: VdCorput, Halton(N), Circle, Disk, Sphere, Sphere3Hopf
//	ilds/   — fixed-point integer engine with table-driven digit reversal
//	primes/ — the first 1000 primes, the conventional source of Halton bases
//	sphn/   — n-sphere and cylindrical generators for arbitrary dimensions
//
// Quick taste (base-2 Van der Corput):
//
//	0.5, 0.25, 0.75, 0.125, 0.625, 0.375, 0.875, ...
//
//	each new value lands in the widest gap left by its predecessors.
//
// Dive into the per-package docs for formulas, invariants and examples.
//
//	go get github.com/luk036/lds-go
package ldsgo
