// Package lds provides deterministic low-discrepancy sequence (LDS) generators:
// number streams that cover an interval, a square, a disk or a sphere more
// uniformly than pseudo-random sampling, as a drop-in substitute for randomness
// in integration, sampling and optimization (quasi-Monte Carlo).
//
// Overview:
//
//   - VdCorput is the atomic building block: the Van der Corput sequence in a
//     chosen base, produced by reversing the base-b digits of successive
//     integers around the radix point.
//   - Halton and HaltonN compose 2..N independent VdCorput axes with distinct
//     (conventionally pairwise-coprime, typically prime) bases.
//   - Circle, Disk, Sphere and Sphere3Hopf lift one, two or three VdCorput
//     axes onto the unit circle, the unit disk, the unit 2-sphere and the
//     unit 3-sphere (via Hopf-fibration coordinates).
//
// When to use:
//
//   - Anywhere you would reach for rand.Float64 but want reproducible, evenly
//     spread samples: numerical integration, light-transport sampling,
//     derivative-free optimization, stratified initialization.
//   - As the axis source for your own manifold mappings (own a VdCorput per
//     axis; never share one across mappings).
//
// Key properties:
//
//   - Deterministic: the pair (count, base) fully determines all future
//     output; identical construction ⇒ identical sequences on every platform.
//   - Pop increments the counter first, so a fresh generator emits the
//     sequence element of index 1, not 0. Vdc(0, base) == 0 for every base.
//   - Reseed(seed) overwrites the counter with exactly seed, so Reseed(0)
//     restarts the sequence from the beginning.
//   - Mapper outputs satisfy their manifold invariants up to floating-point
//     rounding: sin²+cos² == 1 for Circle, ‖p‖² == 1 for Sphere and
//     Sphere3Hopf.
//
// Caller contracts (not runtime-checked):
//
//   - base must be ≥ 2. Smaller bases produce undefined numeric behavior
//     (non-termination or division by zero); constructors do not validate.
//   - Composite constructors index their base slice up to the required axis
//     count; a shorter slice fails loudly with the runtime bounds panic.
//
// Thread safety:
//
//   - Concurrent Pop calls on one generator are safe: the counter is advanced
//     with an atomic increment, so every caller receives a distinct, validly
//     computed index — which caller gets which index is unspecified.
//   - Reseed is a plain counter overwrite and must be externally serialized
//     against concurrent Pop (single-writer precondition).
//   - Composites add no coordination across their owned axes; a caller who
//     needs synchronized N-tuples must serialize access to the whole
//     composite's Pop.
//
// Complexity: every Pop is O(log_base count) time, O(1) space.
package lds
