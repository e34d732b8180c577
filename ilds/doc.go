// Package ilds is the fixed-point integer counterpart of package lds: the
// same Van der Corput radix-reversal contract, producing scaled integers in
// [0, base^scale) instead of floats.
//
// Overview:
//
//   - Vdc reverses the base-b digits of k inside a scale-digit fixed-point
//     field; digits beyond the field fall below the resolution and truncate
//     away.
//   - VdCorput carries the same (count, base) state machine as lds.VdCorput —
//     atomic counter, Pop pre-increments, Reseed overwrites — plus a
//     precomputed digit-reversal lookup table for small bases that reverses
//     several digits per step.
//   - Halton composes two integer axes with independent bases and scales.
//
// Cross-variant law: for the same index and base, Pop()/Scale() approximates
// the float generator's Pop() within 1/Scale() absolute error. The tabled
// fast path and the plain digit loop agree exactly.
//
// Caller contracts: base ≥ 2 (not validated, same as lds), and base^scale
// must fit in uint64.
//
// Thread safety matches lds: concurrent Pop is safe, Reseed requires
// external serialization against in-flight Pops.
package ilds
