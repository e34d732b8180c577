// Package sphn extends the lds generators to spheres of arbitrary dimension,
// plus a cylindrical variant.
//
// Overview:
//
//	         VdCorput axis
//	               |
//	               v
//	  [0,1] ----------------> [0,π] ------> Sphere(n)
//	            inverse-CDF       recursion
//
// A uniform point on Sⁿ decomposes into a polar angle with density
// proportional to sinⁿ⁻¹ and a uniform point on Sⁿ⁻¹. Each generator maps
// its leading Van der Corput axis through a precomputed inverse-CDF table to
// draw the polar angle, scales a recursively generated lower-dimensional
// point by sin, and appends cos. The recursion bottoms out on the lds
// 2-sphere (or the unit circle for the cylindrical variant).
//
// Components:
//
//   - SphereGen: the recursion seam every n-sphere generator satisfies.
//   - Sphere3: 3 bases → points on S³ ⊂ R⁴.
//   - SphereN: n bases → points on Sⁿ ⊂ Rⁿ⁺¹ for any n ≥ 3.
//   - CylinN: n bases → points on Sⁿ ⊂ Rⁿ⁺¹ via the cylindrical
//     construction (cos(latitude) uniform at every level).
//
// The inverse-CDF tables are 300-sample piecewise-linear maps over [0, π],
// built once behind a sync.Once; higher-order tables grow on demand in a
// mutex-guarded memo and are never mutated afterwards.
//
// Constructors panic with an "sphn: ..." message on insufficient base
// counts — a programmer error, not a runtime condition. Pop and Reseed
// follow the same contracts as package lds.
package sphn
