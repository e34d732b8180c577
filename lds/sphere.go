package lds

import "math"

// Sphere generates evenly spread points on the unit 2-sphere using the
// cosine-uniformity construction: cos(latitude) uniform on [-1, 1], azimuth
// uniform on [0, 2π).
type Sphere struct {
	vdc    VdCorput // polar axis
	cirgen Circle   // azimuth axis
}

// NewSphere returns a unit-sphere generator: polar axis in base[0], azimuth
// axis in base[1]. A slice shorter than 2 panics with the runtime bounds
// error.
func NewSphere(base []uint64) *Sphere {
	return &Sphere{
		vdc:    VdCorput{base: base[0]},
		cirgen: Circle{vdc: VdCorput{base: base[1]}},
	}
}

// Pop returns the next point [x, y, z] on the unit sphere.
// Invariant: x²+y²+z² == 1 ± ε.
func (s *Sphere) Pop() [3]float64 {
	cosphi := 2*s.vdc.Pop() - 1 // map to [-1, 1]
	sinphi := math.Sqrt(1 - cosphi*cosphi)
	cs := s.cirgen.Pop()

	return [3]float64{sinphi * cs[0], sinphi * cs[1], cosphi}
}

// Reseed delegates to both owned axes.
func (s *Sphere) Reseed(seed uint64) {
	s.cirgen.Reseed(seed)
	s.vdc.Reseed(seed)
}

// Sphere3Hopf generates evenly spread points on the unit 3-sphere (S³ ⊂ R⁴)
// via Hopf-fibration coordinates: two angles and one latitude-like
// parameter, each driven by its own Van der Corput axis.
type Sphere3Hopf struct {
	vdc0 VdCorput // fiber angle φ
	vdc1 VdCorput // base angle ψ
	vdc2 VdCorput // latitude parameter
}

// NewSphere3Hopf returns a 3-sphere generator with one axis per entry of
// base[0..2]. A slice shorter than 3 panics with the runtime bounds error.
func NewSphere3Hopf(base []uint64) *Sphere3Hopf {
	return &Sphere3Hopf{
		vdc0: VdCorput{base: base[0]},
		vdc1: VdCorput{base: base[1]},
		vdc2: VdCorput{base: base[2]},
	}
}

// Pop returns the next point [x₀, x₁, x₂, x₃] on the unit 3-sphere.
//
// The Hopf parametrization is measure-preserving exactly when the latitude
// parameter stays uniform — it is consumed raw, never re-biased.
// Invariant: Σ xᵢ² == 1 ± ε.
func (s *Sphere3Hopf) Pop() [4]float64 {
	phi := s.vdc0.Pop() * twoPi // map to [0, 2π)
	psy := s.vdc1.Pop() * twoPi // map to [0, 2π)
	vd := s.vdc2.Pop()
	cosEta := math.Sqrt(vd)
	sinEta := math.Sqrt(1 - vd)

	return [4]float64{
		cosEta * math.Cos(psy),
		cosEta * math.Sin(psy),
		sinEta * math.Cos(phi+psy),
		sinEta * math.Sin(phi+psy),
	}
}

// Reseed applies the same seed to all three axes in index order.
func (s *Sphere3Hopf) Reseed(seed uint64) {
	s.vdc0.Reseed(seed)
	s.vdc1.Reseed(seed)
	s.vdc2.Reseed(seed)
}
