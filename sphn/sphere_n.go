package sphn

import (
	"math"

	"github.com/luk036/lds-go/lds"
)

// SphereGen is the recursion seam shared by the n-sphere generators: every
// level owns its own leading Van der Corput axis and delegates the rest of
// the coordinates to a lower-dimensional SphereGen.
type SphereGen interface {
	// Pop returns the next point as a freshly allocated coordinate slice.
	Pop() []float64
	// Reseed resets every owned axis to the given seed.
	Reseed(seed uint64)
}

// sphere2 adapts lds.Sphere to the SphereGen seam at the recursion floor.
type sphere2 struct {
	gen *lds.Sphere
}

func (s *sphere2) Pop() []float64 {
	p := s.gen.Pop()

	return p[:]
}

func (s *sphere2) Reseed(seed uint64) { s.gen.Reseed(seed) }

// Sphere3 generates evenly spread points on S³ ⊂ R⁴ by drawing the polar
// angle through the order-2 inverse-CDF table and scaling an lds 2-sphere
// point underneath.
type Sphere3 struct {
	vdc   *lds.VdCorput
	inner *sphere2
}

var _ SphereGen = (*Sphere3)(nil)

// NewSphere3 returns an S³ generator: polar axis in base[0], the underlying
// 2-sphere in base[1] and base[2]. Panics if fewer than 3 bases are given.
func NewSphere3(base []uint64) *Sphere3 {
	if len(base) < 3 {
		panic("sphn: Sphere3 requires at least 3 bases")
	}

	return &Sphere3{
		vdc:   lds.NewVdCorput(base[0]),
		inner: &sphere2{gen: lds.NewSphere(base[1:3])},
	}
}

// Pop returns the next point on S³. Invariant: Σ xᵢ² == 1 ± ε.
func (s *Sphere3) Pop() []float64 {
	t := sharedTables()
	ti := halfPi * s.vdc.Pop() // map to [0, π/2], the range of f2
	xi := interp(ti, t.f2, t.x)

	return scaleAppend(s.inner.Pop(), math.Sin(xi), math.Cos(xi))
}

// Reseed resets the polar axis and the underlying 2-sphere.
func (s *Sphere3) Reseed(seed uint64) {
	s.vdc.Reseed(seed)
	s.inner.Reseed(seed)
}

// SphereN generates evenly spread points on Sⁿ ⊂ Rⁿ⁺¹ for n = len(base),
// n ≥ 3: each recursion level draws its polar angle from an inverse-CDF
// table and the remaining coordinates from the level underneath, bottoming
// out on the lds 2-sphere.
type SphereN struct {
	vdc   *lds.VdCorput
	inner SphereGen

	tp      []float64 // order-n inverse-CDF grid
	tpStart float64   // tp[0]
	tpRange float64   // tp[end] - tp[0]
}

var _ SphereGen = (*SphereN)(nil)

// NewSphereN returns an Sⁿ generator over len(base) axes, one per recursion
// level, outermost first. Panics if fewer than 3 bases are given.
func NewSphereN(base []uint64) *SphereN {
	n := len(base) - 1
	if n < 2 {
		panic("sphn: SphereN requires at least 3 bases")
	}

	var inner SphereGen
	if n == 2 {
		inner = &sphere2{gen: lds.NewSphere(base[1:3])}
	} else {
		inner = NewSphereN(base[1:])
	}

	tp := getTP(n)

	return &SphereN{
		vdc:     lds.NewVdCorput(base[0]),
		inner:   inner,
		tp:      tp,
		tpStart: tp[0],
		tpRange: tp[len(tp)-1] - tp[0],
	}
}

// Pop returns the next point on Sⁿ as an (n+1)-coordinate slice.
// Invariant: Σ xᵢ² == 1 ± ε.
func (s *SphereN) Pop() []float64 {
	ti := s.tpStart + s.tpRange*s.vdc.Pop() // map to [tp[0], tp[end]]
	xi := interp(ti, s.tp, sharedTables().x)

	return scaleAppend(s.inner.Pop(), math.Sin(xi), math.Cos(xi))
}

// Reseed resets the polar axis and every level underneath.
func (s *SphereN) Reseed(seed uint64) {
	s.vdc.Reseed(seed)
	s.inner.Reseed(seed)
}

// scaleAppend multiplies every inner coordinate by sin and appends cos —
// the step that turns a point on Sⁿ⁻¹ plus a polar angle into a point on
// Sⁿ.
func scaleAppend(point []float64, sin, cos float64) []float64 {
	res := make([]float64, 0, len(point)+1)
	for _, c := range point {
		res = append(res, sin*c)
	}

	return append(res, cos)
}
