package sphn

import (
	"math"

	"github.com/luk036/lds-go/lds"
)

// circle2 adapts lds.Circle to the SphereGen seam at the cylindrical
// recursion floor.
type circle2 struct {
	gen *lds.Circle
}

func (c *circle2) Pop() []float64 {
	p := c.gen.Pop()

	return p[:]
}

func (c *circle2) Reseed(seed uint64) { c.gen.Reseed(seed) }

// CylinN generates points on Sⁿ ⊂ Rⁿ⁺¹ for n = len(base) ≥ 2 by the
// cylindrical construction: cos(latitude) uniform on [-1, 1] at every
// recursion level, bottoming out on the unit circle.
//
// Unlike the inverse-CDF route of SphereN, no tables are involved — the
// cylindrical map is measure-preserving only level by level, which is the
// classic Archimedes construction on S² and an acceptable stratification
// above it.
type CylinN struct {
	vdc   *lds.VdCorput
	inner SphereGen
}

var _ SphereGen = (*CylinN)(nil)

// NewCylinN returns a cylindrical generator over len(base) axes, outermost
// first. Panics if fewer than 2 bases are given.
func NewCylinN(base []uint64) *CylinN {
	n := len(base)
	if n < 2 {
		panic("sphn: CylinN requires at least 2 bases")
	}

	var inner SphereGen
	if n == 2 {
		inner = &circle2{gen: lds.NewCircle(base[1])}
	} else {
		inner = NewCylinN(base[1:])
	}

	return &CylinN{vdc: lds.NewVdCorput(base[0]), inner: inner}
}

// Pop returns the next point as an (n+1)-coordinate slice.
// Invariant: Σ xᵢ² == 1 ± ε.
func (c *CylinN) Pop() []float64 {
	cosphi := 2*c.vdc.Pop() - 1 // map to [-1, 1]
	sinphi := math.Sqrt(1 - cosphi*cosphi)

	res := c.inner.Pop()
	for i := range res {
		res[i] *= sinphi
	}

	return append(res, cosphi)
}

// Reseed resets the latitude axis and every level underneath.
func (c *CylinN) Reseed(seed uint64) {
	c.vdc.Reseed(seed)
	c.inner.Reseed(seed)
}
