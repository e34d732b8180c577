package lds

import "math"

// twoPi is the full turn used to map [0, 1) onto angles.
const twoPi = 2 * math.Pi

// Circle generates evenly spread points on the unit circle by mapping one
// Van der Corput axis onto the angle.
type Circle struct {
	vdc VdCorput
}

// NewCircle returns a unit-circle generator driven by a Van der Corput
// sequence in the given base.
func NewCircle(base uint64) *Circle {
	return &Circle{vdc: VdCorput{base: base}}
}

// Pop returns the next point as [sin θ, cos θ] with θ = Pop()·2π — note the
// sine-first component order. The pair lies on the unit circle up to
// floating-point rounding: sin²+cos² == 1 ± ε.
func (c *Circle) Pop() [2]float64 {
	theta := c.vdc.Pop() * twoPi // map to [0, 2π)

	return [2]float64{math.Sin(theta), math.Cos(theta)}
}

// Reseed delegates to the angle axis.
func (c *Circle) Reseed(seed uint64) {
	c.vdc.Reseed(seed)
}

// Disk generates evenly spread points inside the unit disk from one radius
// axis and one angle axis (a Circle).
type Disk struct {
	vdc    VdCorput // radius axis
	cirgen Circle   // angle axis
}

// NewDisk returns a unit-disk generator: radius axis in base[0], angle axis
// in base[1]. A slice shorter than 2 panics with the runtime bounds error.
func NewDisk(base []uint64) *Disk {
	return &Disk{
		vdc:    VdCorput{base: base[0]},
		cirgen: Circle{vdc: VdCorput{base: base[1]}},
	}
}

// Pop returns the next point [x, y] inside the unit disk. The radius is
// √(u): the square-root transform keeps the induced distribution uniform
// with respect to area — a linear radius would over-concentrate points near
// the center.
func (d *Disk) Pop() [2]float64 {
	radius := math.Sqrt(d.vdc.Pop())
	sc := d.cirgen.Pop()

	return [2]float64{radius * sc[1], radius * sc[0]}
}

// Reseed delegates to both owned axes.
func (d *Disk) Reseed(seed uint64) {
	d.vdc.Reseed(seed)
	d.cirgen.Reseed(seed)
}
