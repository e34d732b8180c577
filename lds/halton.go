package lds

import "github.com/luk036/lds-go/primes"

// Halton generates the 2-D Halton sequence: two Van der Corput axes with
// independently chosen bases, popped in lockstep.
type Halton struct {
	vdc0 VdCorput
	vdc1 VdCorput
}

// NewHalton returns a 2-D Halton generator using base[0] and base[1] as the
// axis bases. The bases should be pairwise coprime (typically the primes
// 2 and 3) or the axes will correlate.
//
// A slice shorter than 2 panics with the runtime bounds error.
func NewHalton(base []uint64) *Halton {
	return &Halton{
		vdc0: VdCorput{base: base[0]},
		vdc1: VdCorput{base: base[1]},
	}
}

// Pop returns the next Halton point as [x, y], popping both axes once. The
// per-axis indices stay in lockstep because every Pop advances both axes;
// there is no per-axis pop.
//
// Complexity: O(log count).
func (h *Halton) Pop() [2]float64 {
	return [2]float64{h.vdc0.Pop(), h.vdc1.Pop()}
}

// Reseed applies the same seed to both axes. Same single-writer precondition
// as VdCorput.Reseed.
func (h *Halton) Reseed(seed uint64) {
	h.vdc0.Reseed(seed)
	h.vdc1.Reseed(seed)
}

// HaltonN generates the N-dimensional Halton sequence: one Van der Corput
// axis per base, popped in index order 0..N-1.
type HaltonN struct {
	vdcs []VdCorput
}

// NewHaltonN returns an N-dimensional Halton generator with one axis per
// entry of base, in order. Distinct pairwise-coprime bases are the caller's
// responsibility; primes.First(n) is the conventional choice.
func NewHaltonN(base []uint64) *HaltonN {
	vdcs := make([]VdCorput, len(base))
	for i, b := range base {
		vdcs[i].base = b
	}

	return &HaltonN{vdcs: vdcs}
}

// NewHaltonNPrimes returns an n-dimensional Halton generator whose axis
// bases are the leading n primes (2, 3, 5, ...).
//
// n beyond the 1000-entry prime table panics with the bounds error at this
// call site.
func NewHaltonNPrimes(n int) *HaltonN {
	return NewHaltonN(primes.First(n))
}

// Dim returns the number of axes.
func (h *HaltonN) Dim() int { return len(h.vdcs) }

// Pop returns the next N-dimensional Halton point, popping every axis once
// in index order. The slice is freshly allocated; callers own it.
//
// Complexity: O(N log count).
func (h *HaltonN) Pop() []float64 {
	res := make([]float64, len(h.vdcs))
	for i := range h.vdcs {
		res[i] = h.vdcs[i].Pop()
	}

	return res
}

// Reseed applies the same seed to every axis in index order.
func (h *HaltonN) Reseed(seed uint64) {
	for i := range h.vdcs {
		h.vdcs[i].Reseed(seed)
	}
}
