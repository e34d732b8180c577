package ilds

import "sync/atomic"

// maxTableSize caps the digit-reversal lookup table: the chunk width is the
// widest w with base^w ≤ maxTableSize, so the table never exceeds 4096
// entries regardless of base.
const maxTableSize = 4096

// Vdc computes the k-th fixed-point Van der Corput element in the given
// base: the scale-digit reversal of k, a value in [0, base^scale). Digits of
// k beyond the scale-digit field truncate to zero, mirroring the float
// variant's loss of precision below 1/base^scale. Vdc(0, base, scale) == 0.
//
// base must be ≥ 2 and base^scale must fit in uint64 (caller contracts, not
// validated).
//
// Complexity: O(log_base k).
func Vdc(k, base uint64, scale uint32) uint64 {
	var res uint64
	factor := ipow(base, scale)
	for k != 0 {
		remainder := k % base
		factor /= base
		k /= base
		res += remainder * factor
	}

	return res
}

// ipow returns base**exp in uint64 arithmetic; overflow is the caller's
// contract.
func ipow(base uint64, exp uint32) uint64 {
	res := uint64(1)
	for ; exp > 0; exp-- {
		res *= base
	}

	return res
}

// VdCorput generates the fixed-point Van der Corput sequence for a fixed
// base and scale.
//
// For bases up to maxTableSize it carries a digit-reversal lookup table
// built once at construction and never mutated: each table entry holds the
// width-digit reversal of its own index, letting Pop reverse width digits
// per step instead of one. Larger bases fall back to the plain digit loop.
type VdCorput struct {
	count atomic.Uint64
	base  uint64
	scale uint32

	scaled uint64 // base^scale, the fixed-point denominator

	// Chunked fast path; tab == nil means plain digit loop.
	width    uint32   // digits reversed per table lookup
	chunkMod uint64   // base^width
	tab      []uint64 // tab[prefix] = width-digit reversal of prefix
	powers   []uint64 // powers[i] = base^i
}

// NewVdCorput returns a fixed-point generator for the given base and scale,
// positioned before the first element. Emitted values divide by Scale() to
// approximate the float sequence within 1/Scale().
func NewVdCorput(base uint64, scale uint32) *VdCorput {
	v := new(VdCorput)
	v.init(base, scale)

	return v
}

// init builds the generator in place so composites can own VdCorput fields
// by value without copying the atomic counter.
func (v *VdCorput) init(base uint64, scale uint32) {
	v.base = base
	v.scale = scale
	v.scaled = ipow(base, scale)
	if base > maxTableSize {
		return // no usable chunk width; Pop uses the plain digit loop
	}

	// Widest chunk that keeps the table within maxTableSize entries.
	width := uint32(1)
	chunkMod := base
	for chunkMod*base <= maxTableSize {
		chunkMod *= base
		width++
	}
	v.width = width
	v.chunkMod = chunkMod

	tab := make([]uint64, chunkMod)
	for prefix := uint64(0); prefix < chunkMod; prefix++ {
		rev := uint64(0)
		p := prefix
		for i := uint32(0); i < width; i++ {
			rev = rev*base + p%base
			p /= base
		}
		tab[prefix] = rev
	}
	v.tab = tab

	// Powers up to max(scale, width) cover both the aligned shifts and the
	// truncating division of a final partial chunk.
	n := scale
	if width > n {
		n = width
	}
	powers := make([]uint64, n+1)
	powers[0] = 1
	for i := uint32(1); i <= n; i++ {
		powers[i] = powers[i-1] * base
	}
	v.powers = powers
}

// Scale returns base^scale, the fixed-point denominator: Pop()/Scale()
// approximates the float sequence within 1/Scale().
func (v *VdCorput) Scale() uint64 {
	return v.scaled
}

// Pop advances the sequence index and returns the element at the new index,
// an integer in [0, Scale()). Agrees exactly with Vdc(index, base, scale)
// whether or not the lookup table is in play.
//
// Safe for concurrent use; see lds.VdCorput.Pop for the index-uniqueness
// guarantee.
//
// Complexity: O(log_base count / width) table lookups, or O(log_base count)
// divisions on the fallback path.
func (v *VdCorput) Pop() uint64 {
	k := v.count.Add(1)
	if v.tab == nil {
		return Vdc(k, v.base, v.scale)
	}

	var res uint64
	pos := int(v.scale)
	for k != 0 {
		chunk := k % v.chunkMod
		k /= v.chunkMod
		pos -= int(v.width)
		if pos >= 0 {
			res += v.tab[chunk] * v.powers[pos]

			continue
		}
		// Final partial chunk: only its leading scale-aligned digits fit in
		// the field; the truncating division drops the rest, and every
		// deeper chunk falls below the resolution entirely.
		res += v.tab[chunk] / v.powers[-pos]

		break
	}

	return res
}

// Reseed overwrites the sequence index with exactly seed. Same single-writer
// precondition as lds.VdCorput.Reseed.
func (v *VdCorput) Reseed(seed uint64) {
	v.count.Store(seed)
}

// Halton generates the 2-D fixed-point Halton sequence: two integer Van der
// Corput axes with independent bases and scales, popped in lockstep.
type Halton struct {
	vdc0 VdCorput
	vdc1 VdCorput
}

// NewHalton returns a 2-D integer Halton generator using base[i] and
// scale[i] for axis i. Slices shorter than 2 panic with the runtime bounds
// error.
func NewHalton(base []uint64, scale []uint32) *Halton {
	h := new(Halton)
	h.vdc0.init(base[0], scale[0])
	h.vdc1.init(base[1], scale[1])

	return h
}

// Pop returns the next integer Halton point, popping both axes once.
func (h *Halton) Pop() [2]uint64 {
	return [2]uint64{h.vdc0.Pop(), h.vdc1.Pop()}
}

// Reseed applies the same seed to both axes.
func (h *Halton) Reseed(seed uint64) {
	h.vdc0.Reseed(seed)
	h.vdc1.Reseed(seed)
}
