package lds

import "sync/atomic"

// Vdc computes the k-th element of the Van der Corput sequence in the given
// base: the base-b digit expansion of k reversed around the radix point,
// yielding a value in [0, 1). Vdc(0, base) == 0 for every base.
//
// The summation accumulates from the least-significant digit toward the most
// significant. Keep that order: accumulating the other way changes the
// rounding characteristics of the result.
//
// base must be ≥ 2 (caller contract, not validated): base 1 never terminates
// and base 0 divides by zero.
//
// Complexity: O(log_base k).
func Vdc(k, base uint64) float64 {
	var (
		res   float64
		denom = 1.0
	)
	for k != 0 {
		remainder := k % base
		denom *= float64(base)
		k /= base
		res += float64(remainder) / denom
	}

	return res
}

// VdCorput generates the Van der Corput sequence for a fixed base.
//
// State is the pair (count, base): count is the sequence index, advanced
// atomically by Pop; base is immutable after construction. Two generators
// with equal state always produce identical future output.
type VdCorput struct {
	count atomic.Uint64 // sequence index; last index already emitted
	base  uint64        // radix, fixed at construction, must be ≥ 2
}

// NewVdCorput returns a generator for the Van der Corput sequence in the
// given base, positioned before the first element (index 0).
//
// base must be ≥ 2; see Vdc for the contract.
func NewVdCorput(base uint64) *VdCorput {
	return &VdCorput{base: base}
}

// Pop advances the sequence index by one and returns the element at the new
// index, a value in [0, 1). The first Pop after construction emits the
// element of index 1.
//
// Safe for concurrent use: the increment is atomic, so racing callers each
// receive a distinct index with no loss or duplication, in unspecified
// per-caller order.
//
// Complexity: O(log_base count).
func (v *VdCorput) Pop() float64 {
	return Vdc(v.count.Add(1), v.base)
}

// Reseed overwrites the sequence index with exactly seed, so the next Pop
// emits the element of index seed+1. Reseed(0) restarts the sequence from
// the beginning.
//
// Not safe to call concurrently with Pop on the same generator; callers must
// serialize Reseed against in-flight Pops (single-writer precondition).
func (v *VdCorput) Reseed(seed uint64) {
	v.count.Store(seed)
}
