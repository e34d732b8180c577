package sphn

import (
	"math"
	"sync"
)

// tableSize is the sample count of every inverse-CDF table over [0, π].
const tableSize = 300

// halfPi bounds the order-2 table: f2 runs from 0 to π/2.
const halfPi = math.Pi / 2

// tables holds the shared sample grids every generator interpolates over.
type tables struct {
	x         []float64 // linspace(0, π, tableSize)
	negCosine []float64 // -cos(x), the order-1 integral of sin
	sine      []float64 // sin(x)
	f2        []float64 // (x + negCosine·sine)/2, the order-2 inverse-CDF grid
}

var (
	sharedOnce sync.Once
	shared     *tables
)

// sharedTables builds the static grids exactly once, process-wide.
func sharedTables() *tables {
	sharedOnce.Do(func() {
		x := linspace(0, math.Pi, tableSize)
		negCosine := make([]float64, tableSize)
		sine := make([]float64, tableSize)
		f2 := make([]float64, tableSize)
		for i, xi := range x {
			negCosine[i] = -math.Cos(xi)
			sine[i] = math.Sin(xi)
			f2[i] = (xi + negCosine[i]*sine[i]) / 2
		}
		shared = &tables{x: x, negCosine: negCosine, sine: sine, f2: f2}
	})

	return shared
}

var (
	tpMu   sync.Mutex
	tpMemo [][]float64
)

// getTP returns the order-n inverse-CDF grid: the cumulative integral of
// sinⁿ over [0, π] (up to normalization), built by the standard reduction
//
//	tp(0) = x
//	tp(1) = -cos x
//	tp(n) = ((n-1)·tp(n-2) + (-cos x)·sinⁿ⁻¹ x) / n
//
// Grids grow on demand in a memo and are never mutated after construction;
// callers must treat the returned slice as read-only.
func getTP(n int) []float64 {
	t := sharedTables()

	tpMu.Lock()
	defer tpMu.Unlock()

	for len(tpMemo) <= n {
		m := len(tpMemo)
		var tp []float64
		switch m {
		case 0:
			tp = t.x
		case 1:
			tp = t.negCosine
		default:
			prev := tpMemo[m-2]
			tp = make([]float64, tableSize)
			for i := range tp {
				tp[i] = (float64(m-1)*prev[i] + t.negCosine[i]*math.Pow(t.sine[i], float64(m-1))) / float64(m)
			}
		}
		tpMemo = append(tpMemo, tp)
	}

	return tpMemo[n]
}

// linspace returns num evenly spaced samples from start to stop inclusive.
func linspace(start, stop float64, num int) []float64 {
	if num == 1 {
		return []float64{start}
	}
	step := (stop - start) / float64(num-1)
	res := make([]float64, num)
	for i := range res {
		res[i] = start + float64(i)*step
	}

	return res
}

// interp linearly interpolates y at position x over the sample points
// (xp, yp), clamping to the end values outside the range. xp must be
// non-decreasing; the lerp is segment-local.
func interp(x float64, xp, yp []float64) float64 {
	if x <= xp[0] {
		return yp[0]
	}
	if x >= xp[len(xp)-1] {
		return yp[len(yp)-1]
	}

	for i := 0; i < len(xp)-1; i++ {
		if xp[i] <= x && x <= xp[i+1] {
			t := (x - xp[i]) / (xp[i+1] - xp[i])

			return yp[i] + t*(yp[i+1]-yp[i])
		}
	}

	return yp[len(yp)-1]
}
