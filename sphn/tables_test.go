package sphn

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("linspace", func() {
	It("should space samples evenly, ends inclusive", func() {
		res := linspace(0, 1, 5)
		Expect(res).To(HaveLen(5))
		for i, want := range []float64{0, 0.25, 0.5, 0.75, 1} {
			Expect(res[i]).To(BeNumerically("~", want, 1e-12))
		}
	})

	It("should return just the start for a single sample", func() {
		Expect(linspace(0, 1, 1)).To(Equal([]float64{0}))
	})

	It("should handle negative ranges", func() {
		res := linspace(-1, 1, 3)
		for i, want := range []float64{-1, 0, 1} {
			Expect(res[i]).To(BeNumerically("~", want, 1e-12))
		}
	})
})

var _ = Describe("interp", func() {
	xp := []float64{0, 1, 2, 3}
	yp := []float64{0, 2, 4, 6} // y = 2x

	It("should interpolate linearly inside segments", func() {
		Expect(interp(0.5, xp, yp)).To(BeNumerically("~", 1.0, 1e-12))
		Expect(interp(1.5, xp, yp)).To(BeNumerically("~", 3.0, 1e-12))
	})

	It("should hit grid points exactly", func() {
		Expect(interp(2.0, xp, yp)).To(BeNumerically("~", 4.0, 1e-12))
	})

	It("should clamp outside the range", func() {
		Expect(interp(-0.5, xp, yp)).To(Equal(0.0))
		Expect(interp(3.5, xp, yp)).To(Equal(6.0))
	})
})

var _ = Describe("getTP", func() {
	It("should return the identity grid for order 0", func() {
		tp := getTP(0)
		Expect(tp).To(HaveLen(tableSize))
		Expect(tp[0]).To(BeNumerically("~", 0.0, 1e-12))
		Expect(tp[tableSize-1]).To(BeNumerically("~", math.Pi, 1e-12))
	})

	It("should return -cos for order 1", func() {
		tp := getTP(1)
		Expect(tp[0]).To(BeNumerically("~", -1.0, 1e-12))
		Expect(tp[tableSize-1]).To(BeNumerically("~", 1.0, 1e-12))
	})

	It("should reduce order 2 to the shared f2 grid", func() {
		tp := getTP(2)
		f2 := sharedTables().f2
		for i := range tp {
			Expect(tp[i]).To(Equal(f2[i]))
		}
	})

	It("should satisfy the sin-power reduction endpoints for order 3", func() {
		// tp3 = (2·tp1 + (-cos x)·sin² x)/3 runs from -2/3 to 2/3.
		tp := getTP(3)
		Expect(tp[0]).To(BeNumerically("~", -2.0/3, 1e-12))
		Expect(tp[tableSize-1]).To(BeNumerically("~", 2.0/3, 1e-12))
	})

	It("should stay monotone non-decreasing for every order", func() {
		for n := 2; n <= 6; n++ {
			tp := getTP(n)
			for i := 1; i < len(tp); i++ {
				Expect(tp[i]).To(BeNumerically(">=", tp[i-1]),
					"order %d grid dips at %d", n, i)
			}
		}
	})
})
