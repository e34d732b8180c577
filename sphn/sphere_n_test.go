package sphn

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"

	"github.com/luk036/lds-go/lds"
)

// normSq sums the squared coordinates of a point.
func normSq(p []float64) float64 {
	var s float64
	for _, c := range p {
		s += c * c
	}
	return s
}

var _ = Describe("Sphere3", func() {
	It("should emit 4-coordinate points on the unit 3-sphere", func() {
		sgen := NewSphere3([]uint64{2, 3, 5})
		sgen.Reseed(0)
		for i := 0; i < 100; i++ {
			p := sgen.Pop()
			Expect(p).To(HaveLen(4))
			Expect(normSq(p)).To(BeNumerically("~", 1.0, 1e-9))
		}
	})

	It("should reproduce the reference first point at seed 0", func() {
		sgen := NewSphere3([]uint64{2, 3, 5})
		sgen.Reseed(0)
		p := sgen.Pop()
		// Inner 2-sphere point [0.896665, 0.291344, -1/3] scaled by
		// sin(π/2)=1, with cos(π/2)≈0 appended.
		Expect(p[0]).To(BeNumerically("~", 0.8966646826186098, 1e-9))
		Expect(p[1]).To(BeNumerically("~", 0.2913440162992141, 1e-9))
		Expect(p[2]).To(BeNumerically("~", -1.0/3, 1e-9))
		Expect(p[3]).To(BeNumerically("~", 0.0, 1e-9))
	})

	It("should replay identically after Reseed", func() {
		sgen := NewSphere3([]uint64{2, 3, 5})
		sgen.Reseed(0)
		first := make([][]float64, 3)
		for i := range first {
			first[i] = sgen.Pop()
		}

		sgen.Reseed(0)
		for i := range first {
			Expect(sgen.Pop()).To(Equal(first[i]))
		}
	})

	It("should diverge under a different seed", func() {
		sgen := NewSphere3([]uint64{2, 3, 5})
		sgen.Reseed(0)
		a := sgen.Pop()
		sgen.Reseed(1)
		b := sgen.Pop()
		Expect(a).NotTo(Equal(b))
	})

	It("should reject insufficient bases", func() {
		Expect(func() { NewSphere3([]uint64{2, 3}) }).To(PanicWith("sphn: Sphere3 requires at least 3 bases"))
	})
})

var _ = Describe("SphereN", func() {
	It("should produce one more coordinate than bases", func() {
		for _, base := range [][]uint64{{2, 3, 5}, {2, 3, 5, 7}, {2, 3, 5, 7, 11}} {
			sgen := NewSphereN(base)
			Expect(sgen.Pop()).To(HaveLen(len(base) + 1))
		}
	})

	It("should stay on the unit sphere across dimensions", func() {
		for _, base := range [][]uint64{{2, 3, 5}, {2, 3, 5, 7}, {2, 3, 5, 7, 11, 13}} {
			sgen := NewSphereN(base)
			sgen.Reseed(0)
			for i := 0; i < 50; i++ {
				Expect(normSq(sgen.Pop())).To(BeNumerically("~", 1.0, 1e-9))
			}
		}
	})

	It("should reproduce the reference first point at seed 0", func() {
		sgen := NewSphereN([]uint64{2, 3, 5, 7})
		sgen.Reseed(0)
		p := sgen.Pop()
		Expect(p[0]).To(BeNumerically("~", 0.6031153874276115, 1e-9))
		Expect(p[1]).To(BeNumerically("~", 0.4809684718990214, 1e-9))
		Expect(p[2]).To(BeNumerically("~", -0.5785601510223212, 1e-9))
		Expect(p[3]).To(BeNumerically("~", 0.2649326520763179, 1e-9))
		Expect(p[4]).To(BeNumerically("~", 0.0, 1e-9))
	})

	It("should replay identically after Reseed", func() {
		sgen := NewSphereN([]uint64{2, 3, 5, 7})
		sgen.Reseed(0)
		first := make([][]float64, 3)
		for i := range first {
			first[i] = sgen.Pop()
		}

		sgen.Reseed(0)
		for i := range first {
			Expect(sgen.Pop()).To(Equal(first[i]))
		}
	})

	It("should reject insufficient bases", func() {
		Expect(func() { NewSphereN([]uint64{2, 3}) }).To(PanicWith("sphn: SphereN requires at least 3 bases"))
	})
})

var _ = Describe("SphereN recursion step", func() {
	var (
		mockCtrl *gomock.Controller
		inner    *MockSphereGen
		sgen     *SphereN
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		inner = NewMockSphereGen(mockCtrl)

		// Order-3 level over a base-2 polar axis, inner level mocked out.
		tp := getTP(3)
		sgen = &SphereN{
			vdc:     lds.NewVdCorput(2),
			inner:   inner,
			tp:      tp,
			tpStart: tp[0],
			tpRange: tp[len(tp)-1] - tp[0],
		}
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should scale the inner point by sin and append cos", func() {
		inner.EXPECT().Pop().Return([]float64{0.6, 0.8})

		// First pop of the base-2 axis is 0.5, the distribution median, so
		// the polar angle resolves to π/2: sin 1, cos 0.
		p := sgen.Pop()
		Expect(p).To(HaveLen(3))
		Expect(p[0]).To(BeNumerically("~", 0.6, 1e-9))
		Expect(p[1]).To(BeNumerically("~", 0.8, 1e-9))
		Expect(p[2]).To(BeNumerically("~", 0.0, 1e-9))
	})

	It("should fan Reseed out to the inner level", func() {
		inner.EXPECT().Reseed(uint64(7))
		sgen.Reseed(7)

		// The polar axis was reseeded too: element 8 of base 2 follows.
		inner.EXPECT().Pop().Return([]float64{1, 0, 0})
		sgen.Pop()
		Expect(sgen.vdc.Pop()).To(Equal(lds.Vdc(9, 2)))
	})
})

var _ = Describe("CylinN", func() {
	It("should produce one more coordinate than bases", func() {
		for _, base := range [][]uint64{{2, 3}, {2, 3, 5}, {2, 3, 5, 7}} {
			cgen := NewCylinN(base)
			Expect(cgen.Pop()).To(HaveLen(len(base) + 1))
		}
	})

	It("should stay on the unit sphere at every level", func() {
		cgen := NewCylinN([]uint64{2, 3, 5, 7})
		cgen.Reseed(0)
		for i := 0; i < 100; i++ {
			Expect(normSq(cgen.Pop())).To(BeNumerically("~", 1.0, 1e-9))
		}
	})

	It("should reproduce the reference first point at seed 0", func() {
		cgen := NewCylinN([]uint64{2, 3, 5})
		cgen.Reseed(0)
		p := cgen.Pop()
		// Latitude axis emits 0.5 ⇒ cosφ = 0, sinφ = 1: the inner circle
		// level passes through unscaled.
		Expect(p[0]).To(BeNumerically("~", 0.8966646826186098, 1e-9))
		Expect(p[1]).To(BeNumerically("~", 0.2913440162992141, 1e-9))
		Expect(p[2]).To(BeNumerically("~", -1.0/3, 1e-9))
		Expect(p[3]).To(BeNumerically("~", 0.0, 1e-9))
	})

	It("should replay identically after Reseed", func() {
		cgen := NewCylinN([]uint64{2, 3, 5})
		cgen.Reseed(0)
		first := make([][]float64, 3)
		for i := range first {
			first[i] = cgen.Pop()
		}

		cgen.Reseed(0)
		for i := range first {
			Expect(cgen.Pop()).To(Equal(first[i]))
		}
	})

	It("should reject insufficient bases", func() {
		Expect(func() { NewCylinN([]uint64{2}) }).To(PanicWith("sphn: CylinN requires at least 2 bases"))
	})
})
