package laplace_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/transferanalyzer/internal/laplace"
	"github.com/san-kum/transferanalyzer/internal/tf"
)

var firstOrder = tf.Rational([]float64{1}, []float64{1, 1})

var _ = Describe("Invert", func() {
	DescribeTable("first-order impulse response e^(-t)",
		func(method string, tol float64) {
			for _, t := range []float64{0.01, 0.5, 1, 2, 5} {
				f, err := laplace.Invert(firstOrder, t, method)
				Expect(err).NotTo(HaveOccurred())
				Expect(f).To(BeNumerically("~", math.Exp(-t), tol), "t=%v", t)
			}
		},
		Entry("cohen", "cohen", 1e-6),
		Entry("talbot", "talbot", 1e-6),
		Entry("stehfest", "stehfest", 1e-3),
		Entry("dehoog", "dehoog", 1e-6),
	)

	DescribeTable("first-order step response 1 - e^(-t)",
		func(method string, tol float64) {
			step := tf.Step(firstOrder, 1)
			for _, t := range []float64{0.01, 1, 10, 25} {
				f, err := laplace.Invert(step, t, method)
				Expect(err).NotTo(HaveOccurred())
				Expect(f).To(BeNumerically("~", 1-math.Exp(-t), tol), "t=%v", t)
			}
		},
		Entry("cohen", "cohen", 1e-6),
		Entry("talbot", "talbot", 1e-6),
		Entry("stehfest", "stehfest", 1e-3),
		Entry("dehoog", "dehoog", 1e-6),
	)

	DescribeTable("underdamped second-order impulse response",
		func(method string) {
			g := tf.Rational([]float64{1}, []float64{1, 0.4, 1})
			wd := math.Sqrt(1 - 0.04)
			t := 3.0
			f, err := laplace.Invert(g, t, method)
			Expect(err).NotTo(HaveOccurred())
			Expect(f).To(BeNumerically("~", math.Exp(-0.2*t)*math.Sin(wd*t)/wd, 1e-6))
		},
		Entry("cohen", "cohen"),
		Entry("talbot", "talbot"),
		Entry("dehoog", "dehoog"),
	)

	It("uses cohen by default", func() {
		Expect(laplace.DefaultMethod).To(Equal("cohen"))
		_, err := laplace.Lookup(laplace.DefaultMethod)
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects an unknown method at inversion time", func() {
		_, err := laplace.Invert(firstOrder, 1, "fourier")
		Expect(err).To(MatchError(laplace.ErrUnknownMethod))
	})

	It("rejects non-positive time", func() {
		for _, method := range laplace.Methods() {
			_, err := laplace.Invert(firstOrder, 0, method)
			Expect(err).To(MatchError(laplace.ErrInvalidTime), method)
		}
	})

	It("propagates singular evaluations", func() {
		pole := func(s complex128) complex128 { return 1 / (s - s) }
		for _, method := range laplace.Methods() {
			_, err := laplace.Invert(pole, 1, method)
			Expect(err).To(MatchError(tf.ErrSingular), method)
		}
	})
})

var _ = Describe("Methods", func() {
	It("lists every registered method sorted", func() {
		Expect(laplace.Methods()).To(Equal([]string{"cohen", "dehoog", "stehfest", "talbot"}))
	})
})
