package kinematics_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/decaykin/internal/kinematics"
)

var _ = Describe("Lorentz boost properties", func() {
	var p kinematics.FourMomentum

	BeforeEach(func() {
		p = kinematics.FourMomentum{E: 12.5, Px: 3, Py: -4, Pz: 5}
	})

	axes := []kinematics.Axis{kinematics.AxisX, kinematics.AxisY, kinematics.AxisZ}
	betas := []float64{-0.95, -0.6, -0.1, 0.25, 0.8, 0.99}

	It("is the identity at beta zero", func() {
		for _, axis := range axes {
			got, err := kinematics.Boost(p, 0, axis)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(p))
		}
	})

	It("round-trips with the opposite beta", func() {
		for _, axis := range axes {
			for _, beta := range betas {
				fwd, err := kinematics.Boost(p, beta, axis)
				Expect(err).NotTo(HaveOccurred())
				back, err := kinematics.Boost(fwd, -beta, axis)
				Expect(err).NotTo(HaveOccurred())

				Expect(back.E).To(BeNumerically("~", p.E, 1e-9))
				Expect(back.Px).To(BeNumerically("~", p.Px, 1e-9))
				Expect(back.Py).To(BeNumerically("~", p.Py, 1e-9))
				Expect(back.Pz).To(BeNumerically("~", p.Pz, 1e-9))
			}
		}
	})

	It("preserves the invariant mass", func() {
		want, err := p.Mass()
		Expect(err).NotTo(HaveOccurred())

		for _, axis := range axes {
			for _, beta := range betas {
				boosted, err := kinematics.Boost(p, beta, axis)
				Expect(err).NotTo(HaveOccurred())
				m, err := boosted.Mass()
				Expect(err).NotTo(HaveOccurred())
				Expect(m).To(BeNumerically("~", want, 1e-9))
			}
		}
	})
})

var _ = Describe("Decay frames", func() {
	It("agree on every particle's invariant mass", func() {
		frames, err := kinematics.Decay(91, 40, 0.105, 0.105)
		Expect(err).NotTo(HaveOccurred())
		Expect(frames).To(HaveLen(4))

		for _, f := range frames {
			m0, err := f.Mother.Mass()
			Expect(err).NotTo(HaveOccurred())
			Expect(m0).To(BeNumerically("~", 91, 1e-8))

			m1, err := f.Daughter1.Mass()
			Expect(err).NotTo(HaveOccurred())
			Expect(m1).To(BeNumerically("~", 0.105, 1e-8))

			m2, err := f.Daughter2.Mass()
			Expect(err).NotTo(HaveOccurred())
			Expect(m2).To(BeNumerically("~", 0.105, 1e-8))
		}
	})

	It("conserves energy and momentum in the rest frame", func() {
		frames, err := kinematics.Decay(125, 0, 4.18, 4.18)
		Expect(err).NotTo(HaveOccurred())
		Expect(frames).To(HaveLen(1))

		f := frames[0]
		Expect(f.Daughter1.E + f.Daughter2.E).To(BeNumerically("~", 125, 1e-7))
		Expect(f.Daughter1.Px).To(Equal(-f.Daughter2.Px))
	})
})
