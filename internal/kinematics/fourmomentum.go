package kinematics

import "math"

// massSqTol is the relative tolerance below which a slightly negative
// mass squared is treated as floating round-off and clamped to zero.
const massSqTol = 1e-9

// FourMomentum is an (e, px, py, pz) energy-momentum vector in natural
// units. Values are immutable: every computation returns a fresh one.
type FourMomentum struct {
	E  float64
	Px float64
	Py float64
	Pz float64
}

// MassSq returns e^2 - px^2 - py^2 - pz^2. Negative values within
// round-off of zero are the caller's problem; see Mass.
func (p FourMomentum) MassSq() float64 {
	return p.E*p.E - p.Px*p.Px - p.Py*p.Py - p.Pz*p.Pz
}

// Mass returns the invariant rest mass. A mass squared more negative
// than the tolerance means the vector is not on shell and fails with
// ErrOffShell; small negative round-off is clamped to zero.
func (p FourMomentum) Mass() (float64, error) {
	m2 := p.MassSq()
	if m2 < 0 {
		scale := p.E * p.E
		if scale < 1 {
			scale = 1
		}
		if -m2 > massSqTol*scale {
			return 0, ErrOffShell
		}
		m2 = 0
	}
	return math.Sqrt(m2), nil
}

// PMag returns the magnitude of the spatial momentum.
func (p FourMomentum) PMag() float64 {
	return math.Sqrt(p.Px*p.Px + p.Py*p.Py + p.Pz*p.Pz)
}

// IsValid reports whether all components are finite.
func (p FourMomentum) IsValid() bool {
	for _, v := range [4]float64{p.E, p.Px, p.Py, p.Pz} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
