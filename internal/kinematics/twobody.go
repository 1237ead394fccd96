package kinematics

import "math"

// RestFrameMomentum returns the shared momentum magnitude of two
// daughters recoiling back to back in the mother's rest frame:
//
//	p = 1/2 * sqrt(m0^2 - (m1+m2)^2)
//
// Sign convention: daughter 1 carries +p along x, daughter 2 carries -p.
// Fails with ErrForbiddenDecay when m0 < m1 + m2.
func RestFrameMomentum(m0, m1, m2 float64) (float64, error) {
	if m0 < 0 || m1 < 0 || m2 < 0 {
		return 0, ErrInvalidMass
	}
	if m0 < m1+m2 {
		return 0, ErrForbiddenDecay
	}
	sum := m1 + m2
	return 0.5 * math.Sqrt(m0*m0-sum*sum), nil
}

// RestFrameDecay returns the daughters' four-momenta in the mother's
// rest frame. Both daughters move along x with py = pz = 0 and
// e = sqrt(m^2 + p^2). Energy conservation (e1 + e2 == m0) and momentum
// conservation (p1 == -p2) hold within floating tolerance.
func RestFrameDecay(m0, m1, m2 float64) (FourMomentum, FourMomentum, error) {
	p, err := RestFrameMomentum(m0, m1, m2)
	if err != nil {
		return FourMomentum{}, FourMomentum{}, err
	}
	d1 := FourMomentum{E: math.Sqrt(m1*m1 + p*p), Px: p}
	d2 := FourMomentum{E: math.Sqrt(m2*m2 + p*p), Px: -p}
	return d1, d2, nil
}
