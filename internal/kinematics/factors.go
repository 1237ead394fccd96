package kinematics

import "math"

// Beta returns the velocity fraction p/sqrt(m^2 + p^2) of a particle
// with rest mass m and momentum magnitude p. A massless particle at
// rest has no defined velocity and fails with ErrUndefinedBeta.
func Beta(m, p float64) (float64, error) {
	if m < 0 {
		return 0, ErrInvalidMass
	}
	if p < 0 {
		return 0, ErrInvalidMomentum
	}
	if m == 0 && p == 0 {
		return 0, ErrUndefinedBeta
	}
	return p / math.Sqrt(m*m+p*p), nil
}

// Gamma returns the Lorentz factor 1/sqrt(1 - beta^2). Fails with
// ErrInvalidBeta when |beta| >= 1.
func Gamma(beta float64) (float64, error) {
	if math.Abs(beta) >= 1 {
		return 0, ErrInvalidBeta
	}
	return 1 / math.Sqrt(1-beta*beta), nil
}
