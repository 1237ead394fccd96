package kinematics

import "errors"

// Domain errors for kinematic computations.
var (
	// ErrInvalidMass indicates a negative rest mass argument.
	ErrInvalidMass = errors.New("kinematics: mass must be non-negative")

	// ErrInvalidMomentum indicates a negative momentum magnitude argument.
	ErrInvalidMomentum = errors.New("kinematics: momentum must be non-negative")

	// ErrForbiddenDecay indicates the mother is lighter than its daughters
	// combined; the decay cannot occur.
	ErrForbiddenDecay = errors.New("kinematics: forbidden decay (m0 < m1 + m2)")

	// ErrUndefinedBeta indicates beta was requested for a massless particle
	// at rest (0/0).
	ErrUndefinedBeta = errors.New("kinematics: beta undefined for m = 0, p = 0")

	// ErrInvalidBeta indicates |beta| >= 1, which would require infinite energy.
	ErrInvalidBeta = errors.New("kinematics: |beta| must be < 1")

	// ErrOffShell indicates a four-momentum whose mass squared is negative
	// beyond numerical tolerance.
	ErrOffShell = errors.New("kinematics: four-momentum is off shell (m^2 < 0)")
)
