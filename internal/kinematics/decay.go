package kinematics

// Frame labels for the views produced by Decay.
const (
	LabelRestFrame     = "rest frame"
	LabelBoostAlongD1  = "boost along daughter 1 momentum"
	LabelBoostAlongD2  = "boost along daughter 2 momentum"
	LabelBoostPerpToD1 = "boost perpendicular to daughter 1 and daughter 2"
)

// Frame is one reference frame's view of the same decay event: the
// mother and both daughters as four-momenta. All frames of a decay
// share the particles' invariant masses.
type Frame struct {
	Label     string
	Mother    FourMomentum
	Daughter1 FourMomentum
	Daughter2 FourMomentum
}

// boost applies the same Lorentz boost to every particle in the frame.
func (f Frame) boost(label string, beta float64, axis Axis) (Frame, error) {
	out := Frame{Label: label}
	var err error
	if out.Mother, err = Boost(f.Mother, beta, axis); err != nil {
		return Frame{}, err
	}
	if out.Daughter1, err = Boost(f.Daughter1, beta, axis); err != nil {
		return Frame{}, err
	}
	if out.Daughter2, err = Boost(f.Daughter2, beta, axis); err != nil {
		return Frame{}, err
	}
	return out, nil
}

// Decay computes the two-body decay of a mother with rest mass m0 and
// lab momentum p0 into daughters with rest masses m1 and m2.
//
// It returns the rest-frame view alone when p0 = 0, otherwise the
// rest-frame view followed by three boosted views: along daughter 1's
// momentum (x, -beta), along daughter 2's momentum (x, +beta), and
// perpendicular to both (y, -beta), with beta = Beta(m0, p0).
func Decay(m0, p0, m1, m2 float64) ([]Frame, error) {
	if m0 < 0 || m1 < 0 || m2 < 0 {
		return nil, ErrInvalidMass
	}
	if p0 < 0 {
		return nil, ErrInvalidMomentum
	}

	d1, d2, err := RestFrameDecay(m0, m1, m2)
	if err != nil {
		return nil, err
	}
	rest := Frame{
		Label:     LabelRestFrame,
		Mother:    FourMomentum{E: m0},
		Daughter1: d1,
		Daughter2: d2,
	}

	if p0 == 0 {
		return []Frame{rest}, nil
	}

	beta, err := Beta(m0, p0)
	if err != nil {
		return nil, err
	}

	frames := []Frame{rest}
	for _, b := range []struct {
		label string
		beta  float64
		axis  Axis
	}{
		{LabelBoostAlongD1, -beta, AxisX},
		{LabelBoostAlongD2, beta, AxisX},
		{LabelBoostPerpToD1, -beta, AxisY},
	} {
		f, err := rest.boost(b.label, b.beta, b.axis)
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	return frames, nil
}
