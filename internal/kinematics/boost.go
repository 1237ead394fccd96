package kinematics

import "fmt"

// Axis selects the spatial direction of a Lorentz boost.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// component returns the momentum component of p along a.
func (a Axis) component(p FourMomentum) float64 {
	switch a {
	case AxisY:
		return p.Py
	case AxisZ:
		return p.Pz
	default:
		return p.Px
	}
}

// withComponent returns a copy of p with the component along a replaced.
func (a Axis) withComponent(p FourMomentum, v float64) FourMomentum {
	switch a {
	case AxisY:
		p.Py = v
	case AxisZ:
		p.Pz = v
	default:
		p.Px = v
	}
	return p
}

// Boost applies an axis-aligned Lorentz boost with velocity beta to p.
// The energy and the selected momentum component transform as
//
//	e' = g*(e - beta*u)
//	u' = g*(u - beta*e)
//
// where u is p's momentum component along axis and g = Gamma(beta).
// The two orthogonal components pass through unchanged. One formula
// serves all three axes; the energy term always uses the boosted
// axis's own momentum component.
func Boost(p FourMomentum, beta float64, axis Axis) (FourMomentum, error) {
	if axis < AxisX || axis > AxisZ {
		return FourMomentum{}, fmt.Errorf("kinematics: unknown axis %d", int(axis))
	}
	g, err := Gamma(beta)
	if err != nil {
		return FourMomentum{}, err
	}
	u := axis.component(p)
	out := axis.withComponent(p, g*(u-beta*p.E))
	out.E = g * (p.E - beta*u)
	return out, nil
}
