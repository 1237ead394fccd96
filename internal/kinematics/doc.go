// Package kinematics computes relativistic two-body decay kinematics.
//
// The package works in natural units (c = 1) on immutable four-momentum
// values:
//
//   - [FourMomentum]: (e, px, py, pz) value type with invariant-mass extraction
//   - [Beta], [Gamma]: relativistic factors from mass and momentum
//   - [Boost]: axis-aligned Lorentz boost of a four-momentum
//   - [RestFrameDecay]: daughter four-momenta in the mother's rest frame
//   - [Decay]: full pipeline producing the rest-frame view plus three
//     boosted views of the same event
//
// # Example
//
//	frames, err := kinematics.Decay(91, 30, 0.1, 0.1)
//	if err != nil {
//	    return err
//	}
//	for _, f := range frames {
//	    fmt.Println(f.Label, f.Daughter1.Mass())
//	}
//
// # Thread Safety
//
// Every function is a pure computation over its inputs with no shared
// state; independent decays may run concurrently without coordination.
package kinematics
