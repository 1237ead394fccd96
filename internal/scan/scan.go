// Package scan sweeps a decay parameter across a range of values.
// Every point is an independent, stateless computation, so points are
// evaluated concurrently.
package scan

import (
	"context"
	"fmt"
	"sync"

	"github.com/san-kum/decaykin/internal/kinematics"
)

// Point is the decay computed at one sweep value.
type Point struct {
	P0     float64
	Frames []kinematics.Frame
}

// LabFrame returns the frame in which the mother carries its lab
// momentum: the boost along daughter 1 when present, otherwise the
// rest frame (p0 = 0).
func (pt Point) LabFrame() kinematics.Frame {
	for _, f := range pt.Frames {
		if f.Label == kinematics.LabelBoostAlongD1 {
			return f
		}
	}
	return pt.Frames[0]
}

// Sweep computes the decay of (m0, m1, m2) at n evenly spaced mother
// momenta in [p0Min, p0Max]. Points come back ordered by p0.
func Sweep(ctx context.Context, m0, m1, m2, p0Min, p0Max float64, n int) ([]Point, error) {
	if n < 2 {
		return nil, fmt.Errorf("scan: need at least 2 points, got %d", n)
	}
	if p0Max < p0Min {
		return nil, fmt.Errorf("scan: p0 range inverted (%g > %g)", p0Min, p0Max)
	}

	points := make([]Point, n)
	errs := make([]error, n)
	step := (p0Max - p0Min) / float64(n-1)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}

			p0 := p0Min + float64(idx)*step
			frames, err := kinematics.Decay(m0, p0, m1, m2)
			if err != nil {
				errs[idx] = fmt.Errorf("p0 = %g: %w", p0, err)
				return
			}
			points[idx] = Point{P0: p0, Frames: frames}
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return points, nil
}

// Daughter1LabEnergy extracts daughter 1's lab-frame energy per point,
// ready for plotting against p0.
func Daughter1LabEnergy(points []Point) []float64 {
	out := make([]float64, len(points))
	for i, pt := range points {
		out[i] = pt.LabFrame().Daughter1.E
	}
	return out
}

// MotherLabMomentum extracts the mother's reconstructed lab momentum
// magnitude per point.
func MotherLabMomentum(points []Point) []float64 {
	out := make([]float64, len(points))
	for i, pt := range points {
		out[i] = pt.LabFrame().Mother.PMag()
	}
	return out
}
