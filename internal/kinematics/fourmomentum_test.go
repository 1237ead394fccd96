package kinematics

import (
	"errors"
	"math"
	"testing"
)

func TestMassAtRest(t *testing.T) {
	for _, m0 := range []float64{0, 0.1, 1, 91, 125.3} {
		p := FourMomentum{E: m0}
		got, err := p.Mass()
		if err != nil {
			t.Fatalf("Mass of {e: %v}: %v", m0, err)
		}
		if got != m0 {
			t.Errorf("Mass of {e: %v} = %v, want exact", m0, got)
		}
	}
}

func TestMassMoving(t *testing.T) {
	// e = sqrt(m^2 + p^2) with m = 3, p = 4 gives e = 5.
	p := FourMomentum{E: 5, Px: 4}
	got, err := p.Mass()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-3) > 1e-12 {
		t.Errorf("Mass = %v, want 3", got)
	}
}

func TestMassClampsRoundoff(t *testing.T) {
	// Slightly negative m^2 from round-off must clamp to zero, not fail.
	p := FourMomentum{E: 1, Px: 1 + 1e-14}
	got, err := p.Mass()
	if err != nil {
		t.Fatalf("expected clamp, got error: %v", err)
	}
	if got != 0 {
		t.Errorf("Mass = %v, want 0", got)
	}
}

func TestMassOffShell(t *testing.T) {
	// Spacelike vector: m^2 = 1 - 4 = -3, far outside tolerance.
	p := FourMomentum{E: 1, Px: 2}
	if _, err := p.Mass(); !errors.Is(err, ErrOffShell) {
		t.Fatalf("error = %v, want ErrOffShell", err)
	}
}

func TestPMag(t *testing.T) {
	p := FourMomentum{E: 10, Px: 1, Py: 2, Pz: 2}
	if got := p.PMag(); math.Abs(got-3) > 1e-12 {
		t.Errorf("PMag = %v, want 3", got)
	}
}

func TestIsValid(t *testing.T) {
	if !(FourMomentum{E: 1}).IsValid() {
		t.Error("finite vector reported invalid")
	}
	if (FourMomentum{E: math.NaN()}).IsValid() {
		t.Error("NaN energy reported valid")
	}
	if (FourMomentum{Pz: math.Inf(1)}).IsValid() {
		t.Error("infinite pz reported valid")
	}
}
