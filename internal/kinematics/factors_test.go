package kinematics

import (
	"errors"
	"math"
	"testing"
)

func TestBeta(t *testing.T) {
	tests := []struct {
		name string
		m, p float64
		want float64
		err  error
	}{
		{"at rest", 91.0, 0.0, 0.0, nil},
		{"massless", 0.0, 10.0, 1.0, nil},
		{"equal mass and momentum", 1.0, 1.0, 1.0 / math.Sqrt2, nil},
		{"undefined", 0.0, 0.0, 0, ErrUndefinedBeta},
		{"negative mass", -1.0, 1.0, 0, ErrInvalidMass},
		{"negative momentum", 1.0, -1.0, 0, ErrInvalidMomentum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Beta(tt.m, tt.p)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Beta(%v, %v) error = %v, want %v", tt.m, tt.p, err, tt.err)
			}
			if err == nil && math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Beta(%v, %v) = %v, want %v", tt.m, tt.p, got, tt.want)
			}
		})
	}
}

func TestGamma(t *testing.T) {
	tests := []struct {
		name string
		beta float64
		want float64
		err  error
	}{
		{"no boost", 0.0, 1.0, nil},
		{"half light speed", 0.5, 1 / math.Sqrt(0.75), nil},
		{"negative beta", -0.5, 1 / math.Sqrt(0.75), nil},
		{"light speed", 1.0, 0, ErrInvalidBeta},
		{"superluminal", 1.5, 0, ErrInvalidBeta},
		{"negative light speed", -1.0, 0, ErrInvalidBeta},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Gamma(tt.beta)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Gamma(%v) error = %v, want %v", tt.beta, err, tt.err)
			}
			if err == nil && math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Gamma(%v) = %v, want %v", tt.beta, got, tt.want)
			}
			if err == nil && got < 1 {
				t.Errorf("Gamma(%v) = %v, want >= 1", tt.beta, got)
			}
		})
	}
}
