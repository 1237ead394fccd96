// Package report renders decay frames as fixed-width terminal tables.
// Rendering is pure: functions return strings and leave printing to the
// caller, so the kinematics output stays testable without capturing
// stdout.
package report

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/decaykin/internal/kinematics"
)

var headingStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("86"))

// Table renders one frame as a fixed-width table of mass, energy,
// momentum magnitude, and momentum components for the mother and both
// daughters. Masses are recomputed from the four-momenta; an off-shell
// vector surfaces as an error.
func Table(f kinematics.Frame) (string, error) {
	m0, err := f.Mother.Mass()
	if err != nil {
		return "", fmt.Errorf("mother: %w", err)
	}
	m1, err := f.Daughter1.Mass()
	if err != nil {
		return "", fmt.Errorf("daughter 1: %w", err)
	}
	m2, err := f.Daughter2.Mass()
	if err != nil {
		return "", fmt.Errorf("daughter 2: %w", err)
	}

	var b strings.Builder
	line := strings.Repeat("-", 45)
	row := func(label string, v0, v1, v2 float64) {
		fmt.Fprintf(&b, "| %-2s | %10.2f | %10.2f | %10.2f |\n", label, v0, v1, v2)
	}

	b.WriteString(line + "\n")
	fmt.Fprintf(&b, "|    | %10s | %10s | %10s |\n", "mother", "daughter 1", "daughter 2")
	b.WriteString("|" + strings.Repeat("-", 43) + "|\n")
	row("m", m0, m1, m2)
	row("e", f.Mother.E, f.Daughter1.E, f.Daughter2.E)
	row("p", f.Mother.PMag(), f.Daughter1.PMag(), f.Daughter2.PMag())
	b.WriteString("|" + strings.Repeat(" -", 21) + " |\n")
	row("px", f.Mother.Px, f.Daughter1.Px, f.Daughter2.Px)
	row("py", f.Mother.Py, f.Daughter1.Py, f.Daughter2.Py)
	row("pz", f.Mother.Pz, f.Daughter1.Pz, f.Daughter2.Pz)
	b.WriteString(line + "\n")

	return b.String(), nil
}

// Frames renders every frame with its heading, blank-line separated.
func Frames(frames []kinematics.Frame, styled bool) (string, error) {
	var b strings.Builder
	for i, f := range frames {
		if i > 0 {
			b.WriteString("\n")
		}
		if styled {
			b.WriteString(headingStyle.Render(f.Label) + "\n")
		} else {
			b.WriteString(f.Label + "\n")
		}
		table, err := Table(f)
		if err != nil {
			return "", fmt.Errorf("frame %q: %w", f.Label, err)
		}
		b.WriteString(table)
	}
	return b.String(), nil
}

// Summary renders one row per frame: daughter energies and momentum
// magnitudes across frames, tab-aligned.
func Summary(frames []kinematics.Frame) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FRAME\tE0\tE1\tE2\tP1\tP2")
	for _, f := range frames {
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n",
			f.Label,
			f.Mother.E,
			f.Daughter1.E,
			f.Daughter2.E,
			f.Daughter1.PMag(),
			f.Daughter2.PMag(),
		)
	}
	w.Flush()
	return b.String()
}
