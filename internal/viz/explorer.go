// Package viz provides an interactive terminal explorer for decay
// kinematics built on bubbletea.
package viz

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/decaykin/internal/kinematics"
	"github.com/san-kum/decaykin/internal/report"
	"github.com/san-kum/decaykin/internal/scan"
)

const sweepPoints = 40

var paramNames = []string{"m0", "p0", "m1", "m2"}

// Model holds the current decay parameters and the derived frames.
type Model struct {
	params   [4]float64 // m0, p0, m1, m2
	selected int
	frames   []kinematics.Frame
	sweep    []float64
	err      error
}

// NewModel builds the explorer around an initial parameter set.
func NewModel(m0, p0, m1, m2 float64) Model {
	m := Model{params: [4]float64{m0, p0, m1, m2}}
	m.recompute()
	return m
}

func (m *Model) recompute() {
	m.frames, m.err = kinematics.Decay(m.params[0], m.params[1], m.params[2], m.params[3])
	if m.err != nil {
		m.sweep = nil
		return
	}

	// Daughter lab energy across a p0 sweep up to twice the current
	// momentum (or the mother mass when at rest), for the graph panel.
	max := 2 * m.params[1]
	if max == 0 {
		max = m.params[0]
	}
	points, err := scan.Sweep(context.Background(), m.params[0], m.params[2], m.params[3], 0, max, sweepPoints)
	if err != nil {
		m.sweep = nil
		return
	}
	m.sweep = scan.Daughter1LabEnergy(points)
}

// step is the adjustment applied per keypress, proportional so small
// masses stay reachable.
func (m *Model) step() float64 {
	v := m.params[m.selected]
	if v < 1 {
		return 0.01
	}
	return v * 0.05
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down", "j":
			m.selected = (m.selected + 1) % len(paramNames)
		case "shift+tab", "up", "k":
			m.selected = (m.selected + len(paramNames) - 1) % len(paramNames)
		case "right", "l", "+":
			m.params[m.selected] += m.step()
			m.recompute()
		case "left", "h", "-":
			m.params[m.selected] -= m.step()
			if m.params[m.selected] < 0 {
				m.params[m.selected] = 0
			}
			m.recompute()
		case "r":
			m.params = [4]float64{91, 0, 0.1, 0.1}
			m.selected = 0
			m.recompute()
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("decaykin explorer") + "\n")

	for i, name := range paramNames {
		line := fmt.Sprintf("%s %s", labelStyle.Render(name), valueStyle.Render(fmt.Sprintf("%.4f", m.params[i])))
		if i == m.selected {
			line = activeParamStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()) + "\n")
	} else {
		out, err := report.Frames(m.frames, true)
		if err != nil {
			b.WriteString(errorStyle.Render(err.Error()) + "\n")
		} else {
			b.WriteString(out)
		}

		if len(m.sweep) > 0 {
			graph := asciigraph.Plot(m.sweep,
				asciigraph.Height(8),
				asciigraph.Width(60),
				asciigraph.Caption("daughter 1 lab energy vs p0"),
			)
			b.WriteString(graphStyle.Render(graph) + "\n")
		}
	}

	b.WriteString(helpStyle.Render("tab/j/k select  h/l adjust  r reset  q quit"))
	return b.String()
}

// Run starts the explorer and blocks until it exits.
func Run(m0, p0, m1, m2 float64) error {
	p := tea.NewProgram(NewModel(m0, p0, m1, m2))
	_, err := p.Run()
	return err
}
