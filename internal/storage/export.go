package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/decaykin/internal/kinematics"
)

type ExportData struct {
	ID     string             `json:"id"`
	Label  string             `json:"label"`
	M0     float64            `json:"m0"`
	P0     float64            `json:"p0"`
	M1     float64            `json:"m1"`
	M2     float64            `json:"m2"`
	Beta   float64            `json:"beta"`
	Gamma  float64            `json:"gamma"`
	Frames []kinematics.Frame `json:"frames"`
}

func exportData(meta *RunMetadata, frames []kinematics.Frame) ExportData {
	return ExportData{
		ID:     meta.ID,
		Label:  meta.Label,
		M0:     meta.M0,
		P0:     meta.P0,
		M1:     meta.M1,
		M2:     meta.M2,
		Beta:   meta.Beta,
		Gamma:  meta.Gamma,
		Frames: frames,
	}
}

func writeJSON(w io.Writer, data ExportData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportJSON writes a saved run as a single JSON document to path.
func (s *Store) ExportJSON(path, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	frames, err := s.LoadFrames(runID)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return writeJSON(file, exportData(meta, frames))
}

// ExportJSONStdout writes a saved run as JSON to stdout.
func (s *Store) ExportJSONStdout(runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	frames, err := s.LoadFrames(runID)
	if err != nil {
		return err
	}
	return writeJSON(os.Stdout, exportData(meta, frames))
}
