// Package storage persists computed decays under a data directory, one
// subdirectory per run: metadata.json holds the inputs and derived
// factors, frames.csv holds one row per particle per frame.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/decaykin/internal/kinematics"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Timestamp time.Time `json:"timestamp"`
	M0        float64   `json:"m0"`
	P0        float64   `json:"p0"`
	M1        float64   `json:"m1"`
	M2        float64   `json:"m2"`
	Beta      float64   `json:"beta"`
	Gamma     float64   `json:"gamma"`
	Frames    int       `json:"frames"`
}

// particle row order within a frame, fixed for load round-trips.
var particleNames = [3]string{"mother", "daughter1", "daughter2"}

// Save writes one computed decay and returns its run ID.
func (s *Store) Save(label string, m0, p0, m1, m2 float64, frames []kinematics.Frame) (string, error) {
	runID := uuid.New().String()[:8]
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	beta, gamma := 0.0, 1.0
	if p0 > 0 {
		var err error
		if beta, err = kinematics.Beta(m0, p0); err != nil {
			return "", err
		}
		if gamma, err = kinematics.Gamma(beta); err != nil {
			return "", err
		}
	}

	meta := RunMetadata{
		ID:        runID,
		Label:     label,
		Timestamp: time.Now(),
		M0:        m0,
		P0:        p0,
		M1:        m1,
		M2:        m2,
		Beta:      beta,
		Gamma:     gamma,
		Frames:    len(frames),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "frames.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"frame", "particle", "e", "px", "py", "pz"}); err != nil {
		return "", err
	}
	for _, f := range frames {
		for i, p := range [3]kinematics.FourMomentum{f.Mother, f.Daughter1, f.Daughter2} {
			row := []string{
				f.Label,
				particleNames[i],
				strconv.FormatFloat(p.E, 'g', -1, 64),
				strconv.FormatFloat(p.Px, 'g', -1, 64),
				strconv.FormatFloat(p.Py, 'g', -1, 64),
				strconv.FormatFloat(p.Pz, 'g', -1, 64),
			}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadFrames reconstructs the saved frames from frames.csv.
func (s *Store) LoadFrames(runID string) ([]kinematics.Frame, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "frames.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("storage: empty frames file for run %s", runID)
	}

	frames := make([]kinematics.Frame, 0)
	for _, rec := range records[1:] {
		if len(rec) != 6 {
			return nil, fmt.Errorf("storage: malformed row in run %s", runID)
		}
		var vals [4]float64
		for i := range vals {
			v, err := strconv.ParseFloat(rec[2+i], 64)
			if err != nil {
				return nil, fmt.Errorf("storage: run %s: %w", runID, err)
			}
			vals[i] = v
		}
		p := kinematics.FourMomentum{E: vals[0], Px: vals[1], Py: vals[2], Pz: vals[3]}

		if len(frames) == 0 || frames[len(frames)-1].Label != rec[0] {
			frames = append(frames, kinematics.Frame{Label: rec[0]})
		}
		f := &frames[len(frames)-1]
		switch rec[1] {
		case "mother":
			f.Mother = p
		case "daughter1":
			f.Daughter1 = p
		case "daughter2":
			f.Daughter2 = p
		default:
			return nil, fmt.Errorf("storage: unknown particle %q in run %s", rec[1], runID)
		}
	}
	return frames, nil
}
