package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/decaykin/internal/kinematics"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(t.TempDir())
	require.NoError(t, s.Init())
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	frames, err := kinematics.Decay(10, 5, 1, 1)
	require.NoError(t, err)

	runID, err := s.Save("test decay", 10, 5, 1, 1, frames)
	require.NoError(t, err)
	require.NotEmpty(t, runID)

	meta, err := s.Load(runID)
	require.NoError(t, err)
	assert.Equal(t, runID, meta.ID)
	assert.Equal(t, "test decay", meta.Label)
	assert.Equal(t, 10.0, meta.M0)
	assert.Equal(t, 5.0, meta.P0)
	assert.Equal(t, 4, meta.Frames)
	assert.Greater(t, meta.Beta, 0.0)
	assert.GreaterOrEqual(t, meta.Gamma, 1.0)

	loaded, err := s.LoadFrames(runID)
	require.NoError(t, err)
	require.Len(t, loaded, len(frames))
	for i := range frames {
		assert.Equal(t, frames[i].Label, loaded[i].Label)
		assert.Equal(t, frames[i].Mother, loaded[i].Mother)
		assert.Equal(t, frames[i].Daughter1, loaded[i].Daughter1)
		assert.Equal(t, frames[i].Daughter2, loaded[i].Daughter2)
	}
}

func TestSaveAtRest(t *testing.T) {
	s := newTestStore(t)

	frames, err := kinematics.Decay(91, 0, 0.1, 0.1)
	require.NoError(t, err)

	runID, err := s.Save("z at rest", 91, 0, 0.1, 0.1, frames)
	require.NoError(t, err)

	meta, err := s.Load(runID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, meta.Beta)
	assert.Equal(t, 1.0, meta.Gamma)
	assert.Equal(t, 1, meta.Frames)
}

func TestList(t *testing.T) {
	s := newTestStore(t)

	runs, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, runs)

	frames, err := kinematics.Decay(91, 0, 0.1, 0.1)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := s.Save("run", 91, 0, 0.1, 0.1, frames)
		require.NoError(t, err)
	}

	runs, err = s.List()
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestListMissingDir(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nope"))
	runs, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestLoadUnknownRun(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Load("missing")
	assert.Error(t, err)
}

func TestExportJSON(t *testing.T) {
	s := newTestStore(t)

	frames, err := kinematics.Decay(10, 5, 1, 1)
	require.NoError(t, err)

	runID, err := s.Save("export me", 10, 5, 1, 1, frames)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, s.ExportJSON(path, runID))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var out ExportData
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, runID, out.ID)
	assert.Equal(t, "export me", out.Label)
	require.Len(t, out.Frames, 4)
	assert.Equal(t, frames[0].Daughter1, out.Frames[0].Daughter1)
}
