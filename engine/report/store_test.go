package report

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nan() float64 { return math.NaN() }

func exampleReport(t *testing.T) *Report {
	t.Helper()
	r, err := NewBuilder(WithClock(fixedClock)).Build([]float64{50.0, 150.0, 300.0})
	require.NoError(t, err)
	return r
}

func TestStore_Save(t *testing.T) {
	t.Run("Should create the directory and write the report", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		store := NewStore(fs)

		path, err := store.Save(t.Context(), exampleReport(t), "out/reports")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join("out/reports", DefaultFileName), path)
		isDir, err := afero.IsDir(fs, "out/reports")
		require.NoError(t, err)
		assert.True(t, isDir)
		data, err := afero.ReadFile(fs, path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "{\n    \"meta\": {\n        \"fecha_generacion\""))
	})

	t.Run("Should default to the data directory", func(t *testing.T) {
		fs := afero.NewMemMapFs()

		path, err := NewStore(fs).Save(t.Context(), exampleReport(t), "")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join("data", "reporte_normalizacion.json"), path)
	})

	t.Run("Should overwrite an existing report and leave no temp files", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		store := NewStore(fs)
		require.NoError(t, afero.WriteFile(fs, filepath.Join("data", DefaultFileName), []byte("stale"), 0o644))

		path, err := store.Save(t.Context(), exampleReport(t), "data")

		require.NoError(t, err)
		data, err := afero.ReadFile(fs, path)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "stale")
		entries, err := afero.ReadDir(fs, "data")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, DefaultFileName, entries[0].Name())
	})

	t.Run("Should honor file name and indent options", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		store := NewStore(fs, WithFileName("weights.json"), WithIndent(2))

		path, err := store.Save(t.Context(), exampleReport(t), "data")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join("data", "weights.json"), path)
		data, err := afero.ReadFile(fs, path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "{\n  \"meta\""))
	})

	t.Run("Should reject a nil report", func(t *testing.T) {
		_, err := NewStore(afero.NewMemMapFs()).Save(t.Context(), nil, "data")

		assert.ErrorContains(t, err, "report cannot be nil")
	})

	t.Run("Should wrap filesystem errors", func(t *testing.T) {
		fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

		_, err := NewStore(fs).Save(t.Context(), exampleReport(t), "data")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create report directory")
		assert.NotNil(t, errors.Unwrap(err))
	})

	t.Run("Should write to the real filesystem", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "data")

		path, err := NewStore(nil).Save(t.Context(), exampleReport(t), dir)

		require.NoError(t, err)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.False(t, info.IsDir())
		assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
	})
}

func TestStore_Load(t *testing.T) {
	t.Run("Should read back a saved report", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		store := NewStore(fs)
		original := exampleReport(t)
		path, err := store.Save(t.Context(), original, "data")
		require.NoError(t, err)

		loaded, err := store.Load(t.Context(), path)

		require.NoError(t, err)
		assert.Equal(t, original, loaded)
	})

	t.Run("Should fail on a missing file", func(t *testing.T) {
		_, err := NewStore(afero.NewMemMapFs()).Load(t.Context(), "data/missing.json")

		assert.ErrorContains(t, err, "failed to read report")
	})

	t.Run("Should fail on malformed content", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "bad.json", []byte("{"), 0o644))

		_, err := NewStore(fs).Load(t.Context(), "bad.json")

		assert.ErrorContains(t, err, "failed to decode report")
	})
}
