package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLIProvider(t *testing.T) {
	t.Run("Should map known flags to nested paths", func(t *testing.T) {
		source := NewCLIProvider(map[string]any{
			"output-dir": "out",
			"log-json":   true,
			"unknown":    "ignored",
		})

		data, err := source.Load()

		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"report":  map[string]any{"dir": "out"},
			"runtime": map[string]any{"log_json": true},
		}, data)
		assert.Equal(t, SourceCLI, source.Type())
	})

	t.Run("Should return an empty map for nil flags", func(t *testing.T) {
		data, err := NewCLIProvider(nil).Load()

		require.NoError(t, err)
		assert.Empty(t, data)
	})
}

func TestSetNested(t *testing.T) {
	t.Run("Should report a path conflict", func(t *testing.T) {
		m := map[string]any{"report": "flat"}

		err := setNested(m, "report.dir", "x")

		assert.ErrorContains(t, err, "configuration conflict")
	})
}

func TestYAMLProvider(t *testing.T) {
	t.Run("Should return no values for a missing file", func(t *testing.T) {
		data, err := NewYAMLProvider(filepath.Join(t.TempDir(), "absent.yaml")).Load()

		require.NoError(t, err)
		assert.Empty(t, data)
	})

	t.Run("Should drop null values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "minmax.yaml")
		require.NoError(t, os.WriteFile(path, []byte("report:\n  dir: ~\n  indent: 2\nruntime: ~\n"), 0o644))

		data, err := NewYAMLProvider(path).Load()

		require.NoError(t, err)
		assert.Equal(t, map[string]any{"report": map[string]any{"indent": 2}}, data)
	})

	t.Run("Should fail on malformed YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "minmax.yaml")
		require.NoError(t, os.WriteFile(path, []byte("report: [unclosed\n"), 0o644))

		_, err := NewYAMLProvider(path).Load()

		assert.ErrorContains(t, err, "failed to parse YAML file")
	})
}

func TestLoadDotEnv(t *testing.T) {
	t.Run("Should ignore a missing file", func(t *testing.T) {
		assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
	})

	t.Run("Should export variables without overriding existing ones", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("MINMAX_REPORT_AUTHOR=Ana\nMINMAX_REPORT_DIR=dotenv\n"), 0o644))
		t.Setenv("MINMAX_REPORT_DIR", "process")
		t.Setenv("MINMAX_REPORT_AUTHOR", "")
		require.NoError(t, os.Unsetenv("MINMAX_REPORT_AUTHOR"))

		require.NoError(t, LoadDotEnv(path))

		assert.Equal(t, "Ana", os.Getenv("MINMAX_REPORT_AUTHOR"))
		assert.Equal(t, "process", os.Getenv("MINMAX_REPORT_DIR"))
	})
}

func TestEnvMappings(t *testing.T) {
	t.Run("Should derive variables from struct tags", func(t *testing.T) {
		m := GenerateEnvToConfigMap()

		assert.Equal(t, "report.dir", m["MINMAX_REPORT_DIR"])
		assert.Equal(t, "runtime.log_level", m["MINMAX_RUNTIME_LOG_LEVEL"])
		assert.Equal(t, "MINMAX_REPORT_INDENT", GetEnvVarForConfigPath("report.indent"))
		assert.Empty(t, GetEnvVarForConfigPath("report.missing"))
	})
}

func TestFromContext(t *testing.T) {
	t.Run("Should return the attached configuration", func(t *testing.T) {
		cfg := Default()
		cfg.Report.Dir = "elsewhere"

		got := FromContext(ContextWithConfig(t.Context(), cfg))

		assert.Same(t, cfg, got)
	})

	t.Run("Should fall back to defaults", func(t *testing.T) {
		assert.Equal(t, Default(), FromContext(t.Context()))
	})
}
