package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ridgeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "distance", cfg.Solve.TieBreak)
	assert.False(t, cfg.Solve.ReturnPath)
	assert.Equal(t, 0, cfg.Solve.MaxExtractions)
	assert.Equal(t, 4, cfg.Solve.Workers)

	opts, err := cfg.ClimbOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 1)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
log:
  level: debug
  format: json
solve:
  tie_break: fifo
  path: true
  max_extractions: 1000
  workers: 2
`)
	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "fifo", cfg.Solve.TieBreak)
	assert.True(t, cfg.Solve.ReturnPath)
	assert.Equal(t, 1000, cfg.Solve.MaxExtractions)
	assert.Equal(t, 2, cfg.Solve.Workers)

	opts, err := cfg.ClimbOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 3)
}

// TestLoad_EnvOverridesFile: environment beats the file.
func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "solve:\n  workers: 2\n")
	t.Setenv("RIDGELINE_SOLVE_WORKERS", "8")
	t.Setenv("RIDGELINE_LOG_LEVEL", "warn")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Solve.Workers)
	assert.Equal(t, "warn", cfg.Log.Level)
}

// TestLoad_SetOverridesAll mirrors a bound command-line flag.
func TestLoad_SetOverridesAll(t *testing.T) {
	t.Setenv("RIDGELINE_SOLVE_TIE_BREAK", "distance")
	v := viper.New()
	v.Set(KeyTieBreak, "fifo")

	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, "fifo", cfg.Solve.TieBreak)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "explicit file must exist")

	cases := map[string]string{
		"TieBreak":       "solve:\n  tie_break: random\n",
		"Workers":        "solve:\n  workers: 0\n",
		"MaxExtractions": "solve:\n  max_extractions: -1\n",
		"LogFormat":      "log:\n  format: xml\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(viper.New(), writeFile(t, body))
			assert.Error(t, err)
		})
	}
}
