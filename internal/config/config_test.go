package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jar0582/procsched/internal/sched"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "procsched.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
quantum: 4
algorithms: [rr, srtf]
output:
  format: JSON
  chart_dir: charts
log:
  level: debug
server:
  addr: ":9095"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, int64(4), cfg.Quantum)
	assert.Equal(t, []string{"rr", "srtf"}, cfg.Algorithms)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "charts", cfg.ChartDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, ":9095", cfg.ServerAddr)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "quantum: 4\n")
	t.Setenv("PROCSCHED_QUANTUM", "7")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Quantum)
}

func TestLoad_EnvAlgorithmsCommaSeparated(t *testing.T) {
	path := writeConfig(t, "algorithms: [fcfs]\n")
	t.Setenv("PROCSCHED_ALGORITHMS", "srtf, rr,sjf")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"srtf", "rr", "sjf"}, cfg.Algorithms)
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Quantum = 0
	cfg.Algorithms = []string{"fcfs", "lottery"}
	cfg.Format = "xml"
	cfg.LogLevel = "trace"
	cfg.LogFormat = "logfmt"

	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.ErrorIs(t, err, sched.ErrUnknownAlgorithm)
	for _, msg := range []string{"quantum", "lottery", "xml", "trace", "logfmt"} {
		assert.Contains(t, err.Error(), msg)
	}
}

func TestSelectedAlgorithms(t *testing.T) {
	cfg := Default()
	cfg.Algorithms = nil
	algs, err := cfg.SelectedAlgorithms()
	require.NoError(t, err)
	assert.Equal(t, sched.Algorithms, algs)
}
