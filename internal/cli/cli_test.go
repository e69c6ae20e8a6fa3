package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/partbench/internal/capacity"
	"github.com/specialistvlad/partbench/internal/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_DeriveMode(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{
		"-vertices", "15",
		"-resources", "2",
		"-partitions", "3",
		"-ratios", "0.5,0.3,0.2",
		"-util-rates", "0.8, 0.7, 0.6",
		"-edge-weight", "1,5",
		"-seed", "42",
		"-output", "bench.txt",
	}, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, 15, cfg.NumVertices)
	assert.Equal(t, 2, cfg.NumResources)
	assert.Equal(t, 3, cfg.Partitions)
	assert.Equal(t, []float64{0.5, 0.3, 0.2}, cfg.Ratios)
	assert.Equal(t, []float64{0.8, 0.7, 0.6}, cfg.UtilRates)
	assert.Equal(t, resource.Range{Min: 1, Max: 5}, cfg.EdgeWeight)
	assert.Equal(t, resource.Range{Min: 1, Max: 10}, cfg.VertexWeight, "default kept")
	assert.Equal(t, 10, cfg.MaxEdgesPerVertex, "default kept")
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "bench.txt", cfg.OutputPath)
	assert.Equal(t, capacity.ModeDerive, cfg.Mode())
}

func TestParse_ValidateMode(t *testing.T) {
	cfg, _, err := Parse([]string{
		"-vertices", "5",
		"-resources", "1",
		"-partitions", "2",
		"-capacities", "5,5,4,3",
	}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, capacity.ModeValidate, cfg.Mode())
	assert.Equal(t, []int{5, 5, 4, 3}, cfg.Capacities)
}

func TestParse_ConfigurationErrors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{"ratio sum", []string{"-vertices", "5", "-partitions", "2", "-ratios", "0.5,0.4", "-util-rates", "0.8"}},
		{"zero rate", []string{"-vertices", "5", "-partitions", "1", "-ratios", "1", "-util-rates", "0"}},
		{"rate count", []string{"-vertices", "5", "-resources", "1", "-partitions", "1", "-ratios", "1", "-util-rates", "0.8"}},
		{"capacity count", []string{"-vertices", "5", "-resources", "1", "-partitions", "2", "-capacities", "1,2,3"}},
		{"no mode", []string{"-vertices", "5", "-partitions", "2"}},
		{"bad range", []string{"-vertices", "5", "-partitions", "1", "-ratios", "1", "-util-rates", "1", "-edge-weight", "1"}},
		{"bad list", []string{"-vertices", "5", "-partitions", "1", "-ratios", "a", "-util-rates", "1"}},
		{"bad log level", []string{"-vertices", "5", "-partitions", "1", "-ratios", "1", "-util-rates", "1", "-log-level", "loud"}},
		{"bad log format", []string{"-vertices", "5", "-partitions", "1", "-ratios", "1", "-util-rates", "1", "-log-format", "xml"}},
		{"missing profile", []string{"-profile", "/does/not/exist.hcl"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, shouldExit, err := Parse(tc.args, &bytes.Buffer{})
			require.Error(t, err)
			assert.False(t, shouldExit)
			assert.Nil(t, cfg)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}

func TestParse_HelpAndNoArgs(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{"-h"}, out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")

	out.Reset()
	_, shouldExit, err = Parse(nil, out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Contains(t, out.String(), "partbench [options] [PROFILE]")
}

func TestParse_FlagsOverrideProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "p.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
graph {
  vertices  = 30
  resources = 1
}
partitions {
  count      = 2
  ratios     = [0.5, 0.5]
  util_rates = [0.9, 0.9]
}
output {
  seed = 3
}
`), 0o644))

	cfg, _, err := Parse([]string{"-vertices", "12", path}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.NumVertices, "explicit flag wins")
	assert.Equal(t, 1, cfg.NumResources, "profile value kept")
	assert.Equal(t, 2, cfg.Partitions)
	assert.Equal(t, uint64(3), cfg.Seed)

	cfg, _, err = Parse([]string{"-profile", path}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.NumVertices)

	cfg, _, err = Parse([]string{"-capacities", "5,5,4,3", path}, &bytes.Buffer{})
	require.NoError(t, err, "capacities flag replaces profile ratios")
	assert.Equal(t, capacity.ModeValidate, cfg.Mode())
	assert.Equal(t, []int{5, 5, 4, 3}, cfg.Capacities)
	assert.Nil(t, cfg.Ratios)
	assert.Nil(t, cfg.UtilRates)

	_, _, err = Parse([]string{"-capacities", "5,5,4,3", "-ratios", "0.5,0.5", path}, &bytes.Buffer{})
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr, "both modes on the command line still conflict")
	assert.Equal(t, 2, exitErr.Code)
}

func TestParse_RatioFlagsOverrideProfileCapacities(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "p.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
graph {
  vertices  = 20
  resources = 1
}
partitions {
  count      = 2
  capacities = [[5, 5], [4, 3]]
}
`), 0o644))

	cfg, _, err := Parse([]string{"-profile", path}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, capacity.ModeValidate, cfg.Mode())

	cfg, _, err = Parse([]string{"-ratios", "0.5,0.5", "-util-rates", "0.8,0.8", path}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, capacity.ModeDerive, cfg.Mode())
	assert.Nil(t, cfg.Capacities)
	assert.Equal(t, []float64{0.5, 0.5}, cfg.Ratios)
	assert.Equal(t, []float64{0.8, 0.8}, cfg.UtilRates)
}
