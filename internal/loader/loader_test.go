package loader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jar0582/procsched/internal/sched"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestReadCSV(t *testing.T) {
	procs, err := ReadCSV(strings.NewReader(`id,burst,arrival,priority
# the first two come from the assignment
1,5,0,2
2, 9, 3
P3,1,4,0
`))
	require.NoError(t, err)

	assert.Equal(t, []sched.Process{
		{ID: "1", Burst: 5, Arrival: 0, Priority: 2},
		{ID: "2", Burst: 9, Arrival: 3},
		{ID: "P3", Burst: 1, Arrival: 4, Priority: 0},
	}, procs)
}

func TestReadCSV_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"not a number", "1,2.5,0\n", `line 1: burst "2.5" is not an integer`},
		{"too few fields", "1,2,0\n2,3\n", "line 2: want 3 or 4 fields"},
		{"bad priority", "1,2,0,high\n", `priority "high" is not an integer`},
		{"bad quoting", "1,\"2,0\n", "reading CSV"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tc.src))
			require.ErrorIs(t, err, ErrInvalidFile)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestParseHCL(t *testing.T) {
	procs, err := ParseHCL([]byte(`
process "P1" {
  burst    = 2
  arrival  = 0
  priority = 1
}

process "P2" {
  burst = 6
  arrival = 1
}
`), "set.hcl")
	require.NoError(t, err)

	assert.Equal(t, []sched.Process{
		{ID: "P1", Burst: 2, Arrival: 0, Priority: 1},
		{ID: "P2", Burst: 6, Arrival: 1},
	}, procs)
}

func TestParseHCL_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"syntax", `process "P1" {`, "set.hcl"},
		{"missing burst", `process "P1" { arrival = 1 }`, `Missing required argument`},
		{"fraction", `process "P1" { burst = 2.5 }`, `process "P1": burst`},
		{"string", `process "P1" { burst = "2" }`, `process "P1": burst`},
		{"unknown attribute", "process \"P1\" {\n  burst = 2\n  weight = 3\n}\n", "Unsupported argument"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseHCL([]byte(tc.src), "set.hcl")
			require.ErrorIs(t, err, ErrInvalidFile)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	csvPath := writeFile(t, "set.csv", "1,2,0,1\n2,6,1,1\n")
	procs, err := Load(ctx, csvPath)
	require.NoError(t, err)
	assert.Len(t, procs, 2)

	hclPath := writeFile(t, "set.HCL", `process "A" { burst = 3 }`)
	procs, err = Load(ctx, hclPath)
	require.NoError(t, err)
	assert.Equal(t, []sched.Process{{ID: "A", Burst: 3}}, procs)

	_, err = Load(ctx, writeFile(t, "set.json", "{}"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(ctx, filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)

	bad := writeFile(t, "bad.csv", "1,x,0\n")
	_, err = Load(ctx, bad)
	require.ErrorIs(t, err, ErrInvalidFile)
	assert.Contains(t, err.Error(), bad)
}

func TestSample_IsValid(t *testing.T) {
	set, err := sched.NewProcessSet(Sample())
	require.NoError(t, err)
	assert.Equal(t, 6, set.Len())
}
