package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jar0582/procsched/internal/ctxlog"
	"github.com/jar0582/procsched/internal/sched"
)

var (
	// ErrInvalidFile is wrapped by every parse failure.
	ErrInvalidFile = errors.New("invalid process file")
	// ErrUnsupportedFormat is returned for unknown file extensions.
	ErrUnsupportedFormat = errors.New("unsupported process file format")
)

// Load reads the process file at path, choosing the format by extension.
func Load(ctx context.Context, path string) ([]sched.Process, error) {
	logger := ctxlog.FromContext(ctx).WithField("path", path)

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".csv" && ext != ".hcl" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening process file: %w", err)
	}

	var procs []sched.Process
	if ext == ".csv" {
		procs, err = ReadCSV(bytes.NewReader(src))
	} else {
		procs, err = ParseHCL(src, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.WithField("processes", len(procs)).Debug("Process file loaded.")
	return procs, nil
}

// Sample returns the six process workload used by -sample.
func Sample() []sched.Process {
	return []sched.Process{
		{ID: "P1", Burst: 2, Arrival: 0, Priority: 1},
		{ID: "P2", Burst: 6, Arrival: 1, Priority: 1},
		{ID: "P3", Burst: 6, Arrival: 2, Priority: 2},
		{ID: "P4", Burst: 7, Arrival: 2, Priority: 2},
		{ID: "P5", Burst: 4, Arrival: 3, Priority: 1},
		{ID: "P6", Burst: 4, Arrival: 4, Priority: 3},
	}
}
