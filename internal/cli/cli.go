// Package cli parses command-line arguments into a validated configuration
// and maps failures to exit codes.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/jar0582/procsched/internal/app"
	"github.com/jar0582/procsched/internal/config"
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Invocation is everything a run needs.
type Invocation struct {
	Config config.Config
	Source app.Source
}

// Parse processes command-line arguments. It returns the invocation, a
// boolean telling the caller to exit cleanly (help was printed), or an
// *ExitError.
func Parse(args []string, output io.Writer) (*Invocation, bool, error) {
	flagSet := flag.NewFlagSet("procsched", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
procsched - CPU scheduling simulator (FCFS, SJF, Priority, SRTF, Round-Robin).

Usage:
  procsched [options] [PROCESS_FILE]

Arguments:
  PROCESS_FILE
    A .csv file with "id,burst,arrival[,priority]" rows or a .hcl file
    with process blocks.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to a YAML config file (default ./procsched.yaml when present).")
	algorithmsFlag := flagSet.String("algorithms", "", "Comma separated algorithms: fcfs, sjf, priority, srtf, rr.")
	quantumFlag := flagSet.Int64("quantum", 0, "Round-Robin time quantum.")
	formatFlag := flagSet.String("format", "", "Report format. Options: 'table' or 'json'.")
	chartFlag := flagSet.String("chart-dir", "", "Write a Gantt chart PNG per algorithm into this directory.")
	serveFlag := flagSet.String("serve", "", "Serve the HTTP API on this address instead of printing a report.")
	sampleFlag := flagSet.Bool("sample", false, "Schedule the built-in six process sample set.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "only one process file may be given"}
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	// Flags given explicitly win over file and environment values.
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "algorithms":
			cfg.Algorithms = strings.Split(*algorithmsFlag, ",")
		case "quantum":
			cfg.Quantum = *quantumFlag
		case "format":
			cfg.Format = strings.ToLower(*formatFlag)
		case "chart-dir":
			cfg.ChartDir = *chartFlag
		case "serve":
			cfg.ServerAddr = *serveFlag
		case "log-level":
			cfg.LogLevel = strings.ToLower(*logLevelFlag)
		case "log-format":
			cfg.LogFormat = strings.ToLower(*logFormatFlag)
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	src := app.Source{Path: flagSet.Arg(0), Sample: *sampleFlag}
	if src.Path == "" && !src.Sample && cfg.ServerAddr == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	return &Invocation{Config: cfg, Source: src}, false, nil
}
