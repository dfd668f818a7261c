package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/jar0582/procsched/internal/api"
	"github.com/jar0582/procsched/internal/chart"
	"github.com/jar0582/procsched/internal/config"
	"github.com/jar0582/procsched/internal/ctxlog"
	"github.com/jar0582/procsched/internal/loader"
	"github.com/jar0582/procsched/internal/report"
	"github.com/jar0582/procsched/internal/sched"
)

// ErrNoProcesses is returned when neither a process file nor the sample set
// was requested.
var ErrNoProcesses = errors.New("no process file given")

// Source says where the process set comes from.
type Source struct {
	Path   string
	Sample bool
}

// App runs one procsched invocation.
type App struct {
	outW   io.Writer
	logger *logrus.Entry
	cfg    config.Config
}

// New builds an App that writes reports to outW and logs to logW.
func New(outW, logW io.Writer, cfg config.Config) *App {
	logger := NewLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")
	return &App{outW: outW, logger: logger, cfg: cfg}
}

// Run serves HTTP when a server address is configured, otherwise it
// schedules the process set from src and writes the report.
func (a *App) Run(ctx context.Context, src Source) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	if a.cfg.ServerAddr != "" {
		return api.Serve(ctx, a.cfg.ServerAddr, api.NewHandler(a.cfg.Quantum, a.logger))
	}

	set, err := a.processSet(ctx, src)
	if err != nil {
		return err
	}
	algs, err := a.cfg.SelectedAlgorithms()
	if err != nil {
		return err
	}

	a.logger.WithFields(logrus.Fields{
		"processes":  set.Len(),
		"algorithms": len(algs),
		"quantum":    a.cfg.Quantum,
	}).Info("Scheduling process set.")

	results, err := sched.RunAll(ctx, set, a.cfg.Quantum, algs...)
	if err != nil {
		return fmt.Errorf("scheduling failed: %w", err)
	}

	if err := a.write(results); err != nil {
		return err
	}

	if a.cfg.ChartDir != "" {
		paths, err := chart.WriteGantts(a.cfg.ChartDir, "png", results...)
		if err != nil {
			return err
		}
		a.logger.WithField("charts", paths).Info("Gantt charts written.")
	}
	return nil
}

func (a *App) processSet(ctx context.Context, src Source) (sched.ProcessSet, error) {
	var (
		procs []sched.Process
		err   error
	)
	switch {
	case src.Path != "":
		procs, err = loader.Load(ctx, src.Path)
	case src.Sample:
		procs = loader.Sample()
	default:
		return sched.ProcessSet{}, ErrNoProcesses
	}
	if err != nil {
		return sched.ProcessSet{}, err
	}
	return sched.NewProcessSet(procs)
}

func (a *App) write(results []sched.Result) error {
	if a.cfg.Format == "json" {
		return report.WriteJSON(a.outW, results...)
	}
	report.WriteTable(a.outW, results...)
	return nil
}
