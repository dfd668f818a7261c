package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jar0582/procsched/internal/app"
	"github.com/jar0582/procsched/internal/cli"
	"github.com/jar0582/procsched/internal/loader"
	"github.com/jar0582/procsched/internal/sched"
)

// main is the entrypoint for procsched.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run holds the program logic so it can be tested without exiting.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	inv, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	err = app.New(outW, logW, inv.Config).Run(ctx, inv.Source)
	if errors.Is(err, sched.ErrInvalidInput) ||
		errors.Is(err, loader.ErrInvalidFile) ||
		errors.Is(err, loader.ErrUnsupportedFormat) {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}
	return err
}
