package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

const programName = "go-life"

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout, os.Stderr))
}

// realMain runs the program and returns its exit status. An interrupt is a normal exit.
func realMain(args []string, stdout, stderr io.Writer) int {
	config, err := utils.ParseArgs(programName, args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: config.LogLevel}))
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		return 2
	}
	logger.Debug("starting", "args", args)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, err := initializeGame(config, stdout, logger)
	if err != nil {
		logger.Error("failed to initialize game", "error", err)
		return 1
	}

	switch err = g.run(ctx); {
	case err == nil:
		g.reportSummary(false)
	case errors.Is(err, context.Canceled):
		g.reportSummary(true)
	default:
		logger.Error("simulation failed", "error", err)
		return 1
	}
	return 0
}
