// Command summarize summarizes text from a flag, a .txt/.pdf file or stdin.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"github.com/yanqian/ai-summarizer/internal/bootstrap"
	"github.com/yanqian/ai-summarizer/internal/infra/config"
	"github.com/yanqian/ai-summarizer/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	fail := color.New(color.FgRed, color.Bold)
	cfg, err := config.Load()
	if err != nil {
		fail.Fprintf(stderr, "configuration error: %v\n", err)
		return 1
	}

	level := cfg.Log.Level
	if !opts.verbose {
		level = "warn"
	}
	log := logger.New(logger.Options{
		Level:      level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		Console:    stderr,
	}).With("component", "cli")

	core, err := bootstrap.NewCore(cfg, log)
	if err != nil {
		fail.Fprintf(stderr, "startup failed: %v\n", err)
		return 1
	}

	if err := execute(ctx, opts, core.Summarizer, core.Acquisition, stdin, stdout); err != nil {
		fail.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
