// Command slidemux is the CLI entrypoint for the slideshow builder.
//
// It parses flags, validates configuration, and either runs system
// diagnostics (--check) or renders the slideshow with ffmpeg. The process
// exits with ffmpeg's own exit status.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/slidemux/internal/check"
	"github.com/backmassage/slidemux/internal/config"
	"github.com/backmassage/slidemux/internal/display"
	"github.com/backmassage/slidemux/internal/ffmpeg"
	"github.com/backmassage/slidemux/internal/logging"
	"github.com/backmassage/slidemux/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, os.Args[1:], version); err != nil {
		fmt.Fprintf(os.Stderr, "slidemux: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "slidemux: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "slidemux: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available; all output goes through log from here on.
	display.PrintBanner(os.Stdout)

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	log.Info("=== slidemux v%s (%s) ===", version, commit)
	log.Info("In:  %s", cfg.InputDir)
	log.Info("Out: %s", cfg.OutputFile)
	if cfg.DryRun {
		log.Warn("DRY RUN: ffmpeg will not be started")
	}

	if !cfg.DryRun {
		if err := check.CheckDeps(&cfg); err != nil {
			log.Error("%v", err)
			return ffmpeg.ExitNotFound
		}
	}

	// Phase 3: Signal handling. Cancelling the context kills ffmpeg so an
	// interrupted render does not keep running in the background.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Phase 4: discover → build → assemble → invoke.
	res := pipeline.Run(ctx, &cfg, log)
	if ctx.Err() != nil && res.Invoked {
		log.Warn("Interrupted")
	}
	return res.ExitCode
}
