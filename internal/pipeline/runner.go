package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/backmassage/slidemux/internal/config"
	"github.com/backmassage/slidemux/internal/display"
	"github.com/backmassage/slidemux/internal/ffmpeg"
	"github.com/backmassage/slidemux/internal/filtergraph"
	"github.com/backmassage/slidemux/internal/logging"
	"github.com/backmassage/slidemux/internal/media"
)

// Run is the top-level entry point. cfg must already be validated.
// ffmpeg's stdout and stderr are forwarded to the process's own.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) Result {
	return run(ctx, cfg, log, ffmpeg.ExecOptions{Stdout: os.Stdout, Stderr: os.Stderr})
}

func run(ctx context.Context, cfg *config.Config, log *logging.Logger, execOpts ffmpeg.ExecOptions) Result {
	var res Result

	// --- Scan ---
	files, err := media.Discover(cfg.InputDir)
	if err != nil {
		log.Error("Media discovery failed: %v", err)
		res.ExitCode = 1
		return res
	}
	if len(files) == 0 {
		log.Warn("No media files found in the specified directory.")
		return res
	}

	res.Found = len(files)
	res.Stills, res.Motions = media.Counts(files)
	log.Info("Found %d media files (%d stills, %d clips)", res.Found, res.Stills, res.Motions)
	for i, f := range files {
		log.Debug(cfg.Verbose, "  %3d. [%s] %s", i+1, f.Kind, filepath.Base(f.Path))
	}
	warnSettings(cfg, log)

	// --- Build ---
	graph, err := filtergraph.Build(files, filtergraph.OptionsFromConfig(cfg))
	if err != nil {
		log.Error("Cannot build filter graph: %v", err)
		res.ExitCode = 1
		return res
	}
	log.Debug(cfg.Verbose, "Filter graph: %s", graph.String())

	// --- Assemble ---
	res.Command = ffmpeg.Build(cfg, files, graph)
	total := ffmpeg.TotalDuration(len(files), cfg.SlideDuration, cfg.TransitionDuration)
	log.Info("Rendering %s slideshow at %s, %d fps -> %s",
		display.FormatSeconds(total), cfg.Resolution, cfg.FrameRate, cfg.OutputFile)

	if cfg.DryRun {
		log.Info("%s", ffmpeg.FormatCommand(res.Command))
		log.Success("[DRY] Would render %s", cfg.OutputFile)
		return res
	}
	log.Debug(cfg.Verbose, "Command: %s", ffmpeg.FormatCommand(res.Command))

	if dir := filepath.Dir(cfg.OutputFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Error("Cannot create output directory: %v", err)
			res.ExitCode = 1
			return res
		}
	}

	if ctx.Err() != nil {
		log.Warn("Interrupted")
		res.ExitCode = 1
		return res
	}

	// --- Invoke ---
	start := time.Now()
	out := ffmpeg.Execute(ctx, res.Command, execOpts)
	res.Invoked = true
	res.Elapsed = time.Since(start)
	res.ExitCode = out.ExitCode

	if out.Err != nil {
		if line := ffmpeg.LastLine(out.Stderr); line != "" {
			log.Error("ffmpeg failed (exit %d): %s", out.ExitCode, line)
		} else {
			log.Error("ffmpeg failed (exit %d): %v", out.ExitCode, out.Err)
		}
		return res
	}

	if fi, err := os.Stat(cfg.OutputFile); err == nil {
		res.OutputBytes = fi.Size()
	}
	log.Success("Rendered %s (%s) in %s",
		cfg.OutputFile, display.FormatBytes(res.OutputBytes), display.FormatElapsed(res.Elapsed))
	return res
}

// warnSettings flags settings that ffmpeg accepts but that probably do not
// do what the user meant.
func warnSettings(cfg *config.Config, log *logging.Logger) {
	if !filtergraph.SupportedTransition(cfg.TransitionEffect) {
		log.Warn("Unknown transition %q; ffmpeg will use its default (supported: %s)",
			cfg.TransitionEffect, strings.Join(filtergraph.Transitions(), ", "))
	}
	if cfg.TransitionOverlapsSlide() {
		log.Warn("Transition (%ds) is not shorter than a slide (%ds); transitions will start early",
			cfg.TransitionDuration, cfg.SlideDuration)
	}
}
