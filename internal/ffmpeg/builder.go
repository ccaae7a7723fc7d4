package ffmpeg

import (
	"strconv"

	"github.com/backmassage/slidemux/internal/config"
	"github.com/backmassage/slidemux/internal/filtergraph"
	"github.com/backmassage/slidemux/internal/media"
)

// Build constructs the complete ffmpeg argument slice, including the binary
// name at index 0. files and graph must come from the same ordered list.
func Build(cfg *config.Config, files []media.File, graph filtergraph.Graph) []string {
	args := make([]string, 0, 24+8*len(files))

	// --- Preamble ---
	args = append(args, cfg.FFmpegBin, "-hide_banner", "-y")

	// Loglevel: info when verbose, otherwise errors plus the stats line.
	if cfg.Verbose {
		args = append(args, "-loglevel", "info")
	} else {
		args = append(args, "-loglevel", "error", "-stats")
	}

	// --- Inputs ---
	for _, f := range files {
		args = appendInput(args, cfg, f)
	}

	// --- Filter graph and mapping ---
	args = append(args,
		"-filter_complex", graph.String(),
		"-map", graph.Output,
		"-t", strconv.Itoa(TotalDuration(len(files), cfg.SlideDuration, cfg.TransitionDuration)),
	)

	// --- Output encoding ---
	args = append(args,
		"-c:v", cfg.VideoCodec,
		"-pix_fmt", cfg.PixFmt,
		"-preset", cfg.EncodingPreset,
	)

	// --- Output ---
	args = append(args, cfg.OutputFile)

	return args
}

// appendInput adds the input-selection flags for one file. Still images are
// looped as a single frame; clips are read as-is. Both are cut to the slide
// duration at the configured frame rate.
func appendInput(args []string, cfg *config.Config, f media.File) []string {
	if f.Kind == media.KindStill {
		args = append(args, "-loop", "1")
	}
	return append(args,
		"-t", strconv.Itoa(cfg.SlideDuration),
		"-framerate", strconv.Itoa(cfg.FrameRate),
		"-i", f.Path,
	)
}

// TotalDuration is the output length cap in seconds: every item contributes
// one slide plus one transition.
func TotalDuration(items, slideDuration, transitionDuration int) int {
	return items * (slideDuration + transitionDuration)
}
