// Package config holds runtime configuration: defaults, CLI flag parsing,
// the optional HCL settings file, and validation. Defaults match the
// original slideshow script so existing invocations keep their output.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Sentinel validation errors.
var (
	ErrNoInputDir        = errors.New("need exactly one media directory")
	ErrBadResolution     = errors.New("resolution must be WIDTHxHEIGHT with positive integers")
	ErrBadSlideDuration  = errors.New("slide duration must be a positive number of seconds")
	ErrBadTransition     = errors.New("transition duration must be zero or a positive number of seconds")
	ErrBadFrameRate      = errors.New("frame rate must be positive")
	ErrEmptyOutput       = errors.New("output file must not be empty")
	ErrEmptyPreset       = errors.New("encoding preset must not be empty")
	ErrEmptyFFmpegBinary = errors.New("ffmpeg binary must not be empty")
)

// Resolution is an output frame size in pixels.
type Resolution struct {
	Width  int
	Height int
}

// String renders r in the WxH form accepted by [ParseResolution].
func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// ParseResolution parses "1280x720" (case-insensitive separator).
func ParseResolution(s string) (Resolution, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return Resolution{}, fmt.Errorf("%w (got %q)", ErrBadResolution, s)
	}
	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return Resolution{}, fmt.Errorf("%w (got %q)", ErrBadResolution, s)
	}
	height, err := strconv.Atoi(h)
	if err != nil || height <= 0 {
		return Resolution{}, fmt.Errorf("%w (got %q)", ErrBadResolution, s)
	}
	return Resolution{Width: width, Height: height}, nil
}

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then mutated by [ParseFlags] (and [LoadFile] when --config is given)
// before being passed by pointer to the packages that need it.
type Config struct {
	// Input directory (positional arg).
	InputDir string

	// Slideshow settings.
	SlideDuration      int        // Seconds each slide is shown. Default: 3.
	TransitionDuration int        // Seconds each cross-transition lasts. Default: 1.
	ResolutionSpec     string     // Raw --resolution value. Default: "1280x720".
	Resolution         Resolution // Derived from ResolutionSpec by Validate.
	FrameRate          int        // Default: 30.
	OutputFile         string     // Default: "slideshow.mp4".
	EncodingPreset     string     // x264 preset. Default: "fast".
	TransitionEffect   string     // xfade transition name. Default: "fade".

	// Fixed output encoding.
	VideoCodec string // Fixed: "libx264".
	PixFmt     string // Fixed: "yuv420p".

	// External tool.
	FFmpegBin string // Default: "ffmpeg" (resolved on PATH).

	// Behavior, display and logging.
	DryRun     bool
	Verbose    bool
	ColorMode  ColorMode // Default: "auto".
	LogFile    string    // Optional log file path.
	CheckOnly  bool      // Run --check diagnostics and exit.
	ConfigFile string    // Optional HCL settings file.
}

// DefaultConfig returns a Config carrying the original script's defaults.
func DefaultConfig() Config {
	return Config{
		SlideDuration:      3,
		TransitionDuration: 1,
		ResolutionSpec:     "1280x720",
		Resolution:         Resolution{Width: 1280, Height: 720},
		FrameRate:          30,
		OutputFile:         "slideshow.mp4",
		EncodingPreset:     "fast",
		TransitionEffect:   "fade",
		VideoCodec:         "libx264",
		PixFmt:             "yuv420p",
		FFmpegBin:          "ffmpeg",
		ColorMode:          ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks numeric ranges, parses the resolution into
// [Config.Resolution], and requires an input directory unless CheckOnly
// is set. Unknown transition names are accepted on purpose: ffmpeg falls
// back to its default transition for them.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}
	if strings.TrimSpace(c.FFmpegBin) == "" {
		return ErrEmptyFFmpegBinary
	}

	if c.CheckOnly {
		return nil
	}

	res, err := ParseResolution(c.ResolutionSpec)
	if err != nil {
		return err
	}
	c.Resolution = res

	if c.SlideDuration <= 0 {
		return ErrBadSlideDuration
	}
	if c.TransitionDuration < 0 {
		return ErrBadTransition
	}
	if c.FrameRate <= 0 {
		return ErrBadFrameRate
	}
	if strings.TrimSpace(c.OutputFile) == "" {
		return ErrEmptyOutput
	}
	if strings.TrimSpace(c.EncodingPreset) == "" {
		return ErrEmptyPreset
	}
	if c.InputDir == "" {
		return ErrNoInputDir
	}
	return nil
}

// TransitionOverlapsSlide reports whether a transition is at least as long
// as a slide, which pushes transition offsets to zero or below.
func (c *Config) TransitionOverlapsSlide() bool {
	return c.TransitionDuration >= c.SlideDuration
}
