package config

// This file implements CLI flag parsing and help text.
// Every slideshow option is registered twice: the underscore spelling used by
// the original script (--slide_duration) and a dashed alias (--slide-duration).
// Flags the user sets explicitly always win over values from --config.

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// ParseFlags parses args (without the program name) into cfg. On --help or
// --version it prints and exits. On error it returns non-nil (e.g. unknown
// flag, missing positional arg, unreadable --config file).
func ParseFlags(cfg *Config, args []string, version string) error {
	fs := flag.NewFlagSet("slidemux", flag.ContinueOnError)
	fs.Usage = func() { printUsage(version) }

	var u utilityFlags

	defineSlideshowFlags(fs, cfg)
	defineBehaviorFlags(fs, cfg, &u)
	defineDisplayFlags(fs, cfg, &u)
	defineUtilityFlags(fs, cfg, &u)

	positional, err := parseInterspersed(fs, args)
	if err != nil {
		return err
	}

	applyUtilityFlags(cfg, &u)

	if u.showHelp {
		printUsage(version)
		os.Exit(0)
	}
	if u.showVersion {
		fmt.Fprintln(os.Stdout, "slidemux v"+version)
		os.Exit(0)
	}

	if cfg.ConfigFile != "" {
		settings, err := LoadFile(cfg.ConfigFile)
		if err != nil {
			return err
		}
		settings.Apply(cfg, explicitFlags(fs))
	}

	return parsePositionalArgs(positional, cfg)
}

// parseInterspersed parses flags on either side of positional args, so
// "slidemux photos --slide_duration 5" works like "slidemux --slide_duration 5 photos".
// Everything after a "--" terminator is positional.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		// Parse stops either at a non-flag token or after consuming "--".
		if len(rest) < len(args) && args[len(args)-len(rest)-1] == "--" {
			return append(positional, rest...), nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

// utilityFlags holds boolean flags that are applied after Parse or trigger exit.
type utilityFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineSlideshowFlags registers the slideshow options of the original script.
func defineSlideshowFlags(fs *flag.FlagSet, cfg *Config) {
	for _, name := range []string{"slide_duration", "slide-duration"} {
		fs.IntVar(&cfg.SlideDuration, name, cfg.SlideDuration, "Duration of each slide in seconds")
	}
	for _, name := range []string{"transition_duration", "transition-duration"} {
		fs.IntVar(&cfg.TransitionDuration, name, cfg.TransitionDuration, "Duration of each transition in seconds")
	}
	for _, name := range []string{"resolution", "r"} {
		fs.StringVar(&cfg.ResolutionSpec, name, cfg.ResolutionSpec, "Output resolution, e.g. 1920x1080")
	}
	for _, name := range []string{"framerate", "frame-rate"} {
		fs.IntVar(&cfg.FrameRate, name, cfg.FrameRate, "Frame rate of the output video")
	}
	for _, name := range []string{"output_file", "output-file", "o"} {
		fs.StringVar(&cfg.OutputFile, name, cfg.OutputFile, "Name of the output video file")
	}
	for _, name := range []string{"encoding_preset", "encoding-preset", "p"} {
		fs.StringVar(&cfg.EncodingPreset, name, cfg.EncodingPreset, "x264 encoding preset (ultrafast, fast, medium, slow)")
	}
	for _, name := range []string{"transition_effect", "transition-effect"} {
		fs.StringVar(&cfg.TransitionEffect, name, cfg.TransitionEffect, "xfade transition effect (fade, wipeleft, …)")
	}
}

// defineBehaviorFlags registers --dry-run, --ffmpeg and --config.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config, _ *utilityFlags) {
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Print the ffmpeg command without running it")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
	fs.StringVar(&cfg.FFmpegBin, "ffmpeg", cfg.FFmpegBin, "ffmpeg binary name or path")
	fs.StringVar(&cfg.ConfigFile, "config", "", "Load slideshow settings from an HCL file")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, u *utilityFlags) {
	fs.BoolVar(&u.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&u.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run system diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, _ *Config, u *utilityFlags) {
	fs.BoolVar(&u.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&u.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&u.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&u.showHelp, "h", false, "Same as --help")
}

// applyUtilityFlags resolves --color / --no-color into cfg.ColorMode.
func applyUtilityFlags(cfg *Config, u *utilityFlags) {
	if u.noColor {
		cfg.ColorMode = ColorNever
	} else if u.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// explicitFlags returns the canonical setting names the user passed on the
// command line, so file settings never clobber them.
func explicitFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[canonicalName(f.Name)] = true
	})
	return set
}

// canonicalName maps every alias of a slideshow flag to its underscore name.
func canonicalName(name string) string {
	switch name {
	case "r":
		return "resolution"
	case "o":
		return "output_file"
	case "p":
		return "encoding_preset"
	case "frame-rate":
		return "framerate"
	}
	return strings.ReplaceAll(name, "-", "_")
}

// parsePositionalArgs sets InputDir from the single positional arg when not in CheckOnly mode.
func parsePositionalArgs(args []string, cfg *Config) error {
	if cfg.CheckOnly {
		return nil
	}
	if len(args) != 1 {
		return ErrNoInputDir
	}
	cfg.InputDir = NormalizeDirArg(args[0])
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(version string) {
	const col1 = 34
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "slidemux v" + version + " - image/clip slideshow builder for ffmpeg"},
		{"", ""},
		{"  slidemux [OPTIONS] <directory>", ""},
		{"", ""},
		{"Slideshow", ""},
		{"  --slide_duration <sec>", "Duration of each slide (default: 3)"},
		{"  --transition_duration <sec>", "Duration of each transition, 0 for hard cuts (default: 1)"},
		{"  -r, --resolution <WxH>", "Output resolution (default: 1280x720)"},
		{"  --framerate <fps>", "Output frame rate (default: 30)"},
		{"  -o, --output_file <path>", "Output video file (default: slideshow.mp4)"},
		{"  -p, --encoding_preset <name>", "x264 preset (default: fast)"},
		{"  --transition_effect <name>", "xfade effect (default: fade)"},
		{"", ""},
		{"Behavior", ""},
		{"  -d, --dry-run", "Print the ffmpeg command without running it"},
		{"  --ffmpeg <path>", "ffmpeg binary (default: ffmpeg on PATH)"},
		{"  --config <file.hcl>", "Load settings from an HCL file"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output (ffmpeg loglevel info)"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "System diagnostics (ffmpeg, xfade, libx264)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
		{"", ""},
		{"", "Dashed spellings (--slide-duration, --output-file, …) are accepted too."},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
