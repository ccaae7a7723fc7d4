// Package check provides system diagnostics (--check mode) and pre-pipeline
// dependency validation (CheckDeps) for ffmpeg, its xfade filter, and the
// libx264 encoder.
package check

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/backmassage/slidemux/internal/config"
)

// Sentinel errors returned by CheckDeps when a required tool is missing.
var (
	ErrFfmpegNotFound = errors.New("ffmpeg not found on PATH")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the --check flow: reports the ffmpeg version and whether
// the xfade filter and libx264 encoder are available. It runs every probe
// and returns false if any required piece is missing.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	if !checkFfmpeg(cfg.FFmpegBin, log) {
		return false
	}
	ok := checkListed(cfg.FFmpegBin, log, "-filters", "xfade", "xfade filter")
	ok = checkListed(cfg.FFmpegBin, log, "-encoders", "libx264", "libx264 encoder") && ok
	return ok
}

// checkFfmpeg verifies ffmpeg is resolvable and logs its version string.
func checkFfmpeg(bin string, log Logger) bool {
	if _, err := exec.LookPath(bin); err != nil {
		log.Error("ffmpeg not found: %s", bin)
		return false
	}
	out, err := exec.Command(bin, "-hide_banner", "-version").Output()
	if err != nil {
		log.Warn("ffmpeg found but -version failed: %v", err)
		return false
	}
	log.Success("ffmpeg: %s", firstLine(string(out)))
	return true
}

// checkListed runs `ffmpeg -hide_banner <listFlag>` and looks for name as a
// whole word in the listing.
func checkListed(bin string, log Logger, listFlag, name, label string) bool {
	out, err := exec.Command(bin, "-hide_banner", listFlag).Output()
	if err != nil {
		log.Warn("Could not list %s: %v", strings.TrimPrefix(listFlag, "-"), err)
		return false
	}
	if ListsName(string(out), name) {
		log.Success("%s available", label)
		return true
	}
	log.Error("%s missing (ffmpeg too old or built without it)", label)
	return false
}

// ListsName reports whether an ffmpeg -filters / -encoders listing contains
// an entry called name. Entries are the second whitespace-separated field.
func ListsName(listing, name string) bool {
	for _, line := range strings.Split(listing, "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[1] == name {
			return true
		}
	}
	return false
}

// CheckDeps is the pre-pipeline validation: it verifies that the configured
// ffmpeg binary is resolvable. Returns a sentinel-wrapped error on failure.
func CheckDeps(cfg *config.Config) error {
	if _, err := exec.LookPath(cfg.FFmpegBin); err != nil {
		return fmt.Errorf("%w: %s", ErrFfmpegNotFound, cfg.FFmpegBin)
	}
	return nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, "\n"); idx > 0 {
		s = s[:idx]
	}
	return s
}
