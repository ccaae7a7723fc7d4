package ffmpeg

import (
	"errors"
	"io/fs"
	"os/exec"
	"strings"
)

// Exit codes used when ffmpeg never produced one of its own.
const (
	ExitNotFound = 127 // Binary missing, as reported by POSIX shells.
	ExitFailure  = 1   // Start failure or termination by signal.
)

// ExitCode maps an error from running ffmpeg to a process exit status.
// A nil error is 0, an *exec.ExitError carries ffmpeg's own status, and a
// missing binary is [ExitNotFound].
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code > 0 {
			return code
		}
		return ExitFailure
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return ExitNotFound
	}
	return ExitFailure
}

// LastLine returns the last non-empty line of ffmpeg's stderr, which is
// where it reports the fatal error.
func LastLine(stderr string) string {
	lines := strings.Split(strings.ReplaceAll(stderr, "\r", "\n"), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if s := strings.TrimSpace(lines[i]); s != "" {
			return s
		}
	}
	return ""
}
