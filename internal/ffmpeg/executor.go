package ffmpeg

import (
	"context"
	"io"
	"os/exec"

	"github.com/kballard/go-shellquote"
)

// stderrTailLimit bounds how much ffmpeg stderr is kept for diagnostics.
const stderrTailLimit = 64 << 10

// ExecOptions selects where ffmpeg's output is forwarded. Nil writers
// discard the stream.
type ExecOptions struct {
	Stdout io.Writer
	Stderr io.Writer
}

// ExecResult holds the outcome of a single ffmpeg invocation.
type ExecResult struct {
	ExitCode int
	Stderr   string // Tail of ffmpeg's stderr.
	Err      error
}

// Execute runs args (binary at index 0) and waits for it to exit. stderr is
// tee'd to opts.Stderr in real time and its tail captured for the caller.
// Cancelling ctx kills the child process.
func Execute(ctx context.Context, args []string, opts ExecOptions) ExecResult {
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	tail := &tailBuffer{limit: stderrTailLimit}
	cmd.Stdout = opts.Stdout
	if opts.Stderr != nil {
		cmd.Stderr = io.MultiWriter(tail, opts.Stderr)
	} else {
		cmd.Stderr = tail
	}

	err := cmd.Run()
	return ExecResult{
		ExitCode: ExitCode(err),
		Stderr:   tail.String(),
		Err:      err,
	}
}

// tailBuffer keeps the last limit bytes written to it.
type tailBuffer struct {
	limit int
	buf   []byte
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.limit; over > 0 {
		t.buf = t.buf[over:]
	}
	return len(p), nil
}

func (t *tailBuffer) String() string { return string(t.buf) }

// FormatCommand renders args as a copy-pasteable shell command line.
func FormatCommand(args []string) string {
	return shellquote.Join(args...)
}
