package pipeline

import "time"

// Result summarizes a single run.
type Result struct {
	Found    int // Recognized media files.
	Stills   int
	Motions  int
	Invoked  bool     // ffmpeg was started.
	Command  []string // Assembled ffmpeg argv; nil when nothing was found.
	ExitCode int      // Process exit status to report.

	Elapsed     time.Duration
	OutputBytes int64
}

// Empty reports whether the run stopped because no media was found.
func (r *Result) Empty() bool {
	return r.Found == 0 && r.ExitCode == 0
}
