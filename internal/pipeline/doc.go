// Package pipeline runs one slideshow render end to end:
// discover → build filter graph → assemble command → run ffmpeg.
//
// An empty directory is reported and stops the run before ffmpeg is
// touched. Everything after that is a single blocking ffmpeg call whose
// exit status becomes the run's exit status.
package pipeline
