// Package ffmpeg assembles and runs the slideshow's ffmpeg command.
//
// [Build] produces the full argument vector. ffmpeg's CLI is position
// sensitive: options placed before an -i apply to that input, so the
// per-input flags (-loop, -t, -framerate) come first, followed by the
// filter graph, the output mapping, and output encoding flags.
//
// [Execute] runs the command once, forwarding ffmpeg's own output and
// surfacing its exit status unchanged. There is no retry.
package ffmpeg
