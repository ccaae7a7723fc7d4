package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kballard/go-shellquote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/slidemux/internal/config"
	"github.com/backmassage/slidemux/internal/filtergraph"
	"github.com/backmassage/slidemux/internal/media"
)

func testCfg() *config.Config {
	cfg := config.DefaultConfig()
	cfg.InputDir = "photos"
	return &cfg
}

func buildFor(t *testing.T, cfg *config.Config, files []media.File) []string {
	t.Helper()
	g, err := filtergraph.Build(files, filtergraph.OptionsFromConfig(cfg))
	require.NoError(t, err)
	return Build(cfg, files, g)
}

// --- Build tests ---

func TestBuild_FullCommand(t *testing.T) {
	cfg := testCfg()
	files := []media.File{
		{Path: "photos/a.jpg", Kind: media.KindStill},
		{Path: "photos/b.mp4", Kind: media.KindMotion},
	}
	g, err := filtergraph.Build(files, filtergraph.OptionsFromConfig(cfg))
	require.NoError(t, err)

	got := Build(cfg, files, g)
	want := []string{
		"ffmpeg", "-hide_banner", "-y", "-loglevel", "error", "-stats",
		"-loop", "1", "-t", "3", "-framerate", "30", "-i", "photos/a.jpg",
		"-t", "3", "-framerate", "30", "-i", "photos/b.mp4",
		"-filter_complex", g.String(),
		"-map", "[v1]",
		"-t", "8",
		"-c:v", "libx264", "-pix_fmt", "yuv420p", "-preset", "fast",
		"slideshow.mp4",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Build mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_StillsLoopAndPNGIsStill(t *testing.T) {
	cfg := testCfg()
	args := buildFor(t, cfg, []media.File{
		{Path: "x.png", Kind: media.KindStill},
	})
	assert.Equal(t, []string{"-loop", "1", "-t", "3", "-framerate", "30", "-i", "x.png"}, args[6:14])
}

func TestBuild_MotionHasNoLoop(t *testing.T) {
	cfg := testCfg()
	args := buildFor(t, cfg, []media.File{
		{Path: "x.mov", Kind: media.KindMotion},
		{Path: "y.avi", Kind: media.KindMotion},
	})
	assert.NotContains(t, args, "-loop")
}

func TestBuild_SingleInputMapsFitLabel(t *testing.T) {
	cfg := testCfg()
	args := buildFor(t, cfg, []media.File{{Path: "only.jpg", Kind: media.KindStill}})
	assert.Equal(t, "[f0]", valueAfter(t, args, "-map"))
}

func TestBuild_InputsPrecedeFilterGraph(t *testing.T) {
	cfg := testCfg()
	args := buildFor(t, cfg, []media.File{
		{Path: "a.jpg", Kind: media.KindStill},
		{Path: "b.jpg", Kind: media.KindStill},
		{Path: "c.mp4", Kind: media.KindMotion},
	})

	fc := indexOf(args, "-filter_complex")
	mp := indexOf(args, "-map")
	require.Positive(t, fc)
	require.Greater(t, mp, fc)
	for i, a := range args {
		if a == "-i" || a == "-loop" || a == "-framerate" {
			assert.Less(t, i, fc, "%s at %d must precede -filter_complex", a, i)
		}
	}
	assert.Equal(t, "slideshow.mp4", args[len(args)-1])
}

func TestBuild_TotalDurationFlag(t *testing.T) {
	for _, tc := range []struct{ n, slide, trans int }{
		{1, 3, 1}, {3, 3, 1}, {5, 4, 2}, {10, 1, 1},
	} {
		t.Run(fmt.Sprintf("%d/%d/%d", tc.n, tc.slide, tc.trans), func(t *testing.T) {
			cfg := testCfg()
			cfg.SlideDuration = tc.slide
			cfg.TransitionDuration = tc.trans
			files := make([]media.File, tc.n)
			for i := range files {
				files[i] = media.File{Path: fmt.Sprintf("%d.jpg", i), Kind: media.KindStill}
			}
			args := buildFor(t, cfg, files)
			// The output -t follows -map.
			mp := indexOf(args, "-map")
			require.Equal(t, "-t", args[mp+2])
			assert.Equal(t, strconv.Itoa(tc.n*(tc.slide+tc.trans)), args[mp+3])
		})
	}
}

func TestBuild_VerboseAndCustomSettings(t *testing.T) {
	cfg := testCfg()
	cfg.Verbose = true
	cfg.FFmpegBin = "/opt/ffmpeg/bin/ffmpeg"
	cfg.EncodingPreset = "veryslow"
	cfg.OutputFile = "out/trip.mp4"
	cfg.FrameRate = 24

	args := buildFor(t, cfg, []media.File{{Path: "a.jpg", Kind: media.KindStill}})
	assert.Equal(t, "/opt/ffmpeg/bin/ffmpeg", args[0])
	assert.Equal(t, "info", valueAfter(t, args, "-loglevel"))
	assert.NotContains(t, args, "-stats")
	assert.Equal(t, "veryslow", valueAfter(t, args, "-preset"))
	assert.Equal(t, "24", valueAfter(t, args, "-framerate"))
	assert.Equal(t, "out/trip.mp4", args[len(args)-1])
}

func TestTotalDuration(t *testing.T) {
	assert.Equal(t, 12, TotalDuration(3, 3, 1))
	assert.Equal(t, 4, TotalDuration(1, 3, 1))
	assert.Equal(t, 0, TotalDuration(0, 3, 1))
}

// --- Error helpers ---

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, ExitNotFound, ExitCode(&exec.Error{Name: "ffmpeg", Err: exec.ErrNotFound}))
	assert.Equal(t, ExitNotFound, ExitCode(fmt.Errorf("start: %w", os.ErrNotExist)))
	assert.Equal(t, ExitFailure, ExitCode(errors.New("boom")))
}

func TestLastLine(t *testing.T) {
	assert.Equal(t, "", LastLine(""))
	assert.Equal(t, "Error opening output file", LastLine("frame=1\rframe=2\nError opening output file\n\n"))
	assert.Equal(t, "only", LastLine("  only  "))
}

func TestFormatCommand_RoundTrips(t *testing.T) {
	cfg := testCfg()
	args := buildFor(t, cfg, []media.File{
		{Path: "my photos/it's.jpg", Kind: media.KindStill},
		{Path: "b.jpg", Kind: media.KindStill},
	})

	line := FormatCommand(args)
	split, err := shellquote.Split(line)
	require.NoError(t, err)
	assert.Equal(t, args, split)
}

// --- Execute tests (fake ffmpeg) ---

func fakeFFmpeg(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	path := filepath.Join(t.TempDir(), "ffmpeg")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755))
	return path
}

func TestExecute_Success(t *testing.T) {
	bin := fakeFFmpeg(t, `echo "args:$*"; echo "encoding" >&2; exit 0`)

	var stdout, stderr bytes.Buffer
	res := Execute(context.Background(), []string{bin, "-y", "out.mp4"}, ExecOptions{Stdout: &stdout, Stderr: &stderr})

	require.NoError(t, res.Err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "args:-y out.mp4\n", stdout.String())
	assert.Equal(t, "encoding\n", stderr.String())
	assert.Equal(t, "encoding\n", res.Stderr)
}

func TestExecute_ForwardsExitCode(t *testing.T) {
	bin := fakeFFmpeg(t, `echo "Invalid filtergraph" >&2; exit 3`)

	res := Execute(context.Background(), []string{bin}, ExecOptions{})

	require.Error(t, res.Err)
	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, "Invalid filtergraph", LastLine(res.Stderr))
}

func TestExecute_MissingBinary(t *testing.T) {
	res := Execute(context.Background(), []string{filepath.Join(t.TempDir(), "no-ffmpeg")}, ExecOptions{})
	require.Error(t, res.Err)
	assert.Equal(t, ExitNotFound, res.ExitCode)
}

func TestTailBuffer_KeepsTail(t *testing.T) {
	tb := &tailBuffer{limit: 4}
	_, _ = tb.Write([]byte("abc"))
	_, _ = tb.Write([]byte("def"))
	assert.Equal(t, "cdef", tb.String())
}

// --- Helpers ---

func indexOf(args []string, flag string) int {
	for i, a := range args {
		if a == flag {
			return i
		}
	}
	return -1
}

func valueAfter(t *testing.T, args []string, flag string) string {
	t.Helper()
	i := indexOf(args, flag)
	require.GreaterOrEqual(t, i, 0, "flag %s not found", flag)
	require.Less(t, i+1, len(args))
	return args[i+1]
}
