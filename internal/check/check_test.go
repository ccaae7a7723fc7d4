package check

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/backmassage/slidemux/internal/config"
)

type recordLogger struct {
	errors, successes int
}

func (r *recordLogger) Info(string, ...interface{})    {}
func (r *recordLogger) Success(string, ...interface{}) { r.successes++ }
func (r *recordLogger) Warn(string, ...interface{})    {}
func (r *recordLogger) Error(string, ...interface{})   { r.errors++ }

func TestListsName(t *testing.T) {
	listing := ` ... xfade             VV->V      Cross fade one video with another video.
 ..C xfade_opencl      VV->V      Cross fade one video with another video.
 V....D libx264              libx264 H.264 / AVC / MPEG-4 AVC (codec h264)`

	tests := []struct {
		name string
		want bool
	}{
		{"xfade", true},
		{"xfade_opencl", true},
		{"libx264", true},
		{"libx265", false},
		{"fade", false},
	}
	for _, tt := range tests {
		if got := ListsName(listing, tt.name); got != tt.want {
			t.Errorf("ListsName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCheckDeps_MissingBinary(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.FFmpegBin = filepath.Join(t.TempDir(), "no-such-ffmpeg")
	if err := CheckDeps(&cfg); !errors.Is(err, ErrFfmpegNotFound) {
		t.Errorf("CheckDeps() error = %v, want ErrFfmpegNotFound", err)
	}
}

func TestRunCheck_FakeFfmpeg(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	script := `#!/bin/sh
case "$2" in
  -version)  echo "ffmpeg version 6.1 Copyright (c) the FFmpeg developers" ;;
  -filters)  echo " ... xfade             VV->V      Cross fade" ;;
  -encoders) echo " V....D libx264              libx264 H.264" ;;
esac
`
	bin := filepath.Join(t.TempDir(), "ffmpeg")
	if err := os.WriteFile(bin, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig()
	cfg.FFmpegBin = bin
	if err := CheckDeps(&cfg); err != nil {
		t.Fatalf("CheckDeps: %v", err)
	}

	log := &recordLogger{}
	if !RunCheck(&cfg, log) {
		t.Errorf("RunCheck() = false, want true (errors=%d)", log.errors)
	}
	if log.successes != 3 {
		t.Errorf("successes = %d, want 3", log.successes)
	}
}
