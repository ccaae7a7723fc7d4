package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// FileSettings is the schema of an optional HCL settings file:
//
//	slide_duration      = 4
//	transition_duration = 1
//	resolution          = "1920x1080"
//	framerate           = 25
//	output_file         = "holiday.mp4"
//	encoding_preset     = "medium"
//	transition_effect   = "wipeleft"
//	ffmpeg              = "/usr/local/bin/ffmpeg"
//
// Every attribute is optional; nil fields leave the Config untouched.
type FileSettings struct {
	SlideDuration      *int    `hcl:"slide_duration,optional"`
	TransitionDuration *int    `hcl:"transition_duration,optional"`
	Resolution         *string `hcl:"resolution,optional"`
	FrameRate          *int    `hcl:"framerate,optional"`
	OutputFile         *string `hcl:"output_file,optional"`
	EncodingPreset     *string `hcl:"encoding_preset,optional"`
	TransitionEffect   *string `hcl:"transition_effect,optional"`
	FFmpegBin          *string `hcl:"ffmpeg,optional"`
}

// LoadFile parses and decodes an HCL settings file.
func LoadFile(path string) (*FileSettings, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %s", path, diags.Error())
	}

	var settings FileSettings
	diags = gohcl.DecodeBody(file.Body, nil, &settings)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %s", path, diags.Error())
	}
	return &settings, nil
}

// Apply copies every present setting into cfg unless the same setting was
// passed explicitly on the command line (keys are underscore flag names).
func (s *FileSettings) Apply(cfg *Config, explicit map[string]bool) {
	setInt(s.SlideDuration, &cfg.SlideDuration, explicit["slide_duration"])
	setInt(s.TransitionDuration, &cfg.TransitionDuration, explicit["transition_duration"])
	setString(s.Resolution, &cfg.ResolutionSpec, explicit["resolution"])
	setInt(s.FrameRate, &cfg.FrameRate, explicit["framerate"])
	setString(s.OutputFile, &cfg.OutputFile, explicit["output_file"])
	setString(s.EncodingPreset, &cfg.EncodingPreset, explicit["encoding_preset"])
	setString(s.TransitionEffect, &cfg.TransitionEffect, explicit["transition_effect"])
	setString(s.FFmpegBin, &cfg.FFmpegBin, explicit["ffmpeg"])
}

func setInt(src *int, dst *int, skip bool) {
	if src != nil && !skip {
		*dst = *src
	}
}

func setString(src *string, dst *string, skip bool) {
	if src != nil && !skip {
		*dst = *src
	}
}
