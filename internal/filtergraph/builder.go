package filtergraph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/backmassage/slidemux/internal/config"
	"github.com/backmassage/slidemux/internal/media"
)

// ErrNoInputs is returned by [Build] for an empty media list.
var ErrNoInputs = errors.New("filter graph needs at least one input")

// Options are the slideshow settings the graph depends on. Durations are
// whole seconds.
type Options struct {
	SlideDuration      int
	TransitionDuration int
	Resolution         config.Resolution
	FrameRate          int
	Transition         string
}

// OptionsFromConfig extracts graph options from a validated Config.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		SlideDuration:      cfg.SlideDuration,
		TransitionDuration: cfg.TransitionDuration,
		Resolution:         cfg.Resolution,
		FrameRate:          cfg.FrameRate,
		Transition:         cfg.TransitionEffect,
	}
}

// Graph is an ordered list of filter clauses and the label of the stream
// to map into the output.
type Graph struct {
	Clauses []string
	Output  string // e.g. "[v2]", including brackets.
}

// String joins the clauses into a single -filter_complex argument.
func (g Graph) String() string {
	return strings.Join(g.Clauses, ";")
}

// Build generates the filter graph for files in order. N files produce N
// fit clauses followed by N-1 xfade clauses.
func Build(files []media.File, opts Options) (Graph, error) {
	if len(files) == 0 {
		return Graph{}, ErrNoInputs
	}

	clauses := make([]string, 0, 2*len(files)-1)
	for i := range files {
		clauses = append(clauses, fitClause(i, opts.Resolution))
	}
	for i := 0; i < len(files)-1; i++ {
		clauses = append(clauses, xfadeClause(i, opts))
	}

	output := fitLabel(0)
	if len(files) > 1 {
		output = transitionLabel(len(files) - 1)
	}
	return Graph{Clauses: clauses, Output: output}, nil
}

// Offset returns the start time in seconds of the transition between slide
// i and slide i+1.
func Offset(i, slideDuration, transitionDuration int) int {
	return slideDuration*(i+1) - transitionDuration
}

// fitClause scales input i to the bounding dimension of the target frame,
// pads the remainder centered, and forces square pixels.
func fitClause(i int, res config.Resolution) string {
	w, h := res.Width, res.Height
	return fmt.Sprintf(
		"[%d:v]scale='if(gt(a,%d/%d),%d,-1)':'if(gt(a,%d/%d),-1,%d)',pad=%d:%d:(ow-iw)/2:(oh-ih)/2,setsar=1%s",
		i, w, h, w, w, h, h, w, h, fitLabel(i),
	)
}

// xfadeClause blends the previous chain output with input i+1.
func xfadeClause(i int, opts Options) string {
	in := fitLabel(i)
	if i > 0 {
		in = transitionLabel(i)
	}
	var b strings.Builder
	b.WriteString(in)
	b.WriteString(fitLabel(i + 1))
	b.WriteString("xfade=")
	if SupportedTransition(opts.Transition) {
		b.WriteString("transition=" + opts.Transition + ":")
	}
	fmt.Fprintf(&b, "duration=%d:offset=%d", opts.TransitionDuration, Offset(i, opts.SlideDuration, opts.TransitionDuration))
	b.WriteString(transitionLabel(i + 1))
	return b.String()
}

func fitLabel(i int) string        { return fmt.Sprintf("[f%d]", i) }
func transitionLabel(i int) string { return fmt.Sprintf("[v%d]", i) }
