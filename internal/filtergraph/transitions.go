package filtergraph

// transitions is the set of xfade effect names passed through to ffmpeg.
// Any other name is dropped from the clause and ffmpeg uses its default.
var transitions = []string{
	"fade",
	"wipeleft", "wipeup", "wipedown", "wiperight",
	"slideleft", "slideup", "slidedown", "slideright",
	"smoothleft", "smoothup", "smoothdown", "smoothright",
	"circleopen", "circleclose",
	"radial",
	"fadeblack", "fadewhite",
	"rectcrop",
	"distance",
}

var transitionSet = func() map[string]bool {
	m := make(map[string]bool, len(transitions))
	for _, t := range transitions {
		m[t] = true
	}
	return m
}()

// SupportedTransition reports whether name is passed to xfade verbatim.
// Matching is exact and case-sensitive, as in ffmpeg.
func SupportedTransition(name string) bool {
	return transitionSet[name]
}

// Transitions returns the supported effect names in display order.
func Transitions() []string {
	out := make([]string, len(transitions))
	copy(out, transitions)
	return out
}
