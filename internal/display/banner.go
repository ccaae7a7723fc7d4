package display

import (
	"fmt"
	"io"

	"github.com/backmassage/slidemux/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Magenta)
	fmt.Fprint(w, ` ___ _ _    _     __  __
/ __| (_)__| |___|  \/  |_  ___ __
\__ \ | / _`+"`"+` / -_) |\/| | || \ \ /
|___/_|_\__,_\___|_|  |_|\_,_/_\_\
`)
	if term.Enabled() {
		fmt.Fprintln(w, term.NC)
	}
}
