package terminal

import (
	"os"

	"golang.org/x/term"
)

// ClearScreen returns the ANSI clear-screen sequence, homing the cursor.
func ClearScreen() string {
	return "\033[2J\033[1;1H"
}

// IsTerminal reports whether f is attached to an interactive terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ColorEnabled resolves a colour setting ("auto", "always", "never").
// With "auto" colour is used only when both stdin and stdout are terminals.
func ColorEnabled(mode string, in, out *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTerminal(in) && isTerminal(out)
	}
}

// isTerminal is a test seam for IsTerminal.
var isTerminal = IsTerminal
