package ui

import (
	"os"

	"golang.org/x/term"
)

// DefaultTerminalWidth is used when stdout is not a terminal.
const DefaultTerminalWidth = 80

// TerminalWidth reports the column count of stdout, falling back to
// DefaultTerminalWidth when it cannot be determined.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	return width
}

func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
