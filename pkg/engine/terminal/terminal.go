// Package terminal answers questions about the process's stdout terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// DefaultWidth is assumed when stdout is not a terminal
const DefaultWidth = 80

func stdoutFd() int {
	return int(os.Stdout.Fd())
}

// GetWidth returns the current terminal width.
// Falls back to DefaultWidth if the width cannot be determined.
func GetWidth() int {
	width, _, err := term.GetSize(stdoutFd())
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

// Fits reports whether a line of the given printed width fits the terminal
func Fits(columns int) bool {
	return columns <= GetWidth()
}

// IsInteractive reports whether stdout is attached to a terminal.
// Colour output is switched off when it is not.
func IsInteractive() bool {
	return term.IsTerminal(stdoutFd())
}
