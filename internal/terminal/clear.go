// Package terminal provides utilities for terminal operations such as clearing text.
package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// LinesFor returns how many terminal rows a text of textLength characters
// occupies at the given width, never less than one.
func LinesFor(textLength, width int) int {
	if width <= 0 {
		width = 80
	}
	lines := (textLength + width - 1) / width
	if lines < 1 {
		lines = 1
	}
	return lines
}

// ClearPreviousLines clears a prompt that was previously printed, together
// with the empty line the cursor moved to when the user pressed Enter.
func ClearPreviousLines(textLength int) {
	width := 80 // default fallback
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	linesToClear := LinesFor(textLength, width) + 1
	for i := 0; i < linesToClear; i++ {
		fmt.Print("\r\x1b[2K") // Move to start and clear entire line
		if i < linesToClear-1 {
			fmt.Print("\x1b[1A") // Move up one line (don't move up on last iteration)
		}
	}
}
