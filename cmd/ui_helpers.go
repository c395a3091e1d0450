package cmd

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"atomicgo.dev/cursor"
	"golang.org/x/term"
)

var spinnerFrames = []string{"|", "/", "-", "\\"}

const spinnerInterval = 120 * time.Millisecond

// startInlineSpinner starts a simple inline spinner animation on a single line.
// It displays rotating animation frames followed by the provided text, updating
// the same line in the terminal, and hides the cursor while it runs. The
// spinner runs in a separate goroutine and is stopped by calling the returned
// function, which clears the line and restores the cursor.
//
// When w is not a terminal nothing is drawn and the returned function is a no-op.
func startInlineSpinner(w io.Writer, text string, frames []string, interval time.Duration) func() {
	if f, ok := w.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		return func() {}
	}

	cursor.Hide()
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		i := 0
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				line := fmt.Sprintf("%s %s", frames[i%len(frames)], text)
				// Clear the spinner line completely, then return
				fmt.Fprintf(w, "\r%*s\r", len(line), "")
				return
			case <-ticker.C:
				fmt.Fprintf(w, "\r%s %s", frames[i%len(frames)], text)
				i++
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			wg.Wait()
			cursor.Show()
		})
	}
}
