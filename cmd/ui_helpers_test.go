package cmd

import (
	"bytes"
	"testing"
	"time"
)

func TestSpinnerIsSilentOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	stop := startInlineSpinner(&buf, "Checking session", spinnerFrames, time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	stop()
	stop()

	if buf.Len() != 0 {
		t.Errorf("spinner wrote %q to a non-terminal writer", buf.String())
	}
}

func TestWhoAmIPhrase(t *testing.T) {
	if got := getWhoAmIPhrase("admin"); got != "👤 Logged in with role: admin" {
		t.Errorf("getWhoAmIPhrase() = %q", got)
	}
}
