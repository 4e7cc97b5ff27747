package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// swap installs l and restores the previous logger when the test ends.
func swap(t *testing.T, l zerolog.Logger) {
	t.Helper()
	prev := Logger()
	SetLogger(l)
	t.Cleanup(func() { SetLogger(prev) })
}

func TestDefaultIsSilent(t *testing.T) {
	swap(t, zerolog.Nop())

	// None of these may panic or write anywhere.
	Info("ignored")
	Infof("ignored %d", 1)
	Warn("ignored")
	Warnf("ignored %d", 2)
	Error("ignored")
	Errorf("ignored %d", 3)
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	swap(t, zerolog.New(&buf))

	Infof("registered %s", "ctrl+shift+KeyK")
	Warn("teardown failed")

	out := buf.String()
	if !strings.Contains(out, "registered ctrl+shift+KeyK") {
		t.Errorf("info message missing from output: %q", out)
	}
	if !strings.Contains(out, "teardown failed") {
		t.Errorf("warn message missing from output: %q", out)
	}
}

func TestSetOutput(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	var buf bytes.Buffer
	SetOutput(&buf)

	Error("no display reachable")

	out := buf.String()
	if !strings.Contains(out, "no display reachable") {
		t.Errorf("message missing from console output: %q", out)
	}
	if !strings.Contains(out, "ERR") {
		t.Errorf("console level marker missing: %q", out)
	}
}

func TestStructuredCallSite(t *testing.T) {
	var buf bytes.Buffer
	swap(t, zerolog.New(&buf))

	l := Logger()
	l.Info().Int("id", 7).Str("state", "pressed").Msg("trigger")

	out := buf.String()
	if !strings.Contains(out, `"id":7`) || !strings.Contains(out, `"state":"pressed"`) {
		t.Errorf("structured fields missing: %q", out)
	}
}
