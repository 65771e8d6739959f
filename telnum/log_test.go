package telnum

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "warn")
	l.Debug("should not appear")
	if buf.Len() != 0 {
		t.Fatalf("debug message logged at warn level: %q", buf.String())
	}
	l.Warn("should appear", "key", "value")
	if !strings.Contains(buf.String(), "should appear") {
		t.Fatalf("expected warn message in output, got %q", buf.String())
	}
}

func TestNopLoggerDiscardsEverything(t *testing.T) {
	l := NewNopLogger()
	l.Error("this goes nowhere")
}
