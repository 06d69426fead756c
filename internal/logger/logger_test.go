package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("warn", &buf)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	log.Info("hidden")
	log.WithField("player", "Ana").Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "player=Ana") {
		t.Fatalf("expected warning with fields, got %q", out)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New("loud", &bytes.Buffer{}); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
