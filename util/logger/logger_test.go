package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestHandleWritesToSink(t *testing.T) {
	var buf bytes.Buffer
	h := New(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}, false)
	log := slog.New(h)

	log.Info("boot complete", "arch", "amd64")

	out := buf.String()
	if !strings.Contains(out, "boot complete") {
		t.Errorf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, "amd64") {
		t.Errorf("expected attribute value in output, got %q", out)
	}
}

func TestDebugMirrorsToStderrFlag(t *testing.T) {
	var buf bytes.Buffer
	h := New(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}, false)
	if h.debug {
		t.Errorf("debug should start false")
	}
	h.SetDebug(true)
	if !h.debug {
		t.Errorf("SetDebug(true) should flip debug on")
	}
}

func TestEnabledRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	h := New(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}, false)
	if h.Enabled(nil, slog.LevelInfo) {
		t.Errorf("info should not be enabled when level is warn")
	}
	if !h.Enabled(nil, slog.LevelError) {
		t.Errorf("error should be enabled when level is warn")
	}
}
