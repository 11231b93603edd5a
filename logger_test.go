package scenic

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(nil, slog.LevelError) {
		t.Error("default logger has error level enabled")
	}
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var out bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&out, nil)))
	Logger().Info("hello", "n", 42)
	if !strings.Contains(out.String(), "hello") || !strings.Contains(out.String(), "n=42") {
		t.Errorf("log output = %q, want message and attr", out.String())
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	var out bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&out, nil)))
	SetLogger(nil)
	Logger().Warn("dropped")
	if out.Len() != 0 {
		t.Errorf("nil logger still wrote output: %q", out.String())
	}
}
