package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewAppendsJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "roster.log")
	logger, closeFn, err := New(Options{File: path})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Info("generated", zap.Int("weeks", 52))
	logger.Debug("detail")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines (file core logs debug), got %d: %q", len(lines), data)
	}
	if !strings.Contains(lines[0], `"msg":"generated"`) || !strings.Contains(lines[0], `"weeks":52`) {
		t.Fatalf("unexpected first line %q", lines[0])
	}
}

func TestNewWithoutFile(t *testing.T) {
	logger, closeFn, err := New(Options{Verbose: true})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("verbose logger should enable debug")
	}
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
