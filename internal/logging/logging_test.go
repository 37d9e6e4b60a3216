package logging

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	for _, encoding := range []string{"", "json", "console"} {
		logger, err := New("warn", encoding)
		if err != nil {
			t.Fatalf("unexpected error for encoding %q: %v", encoding, err)
		}
		if logger == nil {
			t.Fatalf("expected logger instance")
		}
		if logger.Core().Enabled(zapcore.InfoLevel) {
			t.Fatalf("info should be disabled at warn level")
		}
		if !logger.Core().Enabled(zapcore.WarnLevel) {
			t.Fatalf("warn should be enabled at warn level")
		}
		_ = logger.Sync()
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := New("chatty", "json"); err == nil {
		t.Fatalf("expected error for invalid level")
	}
}

func TestDetectEncoding(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "log"))
	if err != nil {
		t.Fatalf("create file: %v", err)
	}
	defer f.Close()

	if got := DetectEncoding(f.Fd()); got != "json" {
		t.Fatalf("expected json for regular file, got %s", got)
	}
}
