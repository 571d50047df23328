package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/term2048/internal/config"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "t2048.log")

	logger, closer, err := New(config.Log{Level: "info", File: path})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("best score raised", "best", 128)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "best score raised") || !strings.Contains(out, "best=128") {
		t.Errorf("log output missing entry: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug entry logged at info level: %q", out)
	}
	if !strings.Contains(out, "t2048") {
		t.Errorf("log output missing prefix: %q", out)
	}
}

func TestNewWithoutFile(t *testing.T) {
	logger, closer, err := New(config.Log{Level: "debug"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	logger.Info("discarded")
	if err := closer.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, _, err := New(config.Log{Level: "chatty"}); err == nil {
		t.Error("expected error for unknown level")
	}
}
