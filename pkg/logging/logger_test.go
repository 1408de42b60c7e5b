package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"localfare/pkg/config"
)

func TestInitCreatesLogFileAndSetsDefault(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "build.log")

	cfg := &config.LogConfig{
		Path:  logPath,
		Level: "DEBUG",
	}

	cleanup, err := Init(cfg)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer cleanup()

	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Error("log file not created")
	}

	slog.Info("test message", "run", "unit")
	if GlobalLogCapture.GetLastLine() == "" {
		t.Error("expected the capture buffer to receive the INFO log line")
	}
}

func TestInitRotatesExistingLogFile(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "build.log")
	if err := os.WriteFile(logPath, []byte("stale run\n"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	cleanup, err := Init(&config.LogConfig{Path: logPath, Level: "INFO"})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer cleanup()

	if _, err := os.Stat(logPath + ".old"); os.IsNotExist(err) {
		t.Error("expected prior log to be rotated to .old")
	}
}

func TestParseLevelDefaultsToInfo(t *testing.T) {
	if got := parseLevel("bogus"); got != slog.LevelInfo {
		t.Errorf("parseLevel(bogus) = %v, want Info", got)
	}
	if got := parseLevel("debug"); got != slog.LevelDebug {
		t.Errorf("parseLevel(debug) = %v, want Debug", got)
	}
}
