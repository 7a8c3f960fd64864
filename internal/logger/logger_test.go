package logger

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"minigrep/internal/config"

	"go.uber.org/zap/zapcore"
)

func TestProvideLoggerLocal(t *testing.T) {
	logger, err := ProvideLogger(&config.Settings{Env: "local", LogLevel: "warn"})
	if err != nil {
		t.Fatalf("ProvideLogger() error = %v", err)
	}
	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("info level should be disabled when log level is warn")
	}
	if !logger.Core().Enabled(zapcore.WarnLevel) {
		t.Fatal("warn level should be enabled")
	}
}

func TestProvideLoggerBadLevel(t *testing.T) {
	_, err := ProvideLogger(&config.Settings{Env: "local", LogLevel: "loud"})
	if !errors.Is(err, config.ErrConfig) {
		t.Fatalf("expected ErrConfig, got: %v", err)
	}
}

func TestProvideLoggerProdWritesJSONFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "minigrep.log")
	logger, err := ProvideLogger(&config.Settings{Env: "prod", LogLevel: "info", LogFile: logFile})
	if err != nil {
		t.Fatalf("ProvideLogger() error = %v", err)
	}

	logger.Info("search finished")
	logger.Debug("hidden")
	_ = logger.Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("expected a single JSON log line, got %q: %v", data, err)
	}
	if entry["msg"] != "search finished" {
		t.Fatalf("unexpected msg: %v", entry["msg"])
	}
	if id, _ := entry["run_id"].(string); id == "" {
		t.Fatalf("run_id field missing: %v", entry)
	}
}
