package config

import (
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	ConfigPathEnv = "MINIGREP_CONFIG"
	EnvNameEnv    = "MINIGREP_ENV"
	LogLevelEnv   = "MINIGREP_LOG_LEVEL"
)

// Settings - служебные настройки запуска, не влияющие на результат поиска.
type Settings struct {
	Env      string `yaml:"env"`
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

func DefaultSettings() *Settings {
	return &Settings{
		Env:      "local",
		LogLevel: "warn",
		LogFile:  "logs/minigrep.log",
	}
}

func LoadSettings(path string, lookup LookupFunc) (*Settings, error) {
	if lookup == nil {
		lookup = OSLookup
	}
	cfg := DefaultSettings()

	if path == "" {
		path, _ = lookup(ConfigPathEnv)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: read settings: %v", ErrConfig, err)
		}
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: parse settings %s: %v", ErrConfig, path, err)
		}
	}

	if env, ok := lookup(EnvNameEnv); ok && env != "" {
		cfg.Env = env
	}
	if level, ok := lookup(LogLevelEnv); ok && level != "" {
		cfg.LogLevel = level
	}

	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("%w: log level %q: %v", ErrConfig, cfg.LogLevel, err)
	}
	return cfg, nil
}
