package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const (
	// Environment variable naming the TOML defaults file
	ConfigEnvVar = "HASHASSIN_CONFIG"

	DefaultThreads  = 1
	DefaultChars    = 4
	DefaultLogLevel = "warn"
)

// Config holds defaults used when a flag is not given on the command line
type Config struct {
	Threads   int    `toml:"threads"`
	Chars     int    `toml:"chars"`
	Algorithm string `toml:"algorithm"`
	LogLevel  string `toml:"log_level"`
}

func defaultConfig() Config {
	return Config{
		Threads:  DefaultThreads,
		Chars:    DefaultChars,
		LogLevel: DefaultLogLevel,
	}
}

// loadConfig reads the TOML file at path over the built-in defaults.
// An empty path means no file.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	// Keys missing from the file keep their defaults
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if _, err := cfg.level(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c Config) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// setupLogging installs a text logger on w as the default slog logger
func setupLogging(w io.Writer, cfg Config) {
	level, err := cfg.level()
	if err != nil {
		level = slog.LevelWarn
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
