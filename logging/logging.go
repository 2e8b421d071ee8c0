package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// LoggerConfig holds logger settings in a shape suitable for persisting
// in a config file; fields carry tags for all three built-in codecs.
type LoggerConfig struct {
	Level  string `json:"level"  toml:"level"  yaml:"level"`
	Format string `json:"format" toml:"format" yaml:"format"`
}

// SetDefaults fills empty fields with usable values.
// Satisfies the root package's Defaulter interface.
func (c *LoggerConfig) SetDefaults() (changed bool) {
	if c.Level == "" {
		c.Level = "info"
		changed = true
	}

	if c.Format == "" {
		c.Format = "json"
		changed = true
	}

	return changed
}

// Validate rejects unknown formats.
// Satisfies the root package's Validator interface. Unknown levels are
// tolerated and fall back to info, matching slog's forgiving posture.
func (c *LoggerConfig) Validate() error {
	switch strings.ToLower(c.Format) {
	case "", "json", "text":
		return nil
	default:
		return fmt.Errorf("unknown log format %q", c.Format)
	}
}

// NewLogger creates a new slog.Logger writing to w according to config.
// The level is parsed from the config; defaults to INFO if invalid or
// empty. The handler is JSON unless config.Format is "text".
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	level := parseLevel(config.Level)
	options := &slog.HandlerOptions{
		AddSource:   false,
		Level:       level,
		ReplaceAttr: nil,
	}

	var handler slog.Handler
	if strings.ToLower(config.Format) == "text" {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
