package app

import (
	"fmt"
	"io"
	"log/slog"
)

// logLevels maps the level names the CLI accepts to slog levels.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

func parseLogLevel(s string) (slog.Level, error) {
	level, ok := logLevels[s]
	if !ok {
		return 0, fmt.Errorf("invalid log level %q: must be one of 'debug', 'info', 'warn', 'error'", s)
	}
	return level, nil
}

// newLogger builds an isolated logger writing to outW. It never touches the
// global logger, so several apps can run side by side in tests.
func newLogger(levelStr, formatStr string, outW io.Writer) (*slog.Logger, error) {
	level, err := parseLogLevel(levelStr)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	switch formatStr {
	case "text":
		return slog.New(slog.NewTextHandler(outW, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(outW, opts)), nil
	}
	return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", formatStr)
}
