package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// NewLogger builds a slog logger writing to w. format is "json" or "text";
// level is one of debug, info, warn, error.
func NewLogger(level, format string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("config: log level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("config: unknown log format %q", format)
}

// Logger is NewLogger using the suite's level and format.
func (s Suite) Logger(w io.Writer) (*slog.Logger, error) {
	return NewLogger(s.LogLevel, s.LogFormat, w)
}

// Logger is NewLogger using the server's level and format.
func (s Server) Logger(w io.Writer) (*slog.Logger, error) {
	return NewLogger(s.LogLevel, s.LogFormat, w)
}
