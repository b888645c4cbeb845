package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jask/lineitem/internal/config"
)

// New builds a zerolog logger from cfg. The terminal belongs to the UI, so
// output goes to cfg.Path unless it is "-" (stderr). The returned closer
// releases the log file.
func New(cfg config.LogConfig) (zerolog.Logger, io.Closer, error) {
	var (
		out    io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	if p := strings.TrimSpace(cfg.Path); p != "" && p != "-" {
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("mkdir log dir: %w", err)
		}
		f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("open log %s: %w", p, err)
		}
		out, closer = f, f
	}
	return NewWithWriter(out, cfg.Format, cfg.Level), closer, nil
}

// NewWithWriter configures a logger on w using the provided format and
// level. Unknown levels fall back to info.
func NewWithWriter(w io.Writer, format, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "console", "text":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
