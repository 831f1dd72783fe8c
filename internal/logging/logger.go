package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pterm/pterm"
)

// Levels accepted in configuration, lowest first
var Levels = map[string]pterm.LogLevel{
	"debug": pterm.LogLevelDebug,
	"info":  pterm.LogLevelInfo,
	"warn":  pterm.LogLevelWarn,
	"error": pterm.LogLevelError,
}

// ParseLevel maps a level name to a pterm log level
func ParseLevel(name string) (pterm.LogLevel, error) {
	level, ok := Levels[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return pterm.LogLevelDisabled, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}

// FileLogger is the process-wide logger and the file it appends to
type FileLogger struct {
	*pterm.Logger
	file *os.File
}

// New creates dir if absent, opens dir/file for appending and returns a
// JSON-lines logger writing to it
func New(dir, file, level string) (*FileLogger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(dir, file), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return &FileLogger{
		Logger: NewWriterLogger(f, lvl),
		file:   f,
	}, nil
}

// NewWriterLogger returns a JSON-lines logger writing to w.
// Writes are serialized so concurrent handlers never interleave lines.
func NewWriterLogger(w io.Writer, level pterm.LogLevel) *pterm.Logger {
	return pterm.DefaultLogger.
		WithWriter(&syncWriter{w: w}).
		WithFormatter(pterm.LogFormatterJSON).
		WithLevel(level).
		WithTime(true).
		WithCaller(false)
}

// Discard returns a logger that drops everything
func Discard() *pterm.Logger {
	return pterm.DefaultLogger.WithWriter(io.Discard).WithLevel(pterm.LogLevelDisabled)
}

// Close closes the underlying log file
func (l *FileLogger) Close() error {
	return l.file.Close()
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
