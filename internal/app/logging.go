package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dshills/pine/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewLogger creates the application logger from cfg. Entries carry a
// component field and a session id unique to this process. Without a log
// file, output is discarded: the terminal belongs to the editor.
//
// The returned closer releases the log file and must be called on exit.
func NewLogger(cfg config.LogConfig) (*logrus.Entry, io.Closer, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	l := logrus.New()
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	var closer io.Closer = nopCloser{}
	if cfg.File == "" {
		l.SetOutput(io.Discard)
	} else {
		f, err := openLogFile(cfg.File)
		if err != nil {
			return nil, nil, err
		}
		l.SetOutput(f)
		closer = f
	}

	entry := logrus.NewEntry(l).WithFields(logrus.Fields{
		"component": "app",
		"session":   uuid.NewString(),
	})
	return entry, closer, nil
}

// discardLogger returns an entry that writes nowhere.
func discardLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func openLogFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
