package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// NewFileLogger builds a Logger that writes to both stdout and a dated log
// file under dir/logs. If a file for today already exists, a numeric suffix
// is appended so each launch gets its own file. The caller owns the returned
// closer.
//
// This is the one-time bootstrap the application performs before the auth
// core runs; the core itself only ever sees the Logger interface.
func NewFileLogger(dir string) (Logger, io.Closer, error) {
	logsDir := filepath.Join(dir, "logs")
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating logs directory: %w", err)
	}

	date := time.Now().Format("2006-01-02")
	name := date + ".log"
	for counter := 1; ; counter++ {
		if _, err := os.Stat(filepath.Join(logsDir, name)); os.IsNotExist(err) {
			break
		}
		name = fmt.Sprintf("%s_%d.log", date, counter)
	}

	f, err := os.Create(filepath.Join(logsDir, name))
	if err != nil {
		return nil, nil, fmt.Errorf("creating log file: %w", err)
	}

	h := slog.NewTextHandler(io.MultiWriter(os.Stdout, f), nil)
	return NewSlogLogger(slog.New(h)), f, nil
}
