package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	// LogFileName is the debug log inside the log directory
	LogFileName = "boxes.log"
	// MaxLogSize triggers rotation of an existing log at startup
	MaxLogSize = 10 * 1024 * 1024
)

// SetupLogging routes the standard logger
// With debug off output is discarded and the returned file is nil
// With debug on, an oversized previous log is renamed with a timestamp before a fresh file is opened
func SetupLogging(debug bool, dir string) (*os.File, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, LogFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > MaxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("boxes-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			log.SetOutput(io.Discard)
			return nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil, fmt.Errorf("open log: %w", err)
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	return f, nil
}
