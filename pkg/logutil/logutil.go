// Package logutil provides the shared logging facility. Logs are discarded
// unless a destination file is set, so the interactive terminal stays clean
// by default.
package logutil

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

var (
	mu      sync.Mutex
	out     io.Writer = io.Discard
	loggers []*log.Logger
)

// GetLogger returns a logger with the given prefix, writing to the
// destination set by SetOutputFile.
func GetLogger(prefix string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutputFile directs all loggers, present and future, to append to the
// file at path. An empty path restores the default of discarding logs.
func SetOutputFile(path string) error {
	mu.Lock()
	defer mu.Unlock()
	if path == "" {
		out = io.Discard
	} else {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		out = f
	}
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
	return nil
}
