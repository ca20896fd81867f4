// Package debug provides optional file-based debug logging.
//
// When the WIDGEO_DEBUG environment variable is set to a file path, the
// solver's phase tracing is appended to that file. Otherwise logging is a
// no-op with negligible cost.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	logFile *os.File
	checked bool
)

// Init initializes debug logging to the specified file path, overriding
// the WIDGEO_DEBUG environment variable.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	logFile = f
	checked = true
	return nil
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	checked = false
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Logf writes a message to the debug log with a timestamp. If logging has
// not been initialized, the WIDGEO_DEBUG environment variable is consulted
// once; when it is unset, Logf does nothing.
func Logf(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if !checked {
		checked = true
		if path := os.Getenv("WIDGEO_DEBUG"); path != "" {
			if err := initLocked(path); err != nil {
				logFile = nil
			}
		}
	}
	if logFile == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, fmt.Sprintf(format, args...))
	logFile.Sync()
}
