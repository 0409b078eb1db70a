// Package xlog provides the leveled, package-scoped logger used across the
// evolutionary engine. It never performs I/O on a pipeline step's critical
// path; callers log only at step boundaries.
package xlog

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
)

// Level specifies the logger output threshold.
type Level string

const (
	// LevelDebug is the most verbose level.
	LevelDebug Level = "debug"
	// LevelInfo is the default operational level.
	LevelInfo Level = "info"
	// LevelWarn surfaces recoverable anomalies.
	LevelWarn Level = "warn"
	// LevelError surfaces only failures.
	LevelError Level = "error"
)

var (
	// Current is the active log level. Set once at configuration load time.
	Current Level = LevelInfo

	loggerDebug = log.New(os.Stdout, "DEBUG: ", log.Ltime|log.Lshortfile)
	loggerInfo  = log.New(os.Stdout, "INFO: ", log.Ltime|log.Lshortfile)
	loggerWarn  = log.New(os.Stdout, "WARN: ", log.Ltime|log.Lshortfile)
	loggerError = log.New(os.Stderr, "ERROR: ", log.Ltime|log.Lshortfile)

	// Debug logs at debug level and above.
	Debug = func(message string) {
		if accept(Current, LevelDebug) {
			_ = loggerDebug.Output(2, message)
		}
	}
	// Info logs at info level and above.
	Info = func(message string) {
		if accept(Current, LevelInfo) {
			_ = loggerInfo.Output(2, message)
		}
	}
	// Warn logs at warn level and above.
	Warn = func(message string) {
		if accept(Current, LevelWarn) {
			_ = loggerWarn.Output(2, message)
		}
	}
	// Error logs at error level only.
	Error = func(message string) {
		if accept(Current, LevelError) {
			_ = loggerError.Output(2, message)
		}
	}
)

// Init sets the active log level from a string, mirroring the config
// package's own level field so callers can set one without importing log.
func Init(level string) error {
	switch Level(level) {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		Current = Level(level)
		return nil
	default:
		return errors.Errorf("unsupported log level: %q", level)
	}
}

func accept(current, target Level) bool {
	switch current {
	case LevelDebug:
		return true
	case LevelInfo:
		return target != LevelDebug
	case LevelWarn:
		return target == LevelWarn || target == LevelError
	case LevelError:
		return target == LevelError
	}
	_ = loggerError.Output(2, fmt.Sprintf("unsupported log level set: %q", current))
	return false
}
