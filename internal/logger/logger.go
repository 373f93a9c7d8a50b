// Package logger is the process-wide logger for sercha-captions.
// Debug, Info, Warn and Section output appears only in verbose mode
// (--verbose); Error output always appears.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

// state guards the destination and verbosity shared by all callers.
var state = struct {
	sync.RWMutex
	verbose bool
	out     io.Writer
}{out: os.Stderr}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	state.Lock()
	state.verbose = v
	state.Unlock()
}

// IsVerbose reports whether verbose logging is on.
func IsVerbose() bool {
	state.RLock()
	defer state.RUnlock()
	return state.verbose
}

// SetOutput sets the writer for log lines. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	state.Lock()
	state.out = w
	state.Unlock()
}

// Debug logs detail useful when diagnosing a run.
func Debug(format string, args ...any) { write(levelDebug, format, args...) }

// Info logs progress.
func Info(format string, args ...any) { write(levelInfo, format, args...) }

// Warn logs a recoverable problem.
func Warn(format string, args ...any) { write(levelWarn, format, args...) }

// Error logs a failure. It is printed even when verbose mode is off.
func Error(format string, args ...any) { write(levelError, format, args...) }

// Section prints a "=== name ===" header in verbose mode.
func Section(name string) {
	state.RLock()
	defer state.RUnlock()
	if state.verbose {
		fmt.Fprintf(state.out, "\n=== %s ===\n", name)
	}
}

func write(l level, format string, args ...any) {
	state.RLock()
	defer state.RUnlock()
	if l < levelError && !state.verbose {
		return
	}
	fmt.Fprintf(state.out, "[%s] %s\n", levelNames[l], fmt.Sprintf(format, args...))
}
