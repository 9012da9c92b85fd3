// Package log provides a global logger with configurable logging level and outputs. The tools in
// this module log to stdout and, optionally, to a log file in the working directory.

package log

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type Level int

const (
	LevelNone    Level = iota // Disables logging.
	LevelError                // Logs anomalies that are not expected to occur during normal use.
	LevelWarning              // Logs anomalies that are expected to occur occasionally during normal use.
	LevelInfo                 // Logs major events.
	LevelDebug                // Logs detailed IO
)

var globalLogLevel Level
var logMutex sync.Mutex
var logger = newLogger(os.Stderr)

var levels = map[Level]zerolog.Level{
	LevelDebug:   zerolog.DebugLevel,
	LevelInfo:    zerolog.InfoLevel,
	LevelWarning: zerolog.WarnLevel,
	LevelError:   zerolog.ErrorLevel,
}

func newLogger(writers ...io.Writer) zerolog.Logger {
	var sinks []io.Writer
	for _, w := range writers {
		sinks = append(sinks, zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.RFC3339})
	}
	return zerolog.New(zerolog.MultiLevelWriter(sinks...)).With().Timestamp().Logger()
}

func SetLevel(level Level) {
	logMutex.Lock()
	defer logMutex.Unlock()
	globalLogLevel = level
}

// SetOutput replaces the log destinations. Every line is written to each of writers.
func SetOutput(writers ...io.Writer) {
	logMutex.Lock()
	defer logMutex.Unlock()
	logger = newLogger(writers...)
}

// OpenFile directs logging to stdout and to filename (opened for appending). The caller must close
// the returned file once logging is no longer needed.
func OpenFile(filename string) (*os.File, error) {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	SetOutput(os.Stdout, file)
	return file, nil
}

func current() (Level, zerolog.Logger) {
	logMutex.Lock()
	defer logMutex.Unlock()
	return globalLogLevel, logger
}

func log(level Level, format string, a ...interface{}) {
	threshold, l := current()
	if level <= threshold {
		l.WithLevel(levels[level]).Msgf(format, a...)
	}
}

func Debug(format string, a ...interface{}) {
	log(LevelDebug, format, a...)
}
func Info(format string, a ...interface{}) {
	log(LevelInfo, format, a...)
}
func Warning(format string, a ...interface{}) {
	log(LevelWarning, format, a...)
}
func Error(format string, a ...interface{}) {
	log(LevelError, format, a...)
}

type lineWriter struct {
	level Level
}

func (w lineWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if line != "" {
			log(w.level, "%s", line)
		}
	}
	return len(p), nil
}

// Writer returns an io.Writer that logs each line written to it at level.
func Writer(level Level) io.Writer {
	return lineWriter{level: level}
}
