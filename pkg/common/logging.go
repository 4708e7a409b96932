// Package common holds the process-wide logger used by the client, the CLI
// and the gateway.
package common

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/AlexanderGrooff/kobe-client/pkg/config"
	"github.com/sirupsen/logrus"
)

// LogFormat names an output encoding for log entries.
type LogFormat string

const (
	LogFormatPlain LogFormat = "plain"
	LogFormatJSON  LogFormat = "json"
	// LogFormatYAML is key=value text with sorted keys and no colors.
	LogFormatYAML LogFormat = "yaml"
)

const timestampLayout = "2006-01-02 15:04:05"

var formatters = map[LogFormat]func(timestamps bool) logrus.Formatter{
	LogFormatPlain: func(ts bool) logrus.Formatter {
		return &logrus.TextFormatter{
			TimestampFormat:  timestampLayout,
			FullTimestamp:    ts,
			DisableTimestamp: !ts,
		}
	},
	LogFormatJSON: func(ts bool) logrus.Formatter {
		return &logrus.JSONFormatter{
			TimestampFormat:  timestampLayout,
			DisableTimestamp: !ts,
		}
	},
	LogFormatYAML: func(ts bool) logrus.Formatter {
		return &logrus.TextFormatter{
			DisableColors:    true,
			TimestampFormat:  timestampLayout,
			FullTimestamp:    ts,
			DisableTimestamp: !ts,
			SortingFunc:      sort.Strings,
		}
	},
}

var (
	logger = newLogger()

	mu         sync.RWMutex
	baseFields = logrus.Fields{}
)

// newLogger writes plain text to stderr; stdout carries task output.
func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(formatters[LogFormatPlain](true))
	return l
}

// Configure applies level, format and output file from cfg. An unknown level
// falls back to info with a warning; an unknown format is an error.
func Configure(cfg config.LoggingConfig) error {
	if err := SetLogFormat(cfg); err != nil {
		return err
	}
	SetLogLevel(cfg.Level)
	if cfg.File == "" {
		return nil
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", cfg.File, err)
	}
	logger.SetOutput(f)
	return nil
}

// SetLogFormat switches the formatter. Timestamps are dropped entirely when
// cfg.Timestamps is false.
func SetLogFormat(cfg config.LoggingConfig) error {
	build, ok := formatters[LogFormat(cfg.Format)]
	if !ok {
		known := make([]string, 0, len(formatters))
		for f := range formatters {
			known = append(known, string(f))
		}
		sort.Strings(known)
		return fmt.Errorf("invalid log format %q, expected one of %v", cfg.Format, known)
	}
	logger.SetFormatter(build(cfg.Timestamps))
	return nil
}

func SetLogLevel(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logger.WithField("level", level).Warn("Unknown log level, using info")
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
}

// SetLogOutput redirects log output, mostly for tests.
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetEndpoint tags every later entry with the kobe endpoint. Calling it again
// replaces the previous value.
func SetEndpoint(endpoint string) {
	mu.Lock()
	defer mu.Unlock()
	baseFields = logrus.Fields{"endpoint": endpoint}
}

func entry(extra map[string]interface{}) *logrus.Entry {
	mu.RLock()
	e := logger.WithFields(baseFields)
	mu.RUnlock()
	return e.WithFields(extra)
}

func LogDebug(msg string, fields map[string]interface{}) { entry(fields).Debug(msg) }

func LogInfo(msg string, fields map[string]interface{}) { entry(fields).Info(msg) }

func LogWarn(msg string, fields map[string]interface{}) { entry(fields).Warn(msg) }

func LogError(msg string, fields map[string]interface{}) { entry(fields).Error(msg) }
