// Package log provides structured logging with filesystem-based persistence.
//
// Logging is off unless the logs.write key is set; every call is a no-op until Setup enables it.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/boxkit/boxkit/filesystem"
	"github.com/boxkit/boxkit/key"
	"github.com/boxkit/boxkit/where"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Fields is a set of structured log attributes.
type Fields = logrus.Fields

var (
	enabled bool
	logger  = logrus.New()
)

// Setup opens the daily log file and applies the configured format and level.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	path := filepath.Join(dir, fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))
	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	configure(f)
	return nil
}

func configure(out io.Writer) {
	logger.SetOutput(out)

	if viper.GetBool(key.LogsJson) {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
}

// With returns an entry carrying fields, or a discarding entry when logging is disabled.
func With(fields Fields) *logrus.Entry {
	if !enabled {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		return discard.WithFields(fields)
	}
	return logger.WithFields(fields)
}

func Error(args ...any) {
	if enabled {
		logger.Error(args...)
	}
}
func Errorf(format string, args ...any) {
	if enabled {
		logger.Errorf(format, args...)
	}
}
func Warn(args ...any) {
	if enabled {
		logger.Warn(args...)
	}
}
func Warnf(format string, args ...any) {
	if enabled {
		logger.Warnf(format, args...)
	}
}
func Info(args ...any) {
	if enabled {
		logger.Info(args...)
	}
}
func Infof(format string, args ...any) {
	if enabled {
		logger.Infof(format, args...)
	}
}
func Debug(args ...any) {
	if enabled {
		logger.Debug(args...)
	}
}
func Debugf(format string, args ...any) {
	if enabled {
		logger.Debugf(format, args...)
	}
}
