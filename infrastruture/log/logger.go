// Package log provides the colored, prefixed loggers used across the application.
package log

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/beka-birhanu/vinom-explorer/config"
)

var ErrNilWriter = errors.New("logger writer is nil")

// Logger writes "[PREFIX] [LEVEL] message" lines.
type Logger struct {
	info    *log.Logger
	warning *log.Logger
	error   *log.Logger
}

// New creates a Logger tagged with prefix, painted in color.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	tag := fmt.Sprintf("%s[%s]%s ", color, strings.ToUpper(prefix), config.ColorReset)
	flags := log.LstdFlags | log.Lmsgprefix

	return &Logger{
		info:    log.New(w, tag+config.LogInfoColor+"[INFO]"+config.LogColorReset+" ", flags),
		warning: log.New(w, tag+config.LogWarningColor+"[WARNING]"+config.LogColorReset+" ", flags),
		error:   log.New(w, tag+config.LogErrorColor+"[ERROR]"+config.LogColorReset+" ", flags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.info.Println(msg)
}

// Warning logs something unexpected that did not stop the operation.
func (l *Logger) Warning(msg string) {
	l.warning.Println(msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.error.Println(msg)
}
