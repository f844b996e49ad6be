package logger

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// New returns a logger writing to stderr at the given level.
func New(lvl logrus.Level) *logrus.Logger {
	return NewWithOutput(os.Stderr, lvl)
}

// NewWithOutput returns a logger writing to out at the given level.
func NewWithOutput(out io.Writer, lvl logrus.Level) *logrus.Logger {
	formatter := prefixed.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.Stamp,
		ForceFormatting: true,
	}
	return &logrus.Logger{
		Out:       out,
		Formatter: &formatter,
		Level:     lvl,
		Hooks:     make(logrus.LevelHooks),
		ExitFunc:  os.Exit,
	}
}
