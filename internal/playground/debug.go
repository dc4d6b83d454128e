// Package playground provides the package logger and its debug switch.
//
// This file defines the logrus logger used by the server, persistence and
// config watcher. SetDebug turns on per-request logging.
package playground

import (
	"io"

	"github.com/sirupsen/logrus"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetDebug enables or disables debug logging.
func SetDebug(enabled bool) {
	if enabled {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
}

// SetLogOutput redirects the playground logs, e.g. to io.Discard in tests.
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}
