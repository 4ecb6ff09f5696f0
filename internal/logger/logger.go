// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger configures structured logging for the CLI. User-facing
// output goes to stdout via the command layer; logs go to stderr and stay
// quiet unless verbose mode is on.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

func init() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})
	logrus.SetLevel(logrus.WarnLevel)
}

// Setup raises the log level to debug when verbose is set.
func Setup(verbose bool) {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

// For returns an entry tagged with the originating component.
func For(component string) *logrus.Entry {
	return logrus.WithField("component", component)
}
