package app

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger creates an isolated logger. It never touches the logrus
// standard logger.
func NewLogger(levelStr, formatStr string, w io.Writer) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(w)

	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if formatStr == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logrus.NewEntry(logger)
}
