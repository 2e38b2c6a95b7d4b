// Package logging holds the logrus plumbing shared by the shortest-path
// engines: a discard default and component-scoped entries.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Discard returns a logger that drops every entry.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.Out = io.Discard

	return l
}

// For scopes logger to a component. A nil logger yields a discarding one.
func For(logger logrus.FieldLogger, component string) logrus.FieldLogger {
	if logger == nil {
		logger = Discard()
	}

	return logger.WithField("component", component)
}
