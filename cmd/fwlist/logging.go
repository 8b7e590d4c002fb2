package main

import (
	"io"

	"github.com/sirupsen/logrus"
)

const component = "fwlist"

// newLogger returns a JSON logger tagging every entry with the component.
func newLogger(w io.Writer, level logrus.Level) *logrus.Entry {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "timestamp",
			logrus.FieldKeyMsg:  "message",
		},
	})
	return l.WithField("component", component)
}

// loggerFrom extracts the logger passed to Execute, falling back to a
// discarding one.
func loggerFrom(args []interface{}) *logrus.Entry {
	if len(args) > 0 {
		if log, ok := args[0].(*logrus.Entry); ok {
			return log
		}
	}
	return newLogger(io.Discard, logrus.PanicLevel)
}
