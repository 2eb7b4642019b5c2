package logger

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// New builds a logger writing to out. level is a logrus level name and
// falls back to info; format "json" selects JSON output, anything else
// the text formatter with full timestamps.
func New(out io.Writer, level, format string) *logrus.Logger {
	log := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	log.SetOutput(out)
	return log
}

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// Discard returns a shared logger that drops every entry.
func Discard() *logrus.Logger { return discard }
