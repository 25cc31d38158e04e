package logger

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dcosic/portfolio/internal/config"
)

// New returns a logrus logger configured from cfg. Output goes to stderr
// unless w is non-nil.
func New(cfg config.Config, w io.Writer) *logrus.Logger {
	l := logrus.New()
	if w == nil {
		w = os.Stderr
	}
	l.Out = w

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)
	l.SetReportCaller(level >= logrus.DebugLevel)

	if cfg.LogFormat == "text" {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	} else {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	}
	return l
}
