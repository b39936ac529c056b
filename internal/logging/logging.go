package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"quickcal/internal/config"
)

// locationFormatter renders entry timestamps in a fixed location.
type locationFormatter struct {
	next logrus.Formatter
	loc  *time.Location
}

func (f *locationFormatter) Format(e *logrus.Entry) ([]byte, error) {
	e.Time = e.Time.In(f.loc)
	return f.next.Format(e)
}

// New builds the application logger writing to stdout.
func New(cfg config.LogConfig, loc *time.Location) *logrus.Logger {
	return NewWithWriter(os.Stdout, cfg, loc)
}

// NewWithWriter builds a logger writing to w. JSON lines carry "ts", "level"
// and "msg" keys; unknown levels fall back to info.
func NewWithWriter(w io.Writer, cfg config.LogConfig, loc *time.Location) *logrus.Logger {
	if loc == nil {
		loc = time.UTC
	}

	logger := logrus.New()
	logger.SetOutput(w)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	var f logrus.Formatter
	switch strings.ToLower(cfg.Format) {
	case "text":
		f = &logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339Nano}
	default:
		f = &logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "ts",
			},
		}
	}
	logger.SetFormatter(&locationFormatter{next: f, loc: loc})

	if err != nil && cfg.Level != "" {
		logger.WithField("level_value", cfg.Level).Warn("invalid log level, using info")
	}
	return logger
}
