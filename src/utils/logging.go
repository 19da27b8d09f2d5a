package utils

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

type LogFormatter struct {
	logrus.TextFormatter
}

func (s *LogFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Local().Format("2006-01-02 15:04:05")

	msg := fmt.Sprintf("%s [%s] %s\n", timestamp, strings.ToUpper(entry.Level.String()), entry.Message)
	return []byte(msg), nil
}

var logger *logrus.Logger

// GetLogger returns the process-wide logger. Every package shares one
// instance so the --log-level flag applies everywhere.
func GetLogger() *logrus.Logger {
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.InfoLevel)

		customFormatter := new(LogFormatter)
		logger.SetFormatter(customFormatter)
	}
	return logger
}

// SetLogLevel applies the --log-level flag value. Unknown values fall back
// to INFO.
func SetLogLevel(logger *logrus.Logger, logLevel string) {
	switch strings.ToUpper(logLevel) {
	case "TRACE":
		logger.SetLevel(logrus.TraceLevel)
	case "DEBUG":
		logger.SetLevel(logrus.DebugLevel)
	case "INFO":
		logger.SetLevel(logrus.InfoLevel)
	case "WARN":
		logger.SetLevel(logrus.WarnLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}
}
