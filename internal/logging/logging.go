package logging

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ammica/fuel-backend/internal/config"
)

// Setup configures the logrus standard logger from cfg. Unknown levels fall
// back to info.
func Setup(cfg *config.LogConfig, out io.Writer) *logrus.Logger {
	logger := logrus.StandardLogger()
	if out != nil {
		logger.SetOutput(out)
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logger.Warnf("invalid log level %q, using info", cfg.Level)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if strings.EqualFold(cfg.Format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
