// Package logging builds the process logger from configuration.
package logging

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"alfredoptarigan/job-analyzer/internal/config"
)

// New returns a logger writing to stdout. Development defaults to the text
// formatter, every other environment to JSON, unless LOG_FORMAT says otherwise.
func New(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	format := strings.ToLower(cfg.Log.Format)
	if format == "" {
		format = "json"
		if cfg.IsDevelopment() {
			format = "text"
		}
	}

	switch format {
	case "text":
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	default:
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	return log
}
