package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"alfredoptarigan/job-analyzer/internal/config"
)

func TestNew_DevelopmentUsesText(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{Env: "development"},
		Log:    config.LogConfig{Level: "debug"},
	}

	log := New(cfg)

	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)
}

func TestNew_ProductionUsesJSON(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{Env: "production"},
		Log:    config.LogConfig{Level: "not-a-level"},
	}

	log := New(cfg)

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)
}

func TestNew_ExplicitFormat(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{Env: "production"},
		Log:    config.LogConfig{Level: "warn", Format: "TEXT"},
	}

	log := New(cfg)

	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)
}
