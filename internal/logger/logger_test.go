package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcosic/portfolio/internal/config"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(config.Config{LogLevel: "warn", LogFormat: "json"}, &buf)

	assert.Equal(t, logrus.WarnLevel, l.GetLevel())
	l.Info("dropped")
	l.WithField("section", "works").Warn("kept")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "works", entry["section"])
}

func TestNewFallsBackToInfo(t *testing.T) {
	l := New(config.Config{LogLevel: "loud", LogFormat: "text"}, &bytes.Buffer{})
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
	assert.False(t, l.ReportCaller)
	assert.IsType(t, &logrus.TextFormatter{}, l.Formatter)
}

func TestDebugReportsCaller(t *testing.T) {
	l := New(config.Config{LogLevel: "debug", LogFormat: "json"}, &bytes.Buffer{})
	assert.True(t, l.ReportCaller)
}
