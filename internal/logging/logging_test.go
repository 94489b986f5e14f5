package logging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"minesweeper/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(config.Default(), &buf)
	require.NoError(t, err)

	log.Debug("hidden")
	log.WithField("rows", 9).Info("visible")

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")
	assert.Contains(t, buf.String(), "rows=9")
}

func TestNewDebugLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Debug = true

	var buf bytes.Buffer
	log, err := New(cfg, &buf)
	require.NoError(t, err)

	log.Debug("details")
	assert.Contains(t, buf.String(), "details")
}

func TestNewWithLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "minesweeper.log")

	log, err := New(cfg, io.Discard)
	require.NoError(t, err)

	log.Info("written to file")

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}
