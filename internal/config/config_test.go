package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, "data/projects.json", cfg.ProjectsSource)
	assert.Equal(t, "static/index.html", cfg.PagePath)
	assert.Equal(t, "static", cfg.StaticDir)
	assert.Equal(t, "#projects .grid", cfg.GridSelector)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.False(t, cfg.StrictProjects)
	assert.Empty(t, cfg.OTelEndpoint)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("PROJECTS_SOURCE", "https://example.com/projects.json")
	t.Setenv("FETCH_TIMEOUT", "2s")
	t.Setenv("STRICT_PROJECTS", "true")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.ServerAddr)
	assert.Equal(t, "https://example.com/projects.json", cfg.ProjectsSource)
	assert.Equal(t, 2*time.Second, cfg.FetchTimeout)
	assert.True(t, cfg.StrictProjects)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadDotenvDoesNotOverrideEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GRID_SELECTOR=\"#work .cards\"\nSERVER_ADDR=:7000\n"), 0o644))

	t.Setenv("SERVER_ADDR", ":6000")
	// Registered so the value set by godotenv is cleared after the test.
	t.Setenv("GRID_SELECTOR", "")
	require.NoError(t, os.Unsetenv("GRID_SELECTOR"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "#work .cards", cfg.GridSelector)
	assert.Equal(t, ":6000", cfg.ServerAddr)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad duration", "FETCH_TIMEOUT", "soon"},
		{"bad bool", "STRICT_PROJECTS", "maybe"},
		{"bad log format", "LOG_FORMAT", "xml"},
		{"bad log level", "LOG_LEVEL", "loud"},
		{"negative timeout", "FETCH_TIMEOUT", "-1s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestNewLoggerJSON(t *testing.T) {
	cfg := &Config{LogLevel: "debug", LogFormat: "json"}
	var buf bytes.Buffer

	cfg.NewLogger(&buf).Debug("hello", "cards", 3)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, float64(3), line["cards"])
}

func TestNewLoggerFiltersByLevel(t *testing.T) {
	cfg := &Config{LogLevel: "warn", LogFormat: "text"}
	var buf bytes.Buffer

	logger := cfg.NewLogger(&buf)
	logger.Info("dropped")
	logger.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}
