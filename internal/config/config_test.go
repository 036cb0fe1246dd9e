package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "LOG_LEVEL", "LOG_FORMAT", "MAX_UPLOAD_MB", "CORS_ORIGINS", "PARSE_TIMEOUT"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, 10, cfg.MaxUploadMB)
	assert.Equal(t, 10*1024*1024, cfg.MaxUploadBytes())
	assert.Equal(t, "*", cfg.CORSOrigins)
	assert.Equal(t, 30*time.Second, cfg.ParseTimeout)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("MAX_UPLOAD_MB", "25")
	t.Setenv("CORS_ORIGINS", "https://example.com")
	t.Setenv("PARSE_TIMEOUT", "5s")

	cfg := Load()
	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 25, cfg.MaxUploadMB)
	assert.Equal(t, "https://example.com", cfg.CORSOrigins)
	assert.Equal(t, 5*time.Second, cfg.ParseTimeout)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("MAX_UPLOAD_MB", "-3")
	t.Setenv("PARSE_TIMEOUT", "soon")

	cfg := Load()
	assert.Equal(t, 10, cfg.MaxUploadMB)
	assert.Equal(t, 30*time.Second, cfg.ParseTimeout)
}
