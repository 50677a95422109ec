package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	cfg := FromViper(v)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "model.json", cfg.ModelPath)
	assert.Equal(t, ClassifierModel, cfg.Classifier)
	assert.Equal(t, 60, cfg.JWTTTLMinutes)
	assert.Equal(t, int64(15<<20), cfg.MaxUploadBytes)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.False(t, cfg.HasStore())
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SQLITE_PATH", "/tmp/resumes.db")
	t.Setenv("CLASSIFIER", " LLM ")
	t.Setenv("JWT_TTL_MINUTES", "15")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg := FromViper(newViper())

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/tmp/resumes.db", cfg.SQLitePath)
	assert.True(t, cfg.HasStore())
	assert.Equal(t, ClassifierLLM, cfg.Classifier)
	assert.Equal(t, 15, cfg.JWTTTLMinutes)
	assert.Equal(t, int64(1024), cfg.MaxUploadBytes)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("JWT_TTL_MINUTES", "-3")
	t.Setenv("MAX_UPLOAD_BYTES", "0")

	cfg := FromViper(newViper())
	assert.Equal(t, 60, cfg.JWTTTLMinutes)
	assert.Equal(t, int64(15<<20), cfg.MaxUploadBytes)
}
