package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("RECORD_API_URL", "http://localhost:3333")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, http://app.local")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, "http://localhost:3333", cfg.RecordAPIURL)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
	assert.Equal(t, []string{"http://localhost:3000", "http://app.local"}, cfg.CORSOrigins)
}

func TestLoadConfigDefaultPort(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("RECORD_API_URL", "http://localhost:3333")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("REDIS_URL", "redis://localhost:6379")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
}

func TestLoadConfigMissingRecordAPI(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("RECORD_API_URL", "")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("REDIS_URL", "redis://localhost:6379")

	cfg, err := LoadConfig()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidateConfigRejectsBadURL(t *testing.T) {
	cfg := &Config{
		RecordAPIURL: "not-a-url",
		JWTSecret:    "s",
		RedisURL:     "redis://localhost:6379",
	}
	assert.Error(t, ValidateConfig(cfg))
}

func TestValidateConfigRedisHostPort(t *testing.T) {
	cfg := &Config{
		RecordAPIURL: "http://localhost:3333",
		JWTSecret:    "s",
		RedisHost:    "localhost",
		RedisPort:    "6379",
	}
	assert.NoError(t, ValidateConfig(cfg))
}
