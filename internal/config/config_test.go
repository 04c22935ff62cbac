package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "EVALUATOR_BASE_URL", "BACKEND_URL", "COMPLETION_PROVIDER",
		"COMPLETION_MAX_TOKENS", "COMPLETION_TEMPERATURE", "DB_ENABLED", "EVALUATOR_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "http://localhost:8000", cfg.Evaluator.BaseURL)
	assert.Equal(t, 60*time.Second, cfg.Evaluator.Timeout)
	assert.Equal(t, "openai", cfg.Completion.Provider)
	assert.Equal(t, 2000, cfg.Completion.MaxTokens)
	assert.InDelta(t, 0.7, cfg.Completion.Temperature, 0.0001)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "authorization, x-client-info, apikey, content-type", cfg.CORS.AllowHeaders)
}

func TestLoad_BackendURLAlias(t *testing.T) {
	t.Setenv("EVALUATOR_BASE_URL", "")
	t.Setenv("BACKEND_URL", "https://eval.example.com")

	cfg := Load()
	assert.Equal(t, "https://eval.example.com", cfg.Evaluator.BaseURL)

	t.Setenv("EVALUATOR_BASE_URL", "https://primary.example.com")
	cfg = Load()
	assert.Equal(t, "https://primary.example.com", cfg.Evaluator.BaseURL)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("COMPLETION_MAX_TOKENS", "lots")
	t.Setenv("EVALUATOR_TIMEOUT", "soon")
	t.Setenv("DB_ENABLED", "maybe")

	cfg := Load()
	assert.Equal(t, 2000, cfg.Completion.MaxTokens)
	assert.Equal(t, 60*time.Second, cfg.Evaluator.Timeout)
	assert.False(t, cfg.Database.Enabled)
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: "6543", User: "u", Password: "p", DBName: "school", SSLMode: "require",
	}}
	assert.Equal(t, "host=db port=6543 user=u password=p dbname=school sslmode=require", cfg.GetDatabaseDSN())
}
