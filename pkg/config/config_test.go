package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	assert.NoError(t, Load())

	assert.Equal(t, "8080", AppConfig.Server.Port)
	assert.Equal(t, "./platformhub.db", AppConfig.Database.Path)
	assert.False(t, AppConfig.Demo.Enabled)
	assert.Equal(t, []string{"http://localhost:3000"}, AppConfig.CORS.AllowedOrigins)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DEMO_MODE", "true")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("READ_TIMEOUT", "not-a-number")

	assert.NoError(t, Load())

	assert.Equal(t, "9090", AppConfig.Server.Port)
	assert.True(t, AppConfig.Demo.Enabled)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, AppConfig.CORS.AllowedOrigins)
	assert.Equal(t, 15, AppConfig.Server.ReadTimeout, "invalid values fall back to the default")
}
