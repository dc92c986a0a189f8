package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		JWTSecret:  "secure-secret-at-least-32-chars-long",
		Port:       "8080",
		DBPassword: "secure-password",
		DBSSLMode:  "require",
		RedisURL:   "redis://localhost:6379",
		Env:        "development",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"valid development config", func(c *Config) {}, false},
		{"missing port", func(c *Config) { c.Port = "" }, true},
		{"missing jwt secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"short jwt secret allowed outside production", func(c *Config) { c.JWTSecret = "short" }, false},
		{"default jwt secret rejected in production", func(c *Config) {
			c.Env = "production"
			c.JWTSecret = "your-secret-key-change-in-production"
		}, true},
		{"short jwt secret rejected in production", func(c *Config) {
			c.Env = "production"
			c.JWTSecret = "short-but-not-default"
		}, true},
		{"default db password rejected in production", func(c *Config) {
			c.Env = "production"
			c.DBPassword = "password"
		}, true},
		{"strong production config accepted", func(c *Config) { c.Env = "production" }, false},
		{"prod alias enforced like production", func(c *Config) {
			c.Env = "prod"
			c.DBPassword = ""
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
