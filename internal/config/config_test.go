package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Environment:     "development",
		DatabaseName:    "foodgram",
		JWTSecret:       defaultJWTSecret,
		DefaultPageSize: 6,
		MaxPageSize:     100,
	}
}

func TestValidate(t *testing.T) {
	t.Run("development accepts default secret", func(t *testing.T) {
		assert.NoError(t, validate(validConfig()))
	})

	t.Run("production rejects default secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.Environment = "production"
		err := validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})

	t.Run("production accepts custom secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.Environment = "production"
		cfg.JWTSecret = "a-real-secret"
		assert.NoError(t, validate(cfg))
	})

	t.Run("database name required", func(t *testing.T) {
		cfg := validConfig()
		cfg.DatabaseName = ""
		assert.Error(t, validate(cfg))
	})

	t.Run("page size bounds", func(t *testing.T) {
		cfg := validConfig()
		cfg.DefaultPageSize = 0
		assert.Error(t, validate(cfg))

		cfg = validConfig()
		cfg.MaxPageSize = 3
		assert.Error(t, validate(cfg))
	})
}

func TestBuildDatabaseURL(t *testing.T) {
	cfg := &Config{
		DatabaseUser:     "chef",
		DatabasePassword: "secret",
		DatabaseHost:     "db",
		DatabasePort:     "5433",
		DatabaseName:     "foodgram",
		DatabaseSSLMode:  "require",
	}
	assert.Equal(t, "postgres://chef:secret@db:5433/foodgram?sslmode=require", buildDatabaseURL(cfg))
}

func TestLoad(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "pg.internal")
	t.Setenv("DEFAULT_PAGE_SIZE", "10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Environment)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 10, cfg.DefaultPageSize)
	assert.Equal(t, 100, cfg.MaxPageSize)
	assert.Equal(t, "Shopping list from Foodgram:", cfg.ShoppingListHeader)
	assert.Contains(t, cfg.DatabaseURL, "@pg.internal:5432/foodgram")
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
}
