package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, BackendMemory, cfg.StoreBackend)
	assert.False(t, cfg.AuthEnabled())
}

func TestLoadFileYAML(t *testing.T) {
	path := writeFile(t, "tostreak.yaml", `
port: "9090"
store_backend: mongo
mongo:
  uri: mongodb://db:27017
  database: habits
  max_conn_idle_time: 2m
events:
  sink_url: http://sink.local/events
`)

	cfg := Default()
	require.NoError(t, cfg.LoadFile(path))

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, BackendMongo, cfg.StoreBackend)
	assert.Equal(t, "mongodb://db:27017", cfg.Mongo.URI)
	assert.Equal(t, "habits", cfg.Mongo.DatabaseName)
	assert.Equal(t, 2*time.Minute, cfg.Mongo.MaxConnIdleTime)
	assert.Equal(t, "kv", cfg.Mongo.KVCollection, "unset fields keep defaults")
	assert.Equal(t, "http://sink.local/events", cfg.Events.SinkURL)
}

func TestLoadFileTOML(t *testing.T) {
	path := writeFile(t, "tostreak.toml", `
store_backend = "redis"
log_level = "debug"

[redis]
url = "redis://cache:6379/0"
key_prefix = "habits:"
`)

	cfg := Default()
	require.NoError(t, cfg.LoadFile(path))

	assert.Equal(t, BackendRedis, cfg.StoreBackend)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "redis://cache:6379/0", cfg.Redis.URL)
	assert.Equal(t, "habits:", cfg.Redis.KeyPrefix)
}

func TestLoadFileRejectsUnknownFormat(t *testing.T) {
	path := writeFile(t, "tostreak.ini", "port=1")
	err := Default().LoadFile(path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "tostreak.yaml", "port: \"9090\"\nstore_backend: memory\n")
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "7070")
	t.Setenv("STORE_BACKEND", "REDIS")
	t.Setenv("REDIS_URL", "redis://localhost:6379/1")
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("JWT_EXPIRATION_TIME", "3600")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,https://app.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, BackendRedis, cfg.StoreBackend)
	assert.Equal(t, "redis://localhost:6379/1", cfg.Redis.URL)
	assert.True(t, cfg.AuthEnabled())
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, []string{"http://localhost:5173", "https://app.example"}, cfg.CORSAllowedOrigins)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"unknown backend", func(c *Config) { c.StoreBackend = "sqlite" }, ErrUnknownBackend},
		{"redis without url", func(c *Config) { c.StoreBackend = BackendRedis }, ErrMissingRedisURL},
		{"mongo without uri", func(c *Config) { c.StoreBackend = BackendMongo; c.Mongo.URI = "" }, ErrMissingMongoURI},
		{"zero body limit", func(c *Config) { c.MaxBodyBytes = 0 }, ErrInvalidBodyLimit},
		{"empty schedule", func(c *Config) { c.StreakDecaySchedule = " " }, ErrMissingDecayPeriod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}
}
