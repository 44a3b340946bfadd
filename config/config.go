package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tostreak/utils"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	BackendMemory = "memory"
	BackendMongo  = "mongo"
	BackendRedis  = "redis"
)

var (
	ErrUnknownBackend     = errors.New("unknown store backend")
	ErrMissingRedisURL    = errors.New("REDIS_URL is required for the redis backend")
	ErrMissingMongoURI    = errors.New("MONGO_URI is required for the mongo backend")
	ErrUnsupportedFormat  = errors.New("unsupported config file format")
	ErrInvalidBodyLimit   = errors.New("MAX_BODY_BYTES must be positive")
	ErrMissingDecayPeriod = errors.New("STREAK_DECAY_SCHEDULE cannot be empty")
)

type RedisConfig struct {
	URL       string `yaml:"url" toml:"url"`
	KeyPrefix string `yaml:"key_prefix" toml:"key_prefix"`
}

type AuthConfig struct {
	// JWTSecret enables the bearer-token gate on /api when set.
	JWTSecret string        `yaml:"jwt_secret" toml:"jwt_secret"`
	TokenTTL  time.Duration `yaml:"token_ttl" toml:"token_ttl"`
}

type EventsConfig struct {
	SinkURL string `yaml:"sink_url" toml:"sink_url"`
	Source  string `yaml:"source" toml:"source"`
}

type Config struct {
	Port                string         `yaml:"port" toml:"port"`
	GinMode             string         `yaml:"gin_mode" toml:"gin_mode"`
	LogLevel            string         `yaml:"log_level" toml:"log_level"`
	MaxBodyBytes        int64          `yaml:"max_body_bytes" toml:"max_body_bytes"`
	StoreBackend        string         `yaml:"store_backend" toml:"store_backend"`
	StreakDecaySchedule string         `yaml:"streak_decay_schedule" toml:"streak_decay_schedule"`
	Mongo               DatabaseConfig `yaml:"mongo" toml:"mongo"`
	Redis               RedisConfig    `yaml:"redis" toml:"redis"`
	Auth                AuthConfig     `yaml:"auth" toml:"auth"`
	Events              EventsConfig   `yaml:"events" toml:"events"`

	// CORSAllowedOrigins limits cross-origin access. Empty allows any origin
	// without credentials.
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins" toml:"cors_allowed_origins"`
}

func Default() *Config {
	return &Config{
		Port:                "8080",
		GinMode:             "release",
		LogLevel:            "info",
		MaxBodyBytes:        1 << 20,
		StoreBackend:        BackendMemory,
		StreakDecaySchedule: "CRON_TZ=UTC 0 0 * * *",
		Mongo:               DefaultDatabaseConfig(),
		Redis:               RedisConfig{KeyPrefix: "tostreak:"},
		Auth:                AuthConfig{TokenTTL: 30 * 24 * time.Hour},
		Events:              EventsConfig{Source: "/tostreak"},
	}
}

// Load reads .env (if present), then CONFIG_FILE (if set), then environment
// variables, each layer overriding the previous one.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile decodes a YAML (.yaml, .yml) or TOML (.toml) file over cfg.
func (cfg *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		_, err = toml.Decode(string(data), cfg)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

func (cfg *Config) ApplyEnv() {
	cfg.Port = utils.GetEnvAsString("PORT", cfg.Port)
	cfg.GinMode = utils.GetEnvAsString("GIN_MODE", cfg.GinMode)
	cfg.LogLevel = utils.GetEnvAsString("LOG_LEVEL", cfg.LogLevel)
	cfg.MaxBodyBytes = utils.GetEnvAsInt64("MAX_BODY_BYTES", cfg.MaxBodyBytes)
	cfg.StoreBackend = strings.ToLower(utils.GetEnvAsString("STORE_BACKEND", cfg.StoreBackend))
	cfg.StreakDecaySchedule = utils.GetEnvAsString("STREAK_DECAY_SCHEDULE", cfg.StreakDecaySchedule)
	cfg.CORSAllowedOrigins = utils.GetEnvAsList("CORS_ALLOWED_ORIGINS", cfg.CORSAllowedOrigins)

	cfg.Mongo = LoadDatabaseConfig(cfg.Mongo)

	cfg.Redis.URL = utils.GetEnvAsString("REDIS_URL", cfg.Redis.URL)
	cfg.Redis.KeyPrefix = utils.GetEnvAsString("REDIS_KEY_PREFIX", cfg.Redis.KeyPrefix)

	cfg.Auth.JWTSecret = utils.GetEnvAsString("JWT_SECRET_KEY", cfg.Auth.JWTSecret)
	cfg.Auth.TokenTTL = utils.GetEnvAsDuration("JWT_EXPIRATION_TIME", cfg.Auth.TokenTTL)

	cfg.Events.SinkURL = utils.GetEnvAsString("EVENTS_SINK_URL", cfg.Events.SinkURL)
	cfg.Events.Source = utils.GetEnvAsString("EVENTS_SOURCE", cfg.Events.Source)
}

func (cfg *Config) Validate() error {
	switch cfg.StoreBackend {
	case BackendMemory:
	case BackendMongo:
		if cfg.Mongo.URI == "" {
			return ErrMissingMongoURI
		}
	case BackendRedis:
		if cfg.Redis.URL == "" {
			return ErrMissingRedisURL
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.StoreBackend)
	}

	if cfg.MaxBodyBytes <= 0 {
		return ErrInvalidBodyLimit
	}
	if strings.TrimSpace(cfg.StreakDecaySchedule) == "" {
		return ErrMissingDecayPeriod
	}
	return nil
}

// AuthEnabled reports whether the API requires bearer tokens.
func (cfg *Config) AuthEnabled() bool {
	return cfg.Auth.JWTSecret != ""
}
