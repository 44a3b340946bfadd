package config

import (
	"time"

	"tostreak/utils"
)

type DatabaseConfig struct {
	URI             string        `yaml:"uri" toml:"uri"`
	MaxPoolSize     uint64        `yaml:"max_pool_size" toml:"max_pool_size"`
	MinPoolSize     uint64        `yaml:"min_pool_size" toml:"min_pool_size"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" toml:"max_conn_idle_time"`
	DatabaseName    string        `yaml:"database" toml:"database"`
	KVCollection    string        `yaml:"kv_collection" toml:"kv_collection"`
	RetryWrites     bool          `yaml:"retry_writes" toml:"retry_writes"`
}

func DefaultDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		URI:             "mongodb://localhost:27017",
		MaxPoolSize:     100,
		MinPoolSize:     10,
		MaxConnIdleTime: 60 * time.Second,
		DatabaseName:    "tostreak",
		KVCollection:    "kv",
		RetryWrites:     true,
	}
}

// LoadDatabaseConfig overlays MONGO_* environment variables on base.
func LoadDatabaseConfig(base DatabaseConfig) DatabaseConfig {
	return DatabaseConfig{
		URI:             utils.GetEnvAsString("MONGO_URI", base.URI),
		MaxPoolSize:     utils.GetEnvAsUint64("MONGO_MAX_POOL_SIZE", base.MaxPoolSize),
		MinPoolSize:     utils.GetEnvAsUint64("MONGO_MIN_POOL_SIZE", base.MinPoolSize),
		MaxConnIdleTime: utils.GetEnvAsDuration("MONGO_MAX_CONN_IDLE_TIME", base.MaxConnIdleTime),
		DatabaseName:    utils.GetEnvAsString("MONGO_DB", base.DatabaseName),
		KVCollection:    utils.GetEnvAsString("KV_COLLECTION", base.KVCollection),
		RetryWrites:     utils.GetEnvAsBool("MONGO_RETRY_WRITES", base.RetryWrites),
	}
}
