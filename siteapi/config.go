package siteapi

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/pydis/site-api/siteapi/config"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

type Config struct {
	Log   LogConfig   `toml:"log"`
	DB    DBConfig    `toml:"db"`
	Web   WebConfig   `toml:"web"`
	Cache CacheConfig `toml:"cache"`
}

type LogConfig struct {
	Level slog.Level `toml:"level"`
}

type DBConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	Database     string `toml:"database"`
	SSLMode      string `toml:"ssl_mode"`
	PoolSize     int    `toml:"pool_size"`
	MaxIdleConns int    `toml:"max_idle_conns"`
	MaxLifetime  int    `toml:"max_lifetime"`
}

type WebConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	AllowOrigins string `toml:"allow_origins"`
}

type CacheConfig struct {
	UserCacheSize int `toml:"user_cache_size"`
}

func (c *Config) applyDefaults() {
	if c.DB.Host == "" {
		c.DB.Host = "localhost"
	}
	if c.DB.Port == 0 {
		c.DB.Port = 5432
	}
	if c.DB.SSLMode == "" {
		c.DB.SSLMode = "disable"
	}
	if c.Web.Host == "" {
		c.Web.Host = "0.0.0.0"
	}
	if c.Web.Port == 0 {
		c.Web.Port = 8000
	}
	if c.Cache.UserCacheSize <= 0 {
		c.Cache.UserCacheSize = config.DefaultUserCacheSize
	}
}
