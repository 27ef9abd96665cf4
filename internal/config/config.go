package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"dailyquest/internal/storage"
)

// Backend names accepted by DQ_BACKEND.
const (
	BackendSQLite = "sqlite"
	BackendBolt   = "bbolt"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config is the runtime configuration of the dq binary.
type Config struct {
	Backend string `env:"DQ_BACKEND" envDefault:"sqlite"`
	// DBPath overrides the sqlite/bbolt file location. Empty means
	// ~/.dailyquest.db (or .bolt).
	DBPath string `env:"DQ_DB_PATH"`

	RedisAddr     string `env:"DQ_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"DQ_REDIS_PASSWORD"`
	RedisDB       int    `env:"DQ_REDIS_DB" envDefault:"0"`
	RedisPrefix   string `env:"DQ_REDIS_PREFIX" envDefault:"dailyquest:"`

	LogLevel string `env:"DQ_LOG_LEVEL" envDefault:"warn"`
	// Timezone decides where a calendar day starts. Empty means the local zone.
	Timezone string `env:"DQ_TIMEZONE"`

	TaskReward int `env:"DQ_TASK_REWARD" envDefault:"5"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the given dotenv files (missing ones are skipped, variables already
// set in the environment win) and parses the environment into a Config.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendSQLite, BackendBolt, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("unknown backend %q (want sqlite, bbolt, redis or memory)", c.Backend)
	}
	if c.TaskReward <= 0 {
		return fmt.Errorf("DQ_TASK_REWARD must be positive, got %d", c.TaskReward)
	}
	if c.RedisDB < 0 {
		return fmt.Errorf("DQ_REDIS_DB must not be negative, got %d", c.RedisDB)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// Location resolves Timezone, defaulting to time.Local.
func (c Config) Location() (*time.Location, error) {
	if strings.TrimSpace(c.Timezone) == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("DQ_TIMEZONE: %w", err)
	}
	return loc, nil
}

func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("DQ_LOG_LEVEL: %w", err)
	}
	return lvl, nil
}

// ResolveDBPath returns the file used by the sqlite and bbolt backends.
func (c Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	name := ".dailyquest.db"
	if c.Backend == BackendBolt {
		name = ".dailyquest.bolt"
	}
	return storage.DefaultDBPath(name)
}
