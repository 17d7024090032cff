package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
)

const envPrefix = "GATEWAY_"

// Store drivers.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

type Config struct {
	Primary   Primary         `koanf:"primary"`
	Server    ServerConfig    `koanf:"server"`
	Bank      BankConfig      `koanf:"bank"`
	Store     StoreConfig     `koanf:"store"`
	Database  DatabaseConfig  `koanf:"database" validate:"-"`
	Redis     RedisConfig     `koanf:"redis" validate:"-"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Logger    LoggerConfig    `koanf:"logger"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port           string        `koanf:"port" validate:"required"`
	ReadTimeout    time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout   time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout    time.Duration `koanf:"idle_timeout" validate:"required"`
	HandlerTimeout time.Duration `koanf:"handler_timeout" validate:"required"`
}

type BankConfig struct {
	BaseURL string        `koanf:"base_url" validate:"required,url"`
	Timeout time.Duration `koanf:"timeout" validate:"required"`
}

type StoreConfig struct {
	Driver string `koanf:"driver" validate:"required,oneof=memory postgres redis"`
}

type DatabaseConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"required"`
	User            string        `koanf:"user" validate:"required"`
	Password        string        `koanf:"password" validate:"required"`
	Name            string        `koanf:"name" validate:"required"`
	SSLMode         string        `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time" validate:"required"`
}

type RedisConfig struct {
	Addr        string        `koanf:"addr" validate:"required"`
	Password    string        `koanf:"password"`
	DB          int           `koanf:"db" validate:"min=0"`
	DialTimeout time.Duration `koanf:"dial_timeout" validate:"required"`
	Timeout     time.Duration `koanf:"timeout" validate:"required"`
}

type RateLimitConfig struct {
	Enabled bool    `koanf:"enabled"`
	RPS     float64 `koanf:"rps" validate:"gt=0"`
	Burst   int     `koanf:"burst" validate:"gt=0"`
}

type LoggerConfig struct {
	Level  string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `koanf:"format" validate:"omitempty,oneof=text json"`
}

// Defaults are the lowest-precedence layer. A bare environment runs the
// gateway on port 8090 with the in-memory store against a bank on :8080.
func Defaults() map[string]any {
	return map[string]any{
		"primary.env":                 "development",
		"server.port":                 "8090",
		"server.read_timeout":         "15s",
		"server.write_timeout":        "35s",
		"server.idle_timeout":         "60s",
		"server.handler_timeout":      "30s",
		"bank.base_url":               "http://localhost:8080",
		"bank.timeout":                "10s",
		"store.driver":                StoreMemory,
		"database.port":               5432,
		"database.ssl_mode":           "disable",
		"database.max_open_conns":     10,
		"database.max_idle_conns":     2,
		"database.conn_max_lifetime":  "1h",
		"database.conn_max_idle_time": "30m",
		"redis.addr":                  "localhost:6379",
		"redis.db":                    0,
		"redis.dial_timeout":          "5s",
		"redis.timeout":               "3s",
		"rate_limit.enabled":          false,
		"rate_limit.rps":              50,
		"rate_limit.burst":            100,
		"logger.level":                "info",
	}
}

// LoadConfig layers defaults, an optional YAML file and GATEWAY_* variables,
// in that order of precedence.
func LoadConfig(path string) (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		logger.Error("failed to load defaults", "error", err)
		return nil, err
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			logger.Error("failed to load config file", "path", path, "error", err)
			return nil, err
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	if err := mainConfig.Validate(); err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}

// Validate checks the struct tags, then the backend section the selected
// store driver needs.
func (c *Config) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return err
	}

	if err := c.checkTimeouts(); err != nil {
		return err
	}

	switch c.Store.Driver {
	case StorePostgres:
		if err := validate.Struct(c.Database); err != nil {
			return fmt.Errorf("database: %w", err)
		}
	case StoreRedis:
		if err := validate.Struct(c.Redis); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
	}

	return nil
}

// checkTimeouts keeps the bank call inside the handler deadline, and the
// handler deadline inside the write deadline, so a slow bank still ends in a
// TIMEOUT envelope the client can read.
func (c *Config) checkTimeouts() error {
	if c.Bank.Timeout >= c.Server.HandlerTimeout {
		return fmt.Errorf("bank.timeout (%s) must be shorter than server.handler_timeout (%s)",
			c.Bank.Timeout, c.Server.HandlerTimeout)
	}
	if c.Server.HandlerTimeout >= c.Server.WriteTimeout {
		return fmt.Errorf("server.handler_timeout (%s) must be shorter than server.write_timeout (%s)",
			c.Server.HandlerTimeout, c.Server.WriteTimeout)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Primary.Env, "production")
}
