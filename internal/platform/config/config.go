package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

type Config struct {
	Server struct {
		Env             string `envconfig:"ENV" default:"development"`
		LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
		Host            string `envconfig:"HOST"`
		Port            string `envconfig:"PORT" default:"8080"`
		ShutdownSeconds int    `envconfig:"SHUTDOWN_SECONDS" default:"5"`
	} `envconfig:"SERVER"`

	Session struct {
		Store                  string `envconfig:"STORE" default:"memory"`
		IdleTimeoutMinutes     int    `envconfig:"IDLE_TIMEOUT_MINUTES" default:"30"`
		CleanupIntervalSeconds int    `envconfig:"CLEANUP_INTERVAL_SECONDS" default:"60"`
	} `envconfig:"SESSION"`

	Redis struct {
		Host          string `envconfig:"HOST" default:"localhost"`
		Port          string `envconfig:"PORT" default:"6379"`
		Password      string `envconfig:"PASSWORD"`
		DB            int    `envconfig:"DB" default:"0"`
		MaxRetry      int    `envconfig:"MAX_RETRY" default:"10"`
		RetryWaitTime int    `envconfig:"RETRY_WAIT_TIME" default:"2"`
	} `envconfig:"REDIS"`
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

func (c *Config) IdleTimeout() time.Duration {
	return time.Duration(c.Session.IdleTimeoutMinutes) * time.Minute
}

func (c *Config) CleanupInterval() time.Duration {
	return time.Duration(c.Session.CleanupIntervalSeconds) * time.Second
}

var (
	conf    Config
	loadErr error
	once    sync.Once
)

// Load reads .env when present and then the process environment. It runs once;
// later calls return the first result.
func Load() (*Config, error) {
	once.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		}

		loadErr = Process(&conf)
	})

	if loadErr != nil {
		return nil, loadErr
	}

	return &conf, nil
}

// Process fills cfg from the environment and checks the session store driver.
func Process(cfg *Config) error {
	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("processing environment variables: %w", err)
	}

	switch cfg.Session.Store {
	case StoreMemory, StoreRedis:
	default:
		return fmt.Errorf("unknown session store %q", cfg.Session.Store)
	}

	return nil
}
