package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Host          string
	Port          string
	Password      string
	DB            int
	MaxRetry      int
	RetryWaitTime time.Duration
}

// NewClient connects to redis, retrying while the server is not reachable yet.
func NewClient(ctx context.Context, cfg Config) (*goredis.Client, error) {
	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)

	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	maxRetries := cfg.MaxRetry
	if maxRetries < 1 {
		maxRetries = 1
	}

	var err error
	for i := 1; i <= maxRetries; i++ {
		log.Info().Str("addr", addr).Msgf("Connecting to Redis (Attempt %d/%d)...", i, maxRetries)

		if err = client.Ping(ctx).Err(); err == nil {
			log.Info().Msg("Redis connected successfully!")
			return client, nil
		}

		if i == maxRetries {
			break
		}

		log.Warn().Err(err).Msgf("Redis not ready yet. Waiting %s...", cfg.RetryWaitTime)

		select {
		case <-ctx.Done():
			_ = client.Close()
			return nil, ctx.Err()
		case <-time.After(cfg.RetryWaitTime):
		}
	}

	_ = client.Close()

	return nil, fmt.Errorf("failed to connect to redis: %w", err)
}
