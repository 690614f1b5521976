package config

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ConnectRedis parses REDIS_URL and pings the server.
func ConnectRedis(cfg *Config, log *zap.Logger) (*redis.Client, error) {
	opt, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := WithTimeout()
	defer cancel()
	res, err := client.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	log.Info("connected to redis", zap.String("addr", opt.Addr), zap.String("ping", res))
	return client, nil
}
