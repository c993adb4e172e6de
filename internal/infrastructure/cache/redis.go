package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ngo-backoffice/internal/config"
	applog "ngo-backoffice/internal/log"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// Open connects to the redis instance configured for idempotency keys. It
// returns a nil client and no error when REDIS_ADDR is empty.
func Open(cfg *config.Config) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		slog.Info("redis disabled, idempotency keys will not be enforced", applog.FieldComponent, applog.ComponentCache)
		return nil, nil
	}
	return OpenRedis(cfg.RedisAddr, cfg.RedisDB)
}

func OpenRedis(addr string, db int) (*redis.Client, error) {
	r := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := r.Ping(ctx).Err(); err != nil {
		_ = r.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	slog.Info("redis: connected", applog.FieldComponent, applog.ComponentCache, "addr", addr, "db", db)
	return r, nil
}
