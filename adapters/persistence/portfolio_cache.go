package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"devfolio/internal/application/service"
	"devfolio/internal/domain/portfolio"
	"devfolio/pkg/logger"
)

const publicViewKey = "portfolio:view:public"

type redisViewCache struct {
	rdb    *redis.Client
	logger logger.Logger
}

func NewRedisViewCache(rdb *redis.Client, log logger.Logger) service.ViewCache {
	return &redisViewCache{rdb: rdb, logger: log}
}

func (c *redisViewCache) GetPublicView(ctx context.Context) (*portfolio.View, error) {
	payload, err := c.rdb.Get(ctx, publicViewKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	v := &portfolio.View{}
	if err := json.Unmarshal(payload, v); err != nil {
		// A corrupt entry is treated as a miss and dropped.
		c.logger.Warn("Failed to decode cached portfolio view", zap.Error(err))
		c.rdb.Del(ctx, publicViewKey)
		return nil, nil
	}
	return v, nil
}

func (c *redisViewCache) SetPublicView(ctx context.Context, v *portfolio.View, ttl time.Duration) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, publicViewKey, payload, ttl).Err()
}

func (c *redisViewCache) InvalidatePublicView(ctx context.Context) error {
	return c.rdb.Del(ctx, publicViewKey).Err()
}
