package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const codeKeyPrefix = "cityinfo:sms:code:"

// CodeCache 短信验证码，5 分钟有效
type CodeCache struct {
	redis *redis.Client
}

func NewCodeCache(rdb *redis.Client) *CodeCache {
	return &CodeCache{redis: rdb}
}

func (c *CodeCache) Set(ctx context.Context, phone, code string) error {
	return c.redis.Set(ctx, codeKeyPrefix+phone, code, 5*time.Minute).Err()
}

func (c *CodeCache) Get(ctx context.Context, phone string) (string, error) {
	val, err := c.redis.Get(ctx, codeKeyPrefix+phone).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

// Consume 校验通过后作废，防止重放
func (c *CodeCache) Consume(ctx context.Context, phone string) error {
	return c.redis.Del(ctx, codeKeyPrefix+phone).Err()
}
