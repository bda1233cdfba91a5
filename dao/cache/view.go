package cache

import (
	"context"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
)

const viewKeyPrefix = "cityinfo:post:view:"

// ViewCache 帖子浏览量的 Redis 计数器。
// 浏览请求只打 Redis，增量由定时任务批量刷回数据库。
type ViewCache struct {
	redis *redis.Client
}

func NewViewCache(rdb *redis.Client) *ViewCache {
	return &ViewCache{redis: rdb}
}

func (c *ViewCache) Incr(ctx context.Context, postID string) error {
	return c.redis.Incr(ctx, viewKeyPrefix+postID).Err()
}

// Drain 取出所有帖子的累计增量并清零
func (c *ViewCache) Drain(ctx context.Context) (map[string]int64, error) {
	deltas := make(map[string]int64)

	iter := c.redis.Scan(ctx, 0, viewKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		val, err := c.redis.GetDel(ctx, key).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return deltas, err
		}
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil || n == 0 {
			continue
		}
		deltas[strings.TrimPrefix(key, viewKeyPrefix)] = n
	}
	return deltas, iter.Err()
}
