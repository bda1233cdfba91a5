//go:build wireinject

package cache

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewViewCache,
	NewCodeCache,
	NewRedisLocker,
	wire.Bind(new(Locker), new(*RedisLocker)),
)
