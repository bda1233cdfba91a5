//go:build wireinject
// +build wireinject

package main

import (
	"cityinfo/config"
	"cityinfo/dao"
	"cityinfo/dao/cache"
	"cityinfo/handler"
	"cityinfo/pkg/client"
	"cityinfo/pkg/database"
	"cityinfo/pkg/geo"
	"cityinfo/pkg/oss"
	"cityinfo/pkg/server"
	"cityinfo/pkg/store"
	"cityinfo/service"
	"cityinfo/state"
	"cityinfo/storage"
	"cityinfo/tasks"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		database.NewDB,
		config.ProvideOssConfig,
		oss.NewClient,
		geo.NewLocator,
		store.NewLocal,
		state.NewAppState,
		server.NewGinEngine,

		dao.ProviderSet,
		cache.ProviderSet,
		storage.ProviderSet,
		service.ProviderSet,

		tasks.NewViewCountSync,

		handler.NewHub,
		wire.Bind(new(service.Notifier), new(*handler.Hub)),
		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Post), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Chat), "*"),
		wire.Struct(new(handler.Wallet), "*"),
		wire.Struct(new(handler.Admin), "*"),
		wire.Struct(new(handler.Catalog), "*"),
		wire.Struct(new(handler.Upload), "*"),
		wire.Struct(new(handler.WSHandler), "*"),

		wire.Struct(new(server.Handlers), "*"),
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil
}
