//go:build wireinject

package storage

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewDBPostStore,
	NewLocalPostStore,
	NewResilientPostStore,
	wire.Bind(new(PostStore), new(*ResilientPostStore)),

	NewDBUserStore,
	NewLocalUserStore,
	NewResilientUserStore,
	wire.Bind(new(UserStore), new(*ResilientUserStore)),

	NewDBMessageStore,
	NewLocalMessageStore,
	NewResilientMessageStore,
	wire.Bind(new(MessageStore), new(*ResilientMessageStore)),

	NewDBWalletStore,
	NewLocalWalletStore,
	NewResilientWalletStore,
	wire.Bind(new(WalletStore), new(*ResilientWalletStore)),

	NewDBConfigStore,
	NewLocalConfigStore,
	NewResilientConfigStore,
	wire.Bind(new(ConfigStore), new(*ResilientConfigStore)),

	NewDBCatalogStore,
	NewLocalCatalogStore,
	NewResilientCatalogStore,
	wire.Bind(new(CatalogStore), new(*ResilientCatalogStore)),

	NewUploader,
)
