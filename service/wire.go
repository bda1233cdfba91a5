package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(PostService), "*"),
	wire.Bind(new(IPostService), new(*PostService)),

	NewChatService,
	wire.Bind(new(IChatService), new(*ChatService)),

	wire.Struct(new(WalletService), "*"),
	wire.Bind(new(IWalletService), new(*WalletService)),

	wire.Struct(new(ConfigService), "*"),
	wire.Bind(new(IConfigService), new(*ConfigService)),

	wire.Struct(new(CatalogService), "*"),
	wire.Bind(new(ICatalogService), new(*CatalogService)),

	wire.Struct(new(LLMReplier), "*"),
	wire.Bind(new(ReplyGenerator), new(*LLMReplier)),

	wire.Struct(new(Bootstrap), "*"),
)
