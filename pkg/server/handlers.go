package server

import (
	"cityinfo/handler"
)

type Handlers struct {
	Auth    *handler.Auth
	Post    *handler.Post
	User    *handler.User
	Chat    *handler.Chat
	Wallet  *handler.Wallet
	Admin   *handler.Admin
	Catalog *handler.Catalog
	Upload  *handler.Upload
	WS      *handler.WSHandler
}
