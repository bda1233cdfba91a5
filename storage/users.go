package storage

import (
	"context"

	"cityinfo/dao"
	"cityinfo/pkg/store"
	"cityinfo/types"
)

type UserStore interface {
	// LoginOrRegister 登录即注册：手机号已存在返回老用户，否则按 fresh 建新用户
	LoginOrRegister(ctx context.Context, fresh *types.User) (*types.User, error)
	Get(ctx context.Context, id string) (*types.User, error)
	Update(ctx context.Context, id string, req *types.UpdateUserReq) error
}

type DBUserStore struct {
	dao *dao.Users
}

func NewDBUserStore(d *dao.Users) *DBUserStore {
	return &DBUserStore{dao: d}
}

func (s *DBUserStore) LoginOrRegister(ctx context.Context, fresh *types.User) (*types.User, error) {
	row := userToModel(fresh)
	if err := s.dao.GetOrCreateByPhone(ctx, row); err != nil {
		return nil, err
	}
	user := userFromModel(row)
	return &user, nil
}

func (s *DBUserStore) Get(ctx context.Context, id string) (*types.User, error) {
	row, err := s.dao.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user := userFromModel(row)
	return &user, nil
}

func (s *DBUserStore) Update(ctx context.Context, id string, req *types.UpdateUserReq) error {
	return s.dao.Update(ctx, id, map[string]any{
		"nickname":   req.Nickname,
		"avatar_url": req.AvatarURL,
		"real_name":  req.RealName,
		"qq":         req.QQ,
		"wechat":     req.Wechat,
		"address":    req.Address,
	})
}

type LocalUserStore struct {
	local *store.Local
}

func NewLocalUserStore(l *store.Local) *LocalUserStore {
	return &LocalUserStore{local: l}
}

func (s *LocalUserStore) LoginOrRegister(_ context.Context, fresh *types.User) (*types.User, error) {
	for _, u := range store.List[types.User](s.local, bucketUsers) {
		if u.Phone == fresh.Phone {
			return &u, nil
		}
	}
	if err := s.local.Put(bucketUsers, fresh.ID, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

func (s *LocalUserStore) Get(_ context.Context, id string) (*types.User, error) {
	var user types.User
	if !s.local.Get(bucketUsers, id, &user) {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *LocalUserStore) Update(ctx context.Context, id string, req *types.UpdateUserReq) error {
	user, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	user.Nickname = req.Nickname
	user.AvatarURL = req.AvatarURL
	user.RealName = req.RealName
	user.QQ = req.QQ
	user.Wechat = req.Wechat
	user.Address = req.Address
	return s.local.Put(bucketUsers, id, user)
}

type ResilientUserStore struct {
	remote *DBUserStore
	local  *LocalUserStore
}

func NewResilientUserStore(remote *DBUserStore, local *LocalUserStore) *ResilientUserStore {
	return &ResilientUserStore{remote: remote, local: local}
}

func (s *ResilientUserStore) LoginOrRegister(ctx context.Context, fresh *types.User) (*types.User, error) {
	user, err := degrade("users.login_or_register",
		func() (*types.User, error) { return s.remote.LoginOrRegister(ctx, fresh) },
		func() (*types.User, error) { return s.local.LoginOrRegister(ctx, fresh) },
	)
	if err == nil {
		_ = s.local.local.Put(bucketUsers, user.ID, user)
	}
	return user, err
}

func (s *ResilientUserStore) Get(ctx context.Context, id string) (*types.User, error) {
	return degrade("users.get",
		func() (*types.User, error) { return s.remote.Get(ctx, id) },
		func() (*types.User, error) { return s.local.Get(ctx, id) },
	)
}

func (s *ResilientUserStore) Update(ctx context.Context, id string, req *types.UpdateUserReq) error {
	err := degradeErr("users.update",
		func() error { return s.remote.Update(ctx, id, req) },
		func() error { return s.local.Update(ctx, id, req) },
	)
	if err == nil {
		_ = s.local.Update(ctx, id, req)
	}
	return err
}
