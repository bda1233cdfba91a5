package service

import (
	"context"

	"cityinfo/pkg/response"
	"cityinfo/storage"
	"cityinfo/types"
)

var ErrUserNotFound = &response.BizError{Code: 40402, Msg: "用户不存在"}

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Me(ctx context.Context, userID string) (*types.User, error)
	UpdateProfile(ctx context.Context, userID string, req *types.UpdateUserReq) (*types.User, error)
}

type UserService struct {
	Users storage.UserStore
}

func (s *UserService) Me(ctx context.Context, userID string) (*types.User, error) {
	user, err := s.Users.Get(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, req *types.UpdateUserReq) (*types.User, error) {
	if err := s.Users.Update(ctx, userID, req); err != nil {
		return nil, err
	}
	return s.Me(ctx, userID)
}
