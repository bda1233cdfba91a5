package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"time"

	"cityinfo/config"
	"cityinfo/dao/cache"
	"cityinfo/pkg/encrypt"
	"cityinfo/pkg/jwt"
	"cityinfo/pkg/log"
	"cityinfo/pkg/response"
	"cityinfo/pkg/snowflake"
	"cityinfo/storage"
	"cityinfo/types"

	"go.uber.org/zap"
)

var phonePattern = regexp.MustCompile(`^1[3-9]\d{9}$`)

var (
	ErrBadPhone = &response.BizError{Code: 40001, Msg: "手机号格式不正确"}
	ErrBadCode  = &response.BizError{Code: 40002, Msg: "验证码错误或已过期"}
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	SendCode(ctx context.Context, phone string) error
	Login(ctx context.Context, phone, code string) (*types.LoginResponse, error)
}

type AuthService struct {
	Conf  *config.Config
	Users storage.UserStore
	Codes *cache.CodeCache
}

func (s *AuthService) SendCode(ctx context.Context, phone string) error {
	if !phonePattern.MatchString(phone) {
		return ErrBadPhone
	}

	// 调试环境固定 123456，方便联调
	code := "123456"
	if !s.Conf.Debug() {
		n, err := rand.Int(rand.Reader, big.NewInt(1000000))
		if err != nil {
			return err
		}
		code = fmt.Sprintf("%06d", n.Int64())
	}
	if err := s.Codes.Set(ctx, phone, code); err != nil {
		return err
	}

	// 短信通道未接入, 验证码走日志下发
	log.L.Info("验证码已下发", zap.String("phone", phone))
	return nil
}

func (s *AuthService) Login(ctx context.Context, phone, code string) (*types.LoginResponse, error) {
	if !phonePattern.MatchString(phone) && phone != s.Conf.App.AdminPhone {
		return nil, ErrBadPhone
	}

	isAdmin := phone == s.Conf.App.AdminPhone
	if isAdmin {
		// 管理员走固定口令，不经过短信通道
		if !encrypt.VerifyPassword(s.Conf.App.AdminPasscodeHash, code) {
			return nil, ErrBadCode
		}
	} else {
		stored, err := s.Codes.Get(ctx, phone)
		if err != nil {
			return nil, err
		}
		if stored == "" || stored != code {
			return nil, ErrBadCode
		}
		_ = s.Codes.Consume(ctx, phone)
	}

	// 管理员手机号不一定是 11 位，默认昵称只在普通用户路径上取尾号
	nickname := s.Conf.App.AdminNickname
	if !isAdmin {
		nickname = "用户" + phone[len(phone)-4:]
	}
	user, err := s.Users.LoginOrRegister(ctx, &types.User{
		ID:           snowflake.GenStringID(),
		Phone:        phone,
		Nickname:     nickname,
		AvatarURL:    fmt.Sprintf("https://picsum.photos/100/100?random=%d", time.Now().UnixNano()%100),
		IsAdmin:      isAdmin,
		RegisterTime: time.Now().UnixMilli(),
	})
	if err != nil {
		return nil, err
	}

	expire := time.Duration(s.Conf.Jwt.ExpireHours) * time.Hour
	token, err := jwt.GenerateToken([]byte(s.Conf.Jwt.Secret), user.ID, user.IsAdmin, "api", expire)
	if err != nil {
		return nil, err
	}

	return &types.LoginResponse{Token: token, User: *user}, nil
}
