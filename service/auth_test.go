package service

import (
	"context"
	"path/filepath"
	"testing"

	"cityinfo/config"
	"cityinfo/pkg/encrypt"
	"cityinfo/pkg/store"
	"cityinfo/storage"
)

func newAuthService(t *testing.T, adminPhone string) *AuthService {
	t.Helper()
	local := store.Open(filepath.Join(t.TempDir(), "fallback.json"))
	return &AuthService{
		Conf: &config.Config{
			App: &config.App{
				AdminPhone:        adminPhone,
				AdminPasscodeHash: encrypt.HashPassword("admin123"),
				AdminNickname:     "平台客服",
			},
			Jwt: &config.Jwt{Secret: "test-secret", ExpireHours: 24},
		},
		Users: storage.NewLocalUserStore(local),
	}
}

func TestAdminLogin(t *testing.T) {
	// 管理员账号可以不是手机号，甚至比尾号还短
	s := newAuthService(t, "00")

	resp, err := s.Login(context.Background(), "00", "admin123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !resp.User.IsAdmin {
		t.Error("管理员标记未设置")
	}
	if resp.User.Nickname != "平台客服" {
		t.Errorf("昵称 = %q", resp.User.Nickname)
	}
	if resp.Token == "" {
		t.Error("token 为空")
	}

	if _, err := s.Login(context.Background(), "00", "wrong"); err != ErrBadCode {
		t.Errorf("口令错误 err = %v", err)
	}
}
