package service

import (
	"context"
	"path/filepath"
	"testing"

	"cityinfo/config"
	"cityinfo/pkg/store"
	"cityinfo/state"
	"cityinfo/storage"
	"cityinfo/types"
)

func newConfigService(t *testing.T) *ConfigService {
	t.Helper()
	local := store.Open(filepath.Join(t.TempDir(), "fallback.json"))
	return &ConfigService{
		Conf: &config.Config{
			Oss: &config.OssConfig{PublicDomain: "https://cdn.cityinfo.example"},
			LLM: &config.LLMConfig{
				BaseURL:     "https://api.deepseek.com",
				Model:       "deepseek-chat",
				Temperature: 0.7,
				MaxTokens:   2000,
			},
		},
		Store:    storage.NewLocalConfigStore(local),
		AppState: state.NewStore("北京"),
	}
}

func TestConfigRoundTrip(t *testing.T) {
	s := newConfigService(t)
	ctx := context.Background()

	if err := s.Save(ctx, "platform_switches", `{"publish":true}`); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Get(ctx, "platform_switches")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != `{"publish":true}` {
		t.Errorf("Get = %q", got)
	}

	// 未配置的 key 返回空串而不是错误
	if got, err := s.Get(ctx, "nope"); err != nil || got != "" {
		t.Errorf("Get(nope) = %q, %v", got, err)
	}
}

func TestPaymentQRValidation(t *testing.T) {
	s := newConfigService(t)
	ctx := context.Background()

	if err := s.Save(ctx, types.ConfigKeyPaymentQR, "https://evil.example/qr.png"); err != ErrBadConfigValue {
		t.Errorf("外部域名 err = %v, want ErrBadConfigValue", err)
	}
	if err := s.Save(ctx, types.ConfigKeyPaymentQR, "data:image/png;base64,iVBOR"); err != nil {
		t.Errorf("data URI err = %v", err)
	}
	if err := s.Save(ctx, types.ConfigKeyPaymentQR, "https://cdn.cityinfo.example/qr/1.png"); err != nil {
		t.Errorf("本平台域名 err = %v", err)
	}
}

func TestPaymentQRUntrustedStoredValue(t *testing.T) {
	s := newConfigService(t)
	ctx := context.Background()

	// 绕过校验直接落库，模拟历史脏数据
	if err := s.Store.Save(ctx, types.ConfigKeyPaymentQR, "https://evil.example/qr.png"); err != nil {
		t.Fatalf("Store.Save: %v", err)
	}
	if got, err := s.Get(ctx, types.ConfigKeyPaymentQR); err != nil || got != "" {
		t.Errorf("不可信存量值 Get = %q, %v, want 空串", got, err)
	}

	// 可信值正常读出
	if err := s.Store.Save(ctx, types.ConfigKeyPaymentQR, "https://cdn.cityinfo.example/qr/1.png"); err != nil {
		t.Fatalf("Store.Save: %v", err)
	}
	if got, _ := s.Get(ctx, types.ConfigKeyPaymentQR); got != "https://cdn.cityinfo.example/qr/1.png" {
		t.Errorf("可信值 Get = %q", got)
	}
}

func TestResolveLLMOverlay(t *testing.T) {
	s := newConfigService(t)
	ctx := context.Background()

	// 未配置时用配置文件默认值，API Key 为空
	got := s.ResolveLLM(ctx)
	if got.Model != "deepseek-chat" || got.APIKey != "" {
		t.Errorf("默认配置 = %+v", got)
	}

	if err := s.Save(ctx, types.ConfigKeyLLM, `{"api_key":"sk-test","temperature":0.3}`); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got = s.ResolveLLM(ctx)
	if got.APIKey != "sk-test" {
		t.Errorf("APIKey = %q", got.APIKey)
	}
	if got.Temperature != 0.3 {
		t.Errorf("Temperature = %v", got.Temperature)
	}
	// 未覆盖的字段保留默认值
	if got.Model != "deepseek-chat" || got.BaseURL != "https://api.deepseek.com" {
		t.Errorf("未覆盖字段被清掉: %+v", got)
	}
}

func TestAnnouncement(t *testing.T) {
	s := newConfigService(t)
	ctx := context.Background()

	if err := s.SetAnnouncement(ctx, "🔥 暑期大促开启！"); err != nil {
		t.Fatalf("SetAnnouncement: %v", err)
	}
	if got := s.Announcement(); got != "🔥 暑期大促开启！" {
		t.Errorf("Announcement = %q", got)
	}
	// 落库成功，重启可恢复
	if got, _ := s.Store.Get(ctx, types.ConfigKeyAnnouncement); got != "🔥 暑期大促开启！" {
		t.Errorf("持久化值 = %q", got)
	}
}
