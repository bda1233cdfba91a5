package service

import (
	"context"
	"strings"

	"cityinfo/config"
	"cityinfo/pkg/response"
	"cityinfo/state"
	"cityinfo/storage"
	"cityinfo/types"

	"github.com/tidwall/gjson"
)

var ErrBadConfigValue = &response.BizError{Code: 40010, Msg: "配置值不合法"}

var _ IConfigService = (*ConfigService)(nil)

type IConfigService interface {
	Get(ctx context.Context, key string) (string, error)
	Save(ctx context.Context, key, value string) error
	Announcement() string
	SetAnnouncement(ctx context.Context, text string) error
	// ResolveLLM 配置文件默认值叠加 sys_config 里管理员的后续修改
	ResolveLLM(ctx context.Context) types.LLMConfig
}

type ConfigService struct {
	Conf     *config.Config
	Store    storage.ConfigStore
	AppState *state.Store
}

func (s *ConfigService) Get(ctx context.Context, key string) (string, error) {
	value, err := s.Store.Get(ctx, key)
	if err != nil {
		// 未配置不算错误
		return "", nil
	}
	// 不可信的存量值读出来也当作未配置，落库早于校验规则的数据不放行
	if key == types.ConfigKeyPaymentQR && !s.trustedImageURL(value) {
		return "", nil
	}
	return value, nil
}

func (s *ConfigService) Save(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrBadConfigValue
	}
	if key == types.ConfigKeyPaymentQR && !s.trustedImageURL(value) {
		return ErrBadConfigValue
	}
	return s.Store.Save(ctx, key, value)
}

// trustedImageURL 收款码只允许内联图片或本平台域名，防止被换成外部钓鱼图
func (s *ConfigService) trustedImageURL(u string) bool {
	if strings.HasPrefix(u, "data:image/") {
		return true
	}
	if s.Conf.Oss != nil && s.Conf.Oss.PublicDomain != "" &&
		strings.HasPrefix(u, s.Conf.Oss.PublicDomain) {
		return true
	}
	return false
}

func (s *ConfigService) Announcement() string {
	return s.AppState.Announcement()
}

func (s *ConfigService) SetAnnouncement(ctx context.Context, text string) error {
	s.AppState.SetAnnouncement(text)
	return s.Store.Save(ctx, types.ConfigKeyAnnouncement, text)
}

func (s *ConfigService) ResolveLLM(ctx context.Context) types.LLMConfig {
	out := types.LLMConfig{}
	if s.Conf.LLM != nil {
		out.BaseURL = s.Conf.LLM.BaseURL
		out.Model = s.Conf.LLM.Model
		out.Temperature = s.Conf.LLM.Temperature
		out.MaxTokens = s.Conf.LLM.MaxTokens
	}

	raw, err := s.Store.Get(ctx, types.ConfigKeyLLM)
	if err != nil || raw == "" {
		return out
	}
	if v := gjson.Get(raw, "api_key"); v.Exists() {
		out.APIKey = v.String()
	}
	if v := gjson.Get(raw, "base_url"); v.Exists() && v.String() != "" {
		out.BaseURL = v.String()
	}
	if v := gjson.Get(raw, "model"); v.Exists() && v.String() != "" {
		out.Model = v.String()
	}
	if v := gjson.Get(raw, "temperature"); v.Exists() {
		out.Temperature = v.Float()
	}
	if v := gjson.Get(raw, "max_tokens"); v.Exists() {
		out.MaxTokens = v.Int()
	}
	return out
}
