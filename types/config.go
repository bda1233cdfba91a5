package types

// sys_config 常用 key
const (
	ConfigKeyAnnouncement = "announcement"
	ConfigKeyLLM          = "llm_config"
	ConfigKeyPaymentQR    = "payment_qr"
	ConfigKeySwitches     = "platform_switches"
)

// LLMConfig 管理员在控制台配置的模型参数，存放于 sys_config
type LLMConfig struct {
	APIKey      string  `json:"api_key"`
	BaseURL     string  `json:"base_url"`
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int64   `json:"max_tokens"`
}

type SaveConfigReq struct {
	Value string `json:"value"`
}

type UploadResponse struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	// 远端上传失败时为 true，此时 URL 为 data URI
	Local bool `json:"local,omitempty"`
}
