package config

// LLMConfig 文本生成服务的出厂默认值。
// API Key 不落在配置文件里，由管理员在控制台写入 sys_config 后生效。
type LLMConfig struct {
	BaseURL     string  `json:"base_url" yaml:"base_url"`
	Model       string  `json:"model" yaml:"model"`
	Temperature float64 `json:"temperature" yaml:"temperature"`
	MaxTokens   int64   `json:"max_tokens" yaml:"max_tokens"`
}
