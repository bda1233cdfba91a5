package config

import "time"

type ChatConfig struct {
	// SupportReplyDelaySec 客服会话在无人工回复时触发 AI 接管的等待秒数
	SupportReplyDelaySec int `json:"support_reply_delay_sec" yaml:"support_reply_delay_sec"`
	// DirectReplyDelaySec 普通会话固定话术自动回复的等待秒数
	DirectReplyDelaySec int `json:"direct_reply_delay_sec" yaml:"direct_reply_delay_sec"`
	// ContextSize 交给模型的上下文消息条数
	ContextSize int `json:"context_size" yaml:"context_size"`
	// CannedReply 普通会话自动回复的固定话术
	CannedReply string `json:"canned_reply" yaml:"canned_reply"`
}

func (c *ChatConfig) SupportReplyDelay() time.Duration {
	if c == nil || c.SupportReplyDelaySec <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.SupportReplyDelaySec) * time.Second
}

func (c *ChatConfig) DirectReplyDelay() time.Duration {
	if c == nil || c.DirectReplyDelaySec <= 0 {
		return 2 * time.Second
	}
	return time.Duration(c.DirectReplyDelaySec) * time.Second
}

func (c *ChatConfig) HistorySize() int {
	if c == nil || c.ContextSize <= 0 {
		return 10
	}
	return c.ContextSize
}

func (c *ChatConfig) Canned() string {
	if c == nil || c.CannedReply == "" {
		return "收到您的消息，稍后回复您。"
	}
	return c.CannedReply
}
