package service

import (
	"context"

	"cityinfo/config"
	"cityinfo/pkg/llm"
	"cityinfo/types"
)

var _ ReplyGenerator = (*LLMReplier)(nil)

// LLMReplier 每次回复按最新的 sys_config 参数构建客户端
type LLMReplier struct {
	Conf   *config.Config
	Config IConfigService
}

func (r *LLMReplier) SupportReply(ctx context.Context, history []types.ChatMessage, digest string) (string, error) {
	cfg := r.Config.ResolveLLM(ctx)
	return llm.New(cfg).SupportReply(ctx, history, digest,
		r.Conf.App.AdminContactPhone, r.Conf.App.AdminWechat)
}
