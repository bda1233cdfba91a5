package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cityinfo/pkg/log"
	"cityinfo/types"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"
)

// ErrNotConfigured 管理员尚未在控制台配置 API Key
var ErrNotConfigured = errors.New("llm api key not configured")

type Client struct {
	cfg types.LLMConfig
}

// New 每次调用按当前 sys_config 里的参数构建，管理员改配置即时生效
func New(cfg types.LLMConfig) *Client {
	return &Client{cfg: cfg}
}

func (c *Client) complete(ctx context.Context, messages []openai.ChatCompletionMessageParamUnion) (string, error) {
	if c.cfg.APIKey == "" {
		return "", ErrNotConfigured
	}

	client := openai.NewClient(
		option.WithAPIKey(c.cfg.APIKey),
		option.WithBaseURL(c.cfg.BaseURL),
	)

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.cfg.Model),
		Messages: messages,
	}
	if c.cfg.Temperature > 0 {
		params.Temperature = openai.Float(c.cfg.Temperature)
	}
	if c.cfg.MaxTokens > 0 {
		params.MaxTokens = openai.Int(c.cfg.MaxTokens)
	}

	startTime := time.Now()
	completion, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("empty completion")
	}
	content := completion.Choices[0].Message.Content
	log.L.Info("llm completion",
		zap.String("model", c.cfg.Model),
		zap.Duration("gen time", time.Since(startTime)))
	return content, nil
}

// SupportReply 客服会话 AI 接管回复。
// digest 为当前信息流/商户的摘要，history 为最近的会话上下文。
func (c *Client) SupportReply(ctx context.Context, history []types.ChatMessage, digest, adminPhone, adminWechat string) (string, error) {
	systemPrompt := fmt.Sprintf(
		"你现在是“CityInfo”同城信息平台的【总管理员助手】。\n\n"+
			"【你的身份】：\n"+
			"1. 你代表平台唯一的管理员（Admin）。\n"+
			"2. 如果需要联系管理员，请直接提供管理员的电话：%s 或 微信：%s。\n"+
			"3. 你不需要编造其他客服身份，所有咨询最终解释权归 Admin 所有。\n\n"+
			"【任务目标】：\n"+
			"由于管理员当前繁忙，你需要接管对话，为用户提供温暖、专业、像人一样的服务。\n\n"+
			"【平台当前数据摘要】：\n%s\n\n"+
			"请根据上述数据和上下文历史，回复用户的最后一条消息。",
		adminPhone, adminWechat, digest,
	)

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+1)
	messages = append(messages, openai.SystemMessage(systemPrompt))
	for _, m := range history {
		// 人工客服的历史回复映射为 assistant，让模型理解此前的应答立场
		if m.Role == types.RoleUser {
			messages = append(messages, openai.UserMessage(m.Content))
		} else {
			messages = append(messages, openai.AssistantMessage(m.Content))
		}
	}

	return c.complete(ctx, messages)
}

// GenerateDescription 发布页“AI 帮我写”文案生成
func (c *Client) GenerateDescription(ctx context.Context, title, category, keywords string) (string, error) {
	prompt := fmt.Sprintf(
		"我正在“CityInfo”同城信息平台上发布一条信息。\n"+
			"分类：%s\n标题：%s\n关键词：%s\n\n"+
			"请帮我生成一段吸引人、条理清晰的描述文案，包含必要的细节（如联系方式提示、优势介绍），字数在100字左右。语气要真诚、热情。",
		category, title, keywords,
	)
	out, err := c.complete(ctx, []openai.ChatCompletionMessageParamUnion{
		openai.UserMessage(prompt),
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
