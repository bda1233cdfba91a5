package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"cityinfo/config"
	"cityinfo/pkg/log"
	"cityinfo/pkg/response"
	"cityinfo/pkg/snowflake"
	"cityinfo/state"
	"cityinfo/storage"
	"cityinfo/types"

	"go.uber.org/zap"
)

var ErrEmptyMessage = &response.BizError{Code: 40030, Msg: "消息内容不能为空"}

// ReplyGenerator 客服会话的 AI 接管回复
type ReplyGenerator interface {
	SupportReply(ctx context.Context, history []types.ChatMessage, digest string) (string, error)
}

// Notifier 推送新消息给在线客户端
type Notifier interface {
	Push(userID string, payload any)
}

var _ IChatService = (*ChatService)(nil)

type IChatService interface {
	// SendSupport 用户给客服发消息，超时无人工回复则由 AI 接管
	SendSupport(ctx context.Context, userID, content string) (*types.ChatMessage, error)
	SupportHistory(userID string) []types.ChatMessage
	// SupportConversations 后台的全部客服会话
	SupportConversations() map[string][]types.ChatMessage
	// AdminReply 人工回复，同时取消该用户未触发的 AI 接管
	AdminReply(ctx context.Context, targetUserID, content string) (*types.ChatMessage, error)

	SendDirect(ctx context.Context, convID, content string) (*types.ChatMessage, error)
	DirectHistory(convID string) []types.ChatMessage
	Sessions(userID string) []types.ChatSession
}

type ChatService struct {
	Conf     *config.Config
	AppState *state.Store
	Store    storage.MessageStore
	Replier  ReplyGenerator
	Notify   Notifier

	mu     sync.Mutex
	timers map[string]*time.Timer // 每个用户至多一个待触发的接管定时器
}

func NewChatService(conf *config.Config, appState *state.Store, store storage.MessageStore, replier ReplyGenerator, notify Notifier) *ChatService {
	return &ChatService{
		Conf:     conf,
		AppState: appState,
		Store:    store,
		Replier:  replier,
		Notify:   notify,
		timers:   make(map[string]*time.Timer),
	}
}

func (s *ChatService) newMessage(role, content string) types.ChatMessage {
	return types.ChatMessage{
		ID:        strconv.FormatInt(snowflake.GenID(), 10),
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UnixMilli(),
	}
}

func (s *ChatService) persistAsync(kind, convID string, msg types.ChatMessage) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Store.Append(ctx, kind, convID, &msg); err != nil {
			log.L.Warn("消息落库失败", zap.String("kind", kind), zap.String("conv", convID), zap.Error(err))
		}
	}()
}

func (s *ChatService) SendSupport(ctx context.Context, userID, content string) (*types.ChatMessage, error) {
	if content == "" {
		return nil, ErrEmptyMessage
	}

	msg := s.newMessage(types.RoleUser, content)
	s.AppState.AppendSupport(userID, msg)
	s.persistAsync(types.ConvSupport, userID, msg)

	s.scheduleTakeover(userID)
	return &msg, nil
}

// scheduleTakeover 重置该用户的接管定时器。
// 触发前管理员回复会取消；触发时最后一条必须仍是用户消息才回，两道保险
func (s *ChatService) scheduleTakeover(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timers == nil {
		s.timers = make(map[string]*time.Timer)
	}
	if old, ok := s.timers[userID]; ok {
		old.Stop()
	}
	s.timers[userID] = time.AfterFunc(s.Conf.Chat.SupportReplyDelay(), func() {
		s.takeover(userID)
	})
}

func (s *ChatService) cancelTakeover(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[userID]; ok {
		t.Stop()
		delete(s.timers, userID)
	}
}

func (s *ChatService) takeover(userID string) {
	s.mu.Lock()
	delete(s.timers, userID)
	s.mu.Unlock()

	last, ok := s.AppState.LastSupportMessage(userID)
	if !ok || last.Role != types.RoleUser {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	history := s.AppState.SupportHistory(userID)
	if n := s.Conf.Chat.HistorySize(); len(history) > n {
		history = history[len(history)-n:]
	}

	content, err := s.Replier.SupportReply(ctx, history, s.AppState.Digest())
	if err != nil {
		log.L.Warn("AI 接管失败", zap.String("user", userID), zap.Error(err))
		return
	}

	// 生成期间有人工插话则放弃本次回复
	if last, ok := s.AppState.LastSupportMessage(userID); !ok || last.Role != types.RoleUser {
		return
	}

	reply := s.newMessage(types.RoleAssistant, content)
	s.AppState.AppendSupport(userID, reply)
	s.persistAsync(types.ConvSupport, userID, reply)
	if s.Notify != nil {
		s.Notify.Push(userID, reply)
	}
}

func (s *ChatService) SupportHistory(userID string) []types.ChatMessage {
	return s.AppState.SupportHistory(userID)
}

func (s *ChatService) SupportConversations() map[string][]types.ChatMessage {
	convs := make(map[string][]types.ChatMessage)
	for _, id := range s.AppState.SupportUserIDs() {
		convs[id] = s.AppState.SupportHistory(id)
	}
	return convs
}

func (s *ChatService) AdminReply(ctx context.Context, targetUserID, content string) (*types.ChatMessage, error) {
	if content == "" {
		return nil, ErrEmptyMessage
	}

	s.cancelTakeover(targetUserID)

	msg := s.newMessage(types.RoleAdmin, content)
	s.AppState.AppendSupport(targetUserID, msg)
	s.persistAsync(types.ConvSupport, targetUserID, msg)
	if s.Notify != nil {
		s.Notify.Push(targetUserID, msg)
	}
	return &msg, nil
}

func (s *ChatService) SendDirect(ctx context.Context, convID, content string) (*types.ChatMessage, error) {
	if content == "" {
		return nil, ErrEmptyMessage
	}

	msg := s.newMessage(types.RoleUser, content)
	s.AppState.AppendDirect(convID, msg)
	s.persistAsync(types.ConvDirect, convID, msg)

	// 对方不在线时的固定话术回复
	time.AfterFunc(s.Conf.Chat.DirectReplyDelay(), func() {
		reply := s.newMessage(types.RoleAssistant, s.Conf.Chat.Canned())
		s.AppState.AppendDirect(convID, reply)
		s.persistAsync(types.ConvDirect, convID, reply)
	})
	return &msg, nil
}

func (s *ChatService) DirectHistory(convID string) []types.ChatMessage {
	return s.AppState.DirectHistory(convID)
}

// Sessions 会话列表：商家和 HR 的联系人入口，结合内存里的最新消息
func (s *ChatService) Sessions(userID string) []types.ChatSession {
	sessions := defaultSessions()
	for i := range sessions {
		history := s.AppState.DirectHistory(sessions[i].ID)
		if len(history) > 0 {
			last := history[len(history)-1]
			sessions[i].LastMessage = last.Content
			sessions[i].LastTime = last.Timestamp
		}
	}
	return sessions
}

func defaultSessions() []types.ChatSession {
	now := time.Now().UnixMilli()
	return []types.ChatSession{
		{
			ID:          "c1",
			TargetName:  "安居置业",
			AvatarURL:   "https://picsum.photos/100/100?random=12",
			LastMessage: "您好，这套房子还在吗？什么时候方便看房？",
			LastTime:    now - 5*time.Minute.Milliseconds(),
			UnreadCount: 2,
		},
		{
			ID:          "c2",
			TargetName:  "极速家政客服",
			AvatarURL:   "https://picsum.photos/100/100?random=10",
			LastMessage: "您的订单已确认，阿姨将在明天上午9点上门。",
			LastTime:    now - 2*time.Hour.Milliseconds(),
			UnreadCount: 0,
		},
		{
			ID:          "c3",
			TargetName:  "HR莎莎",
			AvatarURL:   "https://picsum.photos/50/50?random=40",
			LastMessage: "收到您的简历了，请问方便电话沟通吗？",
			LastTime:    now - 24*time.Hour.Milliseconds(),
			UnreadCount: 0,
		},
	}
}
