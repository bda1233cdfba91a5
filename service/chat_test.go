package service

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"cityinfo/config"
	"cityinfo/pkg/store"
	"cityinfo/state"
	"cityinfo/storage"
	"cityinfo/types"
)

type stubReplier struct {
	calls int32
	reply string
	err   error
}

func (r *stubReplier) SupportReply(_ context.Context, _ []types.ChatMessage, _ string) (string, error) {
	atomic.AddInt32(&r.calls, 1)
	return r.reply, r.err
}

func newChatService(t *testing.T, replier ReplyGenerator) (*ChatService, *state.Store) {
	t.Helper()
	appState := state.NewStore("北京")
	local := store.Open(filepath.Join(t.TempDir(), "fallback.json"))
	msgStore := storage.NewLocalMessageStore(local)

	conf := &config.Config{
		App: &config.App{},
		Chat: &config.ChatConfig{
			SupportReplyDelaySec: 1,
			DirectReplyDelaySec:  1,
			CannedReply:          "收到您的消息，稍后回复您。",
		},
	}
	return &ChatService{
		Conf:     conf,
		AppState: appState,
		Store:    msgStore,
		Replier:  replier,
	}, appState
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(20 * time.Millisecond)
	}
	return cond()
}

func TestSupportAutoReply(t *testing.T) {
	replier := &stubReplier{reply: "您好，请问有什么可以帮您？"}
	s, appState := newChatService(t, replier)

	if _, err := s.SendSupport(context.Background(), "u1", "房子还在吗"); err != nil {
		t.Fatalf("SendSupport: %v", err)
	}

	ok := waitFor(t, 3*time.Second, func() bool {
		last, has := appState.LastSupportMessage("u1")
		return has && last.Role == types.RoleAssistant
	})
	if !ok {
		t.Fatal("超时未收到 AI 接管回复")
	}
	last, _ := appState.LastSupportMessage("u1")
	if last.Content != replier.reply {
		t.Errorf("回复内容 = %q", last.Content)
	}
	if n := atomic.LoadInt32(&replier.calls); n != 1 {
		t.Errorf("生成次数 = %d, want 1", n)
	}
}

func TestSupportAdminReplyCancelsTakeover(t *testing.T) {
	replier := &stubReplier{reply: "AI回复"}
	s, appState := newChatService(t, replier)

	if _, err := s.SendSupport(context.Background(), "u1", "在吗"); err != nil {
		t.Fatalf("SendSupport: %v", err)
	}
	// 接管触发前人工插话
	if _, err := s.AdminReply(context.Background(), "u1", "在的，马上处理"); err != nil {
		t.Fatalf("AdminReply: %v", err)
	}

	time.Sleep(2 * time.Second)

	if n := atomic.LoadInt32(&replier.calls); n != 0 {
		t.Errorf("人工已回复仍触发了 AI 生成 %d 次", n)
	}
	last, _ := appState.LastSupportMessage("u1")
	if last.Role != types.RoleAdmin {
		t.Errorf("最后一条角色 = %s, want admin", last.Role)
	}
}

func TestSupportRepeatedSendsOneReply(t *testing.T) {
	replier := &stubReplier{reply: "好的"}
	s, appState := newChatService(t, replier)

	// 连发三条只重置定时器，最终只回一条
	for _, text := range []string{"在吗", "在吗？", "人呢"} {
		if _, err := s.SendSupport(context.Background(), "u1", text); err != nil {
			t.Fatalf("SendSupport: %v", err)
		}
		time.Sleep(100 * time.Millisecond)
	}

	waitFor(t, 3*time.Second, func() bool {
		last, has := appState.LastSupportMessage("u1")
		return has && last.Role == types.RoleAssistant
	})
	time.Sleep(500 * time.Millisecond)

	if n := atomic.LoadInt32(&replier.calls); n != 1 {
		t.Errorf("生成次数 = %d, want 1", n)
	}
	count := 0
	for _, m := range appState.SupportHistory("u1") {
		if m.Role == types.RoleAssistant {
			count++
		}
	}
	if count != 1 {
		t.Errorf("AI 回复条数 = %d, want 1", count)
	}
}

func TestSupportReplierFailureKeepsSilent(t *testing.T) {
	replier := &stubReplier{err: context.DeadlineExceeded}
	s, appState := newChatService(t, replier)

	_, _ = s.SendSupport(context.Background(), "u1", "在吗")

	time.Sleep(2 * time.Second)
	last, _ := appState.LastSupportMessage("u1")
	if last.Role != types.RoleUser {
		t.Errorf("生成失败不应追加消息, 最后角色 = %s", last.Role)
	}
}

func TestDirectCannedReply(t *testing.T) {
	s, appState := newChatService(t, &stubReplier{})

	if _, err := s.SendDirect(context.Background(), "c1", "这套房子还在吗"); err != nil {
		t.Fatalf("SendDirect: %v", err)
	}

	ok := waitFor(t, 3*time.Second, func() bool {
		history := appState.DirectHistory("c1")
		return len(history) == 2 && history[1].Role == types.RoleAssistant
	})
	if !ok {
		t.Fatal("超时未收到固定话术回复")
	}
	history := appState.DirectHistory("c1")
	if history[1].Content != "收到您的消息，稍后回复您。" {
		t.Errorf("话术 = %q", history[1].Content)
	}
}

func TestSendEmptyMessage(t *testing.T) {
	s, _ := newChatService(t, &stubReplier{})

	if _, err := s.SendSupport(context.Background(), "u1", ""); err != ErrEmptyMessage {
		t.Errorf("空消息 err = %v", err)
	}
	if _, err := s.SendDirect(context.Background(), "c1", ""); err != ErrEmptyMessage {
		t.Errorf("空消息 err = %v", err)
	}
}
