package storage

import (
	"context"
	"sort"

	"cityinfo/dao"
	"cityinfo/models"
	"cityinfo/pkg/store"
	"cityinfo/types"
)

// MessageStore 消息只写和整体装载；单个会话的读取走内存状态
type MessageStore interface {
	Append(ctx context.Context, kind, convID string, msg *types.ChatMessage) error
	// ListConversations 某一类会话的全部消息，按会话分组，组内时间升序
	ListConversations(ctx context.Context, kind string) (map[string][]types.ChatMessage, error)
}

type DBMessageStore struct {
	dao *dao.MessageDAO
}

func NewDBMessageStore(d *dao.MessageDAO) *DBMessageStore {
	return &DBMessageStore{dao: d}
}

func (s *DBMessageStore) Append(ctx context.Context, kind, convID string, msg *types.ChatMessage) error {
	return s.dao.Save(ctx, &models.Message{
		ID:             msg.ID,
		Kind:           kind,
		ConversationID: convID,
		Role:           msg.Role,
		Content:        msg.Content,
		Timestamp:      msg.Timestamp,
	})
}

func (s *DBMessageStore) ListConversations(ctx context.Context, kind string) (map[string][]types.ChatMessage, error) {
	rows, err := s.dao.ListByKind(ctx, kind)
	if err != nil {
		return nil, err
	}
	convs := make(map[string][]types.ChatMessage)
	for _, row := range rows {
		convs[row.ConversationID] = append(convs[row.ConversationID], messageFromModel(row))
	}
	return convs, nil
}

// localMessage 本地存储里带会话信息的消息记录
type localMessage struct {
	Kind           string `json:"kind"`
	ConversationID string `json:"conversation_id"`
	types.ChatMessage
}

type LocalMessageStore struct {
	local *store.Local
}

func NewLocalMessageStore(l *store.Local) *LocalMessageStore {
	return &LocalMessageStore{local: l}
}

func (s *LocalMessageStore) Append(_ context.Context, kind, convID string, msg *types.ChatMessage) error {
	return s.local.Put(bucketMessages, msg.ID, localMessage{
		Kind:           kind,
		ConversationID: convID,
		ChatMessage:    *msg,
	})
}

func (s *LocalMessageStore) ListConversations(_ context.Context, kind string) (map[string][]types.ChatMessage, error) {
	convs := make(map[string][]types.ChatMessage)
	for _, item := range store.List[localMessage](s.local, bucketMessages) {
		if item.Kind == kind {
			convs[item.ConversationID] = append(convs[item.ConversationID], item.ChatMessage)
		}
	}
	for _, msgs := range convs {
		sort.Slice(msgs, func(i, j int) bool { return msgs[i].Timestamp < msgs[j].Timestamp })
	}
	return convs, nil
}

type ResilientMessageStore struct {
	remote *DBMessageStore
	local  *LocalMessageStore
}

func NewResilientMessageStore(remote *DBMessageStore, local *LocalMessageStore) *ResilientMessageStore {
	return &ResilientMessageStore{remote: remote, local: local}
}

func (s *ResilientMessageStore) Append(ctx context.Context, kind, convID string, msg *types.ChatMessage) error {
	err := degradeErr("messages.append",
		func() error { return s.remote.Append(ctx, kind, convID, msg) },
		func() error { return s.local.Append(ctx, kind, convID, msg) },
	)
	if err == nil {
		_ = s.local.Append(ctx, kind, convID, msg)
	}
	return err
}

func (s *ResilientMessageStore) ListConversations(ctx context.Context, kind string) (map[string][]types.ChatMessage, error) {
	return degrade("messages.conversations",
		func() (map[string][]types.ChatMessage, error) { return s.remote.ListConversations(ctx, kind) },
		func() (map[string][]types.ChatMessage, error) { return s.local.ListConversations(ctx, kind) },
	)
}
