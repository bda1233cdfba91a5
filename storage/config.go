package storage

import (
	"context"
	"encoding/json"

	"cityinfo/dao"
	"cityinfo/models"
	"cityinfo/pkg/store"

	"github.com/tidwall/gjson"
)

// ConfigStore 通用键值配置。
// 历史数据里 value 可能被包了一层 {"value": ...}，读取时统一拆开
type ConfigStore interface {
	Get(ctx context.Context, key string) (string, error)
	Save(ctx context.Context, key, value string) error
}

// unwrapValue 兼容两种存储形态：裸值和 {"value": ...} 包装
func unwrapValue(raw string) string {
	if wrapped := gjson.Get(raw, "value"); wrapped.Exists() {
		return wrapped.String()
	}
	var s string
	if err := json.Unmarshal([]byte(raw), &s); err == nil {
		return s
	}
	return raw
}

type DBConfigStore struct {
	dao *dao.SysConfigDAO
}

func NewDBConfigStore(d *dao.SysConfigDAO) *DBConfigStore {
	return &DBConfigStore{dao: d}
}

func (s *DBConfigStore) Get(ctx context.Context, key string) (string, error) {
	row, err := s.dao.Get(ctx, key)
	if err != nil {
		return "", err
	}
	return unwrapValue(row.Value), nil
}

func (s *DBConfigStore) Save(ctx context.Context, key, value string) error {
	return s.dao.Upsert(ctx, &models.SysConfig{Key: key, Value: value})
}

type LocalConfigStore struct {
	local *store.Local
}

func NewLocalConfigStore(l *store.Local) *LocalConfigStore {
	return &LocalConfigStore{local: l}
}

func (s *LocalConfigStore) Get(_ context.Context, key string) (string, error) {
	var value string
	if !s.local.Get(bucketConfig, key, &value) {
		return "", ErrNotFound
	}
	return unwrapValue(value), nil
}

func (s *LocalConfigStore) Save(_ context.Context, key, value string) error {
	return s.local.Put(bucketConfig, key, value)
}

type ResilientConfigStore struct {
	remote *DBConfigStore
	local  *LocalConfigStore
}

func NewResilientConfigStore(remote *DBConfigStore, local *LocalConfigStore) *ResilientConfigStore {
	return &ResilientConfigStore{remote: remote, local: local}
}

func (s *ResilientConfigStore) Get(ctx context.Context, key string) (string, error) {
	return degrade("config.get",
		func() (string, error) { return s.remote.Get(ctx, key) },
		func() (string, error) { return s.local.Get(ctx, key) },
	)
}

func (s *ResilientConfigStore) Save(ctx context.Context, key, value string) error {
	err := degradeErr("config.save",
		func() error { return s.remote.Save(ctx, key, value) },
		func() error { return s.local.Save(ctx, key, value) },
	)
	if err == nil {
		_ = s.local.Save(ctx, key, value)
	}
	return err
}
