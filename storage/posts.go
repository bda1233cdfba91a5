package storage

import (
	"context"
	"sort"

	"cityinfo/dao"
	"cityinfo/pkg/store"
	"cityinfo/types"
)

type PostStore interface {
	ListAll(ctx context.Context) ([]types.Post, error)
	Get(ctx context.Context, id string) (*types.Post, error)
	Save(ctx context.Context, post *types.Post) error
	Delete(ctx context.Context, id string) error
}

type DBPostStore struct {
	dao *dao.PostDAO
}

func NewDBPostStore(d *dao.PostDAO) *DBPostStore {
	return &DBPostStore{dao: d}
}

func (s *DBPostStore) ListAll(ctx context.Context) ([]types.Post, error) {
	rows, err := s.dao.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	posts := make([]types.Post, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, postFromModel(row))
	}
	return posts, nil
}

func (s *DBPostStore) Get(ctx context.Context, id string) (*types.Post, error) {
	row, err := s.dao.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	post := postFromModel(row)
	return &post, nil
}

func (s *DBPostStore) Save(ctx context.Context, post *types.Post) error {
	return s.dao.Upsert(ctx, postToModel(post))
}

func (s *DBPostStore) Delete(ctx context.Context, id string) error {
	return s.dao.Delete(ctx, id)
}

type LocalPostStore struct {
	local *store.Local
}

func NewLocalPostStore(l *store.Local) *LocalPostStore {
	return &LocalPostStore{local: l}
}

func (s *LocalPostStore) ListAll(_ context.Context) ([]types.Post, error) {
	posts := store.List[types.Post](s.local, bucketPosts)
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].PublishTime > posts[j].PublishTime
	})
	return posts, nil
}

func (s *LocalPostStore) Get(_ context.Context, id string) (*types.Post, error) {
	var post types.Post
	if !s.local.Get(bucketPosts, id, &post) {
		return nil, ErrNotFound
	}
	return &post, nil
}

func (s *LocalPostStore) Save(_ context.Context, post *types.Post) error {
	return s.local.Put(bucketPosts, post.ID, post)
}

func (s *LocalPostStore) Delete(_ context.Context, id string) error {
	return s.local.Delete(bucketPosts, id)
}

// ResilientPostStore 远端失败降级本地；远端写成功时同步镜像一份到本地，
// 让后续降级读能看到尽量新的数据
type ResilientPostStore struct {
	remote *DBPostStore
	local  *LocalPostStore
}

func NewResilientPostStore(remote *DBPostStore, local *LocalPostStore) *ResilientPostStore {
	return &ResilientPostStore{remote: remote, local: local}
}

func (s *ResilientPostStore) ListAll(ctx context.Context) ([]types.Post, error) {
	return degrade("posts.list",
		func() ([]types.Post, error) { return s.remote.ListAll(ctx) },
		func() ([]types.Post, error) { return s.local.ListAll(ctx) },
	)
}

func (s *ResilientPostStore) Get(ctx context.Context, id string) (*types.Post, error) {
	return degrade("posts.get",
		func() (*types.Post, error) { return s.remote.Get(ctx, id) },
		func() (*types.Post, error) { return s.local.Get(ctx, id) },
	)
}

func (s *ResilientPostStore) Save(ctx context.Context, post *types.Post) error {
	err := degradeErr("posts.save",
		func() error { return s.remote.Save(ctx, post) },
		func() error { return s.local.Save(ctx, post) },
	)
	if err == nil {
		_ = s.local.Save(ctx, post)
	}
	return err
}

func (s *ResilientPostStore) Delete(ctx context.Context, id string) error {
	err := degradeErr("posts.delete",
		func() error { return s.remote.Delete(ctx, id) },
		func() error { return s.local.Delete(ctx, id) },
	)
	if err == nil {
		_ = s.local.Delete(ctx, id)
	}
	return err
}
