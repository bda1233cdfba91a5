package service

import (
	"context"
	"strings"
	"time"

	"cityinfo/config"
	"cityinfo/dao/cache"
	"cityinfo/pkg/llm"
	"cityinfo/pkg/log"
	"cityinfo/pkg/response"
	"cityinfo/pkg/snowflake"
	"cityinfo/state"
	"cityinfo/storage"
	"cityinfo/types"

	"go.uber.org/zap"
)

var (
	ErrPostNotFound = &response.BizError{Code: 40401, Msg: "信息不存在或已删除"}
	ErrBadPost      = &response.BizError{Code: 40020, Msg: "标题和分类不能为空"}
)

var _ IPostService = (*PostService)(nil)

type IPostService interface {
	Feed(q types.FeedQuery) []types.Post
	Get(id string) (*types.Post, error)
	// Publish 先进内存列表立即可见，持久化异步完成
	Publish(ctx context.Context, post *types.Post, author *types.User) (*types.Post, error)
	Update(ctx context.Context, post *types.Post) error
	Delete(ctx context.Context, id string) error
	// View 浏览计数只打内存和 Redis，增量由定时任务落库
	View(ctx context.Context, id string) error
	Describe(ctx context.Context, req *types.GenDescribeRequest) (string, error)
}

type PostService struct {
	Conf     *config.Config
	AppState *state.Store
	Store    storage.PostStore
	Views    *cache.ViewCache
	Config   IConfigService
}

func (s *PostService) Feed(q types.FeedQuery) []types.Post {
	return s.AppState.Feed(q)
}

func (s *PostService) Get(id string) (*types.Post, error) {
	post, ok := s.AppState.Post(id)
	if !ok {
		return nil, ErrPostNotFound
	}
	return &post, nil
}

func (s *PostService) Publish(ctx context.Context, post *types.Post, author *types.User) (*types.Post, error) {
	if strings.TrimSpace(post.Title) == "" || post.Category == "" {
		return nil, ErrBadPost
	}

	if post.ID == "" {
		post.ID = snowflake.GenStringID()
	}
	if post.PublishTime == 0 {
		post.PublishTime = time.Now().UnixMilli()
	}
	if post.Images == nil {
		post.Images = []string{}
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if author != nil {
		post.AuthorName = author.Nickname
		post.AvatarURL = author.AvatarURL
		if post.ContactPhone == "" {
			post.ContactPhone = author.Phone
		}
	}

	s.AppState.PrependPost(*post)
	s.persistAsync(*post)
	return post, nil
}

// persistAsync 乐观更新后的异步落库，失败只告警不回滚内存
func (s *PostService) persistAsync(post types.Post) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Store.Save(ctx, &post); err != nil {
			log.L.Warn("帖子落库失败", zap.String("id", post.ID), zap.Error(err))
		}
	}()
}

func (s *PostService) Update(ctx context.Context, post *types.Post) error {
	if !s.AppState.UpdatePost(*post) {
		return ErrPostNotFound
	}
	s.persistAsync(*post)
	return nil
}

func (s *PostService) Delete(ctx context.Context, id string) error {
	if !s.AppState.RemovePost(id) {
		return ErrPostNotFound
	}
	go func() {
		bg, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Store.Delete(bg, id); err != nil {
			log.L.Warn("帖子删除落库失败", zap.String("id", id), zap.Error(err))
		}
	}()
	return nil
}

func (s *PostService) View(ctx context.Context, id string) error {
	if _, ok := s.AppState.Post(id); !ok {
		return ErrPostNotFound
	}
	s.AppState.IncrView(id)
	if err := s.Views.Incr(ctx, id); err != nil {
		log.L.Warn("浏览量计数失败", zap.String("id", id), zap.Error(err))
	}
	return nil
}

func (s *PostService) Describe(ctx context.Context, req *types.GenDescribeRequest) (string, error) {
	if strings.TrimSpace(req.Title) == "" {
		return "", ErrBadPost
	}
	cfg := s.Config.ResolveLLM(ctx)
	return llm.New(cfg).GenerateDescription(ctx, req.Title, req.Category, req.Keywords)
}
