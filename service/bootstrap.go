package service

import (
	"context"

	"cityinfo/config"
	"cityinfo/pkg/log"
	"cityinfo/state"
	"cityinfo/storage"
	"cityinfo/types"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// Bootstrap 启动加载：灌入内置数据后把全量状态并行拉进内存
type Bootstrap struct {
	Conf     *config.Config
	AppState *state.Store
	Posts    storage.PostStore
	Catalog  storage.CatalogStore
	Messages storage.MessageStore
	Config   storage.ConfigStore
}

func (b *Bootstrap) Load(ctx context.Context) error {
	storage.SeedDefaults(ctx, b.Catalog, b.Posts)

	p := pool.New().WithErrors().WithContext(ctx)

	p.Go(func(ctx context.Context) error {
		posts, err := b.Posts.ListAll(ctx)
		if err != nil {
			return err
		}
		b.AppState.SetPosts(posts)
		return nil
	})

	p.Go(func(ctx context.Context) error {
		categories, err := b.Catalog.Categories(ctx)
		if err != nil {
			return err
		}
		b.AppState.SetCategories(categories)

		merchants, err := b.Catalog.Merchants(ctx)
		if err != nil {
			return err
		}
		b.AppState.SetMerchants(merchants)

		services, err := b.Catalog.Services(ctx, "")
		if err != nil {
			return err
		}
		b.AppState.SetServices(services)

		banners, err := b.Catalog.Banners(ctx)
		if err != nil {
			return err
		}
		b.AppState.SetBanners(banners)
		return nil
	})

	p.Go(func(ctx context.Context) error {
		support, err := b.Messages.ListConversations(ctx, types.ConvSupport)
		if err != nil {
			return err
		}
		b.AppState.SetSupport(support)

		direct, err := b.Messages.ListConversations(ctx, types.ConvDirect)
		if err != nil {
			return err
		}
		b.AppState.SetDirect(direct)
		return nil
	})

	p.Go(func(ctx context.Context) error {
		// 公告允许缺失
		if text, err := b.Config.Get(ctx, types.ConfigKeyAnnouncement); err == nil && text != "" {
			b.AppState.SetAnnouncement(text)
		}
		return nil
	})

	if err := p.Wait(); err != nil {
		return err
	}

	log.L.Info("状态加载完成",
		zap.Int("posts", len(b.AppState.Feed(types.FeedQuery{}))),
		zap.Int("categories", len(b.AppState.Categories())),
		zap.String("city", b.AppState.City()))
	return nil
}
