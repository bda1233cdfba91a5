// Package tasks 后台定时任务
package tasks

import (
	"context"
	"time"

	"cityinfo/dao"
	"cityinfo/dao/cache"
	"cityinfo/pkg/log"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ViewCountSync 把 Redis 里攒的浏览量增量定时刷回数据库
type ViewCountSync struct {
	Views *cache.ViewCache
	Posts *dao.PostDAO

	cron *cron.Cron
}

func NewViewCountSync(views *cache.ViewCache, posts *dao.PostDAO) *ViewCountSync {
	return &ViewCountSync{Views: views, Posts: posts}
}

func (t *ViewCountSync) Start() {
	t.cron = cron.New()
	// 每分钟同步一次，丢了一轮增量也只是浏览量少算
	_, err := t.cron.AddFunc("@every 1m", t.syncOnce)
	if err != nil {
		log.L.Error("注册浏览量同步任务失败", zap.Error(err))
		return
	}
	t.cron.Start()
}

func (t *ViewCountSync) Stop() {
	if t.cron != nil {
		t.cron.Stop()
	}
}

func (t *ViewCountSync) syncOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	deltas, err := t.Views.Drain(ctx)
	if err != nil {
		log.L.Warn("浏览量增量读取失败", zap.Error(err))
		return
	}
	if len(deltas) == 0 {
		return
	}
	if err := t.Posts.IncrViewCounts(ctx, deltas); err != nil {
		log.L.Warn("浏览量写库失败", zap.Int("posts", len(deltas)), zap.Error(err))
		return
	}
	log.L.Info("浏览量已同步", zap.Int("posts", len(deltas)))
}
