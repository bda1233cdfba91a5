package dao

import (
	"cityinfo/models"
	"context"

	"gorm.io/gorm"
)

type PostDAO struct {
	Repo[models.Post]
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{Repo: NewRepo[models.Post](db)}
}

// ListAll 全量拉取，最新发布在前
func (d *PostDAO) ListAll(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	err := d.Db.WithContext(ctx).
		Order("publish_time DESC").
		Find(&posts).Error
	return posts, err
}

func (d *PostDAO) GetByID(ctx context.Context, id string) (*models.Post, error) {
	return d.Repo.FindByWhere(ctx, "id = ?", id)
}

// Upsert 按主键整行覆盖，发布和编辑共用
func (d *PostDAO) Upsert(ctx context.Context, post *models.Post) error {
	return d.Db.WithContext(ctx).Save(post).Error
}

func (d *PostDAO) Delete(ctx context.Context, id string) error {
	return d.Db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Post{}).Error
}

// IncrViewCounts 批量累加浏览量，由定时任务刷 Redis 增量时调用
func (d *PostDAO) IncrViewCounts(ctx context.Context, deltas map[string]int64) error {
	if len(deltas) == 0 {
		return nil
	}
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id, delta := range deltas {
			err := tx.Model(&models.Post{}).
				Where("id = ?", id).
				UpdateColumn("view_count", gorm.Expr("view_count + ?", delta)).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
