package dao

import (
	"cityinfo/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SysConfigDAO struct {
	Repo[models.SysConfig]
}

func NewSysConfigDAO(db *gorm.DB) *SysConfigDAO {
	return &SysConfigDAO{Repo: NewRepo[models.SysConfig](db)}
}

func (d *SysConfigDAO) Get(ctx context.Context, key string) (*models.SysConfig, error) {
	return d.Repo.FindByWhere(ctx, "config_key = ?", key)
}

// Upsert 写入配置项，已有则覆盖
func (d *SysConfigDAO) Upsert(ctx context.Context, item *models.SysConfig) error {
	return d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "config_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"config_value", "updated_at"}),
		}).
		Create(item).Error
}
