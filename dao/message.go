package dao

import (
	"cityinfo/models"
	"context"

	"gorm.io/gorm"
)

type MessageDAO struct {
	Repo[models.Message]
}

func NewMessageDAO(db *gorm.DB) *MessageDAO {
	return &MessageDAO{Repo: NewRepo[models.Message](db)}
}

func (d *MessageDAO) Save(ctx context.Context, msg *models.Message) error {
	return d.Db.WithContext(ctx).Save(msg).Error
}

// ListByKind 某一类会话的全部消息，供启动加载和后台列表
func (d *MessageDAO) ListByKind(ctx context.Context, kind string) ([]*models.Message, error) {
	var msgs []*models.Message
	err := d.Db.WithContext(ctx).
		Where("kind = ?", kind).
		Order("timestamp ASC").
		Find(&msgs).Error
	return msgs, err
}
