package dao

import (
	"cityinfo/models"
	"context"

	"gorm.io/gorm"
)

type WithdrawalDAO struct {
	Repo[models.Withdrawal]
}

func NewWithdrawalDAO(db *gorm.DB) *WithdrawalDAO {
	return &WithdrawalDAO{Repo: NewRepo[models.Withdrawal](db)}
}

// ListPending 后台审核列表，先到先审
func (d *WithdrawalDAO) ListPending(ctx context.Context) ([]*models.Withdrawal, error) {
	var items []*models.Withdrawal
	err := d.Db.WithContext(ctx).
		Where("status = ?", "PENDING").
		Order("timestamp ASC").
		Find(&items).Error
	return items, err
}

func (d *WithdrawalDAO) UpdateStatus(ctx context.Context, tx *gorm.DB, id, status string) error {
	db := d.Db
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).
		Model(&models.Withdrawal{}).
		Where("id = ?", id).
		Update("status", status).Error
}
