package dao

import (
	"cityinfo/models"
	"context"

	"gorm.io/gorm"
)

type WalletDAO struct {
	Repo[models.WalletTransaction]
}

func NewWalletDAO(db *gorm.DB) *WalletDAO {
	return &WalletDAO{Repo: NewRepo[models.WalletTransaction](db)}
}

// ListByUser 个人流水，新的在前
func (d *WalletDAO) ListByUser(ctx context.Context, userID string) ([]*models.WalletTransaction, error) {
	var txs []*models.WalletTransaction
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&txs).Error
	return txs, err
}

// ListPendingRecharges 后台审核列表
func (d *WalletDAO) ListPendingRecharges(ctx context.Context) ([]*models.WalletTransaction, error) {
	var txs []*models.WalletTransaction
	err := d.Db.WithContext(ctx).
		Where("type = ? AND status = ?", "RECHARGE", "PENDING").
		Order("timestamp ASC").
		Find(&txs).Error
	return txs, err
}

func (d *WalletDAO) UpdateStatus(ctx context.Context, tx *gorm.DB, id, status string) error {
	db := d.Db
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).
		Model(&models.WalletTransaction{}).
		Where("id = ?", id).
		Update("status", status).Error
}
