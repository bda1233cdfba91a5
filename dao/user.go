package dao

import (
	"cityinfo/models"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

// GetOrCreateByPhone 登录即注册
func (u *Users) GetOrCreateByPhone(ctx context.Context, user *models.User) error {
	return u.Repo.Db.WithContext(ctx).
		Where("phone = ?", user.Phone).
		FirstOrCreate(user).Error
}

func (u *Users) GetByID(ctx context.Context, id string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "id = ?", id)
}

func (u *Users) Update(ctx context.Context, userID string, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	err := u.Db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Updates(updates).Error
	if err != nil {
		return fmt.Errorf("dao.Users.Update error: %w", err)
	}
	return nil
}

// AddBalance 余额增减，delta 为分，可为负
func (u *Users) AddBalance(ctx context.Context, tx *gorm.DB, userID string, delta int64) error {
	db := u.Db
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("balance", gorm.Expr("balance + ?", delta)).Error
}
