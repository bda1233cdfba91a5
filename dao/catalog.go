package dao

import (
	"cityinfo/models"
	"context"

	"gorm.io/gorm"
)

// CatalogDAO 分类、商家、服务、轮播图等展示类数据
type CatalogDAO struct {
	Db *gorm.DB
}

func NewCatalogDAO(db *gorm.DB) *CatalogDAO {
	return &CatalogDAO{Db: db}
}

func (d *CatalogDAO) ListCategories(ctx context.Context) ([]*models.SysCategory, error) {
	var items []*models.SysCategory
	err := d.Db.WithContext(ctx).
		Order("sort_order ASC").
		Find(&items).Error
	return items, err
}

func (d *CatalogDAO) UpsertCategory(ctx context.Context, item *models.SysCategory) error {
	return d.Db.WithContext(ctx).Save(item).Error
}

func (d *CatalogDAO) DeleteCategory(ctx context.Context, key string) error {
	return d.Db.WithContext(ctx).
		Where("cat_key = ?", key).
		Delete(&models.SysCategory{}).Error
}

func (d *CatalogDAO) UpsertMerchant(ctx context.Context, item *models.Merchant) error {
	return d.Db.WithContext(ctx).Save(item).Error
}

func (d *CatalogDAO) UpsertService(ctx context.Context, item *models.ServiceItem) error {
	return d.Db.WithContext(ctx).Save(item).Error
}

func (d *CatalogDAO) UpsertBanner(ctx context.Context, item *models.Banner) error {
	return d.Db.WithContext(ctx).Save(item).Error
}

func (d *CatalogDAO) ListMerchants(ctx context.Context) ([]*models.Merchant, error) {
	var items []*models.Merchant
	err := d.Db.WithContext(ctx).Find(&items).Error
	return items, err
}

func (d *CatalogDAO) GetMerchant(ctx context.Context, id string) (*models.Merchant, error) {
	var item models.Merchant
	err := d.Db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (d *CatalogDAO) ListServices(ctx context.Context, merchantID string) ([]*models.ServiceItem, error) {
	var items []*models.ServiceItem
	q := d.Db.WithContext(ctx)
	if merchantID != "" {
		q = q.Where("merchant_id = ?", merchantID)
	}
	err := q.Order("sales_count DESC").Find(&items).Error
	return items, err
}

func (d *CatalogDAO) ListBanners(ctx context.Context) ([]*models.Banner, error) {
	var items []*models.Banner
	err := d.Db.WithContext(ctx).Order("id ASC").Find(&items).Error
	return items, err
}
