package storage

import (
	"context"
	"sort"

	"cityinfo/dao"
	"cityinfo/models"
	"cityinfo/pkg/store"
	"cityinfo/types"
)

// CatalogStore 分类、商家、服务、轮播图等展示类数据
type CatalogStore interface {
	Categories(ctx context.Context) ([]types.SysCategory, error)
	SaveCategory(ctx context.Context, c *types.SysCategory) error
	DeleteCategory(ctx context.Context, key string) error
	Merchants(ctx context.Context) ([]types.Merchant, error)
	Merchant(ctx context.Context, id string) (*types.Merchant, error)
	SaveMerchant(ctx context.Context, m *types.Merchant) error
	Services(ctx context.Context, merchantID string) ([]types.ServiceItem, error)
	SaveService(ctx context.Context, item *types.ServiceItem) error
	Banners(ctx context.Context) ([]types.Banner, error)
	SaveBanner(ctx context.Context, b *types.Banner) error
}

type DBCatalogStore struct {
	dao *dao.CatalogDAO
}

func NewDBCatalogStore(d *dao.CatalogDAO) *DBCatalogStore {
	return &DBCatalogStore{dao: d}
}

func (s *DBCatalogStore) Categories(ctx context.Context) ([]types.SysCategory, error) {
	rows, err := s.dao.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]types.SysCategory, 0, len(rows))
	for _, row := range rows {
		items = append(items, categoryFromModel(row))
	}
	return items, nil
}

func (s *DBCatalogStore) SaveCategory(ctx context.Context, c *types.SysCategory) error {
	row := models.SysCategory(*c)
	return s.dao.UpsertCategory(ctx, &row)
}

func (s *DBCatalogStore) DeleteCategory(ctx context.Context, key string) error {
	return s.dao.DeleteCategory(ctx, key)
}

func (s *DBCatalogStore) Merchants(ctx context.Context) ([]types.Merchant, error) {
	rows, err := s.dao.ListMerchants(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]types.Merchant, 0, len(rows))
	for _, row := range rows {
		items = append(items, merchantFromModel(row))
	}
	return items, nil
}

func (s *DBCatalogStore) Merchant(ctx context.Context, id string) (*types.Merchant, error) {
	row, err := s.dao.GetMerchant(ctx, id)
	if err != nil {
		return nil, err
	}
	item := merchantFromModel(row)
	return &item, nil
}

func (s *DBCatalogStore) SaveMerchant(ctx context.Context, m *types.Merchant) error {
	row := models.Merchant(*m)
	return s.dao.UpsertMerchant(ctx, &row)
}

func (s *DBCatalogStore) SaveService(ctx context.Context, item *types.ServiceItem) error {
	row := models.ServiceItem(*item)
	return s.dao.UpsertService(ctx, &row)
}

func (s *DBCatalogStore) SaveBanner(ctx context.Context, b *types.Banner) error {
	row := models.Banner(*b)
	return s.dao.UpsertBanner(ctx, &row)
}

func (s *DBCatalogStore) Services(ctx context.Context, merchantID string) ([]types.ServiceItem, error) {
	rows, err := s.dao.ListServices(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	items := make([]types.ServiceItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, serviceFromModel(row))
	}
	return items, nil
}

func (s *DBCatalogStore) Banners(ctx context.Context) ([]types.Banner, error) {
	rows, err := s.dao.ListBanners(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]types.Banner, 0, len(rows))
	for _, row := range rows {
		items = append(items, bannerFromModel(row))
	}
	return items, nil
}

type LocalCatalogStore struct {
	local *store.Local
}

func NewLocalCatalogStore(l *store.Local) *LocalCatalogStore {
	return &LocalCatalogStore{local: l}
}

func (s *LocalCatalogStore) Categories(_ context.Context) ([]types.SysCategory, error) {
	items := store.List[types.SysCategory](s.local, bucketCategories)
	sort.Slice(items, func(i, j int) bool { return items[i].SortOrder < items[j].SortOrder })
	return items, nil
}

func (s *LocalCatalogStore) SaveCategory(_ context.Context, c *types.SysCategory) error {
	return s.local.Put(bucketCategories, c.Key, c)
}

func (s *LocalCatalogStore) DeleteCategory(_ context.Context, key string) error {
	return s.local.Delete(bucketCategories, key)
}

func (s *LocalCatalogStore) Merchants(_ context.Context) ([]types.Merchant, error) {
	items := store.List[types.Merchant](s.local, bucketMerchants)
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *LocalCatalogStore) Merchant(_ context.Context, id string) (*types.Merchant, error) {
	var item types.Merchant
	if !s.local.Get(bucketMerchants, id, &item) {
		return nil, ErrNotFound
	}
	return &item, nil
}

func (s *LocalCatalogStore) SaveMerchant(_ context.Context, m *types.Merchant) error {
	return s.local.Put(bucketMerchants, m.ID, m)
}

func (s *LocalCatalogStore) SaveService(_ context.Context, item *types.ServiceItem) error {
	return s.local.Put(bucketServices, item.ID, item)
}

func (s *LocalCatalogStore) SaveBanner(_ context.Context, b *types.Banner) error {
	return s.local.Put(bucketBanners, b.ID, b)
}

func (s *LocalCatalogStore) Services(_ context.Context, merchantID string) ([]types.ServiceItem, error) {
	items := make([]types.ServiceItem, 0)
	for _, item := range store.List[types.ServiceItem](s.local, bucketServices) {
		if merchantID == "" || item.MerchantID == merchantID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].SalesCount > items[j].SalesCount })
	return items, nil
}

func (s *LocalCatalogStore) Banners(_ context.Context) ([]types.Banner, error) {
	items := store.List[types.Banner](s.local, bucketBanners)
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

type ResilientCatalogStore struct {
	remote *DBCatalogStore
	local  *LocalCatalogStore
}

func NewResilientCatalogStore(remote *DBCatalogStore, local *LocalCatalogStore) *ResilientCatalogStore {
	return &ResilientCatalogStore{remote: remote, local: local}
}

func (s *ResilientCatalogStore) Categories(ctx context.Context) ([]types.SysCategory, error) {
	return degrade("catalog.categories",
		func() ([]types.SysCategory, error) { return s.remote.Categories(ctx) },
		func() ([]types.SysCategory, error) { return s.local.Categories(ctx) },
	)
}

func (s *ResilientCatalogStore) SaveCategory(ctx context.Context, c *types.SysCategory) error {
	err := degradeErr("catalog.save_category",
		func() error { return s.remote.SaveCategory(ctx, c) },
		func() error { return s.local.SaveCategory(ctx, c) },
	)
	if err == nil {
		_ = s.local.SaveCategory(ctx, c)
	}
	return err
}

func (s *ResilientCatalogStore) DeleteCategory(ctx context.Context, key string) error {
	err := degradeErr("catalog.delete_category",
		func() error { return s.remote.DeleteCategory(ctx, key) },
		func() error { return s.local.DeleteCategory(ctx, key) },
	)
	if err == nil {
		_ = s.local.DeleteCategory(ctx, key)
	}
	return err
}

func (s *ResilientCatalogStore) Merchants(ctx context.Context) ([]types.Merchant, error) {
	return degrade("catalog.merchants",
		func() ([]types.Merchant, error) { return s.remote.Merchants(ctx) },
		func() ([]types.Merchant, error) { return s.local.Merchants(ctx) },
	)
}

func (s *ResilientCatalogStore) Merchant(ctx context.Context, id string) (*types.Merchant, error) {
	return degrade("catalog.merchant",
		func() (*types.Merchant, error) { return s.remote.Merchant(ctx, id) },
		func() (*types.Merchant, error) { return s.local.Merchant(ctx, id) },
	)
}

func (s *ResilientCatalogStore) SaveMerchant(ctx context.Context, m *types.Merchant) error {
	err := degradeErr("catalog.save_merchant",
		func() error { return s.remote.SaveMerchant(ctx, m) },
		func() error { return s.local.SaveMerchant(ctx, m) },
	)
	if err == nil {
		_ = s.local.SaveMerchant(ctx, m)
	}
	return err
}

func (s *ResilientCatalogStore) SaveService(ctx context.Context, item *types.ServiceItem) error {
	err := degradeErr("catalog.save_service",
		func() error { return s.remote.SaveService(ctx, item) },
		func() error { return s.local.SaveService(ctx, item) },
	)
	if err == nil {
		_ = s.local.SaveService(ctx, item)
	}
	return err
}

func (s *ResilientCatalogStore) SaveBanner(ctx context.Context, b *types.Banner) error {
	err := degradeErr("catalog.save_banner",
		func() error { return s.remote.SaveBanner(ctx, b) },
		func() error { return s.local.SaveBanner(ctx, b) },
	)
	if err == nil {
		_ = s.local.SaveBanner(ctx, b)
	}
	return err
}

func (s *ResilientCatalogStore) Services(ctx context.Context, merchantID string) ([]types.ServiceItem, error) {
	return degrade("catalog.services",
		func() ([]types.ServiceItem, error) { return s.remote.Services(ctx, merchantID) },
		func() ([]types.ServiceItem, error) { return s.local.Services(ctx, merchantID) },
	)
}

func (s *ResilientCatalogStore) Banners(ctx context.Context) ([]types.Banner, error) {
	return degrade("catalog.banners",
		func() ([]types.Banner, error) { return s.remote.Banners(ctx) },
		func() ([]types.Banner, error) { return s.local.Banners(ctx) },
	)
}
