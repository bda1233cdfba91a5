package service

import (
	"context"

	"cityinfo/config"
	"cityinfo/pkg/geo"
	"cityinfo/pkg/log"
	"cityinfo/pkg/response"
	"cityinfo/state"
	"cityinfo/storage"
	"cityinfo/types"
	"cityinfo/view"

	"go.uber.org/zap"
)

var (
	ErrMerchantNotFound = &response.BizError{Code: 40403, Msg: "商家不存在"}
	ErrBannerNotFound   = &response.BizError{Code: 40404, Msg: "广告位不存在"}
	ErrBadCategory      = &response.BizError{Code: 40050, Msg: "分类参数不完整"}
)

// HomeBundle 首页一次性下发的数据
type HomeBundle struct {
	City         string              `json:"city"`
	Announcement string              `json:"announcement"`
	Categories   []types.SysCategory `json:"categories"`
	Banners      []types.Banner      `json:"banners"`
	Cities       []string            `json:"popular_cities"`
}

// MerchantDetail 商家主页数据
type MerchantDetail struct {
	Merchant types.Merchant      `json:"merchant"`
	Services []types.ServiceItem `json:"services"`
	Posts    []types.Post        `json:"posts"`
}

var _ ICatalogService = (*CatalogService)(nil)

type ICatalogService interface {
	Home() *HomeBundle
	Merchant(id string) (*MerchantDetail, error)
	// BannerTarget 广告位点击后的目标视图
	BannerTarget(bannerID string) (*view.Screen, error)
	// SelectCity 手动选择城市
	SelectCity(city string)
	// LocateCity 按经纬度反查城市，失败回退当前城市
	LocateCity(ctx context.Context, lat, lng float64) string

	SaveCategory(ctx context.Context, c *types.SysCategory) error
	DeleteCategory(ctx context.Context, key string) error
}

type CatalogService struct {
	Conf     *config.Config
	AppState *state.Store
	Store    storage.CatalogStore
	Locator  *geo.Locator
}

func (s *CatalogService) Home() *HomeBundle {
	return &HomeBundle{
		City:         s.AppState.City(),
		Announcement: s.AppState.Announcement(),
		Categories:   s.AppState.Categories(),
		Banners:      s.AppState.Banners(),
		Cities:       storage.PopularCities,
	}
}

func (s *CatalogService) Merchant(id string) (*MerchantDetail, error) {
	m, ok := s.AppState.Merchant(id)
	if !ok {
		return nil, ErrMerchantNotFound
	}

	posts := make([]types.Post, 0)
	for _, p := range s.AppState.Feed(types.FeedQuery{}) {
		if p.MerchantID == id {
			posts = append(posts, p)
		}
	}
	return &MerchantDetail{
		Merchant: m,
		Services: s.AppState.Services(id),
		Posts:    posts,
	}, nil
}

func (s *CatalogService) BannerTarget(bannerID string) (*view.Screen, error) {
	var banner *types.Banner
	for _, b := range s.AppState.Banners() {
		if b.ID == bannerID {
			banner = &b
			break
		}
	}
	if banner == nil {
		return nil, ErrBannerNotFound
	}

	// 家政广告进 m1 店铺，租房广告进第一条房源
	merchantID := ""
	if _, ok := s.AppState.Merchant("m1"); ok {
		merchantID = "m1"
	}
	housingPostID := ""
	for _, p := range s.AppState.Feed(types.FeedQuery{Category: types.CategoryHousing}) {
		housingPostID = p.ID
		break
	}

	screen := view.ResolveBanner(banner.Title, merchantID, housingPostID)
	return &screen, nil
}

func (s *CatalogService) SelectCity(city string) {
	if city != "" {
		s.AppState.SetCity(city)
	}
}

func (s *CatalogService) LocateCity(ctx context.Context, lat, lng float64) string {
	if s.Conf.Geo == nil || !s.Conf.Geo.Enabled || s.Locator == nil {
		return s.AppState.City()
	}
	city, err := s.Locator.CityByCoord(ctx, lat, lng)
	if err != nil || city == "" {
		log.L.Warn("定位城市失败", zap.Float64("lat", lat), zap.Float64("lng", lng), zap.Error(err))
		return s.AppState.City()
	}
	s.AppState.SetCity(city)
	return city
}

func (s *CatalogService) SaveCategory(ctx context.Context, c *types.SysCategory) error {
	if c.Key == "" || c.Label == "" {
		return ErrBadCategory
	}
	if err := s.Store.SaveCategory(ctx, c); err != nil {
		return err
	}
	s.reloadCategories(ctx)
	return nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, key string) error {
	if err := s.Store.DeleteCategory(ctx, key); err != nil {
		return err
	}
	s.reloadCategories(ctx)
	return nil
}

func (s *CatalogService) reloadCategories(ctx context.Context) {
	items, err := s.Store.Categories(ctx)
	if err != nil {
		log.L.Warn("分类重载失败", zap.Error(err))
		return
	}
	s.AppState.SetCategories(items)
}
