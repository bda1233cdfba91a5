package storage

import (
	"context"
	"time"

	"cityinfo/pkg/log"
	"cityinfo/types"

	"go.uber.org/zap"
)

// PopularCities 城市选择页的热门城市
var PopularCities = []string{"北京", "上海", "广州", "深圳", "杭州", "成都", "武汉", "西安"}

// DefaultCategories 十个内置分类，后台可增删改
var DefaultCategories = []types.SysCategory{
	{Key: types.CategoryHousing, Label: "房屋租赁", Icon: "fa-home", Color: "bg-blue-100 text-blue-600", SortOrder: 1},
	{Key: types.CategoryJobs, Label: "求职招聘", Icon: "fa-briefcase", Color: "bg-orange-100 text-orange-600", SortOrder: 2},
	{Key: types.CategorySecondHand, Label: "二手闲置", Icon: "fa-tag", Color: "bg-green-100 text-green-600", SortOrder: 3},
	{Key: types.CategoryServices, Label: "生活服务", Icon: "fa-tools", Color: "bg-purple-100 text-purple-600", SortOrder: 4},
	{Key: types.CategoryCarpool, Label: "顺风车", Icon: "fa-car", Color: "bg-indigo-100 text-indigo-600", SortOrder: 5},
	{Key: types.CategoryPets, Label: "宠物生活", Icon: "fa-paw", Color: "bg-pink-100 text-pink-600", SortOrder: 6},
	{Key: types.CategoryDating, Label: "同城交友", Icon: "fa-heart", Color: "bg-red-100 text-red-600", SortOrder: 7},
	{Key: types.CategoryBusiness, Label: "生意转让", Icon: "fa-shop-lock", Color: "bg-yellow-100 text-yellow-600", SortOrder: 8},
	{Key: types.CategoryEducation, Label: "教育培训", Icon: "fa-graduation-cap", Color: "bg-teal-100 text-teal-600", SortOrder: 9},
	{Key: types.CategoryAgriculture, Label: "农林牧渔", Icon: "fa-wheat-awn", Color: "bg-lime-100 text-lime-600", SortOrder: 10},
}

func ptr(v float64) *float64 { return &v }

func defaultMerchants() []types.Merchant {
	return []types.Merchant{
		{
			ID:          "m1",
			Name:        "极速家政服务",
			LogoURL:     "https://picsum.photos/100/100?random=10",
			BannerURL:   "https://picsum.photos/800/300?random=11",
			Description: "专注家庭清洁与维修服务十年，好评如潮。",
			Address:     "科技园区创业路123号",
			Rating:      4.8,
			IsVerified:  true,
			Followers:   1205,
			Phone:       "010-5550123",
		},
		{
			ID:          "m2",
			Name:        "安居置业",
			LogoURL:     "https://picsum.photos/100/100?random=12",
			BannerURL:   "https://picsum.photos/800/300?random=13",
			Description: "为您寻找城市中心的理想家园，真实房源保障。",
			Address:     "市中心广场大厦A座",
			Rating:      4.5,
			IsVerified:  true,
			Followers:   850,
			Phone:       "010-5550987",
		},
	}
}

func defaultServices() []types.ServiceItem {
	return []types.ServiceItem{
		{ID: "s1", MerchantID: "m1", Title: "2小时深度保洁", Price: 8999, ImageURL: "https://picsum.photos/200/200?random=20", SalesCount: 450},
		{ID: "s2", MerchantID: "m1", Title: "空调清洗基础套餐", Price: 5900, ImageURL: "https://picsum.photos/200/200?random=21", SalesCount: 120},
	}
}

func defaultBanners() []types.Banner {
	return []types.Banner{
		{ID: "1", ImageURL: "https://picsum.photos/800/400?random=1", LinkURL: "#", Title: "暑期租房大促 - 免中介费"},
		{ID: "2", ImageURL: "https://picsum.photos/800/400?random=2", LinkURL: "#", Title: "金牌保洁服务 - 低至8折"},
	}
}

func defaultPosts(now int64) []types.Post {
	return []types.Post{
		{
			ID:           "p1",
			Title:        "地铁口精装两居室，朝南采光好",
			Description:  "宽敞的两居室，带朝南阳台。全新装修厨房。步行5分钟可达地铁站，周边生活便利。",
			Category:     types.CategoryHousing,
			Price:        "¥2,500/月",
			Images:       []string{"https://picsum.photos/400/300?random=30", "https://picsum.photos/400/300?random=31"},
			Tags:         []string{"免中介费", "可养宠物"},
			Location:     "朝阳区 · 国贸",
			Lat:          ptr(39.909),
			Lng:          ptr(116.457),
			Distance:     "0.5km",
			ContactPhone: "13800138000",
			PublishTime:  now - time.Hour.Milliseconds(),
			ViewCount:    342,
			IsSticky:     true,
			MerchantID:   "m2",
			AuthorName:   "安居置业",
			AvatarURL:    "https://picsum.photos/100/100?random=12",
			Attributes: []types.PostAttribute{
				{Key: "layout", Label: "户型", Value: "2室1厅"},
				{Key: "size", Label: "面积", Value: "85㎡"},
			},
		},
		{
			ID:           "p2",
			Title:        "急招高级Java后端开发工程师",
			Description:  "寻找经验丰富的后端工程师，熟悉Spring Boot/Cloud。支持远程办公。",
			Category:     types.CategoryJobs,
			Price:        "20k - 35k",
			Images:       []string{},
			Tags:         []string{"远程办公", "全职", "五险一金"},
			Location:     "海淀区 · 软件园",
			Lat:          ptr(40.046),
			Lng:          ptr(116.299),
			Distance:     "5.2km",
			ContactPhone: "13900139000",
			PublishTime:  now - 2*time.Hour.Milliseconds(),
			ViewCount:    890,
			AuthorName:   "HR莎莎",
			AvatarURL:    "https://picsum.photos/50/50?random=40",
			Attributes: []types.PostAttribute{
				{Key: "exp", Label: "经验要求", Value: "3-5年"},
				{Key: "edu", Label: "学历要求", Value: "本科"},
			},
		},
		{
			ID:           "p3",
			Title:        "山地车转让 - 9成新",
			Description:  "骑了不到6个月，因搬家忍痛转让。送头盔和车锁。",
			Category:     types.CategorySecondHand,
			Price:        "¥850",
			Images:       []string{"https://picsum.photos/400/300?random=33"},
			Tags:         []string{"急售", "可小刀"},
			Location:     "海淀区 · 大学城",
			Lat:          ptr(39.991),
			Lng:          ptr(116.333),
			Distance:     "2.1km",
			ContactPhone: "13700137000",
			PublishTime:  now - 24*time.Hour.Milliseconds(),
			ViewCount:    56,
			AuthorName:   "学生小张",
			AvatarURL:    "https://picsum.photos/50/50?random=41",
			Attributes: []types.PostAttribute{
				{Key: "condition", Label: "成色", Value: "9成新"},
			},
		},
	}
}

// SeedDefaults 首次启动时灌入内置数据，库里已有数据则跳过
func SeedDefaults(ctx context.Context, catalog CatalogStore, posts PostStore) {
	if existing, err := catalog.Categories(ctx); err == nil && len(existing) == 0 {
		for i := range DefaultCategories {
			if err := catalog.SaveCategory(ctx, &DefaultCategories[i]); err != nil {
				log.L.Warn("分类初始化失败", zap.String("key", DefaultCategories[i].Key), zap.Error(err))
			}
		}
	}

	if existing, err := catalog.Merchants(ctx); err == nil && len(existing) == 0 {
		for _, m := range defaultMerchants() {
			item := m
			if err := catalog.SaveMerchant(ctx, &item); err != nil {
				log.L.Warn("商家初始化失败", zap.String("id", item.ID), zap.Error(err))
			}
		}
		for _, svc := range defaultServices() {
			item := svc
			if err := catalog.SaveService(ctx, &item); err != nil {
				log.L.Warn("服务初始化失败", zap.String("id", item.ID), zap.Error(err))
			}
		}
	}

	if existing, err := catalog.Banners(ctx); err == nil && len(existing) == 0 {
		for _, b := range defaultBanners() {
			item := b
			if err := catalog.SaveBanner(ctx, &item); err != nil {
				log.L.Warn("轮播图初始化失败", zap.String("id", item.ID), zap.Error(err))
			}
		}
	}

	if existing, err := posts.ListAll(ctx); err == nil && len(existing) == 0 {
		now := time.Now().UnixMilli()
		for _, post := range defaultPosts(now) {
			p := post
			if err := posts.Save(ctx, &p); err != nil {
				log.L.Warn("示例帖子初始化失败", zap.String("id", p.ID), zap.Error(err))
			}
		}
	}
}
