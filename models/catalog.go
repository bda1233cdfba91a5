package models

type SysCategory struct {
	Key       string `gorm:"column:cat_key;primaryKey;size:32" json:"key"`
	Label     string `gorm:"column:label;size:32;not null" json:"label"`
	Icon      string `gorm:"column:icon;size:64" json:"icon"`
	Color     string `gorm:"column:color;size:64" json:"color"`
	SortOrder int    `gorm:"column:sort_order;default:0" json:"sort_order"`
}

func (SysCategory) TableName() string {
	return "sys_categories"
}

type Merchant struct {
	ID          string  `gorm:"column:id;primaryKey;size:64" json:"id"`
	Name        string  `gorm:"column:name;size:64;not null" json:"name"`
	LogoURL     string  `gorm:"column:logo_url;size:512" json:"logo_url"`
	BannerURL   string  `gorm:"column:banner_url;size:512" json:"banner_url"`
	Description string  `gorm:"column:description;type:text" json:"description"`
	Address     string  `gorm:"column:address;size:256" json:"address"`
	Rating      float64 `gorm:"column:rating;default:0" json:"rating"`
	IsVerified  bool    `gorm:"column:is_verified;default:false" json:"is_verified"`
	Followers   int64   `gorm:"column:followers;default:0" json:"followers"`
	Phone       string  `gorm:"column:phone;size:32" json:"phone"`
}

func (Merchant) TableName() string {
	return "merchants"
}

type ServiceItem struct {
	ID         string `gorm:"column:id;primaryKey;size:64" json:"id"`
	MerchantID string `gorm:"column:merchant_id;size:64;index:idx_merchant_id" json:"merchant_id"`
	Title      string `gorm:"column:title;size:128" json:"title"`
	Price      int64  `gorm:"column:price;default:0" json:"price"` // 分
	ImageURL   string `gorm:"column:image_url;size:512" json:"image_url"`
	SalesCount int64  `gorm:"column:sales_count;default:0" json:"sales_count"`
}

func (ServiceItem) TableName() string {
	return "service_items"
}

type Banner struct {
	ID       string `gorm:"column:id;primaryKey;size:64" json:"id"`
	ImageURL string `gorm:"column:image_url;size:512" json:"image_url"`
	LinkURL  string `gorm:"column:link_url;size:512" json:"link_url"`
	Title    string `gorm:"column:title;size:128" json:"title"`
}

func (Banner) TableName() string {
	return "banners"
}
