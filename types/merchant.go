package types

type Merchant struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	LogoURL     string  `json:"logo_url"`
	BannerURL   string  `json:"banner_url"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Rating      float64 `json:"rating"` // 0-5
	IsVerified  bool    `json:"is_verified"`
	Followers   int64   `json:"followers"`
	Phone       string  `json:"phone"`
}

type ServiceItem struct {
	ID         string `json:"id"`
	MerchantID string `json:"merchant_id"`
	Title      string `json:"title"`
	Price      int64  `json:"price"` // 单位分
	ImageURL   string `json:"image_url"`
	SalesCount int64  `json:"sales_count"`
}

type Banner struct {
	ID       string `json:"id"`
	ImageURL string `json:"image_url"`
	LinkURL  string `json:"link_url"`
	Title    string `json:"title"`
}

type SysCategory struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	SortOrder int    `json:"sort_order"`
}
