package types

// 信息分类 key，与 sys_categories 表的 key 对应
const (
	CategoryHousing     = "HOUSING"
	CategoryJobs        = "JOBS"
	CategorySecondHand  = "SECOND_HAND"
	CategoryServices    = "SERVICES"
	CategoryCarpool     = "CARPOOL"
	CategoryPets        = "PETS"
	CategoryDating      = "DATING"
	CategoryBusiness    = "BUSINESS"
	CategoryEducation   = "EDUCATION"
	CategoryAgriculture = "AGRICULTURE"
)

// PostAttribute 按分类动态扩展的属性（户型、面积、经验要求等）
type PostAttribute struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

type Post struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	Price        string          `json:"price"` // 展示用价格/薪资文案
	Images       []string        `json:"images"`
	Tags         []string        `json:"tags"`
	Location     string          `json:"location"`
	Lat          *float64        `json:"lat,omitempty"`
	Lng          *float64        `json:"lng,omitempty"`
	Distance     string          `json:"distance,omitempty"`
	ContactPhone string          `json:"contact_phone"`
	PublishTime  int64           `json:"publish_time"` // 毫秒时间戳
	ViewCount    int64           `json:"view_count"`
	IsSticky     bool            `json:"is_sticky"`
	Attributes   []PostAttribute `json:"attributes"`
	MerchantID   string          `json:"merchant_id,omitempty"`
	AuthorName   string          `json:"author_name"`
	AvatarURL    string          `json:"avatar_url"`
}

// FeedTab 首页排序方式
const (
	TabRecommended = "RECOMMENDED"
	TabNewest      = "NEWEST"
	TabNearby      = "NEARBY"
)

// FeedQuery 首页信息流筛选参数
type FeedQuery struct {
	Category string `form:"category"` // 空或 ALL 表示不过滤
	Search   string `form:"search"`
	Tab      string `form:"tab"`
}

type GenDescribeRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Keywords string `json:"keywords"`
}
