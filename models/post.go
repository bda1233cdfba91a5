package models

import (
	"time"

	"gorm.io/datatypes"
)

type Post struct {
	ID           string         `gorm:"column:id;primaryKey;size:64" json:"id"`
	Title        string         `gorm:"column:title;size:200;not null;default:''" json:"title"`
	Description  string         `gorm:"column:description;type:text" json:"description"`
	Category     string         `gorm:"column:category;size:32;index:idx_category" json:"category"`
	Price        string         `gorm:"column:price;size:64;default:''" json:"price"`
	Images       datatypes.JSON `gorm:"column:images" json:"images"`
	Tags         datatypes.JSON `gorm:"column:tags" json:"tags"`
	Location     string         `gorm:"column:location;size:128" json:"location"`
	Lat          *float64       `gorm:"column:lat" json:"lat"`
	Lng          *float64       `gorm:"column:lng" json:"lng"`
	Distance     string         `gorm:"column:distance;size:32" json:"distance"`
	ContactPhone string         `gorm:"column:contact_phone;size:32" json:"contact_phone"`
	PublishTime  int64          `gorm:"column:publish_time;index:idx_publish_time" json:"publish_time"`
	ViewCount    int64          `gorm:"column:view_count;default:0" json:"view_count"`
	IsSticky     bool           `gorm:"column:is_sticky;default:false" json:"is_sticky"`
	Attributes   datatypes.JSON `gorm:"column:attributes" json:"attributes"`
	MerchantID   string         `gorm:"column:merchant_id;size:64;index:idx_merchant_id" json:"merchant_id"`
	AuthorName   string         `gorm:"column:author_name;size:64" json:"author_name"`
	AvatarURL    string         `gorm:"column:avatar_url;size:512" json:"avatar_url"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}
