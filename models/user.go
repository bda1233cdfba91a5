package models

import "time"

type User struct {
	ID           string    `gorm:"column:id;primaryKey;size:64" json:"id"`
	Phone        string    `gorm:"column:phone;size:32;uniqueIndex:idx_phone;not null" json:"phone"`
	Nickname     string    `gorm:"column:nickname;size:64;default:''" json:"nickname"`
	AvatarURL    string    `gorm:"column:avatar_url;size:512;default:''" json:"avatar_url"`
	IsVerified   bool      `gorm:"column:is_verified;default:false" json:"is_verified"`
	RegisterTime int64     `gorm:"column:register_time" json:"register_time"`
	IsAdmin      bool      `gorm:"column:is_admin;default:false" json:"is_admin"`
	RealName     string    `gorm:"column:real_name;size:64;default:''" json:"real_name"`
	QQ           string    `gorm:"column:qq;size:32;default:''" json:"qq"`
	Wechat       string    `gorm:"column:wechat;size:64;default:''" json:"wechat"`
	Address      string    `gorm:"column:address;size:256;default:''" json:"address"`
	Balance      int64     `gorm:"column:balance;not null;default:0" json:"balance"` // 单位分
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
