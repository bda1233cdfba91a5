package models

import "time"

// SysConfig 通用键值配置表，value 统一存 JSON 编码后的字符串
type SysConfig struct {
	Key       string    `gorm:"column:config_key;primaryKey;size:64" json:"key"`
	Value     string    `gorm:"column:config_value;type:text" json:"value"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SysConfig) TableName() string {
	return "sys_config"
}
