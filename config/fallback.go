package config

type FallbackConfig struct {
	// Path 本地兜底存储的落盘文件，远端不可用时业务数据写到这里
	Path string `json:"path" yaml:"path"`
}

type GeoConfig struct {
	Enabled    bool   `json:"enabled" yaml:"enabled"`
	Endpoint   string `json:"endpoint" yaml:"endpoint"`
	TimeoutSec int    `json:"timeout_sec" yaml:"timeout_sec"`
}
