package config

type OssConfig struct {
	Endpoint        string `json:"endpoint" yaml:"endpoint"`
	Region          string `json:"region" yaml:"region"`
	Bucket          string `json:"bucket" yaml:"bucket"`
	AccessKeyID     string `json:"access_key_id" yaml:"access_key_id"`
	AccessKeySecret string `json:"access_key_secret" yaml:"access_key_secret"`
	// PublicDomain 上传成功后对外访问域名，同时是配置型图片 URL 的可信域名
	PublicDomain string `json:"public_domain" yaml:"public_domain"`
}

func ProvideOssConfig(c *Config) *OssConfig {
	return c.Oss
}
