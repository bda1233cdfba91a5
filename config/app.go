package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	// DefaultCity 定位失败时的兜底城市
	DefaultCity string `json:"default_city" yaml:"default_city"`
	// 管理员通过固定账号 + 口令登录，口令只存 bcrypt 摘要
	AdminPhone        string `json:"admin_phone" yaml:"admin_phone"`
	AdminPasscodeHash string `json:"admin_passcode_hash" yaml:"admin_passcode_hash"`
	AdminNickname     string `json:"admin_nickname" yaml:"admin_nickname"`
	AdminContactPhone string `json:"admin_contact_phone" yaml:"admin_contact_phone"`
	AdminWechat       string `json:"admin_wechat" yaml:"admin_wechat"`
}
