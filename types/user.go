package types

type User struct {
	ID           string `json:"id"`
	Phone        string `json:"phone"`
	Nickname     string `json:"nickname"`
	AvatarURL    string `json:"avatar_url"`
	IsVerified   bool   `json:"is_verified"`
	RegisterTime int64  `json:"register_time"` // 毫秒时间戳
	IsAdmin      bool   `json:"is_admin"`
	RealName     string `json:"real_name,omitempty"`
	QQ           string `json:"qq,omitempty"`
	Wechat       string `json:"wechat,omitempty"`
	Address      string `json:"address,omitempty"`
	Balance      int64  `json:"balance"` // 余额，单位分
}

type UpdateUserReq struct {
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatar_url"`
	RealName  string `json:"real_name"`
	QQ        string `json:"qq"`
	Wechat    string `json:"wechat"`
	Address   string `json:"address"`
}
