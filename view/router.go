// Package view 客户端视图状态机。
// 服务端校验一次跳转是否合法：参数缺失回首页，
// 未登录访问会话类页面去登录页，非管理员访问后台回首页。
package view

import "strings"

// 视图名
const (
	Home           = "HOME"
	Explore        = "EXPLORE"
	Publish        = "PUBLISH"
	Messages       = "MESSAGES"
	Profile        = "PROFILE"
	PostDetail     = "POST_DETAIL"
	MerchantDetail = "MERCHANT_DETAIL"
	CitySelect     = "CITY_SELECT"
	Login          = "LOGIN"
	AIChat         = "AI_CHAT"
	SupportChat    = "SUPPORT_CHAT"
	ChatDetail     = "CHAT_DETAIL"
	AdminDashboard = "ADMIN_DASHBOARD"
	EditProfile    = "EDIT_PROFILE"
	MyPosts        = "MY_POSTS"
	MyOrders       = "MY_ORDERS"
	MyCollections  = "MY_COLLECTIONS"
	MyHistory      = "MY_HISTORY"
	Wallet         = "WALLET"
	MerchantEntry  = "MERCHANT_ENTRY"
	About          = "ABOUT"
)

// Screen 目标视图及其携带的参数
type Screen struct {
	Name       string `json:"name"`
	PostID     string `json:"post_id,omitempty"`
	MerchantID string `json:"merchant_id,omitempty"`
	ChatID     string `json:"chat_id,omitempty"`
}

// Session 当前访问者身份
type Session struct {
	UserID   string
	IsAdmin  bool
	LoggedIn bool
}

var knownViews = map[string]bool{
	Home: true, Explore: true, Publish: true, Messages: true, Profile: true,
	PostDetail: true, MerchantDetail: true, CitySelect: true, Login: true,
	AIChat: true, SupportChat: true, ChatDetail: true, AdminDashboard: true,
	EditProfile: true, MyPosts: true, MyOrders: true, MyCollections: true,
	MyHistory: true, Wallet: true, MerchantEntry: true, About: true,
}

// 需要登录态的视图
var loginRequired = map[string]bool{
	SupportChat: true,
	ChatDetail:  true,
	EditProfile: true,
}

// Resolve 返回实际应展示的视图
func Resolve(target Screen, sess Session) Screen {
	if !knownViews[target.Name] {
		return Screen{Name: Home}
	}
	switch target.Name {
	case PostDetail:
		if target.PostID == "" {
			return Screen{Name: Home}
		}
	case MerchantDetail:
		if target.MerchantID == "" {
			return Screen{Name: Home}
		}
	case ChatDetail:
		if target.ChatID == "" {
			return Screen{Name: Messages}
		}
	case AdminDashboard:
		if !sess.IsAdmin {
			return Screen{Name: Home}
		}
	}
	if loginRequired[target.Name] && !sess.LoggedIn {
		return Screen{Name: Login}
	}
	return target
}

// NavBarVisible 底部导航只在四个主 Tab 出现
func NavBarVisible(name string) bool {
	switch name {
	case Home, Explore, Messages, Profile:
		return true
	}
	return false
}

// ResolveBanner 广告位跳转：家政类广告进店铺，租房类广告进第一条房源
func ResolveBanner(title, merchantID, housingPostID string) Screen {
	switch {
	case strings.Contains(title, "家政") && merchantID != "":
		return Screen{Name: MerchantDetail, MerchantID: merchantID}
	case strings.Contains(title, "租房") && housingPostID != "":
		return Screen{Name: PostDetail, PostID: housingPostID}
	default:
		return Screen{Name: Home}
	}
}
