package types

// 消息角色
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleAdmin     = "admin"
	RoleSystem    = "system"
)

// 会话分区：客服会话按用户ID分桶，普通会话按会话ID分桶
const (
	ConvSupport = "support"
	ConvDirect  = "direct"
)

type ChatMessage struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"` // 毫秒时间戳
}

// ChatSession 会话列表项（商户、HR 等联系人入口）
type ChatSession struct {
	ID          string `json:"id"`
	TargetName  string `json:"target_name"`
	AvatarURL   string `json:"avatar_url"`
	LastMessage string `json:"last_message"`
	LastTime    int64  `json:"last_time"`
	UnreadCount int    `json:"unread_count"`
	IsAI        bool   `json:"is_ai,omitempty"`
}

type SendMessageRequest struct {
	Content string `json:"content"`
}
