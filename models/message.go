package models

type Message struct {
	ID             string `gorm:"column:id;primaryKey;size:64" json:"id"`
	Kind           string `gorm:"column:kind;size:16;index:idx_conv,priority:1" json:"kind"`                     // support / direct
	ConversationID string `gorm:"column:conversation_id;size:64;index:idx_conv,priority:2" json:"conversation_id"` // 客服会话为用户ID，普通会话为会话ID
	Role           string `gorm:"column:role;size:16;not null" json:"role"`
	Content        string `gorm:"column:content;type:text" json:"content"`
	Timestamp      int64  `gorm:"column:timestamp;index:idx_timestamp" json:"timestamp"` // 毫秒
}

func (Message) TableName() string {
	return "messages"
}
