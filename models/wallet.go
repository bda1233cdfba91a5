package models

// WalletTransaction 钱包流水表
// 只追加，状态只允许 PENDING -> SUCCESS/FAILED 的单向迁移
type WalletTransaction struct {
	ID           string `gorm:"column:id;primaryKey;size:64" json:"id"`
	UserID       string `gorm:"column:user_id;size:64;index:idx_user_id" json:"user_id"`
	Type         string `gorm:"column:type;size:20;index:idx_type_status,priority:1" json:"type"`
	Title        string `gorm:"column:title;size:128" json:"title"`
	Amount       int64  `gorm:"column:amount;not null" json:"amount"` // 分，正入账负出账
	BalanceAfter int64  `gorm:"column:balance_after" json:"balance_after"`
	Status       string `gorm:"column:status;size:16;index:idx_type_status,priority:2" json:"status"`
	Timestamp    int64  `gorm:"column:timestamp;index:idx_timestamp" json:"timestamp"`
}

func (WalletTransaction) TableName() string {
	return "wallet_transactions"
}

type Withdrawal struct {
	ID           string `gorm:"column:id;primaryKey;size:64" json:"id"`
	UserID       string `gorm:"column:user_id;size:64;index:idx_user_id" json:"user_id"`
	UserNickname string `gorm:"column:user_nickname;size:64" json:"user_nickname"`
	Amount       int64  `gorm:"column:amount;not null" json:"amount"` // 分
	Method       string `gorm:"column:method;size:16" json:"method"`
	Account      string `gorm:"column:account;size:128" json:"account"`
	RealName     string `gorm:"column:real_name;size:64;default:''" json:"real_name"`
	BankName     string `gorm:"column:bank_name;size:64;default:''" json:"bank_name"`
	Status       string `gorm:"column:status;size:16;index:idx_status" json:"status"`
	Timestamp    int64  `gorm:"column:timestamp;index:idx_timestamp" json:"timestamp"`
}

func (Withdrawal) TableName() string {
	return "withdrawals"
}
