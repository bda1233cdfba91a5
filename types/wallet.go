package types

// 交易类型
const (
	TxRecharge     = "RECHARGE"
	TxWithdraw     = "WITHDRAW"
	TxIncome       = "INCOME"
	TxExpense      = "EXPENSE"
	TxOrderPayment = "ORDER_PAYMENT"
)

// 交易状态，只允许 PENDING -> {SUCCESS, FAILED}，终态不可逆
const (
	TxPending = "PENDING"
	TxSuccess = "SUCCESS"
	TxFailed  = "FAILED"
)

// 提现单状态
const (
	WithdrawPending   = "PENDING"
	WithdrawCompleted = "COMPLETED"
	WithdrawRejected  = "REJECTED"
)

// 提现方式
const (
	MethodWechat = "WECHAT"
	MethodAlipay = "ALIPAY"
	MethodBank   = "BANK"
)

// WalletTransaction 钱包流水，金额单位分，正数入账负数出账
type WalletTransaction struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	Type         string `json:"type"`
	Title        string `json:"title"`
	Amount       int64  `json:"amount"`
	BalanceAfter int64  `json:"balance_after"`
	Status       string `json:"status"`
	Timestamp    int64  `json:"timestamp"`
}

type WithdrawalRequest struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	UserNickname string `json:"user_nickname"`
	Amount       int64  `json:"amount"`
	Method       string `json:"method"`
	Account      string `json:"account"`
	RealName     string `json:"real_name,omitempty"`
	BankName     string `json:"bank_name,omitempty"`
	Status       string `json:"status"`
	Timestamp    int64  `json:"timestamp"`
}

type RechargeReq struct {
	Amount int64 `json:"amount"`
}

type WithdrawReq struct {
	Amount   int64  `json:"amount"`
	Method   string `json:"method"`
	Account  string `json:"account"`
	RealName string `json:"real_name"`
	BankName string `json:"bank_name"`
}

type ReviewReq struct {
	Status string `json:"status"`
}
