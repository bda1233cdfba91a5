package service

import (
	"context"
	"errors"
	"time"

	"cityinfo/dao/cache"
	"cityinfo/pkg/response"
	"cityinfo/pkg/snowflake"
	"cityinfo/storage"
	"cityinfo/types"
)

var (
	ErrBadAmount       = &response.BizError{Code: 40040, Msg: "金额必须大于0"}
	ErrBadWithdrawal   = &response.BizError{Code: 40041, Msg: "提现信息不完整"}
	ErrBalanceShort    = &response.BizError{Code: 40042, Msg: "余额不足"}
	ErrReviewConflict  = &response.BizError{Code: 40901, Msg: "该笔单据正在审核或已审核"}
	ErrBadReviewStatus = &response.BizError{Code: 40043, Msg: "审核状态不合法"}
)

var _ IWalletService = (*WalletService)(nil)

type IWalletService interface {
	Transactions(ctx context.Context, userID string) ([]types.WalletTransaction, error)
	// Recharge 线下扫码转账后提交充值申请，待管理员对账审核
	Recharge(ctx context.Context, userID string, amount int64) (*types.WalletTransaction, error)
	// Withdraw 提交即预扣余额，生成提现单和关联流水
	Withdraw(ctx context.Context, user *types.User, req *types.WithdrawReq) (*types.WithdrawalRequest, error)

	PendingRecharges(ctx context.Context) ([]types.WalletTransaction, error)
	ReviewRecharge(ctx context.Context, txID string, approved bool) error
	PendingWithdrawals(ctx context.Context) ([]types.WithdrawalRequest, error)
	ReviewWithdrawal(ctx context.Context, id, status string) error
}

type WalletService struct {
	Store storage.WalletStore
	Users storage.UserStore
	Lock  cache.Locker
}

func (s *WalletService) Transactions(ctx context.Context, userID string) ([]types.WalletTransaction, error) {
	return s.Store.Transactions(ctx, userID)
}

func (s *WalletService) Recharge(ctx context.Context, userID string, amount int64) (*types.WalletTransaction, error) {
	if amount <= 0 {
		return nil, ErrBadAmount
	}
	tx := &types.WalletTransaction{
		ID:        snowflake.GenStringID(),
		UserID:    userID,
		Type:      types.TxRecharge,
		Title:     "钱包充值",
		Amount:    amount,
		Status:    types.TxPending,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := s.Store.CreateRecharge(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *WalletService) Withdraw(ctx context.Context, user *types.User, req *types.WithdrawReq) (*types.WithdrawalRequest, error) {
	if req.Amount <= 0 {
		return nil, ErrBadAmount
	}
	// 微信之外的渠道打款需要实名
	switch req.Method {
	case types.MethodWechat:
		if req.Account == "" {
			return nil, ErrBadWithdrawal
		}
	case types.MethodAlipay:
		if req.Account == "" || req.RealName == "" {
			return nil, ErrBadWithdrawal
		}
	case types.MethodBank:
		if req.Account == "" || req.BankName == "" || req.RealName == "" {
			return nil, ErrBadWithdrawal
		}
	default:
		return nil, ErrBadWithdrawal
	}
	if req.Amount > user.Balance {
		return nil, ErrBalanceShort
	}

	w := &types.WithdrawalRequest{
		ID:           snowflake.GenStringID(),
		UserID:       user.ID,
		UserNickname: user.Nickname,
		Amount:       req.Amount,
		Method:       req.Method,
		Account:      req.Account,
		RealName:     req.RealName,
		BankName:     req.BankName,
		Status:       types.WithdrawPending,
		Timestamp:    time.Now().UnixMilli(),
	}
	if err := s.Store.CreateWithdrawal(ctx, w); err != nil {
		if errors.Is(err, storage.ErrInsufficientBalance) {
			return nil, ErrBalanceShort
		}
		return nil, err
	}
	return w, nil
}

func (s *WalletService) PendingRecharges(ctx context.Context) ([]types.WalletTransaction, error) {
	return s.Store.PendingRecharges(ctx)
}

func (s *WalletService) ReviewRecharge(ctx context.Context, txID string, approved bool) error {
	ok, err := s.Lock.TryLock(ctx, "recharge:"+txID, 30*time.Second)
	if err != nil {
		return err
	}
	if !ok {
		return ErrReviewConflict
	}
	defer s.Lock.Unlock(ctx, "recharge:"+txID)

	if err := s.Store.ReviewRecharge(ctx, txID, approved); err != nil {
		if errors.Is(err, storage.ErrAlreadyReviewed) {
			return ErrReviewConflict
		}
		return err
	}
	return nil
}

func (s *WalletService) PendingWithdrawals(ctx context.Context) ([]types.WithdrawalRequest, error) {
	return s.Store.PendingWithdrawals(ctx)
}

func (s *WalletService) ReviewWithdrawal(ctx context.Context, id, status string) error {
	if status != types.WithdrawCompleted && status != types.WithdrawRejected {
		return ErrBadReviewStatus
	}
	ok, err := s.Lock.TryLock(ctx, "withdrawal:"+id, 30*time.Second)
	if err != nil {
		return err
	}
	if !ok {
		return ErrReviewConflict
	}
	defer s.Lock.Unlock(ctx, "withdrawal:"+id)

	if err := s.Store.ReviewWithdrawal(ctx, id, status); err != nil {
		if errors.Is(err, storage.ErrAlreadyReviewed) {
			return ErrReviewConflict
		}
		return err
	}
	return nil
}
