package storage

import (
	"context"
	"path/filepath"
	"testing"

	"cityinfo/pkg/store"
	"cityinfo/types"
)

func newLocalWallet(t *testing.T) (*LocalWalletStore, *store.Local) {
	t.Helper()
	l := store.Open(filepath.Join(t.TempDir(), "fallback.json"))
	return NewLocalWalletStore(l), l
}

func putUser(t *testing.T, l *store.Local, id string, balance int64) {
	t.Helper()
	if err := l.Put(bucketUsers, id, types.User{ID: id, Phone: "138" + id, Balance: balance}); err != nil {
		t.Fatal(err)
	}
}

func getBalance(t *testing.T, l *store.Local, id string) int64 {
	t.Helper()
	var u types.User
	if !l.Get(bucketUsers, id, &u) {
		t.Fatalf("用户 %s 不存在", id)
	}
	return u.Balance
}

func TestReviewRechargeApproved(t *testing.T) {
	s, l := newLocalWallet(t)
	ctx := context.Background()
	putUser(t, l, "u1", 1000)

	tx := &types.WalletTransaction{
		ID: "r1", UserID: "u1", Type: types.TxRecharge,
		Amount: 5000, Status: types.TxPending, Timestamp: 1,
	}
	if err := s.CreateRecharge(ctx, tx); err != nil {
		t.Fatalf("CreateRecharge: %v", err)
	}

	if err := s.ReviewRecharge(ctx, "r1", true); err != nil {
		t.Fatalf("ReviewRecharge: %v", err)
	}
	if got := getBalance(t, l, "u1"); got != 6000 {
		t.Errorf("余额 = %d, want 6000", got)
	}

	// 重复审核必须被拒绝，余额不能再变
	if err := s.ReviewRecharge(ctx, "r1", true); err != ErrAlreadyReviewed {
		t.Errorf("二次审核 err = %v, want ErrAlreadyReviewed", err)
	}
	if got := getBalance(t, l, "u1"); got != 6000 {
		t.Errorf("二次审核后余额 = %d, want 6000", got)
	}
}

func TestReviewRechargeRejected(t *testing.T) {
	s, l := newLocalWallet(t)
	ctx := context.Background()
	putUser(t, l, "u1", 1000)

	_ = s.CreateRecharge(ctx, &types.WalletTransaction{
		ID: "r1", UserID: "u1", Type: types.TxRecharge,
		Amount: 5000, Status: types.TxPending, Timestamp: 1,
	})

	if err := s.ReviewRecharge(ctx, "r1", false); err != nil {
		t.Fatalf("ReviewRecharge: %v", err)
	}
	if got := getBalance(t, l, "u1"); got != 1000 {
		t.Errorf("驳回后余额 = %d, want 1000", got)
	}

	var tx types.WalletTransaction
	l.Get(bucketWalletTx, "r1", &tx)
	if tx.Status != types.TxFailed {
		t.Errorf("流水状态 = %s, want FAILED", tx.Status)
	}
}

func TestCreateWithdrawalReservesBalance(t *testing.T) {
	s, l := newLocalWallet(t)
	ctx := context.Background()
	putUser(t, l, "u1", 10000)

	w := &types.WithdrawalRequest{
		ID: "w1", UserID: "u1", Amount: 3000,
		Method: types.MethodAlipay, Account: "u1@example.com",
		Status: types.WithdrawPending, Timestamp: 1,
	}
	if err := s.CreateWithdrawal(ctx, w); err != nil {
		t.Fatalf("CreateWithdrawal: %v", err)
	}

	// 提交即预扣
	if got := getBalance(t, l, "u1"); got != 7000 {
		t.Errorf("预扣后余额 = %d, want 7000", got)
	}

	// 关联流水同事务生成，金额为负
	var tx types.WalletTransaction
	if !l.Get(bucketWalletTx, "tx_w1", &tx) {
		t.Fatal("缺少关联流水 tx_w1")
	}
	if tx.Amount != -3000 || tx.Status != types.TxPending || tx.Type != types.TxWithdraw {
		t.Errorf("关联流水异常: %+v", tx)
	}
}

func TestCreateWithdrawalInsufficient(t *testing.T) {
	s, l := newLocalWallet(t)
	ctx := context.Background()
	putUser(t, l, "u1", 1000)

	err := s.CreateWithdrawal(ctx, &types.WithdrawalRequest{
		ID: "w1", UserID: "u1", Amount: 3000,
		Status: types.WithdrawPending, Timestamp: 1,
	})
	if err != ErrInsufficientBalance {
		t.Fatalf("err = %v, want ErrInsufficientBalance", err)
	}
	if got := getBalance(t, l, "u1"); got != 1000 {
		t.Errorf("余额不应变化, got %d", got)
	}
}

func TestReviewWithdrawalCompleted(t *testing.T) {
	s, l := newLocalWallet(t)
	ctx := context.Background()
	putUser(t, l, "u1", 10000)

	_ = s.CreateWithdrawal(ctx, &types.WithdrawalRequest{
		ID: "w1", UserID: "u1", Amount: 3000,
		Status: types.WithdrawPending, Timestamp: 1,
	})

	if err := s.ReviewWithdrawal(ctx, "w1", types.WithdrawCompleted); err != nil {
		t.Fatalf("ReviewWithdrawal: %v", err)
	}
	// 打款完成不退钱
	if got := getBalance(t, l, "u1"); got != 7000 {
		t.Errorf("余额 = %d, want 7000", got)
	}
	var tx types.WalletTransaction
	l.Get(bucketWalletTx, "tx_w1", &tx)
	if tx.Status != types.TxSuccess {
		t.Errorf("流水状态 = %s, want SUCCESS", tx.Status)
	}
}

func TestReviewWithdrawalRejectedRestoresBalance(t *testing.T) {
	s, l := newLocalWallet(t)
	ctx := context.Background()
	putUser(t, l, "u1", 10000)

	_ = s.CreateWithdrawal(ctx, &types.WithdrawalRequest{
		ID: "w1", UserID: "u1", Amount: 3000,
		Status: types.WithdrawPending, Timestamp: 1,
	})

	if err := s.ReviewWithdrawal(ctx, "w1", types.WithdrawRejected); err != nil {
		t.Fatalf("ReviewWithdrawal: %v", err)
	}
	// 驳回时预扣的钱退回
	if got := getBalance(t, l, "u1"); got != 10000 {
		t.Errorf("驳回后余额 = %d, want 10000", got)
	}
	var tx types.WalletTransaction
	l.Get(bucketWalletTx, "tx_w1", &tx)
	if tx.Status != types.TxFailed {
		t.Errorf("流水状态 = %s, want FAILED", tx.Status)
	}

	if err := s.ReviewWithdrawal(ctx, "w1", types.WithdrawCompleted); err != ErrAlreadyReviewed {
		t.Errorf("二次审核 err = %v, want ErrAlreadyReviewed", err)
	}
}
