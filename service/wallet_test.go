package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"cityinfo/dao/cache"
	"cityinfo/pkg/store"
	"cityinfo/storage"
	"cityinfo/types"
)

func newWalletService(t *testing.T) (*WalletService, *store.Local) {
	t.Helper()
	local := store.Open(filepath.Join(t.TempDir(), "fallback.json"))
	return &WalletService{
		Store: storage.NewLocalWalletStore(local),
		Users: storage.NewLocalUserStore(local),
		Lock:  cache.NewMemoryLocker(),
	}, local
}

func seedUser(t *testing.T, local *store.Local, id string, balance int64) *types.User {
	t.Helper()
	u := &types.User{ID: id, Phone: "13800138000", Nickname: "用户8000", Balance: balance}
	if err := local.Put("users", id, u); err != nil {
		t.Fatal(err)
	}
	return u
}

func TestRechargeValidation(t *testing.T) {
	s, _ := newWalletService(t)

	if _, err := s.Recharge(context.Background(), "u1", 0); err != ErrBadAmount {
		t.Errorf("金额0 err = %v", err)
	}
	if _, err := s.Recharge(context.Background(), "u1", -100); err != ErrBadAmount {
		t.Errorf("负金额 err = %v", err)
	}

	tx, err := s.Recharge(context.Background(), "u1", 5000)
	if err != nil {
		t.Fatalf("Recharge: %v", err)
	}
	if tx.Status != types.TxPending || tx.Type != types.TxRecharge {
		t.Errorf("充值单 = %+v", tx)
	}
}

func TestWithdrawValidation(t *testing.T) {
	s, local := newWalletService(t)
	user := seedUser(t, local, "u1", 10000)
	ctx := context.Background()

	cases := []struct {
		name string
		req  types.WithdrawReq
		want error
	}{
		{"金额为0", types.WithdrawReq{Amount: 0, Method: types.MethodAlipay, Account: "a", RealName: "张三"}, ErrBadAmount},
		{"缺收款账号", types.WithdrawReq{Amount: 100, Method: types.MethodWechat}, ErrBadWithdrawal},
		{"支付宝缺实名", types.WithdrawReq{Amount: 100, Method: types.MethodAlipay, Account: "u1@example.com"}, ErrBadWithdrawal},
		{"银行卡缺开户行", types.WithdrawReq{Amount: 100, Method: types.MethodBank, Account: "6222", RealName: "张三"}, ErrBadWithdrawal},
		{"未知方式", types.WithdrawReq{Amount: 100, Method: "CASH", Account: "a"}, ErrBadWithdrawal},
		{"超过余额", types.WithdrawReq{Amount: 99999, Method: types.MethodAlipay, Account: "a", RealName: "张三"}, ErrBalanceShort},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.Withdraw(ctx, user, &tc.req); err != tc.want {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}

	w, err := s.Withdraw(ctx, user, &types.WithdrawReq{
		Amount: 3000, Method: types.MethodBank,
		Account: "6222000011112222", RealName: "张三", BankName: "工商银行",
	})
	if err != nil {
		t.Fatalf("Withdraw: %v", err)
	}
	if w.Status != types.WithdrawPending {
		t.Errorf("提现单状态 = %s", w.Status)
	}
}

func TestReviewRechargeFlow(t *testing.T) {
	s, local := newWalletService(t)
	seedUser(t, local, "u1", 1000)
	ctx := context.Background()

	tx, err := s.Recharge(ctx, "u1", 5000)
	if err != nil {
		t.Fatalf("Recharge: %v", err)
	}

	pending, err := s.PendingRecharges(ctx)
	if err != nil || len(pending) != 1 {
		t.Fatalf("待审列表 = %v, err = %v", pending, err)
	}

	if err := s.ReviewRecharge(ctx, tx.ID, true); err != nil {
		t.Fatalf("ReviewRecharge: %v", err)
	}

	var u types.User
	local.Get("users", "u1", &u)
	if u.Balance != 6000 {
		t.Errorf("余额 = %d, want 6000", u.Balance)
	}

	// 二次审核拒绝
	if err := s.ReviewRecharge(ctx, tx.ID, true); err != ErrReviewConflict {
		t.Errorf("二次审核 err = %v, want ErrReviewConflict", err)
	}
}

func TestReviewRechargeConcurrent(t *testing.T) {
	s, local := newWalletService(t)
	seedUser(t, local, "u1", 0)
	ctx := context.Background()

	tx, _ := s.Recharge(ctx, "u1", 5000)

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.ReviewRecharge(ctx, tx.ID, true)
		}(i)
	}
	wg.Wait()

	okCount := 0
	for _, err := range errs {
		if err == nil {
			okCount++
		}
	}
	if okCount != 1 {
		t.Errorf("并发审核成功次数 = %d, want 1", okCount)
	}

	var u types.User
	local.Get("users", "u1", &u)
	if u.Balance != 5000 {
		t.Errorf("并发审核后余额 = %d, want 5000", u.Balance)
	}
}

func TestReviewWithdrawalStatus(t *testing.T) {
	s, local := newWalletService(t)
	user := seedUser(t, local, "u1", 10000)
	ctx := context.Background()

	w, err := s.Withdraw(ctx, user, &types.WithdrawReq{
		Amount: 3000, Method: types.MethodAlipay, Account: "u1@example.com", RealName: "张三",
	})
	if err != nil {
		t.Fatalf("Withdraw: %v", err)
	}

	if err := s.ReviewWithdrawal(ctx, w.ID, "CANCELED"); err != ErrBadReviewStatus {
		t.Errorf("非法状态 err = %v", err)
	}

	if err := s.ReviewWithdrawal(ctx, w.ID, types.WithdrawRejected); err != nil {
		t.Fatalf("ReviewWithdrawal: %v", err)
	}

	// 驳回退回预扣金额
	var u types.User
	local.Get("users", "u1", &u)
	if u.Balance != 10000 {
		t.Errorf("驳回后余额 = %d, want 10000", u.Balance)
	}

	if err := s.ReviewWithdrawal(ctx, w.ID, types.WithdrawCompleted); err != ErrReviewConflict {
		t.Errorf("终态再审 err = %v, want ErrReviewConflict", err)
	}
}
