package storage

import (
	"context"
	"errors"
	"sort"
	"sync"

	"cityinfo/dao"
	"cityinfo/models"
	"cityinfo/pkg/store"
	"cityinfo/types"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrAlreadyReviewed     = errors.New("该笔单据已审核")
	ErrInsufficientBalance = errors.New("余额不足")
)

// linkedTxID 提现单关联流水的 ID 约定
func linkedTxID(withdrawalID string) string {
	return "tx_" + withdrawalID
}

type WalletStore interface {
	Transactions(ctx context.Context, userID string) ([]types.WalletTransaction, error)
	CreateRecharge(ctx context.Context, tx *types.WalletTransaction) error
	PendingRecharges(ctx context.Context) ([]types.WalletTransaction, error)
	// ReviewRecharge 审核通过时入账；单据非 PENDING 返回 ErrAlreadyReviewed
	ReviewRecharge(ctx context.Context, txID string, approved bool) error
	// CreateWithdrawal 扣减余额、建提现单和关联流水，三步在同一事务内
	CreateWithdrawal(ctx context.Context, w *types.WithdrawalRequest) error
	PendingWithdrawals(ctx context.Context) ([]types.WithdrawalRequest, error)
	// ReviewWithdrawal 打款完成或驳回；驳回时把预扣的金额退回余额
	ReviewWithdrawal(ctx context.Context, id, status string) error
}

type DBWalletStore struct {
	db          *gorm.DB
	users       *dao.Users
	walletDAO   *dao.WalletDAO
	withdrawDAO *dao.WithdrawalDAO
}

func NewDBWalletStore(db *gorm.DB, users *dao.Users, walletDAO *dao.WalletDAO, withdrawDAO *dao.WithdrawalDAO) *DBWalletStore {
	return &DBWalletStore{db: db, users: users, walletDAO: walletDAO, withdrawDAO: withdrawDAO}
}

func (s *DBWalletStore) Transactions(ctx context.Context, userID string) ([]types.WalletTransaction, error) {
	rows, err := s.walletDAO.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	txs := make([]types.WalletTransaction, 0, len(rows))
	for _, row := range rows {
		txs = append(txs, txFromModel(row))
	}
	return txs, nil
}

func (s *DBWalletStore) CreateRecharge(ctx context.Context, tx *types.WalletTransaction) error {
	return s.walletDAO.Create(ctx, txToModel(tx))
}

func (s *DBWalletStore) PendingRecharges(ctx context.Context) ([]types.WalletTransaction, error) {
	rows, err := s.walletDAO.ListPendingRecharges(ctx)
	if err != nil {
		return nil, err
	}
	txs := make([]types.WalletTransaction, 0, len(rows))
	for _, row := range rows {
		txs = append(txs, txFromModel(row))
	}
	return txs, nil
}

func (s *DBWalletStore) ReviewRecharge(ctx context.Context, txID string, approved bool) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row models.WalletTransaction
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", txID).
			First(&row).Error
		if err != nil {
			return err
		}
		if row.Status != types.TxPending {
			return ErrAlreadyReviewed
		}

		if !approved {
			return s.walletDAO.UpdateStatus(ctx, tx, txID, types.TxFailed)
		}

		var user models.User
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", row.UserID).
			First(&user).Error
		if err != nil {
			return err
		}
		newBalance := user.Balance + row.Amount
		err = tx.Model(&models.User{}).
			Where("id = ?", user.ID).
			Update("balance", newBalance).Error
		if err != nil {
			return err
		}
		return tx.Model(&models.WalletTransaction{}).
			Where("id = ?", txID).
			Updates(map[string]any{
				"status":        types.TxSuccess,
				"balance_after": newBalance,
			}).Error
	})
}

func (s *DBWalletStore) CreateWithdrawal(ctx context.Context, w *types.WithdrawalRequest) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", w.UserID).
			First(&user).Error
		if err != nil {
			return err
		}
		if user.Balance < w.Amount {
			return ErrInsufficientBalance
		}
		newBalance := user.Balance - w.Amount
		err = tx.Model(&models.User{}).
			Where("id = ?", user.ID).
			Update("balance", newBalance).Error
		if err != nil {
			return err
		}
		if err := tx.Create(withdrawalToModel(w)).Error; err != nil {
			return err
		}
		return tx.Create(&models.WalletTransaction{
			ID:           linkedTxID(w.ID),
			UserID:       w.UserID,
			Type:         types.TxWithdraw,
			Title:        "提现-" + w.Method,
			Amount:       -w.Amount,
			BalanceAfter: newBalance,
			Status:       types.TxPending,
			Timestamp:    w.Timestamp,
		}).Error
	})
}

func (s *DBWalletStore) PendingWithdrawals(ctx context.Context) ([]types.WithdrawalRequest, error) {
	rows, err := s.withdrawDAO.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]types.WithdrawalRequest, 0, len(rows))
	for _, row := range rows {
		items = append(items, withdrawalFromModel(row))
	}
	return items, nil
}

func (s *DBWalletStore) ReviewWithdrawal(ctx context.Context, id, status string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row models.Withdrawal
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&row).Error
		if err != nil {
			return err
		}
		if row.Status != types.WithdrawPending {
			return ErrAlreadyReviewed
		}
		if err := s.withdrawDAO.UpdateStatus(ctx, tx, id, status); err != nil {
			return err
		}

		if status == types.WithdrawCompleted {
			return s.walletDAO.UpdateStatus(ctx, tx, linkedTxID(id), types.TxSuccess)
		}

		// 驳回：流水置失败，预扣金额退回余额
		if err := s.walletDAO.UpdateStatus(ctx, tx, linkedTxID(id), types.TxFailed); err != nil {
			return err
		}
		return s.users.AddBalance(ctx, tx, row.UserID, row.Amount)
	})
}

// LocalWalletStore 本地兜底实现，互斥锁保证扣款和建单的原子性
type LocalWalletStore struct {
	local *store.Local
	mu    sync.Mutex
}

func NewLocalWalletStore(l *store.Local) *LocalWalletStore {
	return &LocalWalletStore{local: l}
}

func (s *LocalWalletStore) Transactions(_ context.Context, userID string) ([]types.WalletTransaction, error) {
	txs := make([]types.WalletTransaction, 0)
	for _, tx := range store.List[types.WalletTransaction](s.local, bucketWalletTx) {
		if tx.UserID == userID {
			txs = append(txs, tx)
		}
	}
	sort.Slice(txs, func(i, j int) bool { return txs[i].Timestamp > txs[j].Timestamp })
	return txs, nil
}

func (s *LocalWalletStore) CreateRecharge(_ context.Context, tx *types.WalletTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.local.Put(bucketWalletTx, tx.ID, tx)
}

func (s *LocalWalletStore) PendingRecharges(_ context.Context) ([]types.WalletTransaction, error) {
	txs := make([]types.WalletTransaction, 0)
	for _, tx := range store.List[types.WalletTransaction](s.local, bucketWalletTx) {
		if tx.Type == types.TxRecharge && tx.Status == types.TxPending {
			txs = append(txs, tx)
		}
	}
	sort.Slice(txs, func(i, j int) bool { return txs[i].Timestamp < txs[j].Timestamp })
	return txs, nil
}

func (s *LocalWalletStore) ReviewRecharge(_ context.Context, txID string, approved bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var tx types.WalletTransaction
	if !s.local.Get(bucketWalletTx, txID, &tx) {
		return ErrNotFound
	}
	if tx.Status != types.TxPending {
		return ErrAlreadyReviewed
	}

	if !approved {
		tx.Status = types.TxFailed
		return s.local.Put(bucketWalletTx, txID, tx)
	}

	var user types.User
	if !s.local.Get(bucketUsers, tx.UserID, &user) {
		return ErrNotFound
	}
	user.Balance += tx.Amount
	if err := s.local.Put(bucketUsers, user.ID, user); err != nil {
		return err
	}
	tx.Status = types.TxSuccess
	tx.BalanceAfter = user.Balance
	return s.local.Put(bucketWalletTx, txID, tx)
}

func (s *LocalWalletStore) CreateWithdrawal(_ context.Context, w *types.WithdrawalRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var user types.User
	if !s.local.Get(bucketUsers, w.UserID, &user) {
		return ErrNotFound
	}
	if user.Balance < w.Amount {
		return ErrInsufficientBalance
	}
	user.Balance -= w.Amount
	if err := s.local.Put(bucketUsers, user.ID, user); err != nil {
		return err
	}
	if err := s.local.Put(bucketWithdrawals, w.ID, w); err != nil {
		return err
	}
	return s.local.Put(bucketWalletTx, linkedTxID(w.ID), types.WalletTransaction{
		ID:           linkedTxID(w.ID),
		UserID:       w.UserID,
		Type:         types.TxWithdraw,
		Title:        "提现-" + w.Method,
		Amount:       -w.Amount,
		BalanceAfter: user.Balance,
		Status:       types.TxPending,
		Timestamp:    w.Timestamp,
	})
}

func (s *LocalWalletStore) PendingWithdrawals(_ context.Context) ([]types.WithdrawalRequest, error) {
	items := make([]types.WithdrawalRequest, 0)
	for _, w := range store.List[types.WithdrawalRequest](s.local, bucketWithdrawals) {
		if w.Status == types.WithdrawPending {
			items = append(items, w)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Timestamp < items[j].Timestamp })
	return items, nil
}

func (s *LocalWalletStore) ReviewWithdrawal(_ context.Context, id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var w types.WithdrawalRequest
	if !s.local.Get(bucketWithdrawals, id, &w) {
		return ErrNotFound
	}
	if w.Status != types.WithdrawPending {
		return ErrAlreadyReviewed
	}
	w.Status = status
	if err := s.local.Put(bucketWithdrawals, id, w); err != nil {
		return err
	}

	var tx types.WalletTransaction
	if s.local.Get(bucketWalletTx, linkedTxID(id), &tx) {
		if status == types.WithdrawCompleted {
			tx.Status = types.TxSuccess
		} else {
			tx.Status = types.TxFailed
		}
		if err := s.local.Put(bucketWalletTx, tx.ID, tx); err != nil {
			return err
		}
	}

	if status == types.WithdrawRejected {
		var user types.User
		if s.local.Get(bucketUsers, w.UserID, &user) {
			user.Balance += w.Amount
			return s.local.Put(bucketUsers, user.ID, user)
		}
	}
	return nil
}

type ResilientWalletStore struct {
	remote *DBWalletStore
	local  *LocalWalletStore
}

func NewResilientWalletStore(remote *DBWalletStore, local *LocalWalletStore) *ResilientWalletStore {
	return &ResilientWalletStore{remote: remote, local: local}
}

func (s *ResilientWalletStore) Transactions(ctx context.Context, userID string) ([]types.WalletTransaction, error) {
	return degrade("wallet.transactions",
		func() ([]types.WalletTransaction, error) { return s.remote.Transactions(ctx, userID) },
		func() ([]types.WalletTransaction, error) { return s.local.Transactions(ctx, userID) },
	)
}

func (s *ResilientWalletStore) CreateRecharge(ctx context.Context, tx *types.WalletTransaction) error {
	return degradeErr("wallet.create_recharge",
		func() error { return s.remote.CreateRecharge(ctx, tx) },
		func() error { return s.local.CreateRecharge(ctx, tx) },
	)
}

func (s *ResilientWalletStore) PendingRecharges(ctx context.Context) ([]types.WalletTransaction, error) {
	return degrade("wallet.pending_recharges",
		func() ([]types.WalletTransaction, error) { return s.remote.PendingRecharges(ctx) },
		func() ([]types.WalletTransaction, error) { return s.local.PendingRecharges(ctx) },
	)
}

func (s *ResilientWalletStore) ReviewRecharge(ctx context.Context, txID string, approved bool) error {
	err := s.remote.ReviewRecharge(ctx, txID, approved)
	if err == nil || errors.Is(err, ErrAlreadyReviewed) {
		return err
	}
	return s.reviewRechargeLocal(ctx, txID, approved, err)
}

func (s *ResilientWalletStore) reviewRechargeLocal(ctx context.Context, txID string, approved bool, cause error) error {
	return degradeErr("wallet.review_recharge",
		func() error { return cause },
		func() error { return s.local.ReviewRecharge(ctx, txID, approved) },
	)
}

func (s *ResilientWalletStore) CreateWithdrawal(ctx context.Context, w *types.WithdrawalRequest) error {
	err := s.remote.CreateWithdrawal(ctx, w)
	if err == nil || errors.Is(err, ErrInsufficientBalance) {
		return err
	}
	return degradeErr("wallet.create_withdrawal",
		func() error { return err },
		func() error { return s.local.CreateWithdrawal(ctx, w) },
	)
}

func (s *ResilientWalletStore) PendingWithdrawals(ctx context.Context) ([]types.WithdrawalRequest, error) {
	return degrade("wallet.pending_withdrawals",
		func() ([]types.WithdrawalRequest, error) { return s.remote.PendingWithdrawals(ctx) },
		func() ([]types.WithdrawalRequest, error) { return s.local.PendingWithdrawals(ctx) },
	)
}

func (s *ResilientWalletStore) ReviewWithdrawal(ctx context.Context, id, status string) error {
	err := s.remote.ReviewWithdrawal(ctx, id, status)
	if err == nil || errors.Is(err, ErrAlreadyReviewed) {
		return err
	}
	return degradeErr("wallet.review_withdrawal",
		func() error { return err },
		func() error { return s.local.ReviewWithdrawal(ctx, id, status) },
	)
}
