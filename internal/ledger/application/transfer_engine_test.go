package application

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	dbmocks "github.com/somanmedha/banking-application/gen/mocks/database"
	ledgermocks "github.com/somanmedha/banking-application/gen/mocks/ledger"
	"github.com/somanmedha/banking-application/internal/ledger/domain"
	"github.com/somanmedha/banking-application/internal/pkg/database"
	"github.com/somanmedha/banking-application/internal/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var engineNow = time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

type engineDeps struct {
	txManager           *dbmocks.MockTxManager
	accountGuard        *ledgermocks.MockAccountGuard
	accountsLocker      *ledgermocks.MockAccountsLocker
	balanceUpdater      *ledgermocks.MockBalanceUpdater
	accountsRepository  *ledgermocks.MockAccountsRepository
	transactionAppender *ledgermocks.MockTransactionAppender
	transactionsFetcher *ledgermocks.MockTransactionsFetcher

	unlocked int
}

func newEngineDeps(ctrl *gomock.Controller) *engineDeps {
	return &engineDeps{
		txManager:           dbmocks.NewMockTxManager(ctrl),
		accountGuard:        ledgermocks.NewMockAccountGuard(ctrl),
		accountsLocker:      ledgermocks.NewMockAccountsLocker(ctrl),
		balanceUpdater:      ledgermocks.NewMockBalanceUpdater(ctrl),
		accountsRepository:  ledgermocks.NewMockAccountsRepository(ctrl),
		transactionAppender: ledgermocks.NewMockTransactionAppender(ctrl),
		transactionsFetcher: ledgermocks.NewMockTransactionsFetcher(ctrl),
	}
}

func (d *engineDeps) engine() *TransferEngine {
	journal := NewTransactionJournal(d.accountsRepository, d.transactionAppender, d.transactionsFetcher)
	engine := NewTransferEngine(d.txManager, d.accountGuard, d.accountsLocker, d.balanceUpdater, journal, time.Second, logging.NopLogger)
	engine.now = func() time.Time { return engineNow }
	return engine
}

// expectLocked wires the guard, the transaction and the row lock for the
// given accounts, returning the stored rows that exist.
func (d *engineDeps) expectLocked(accountIDs []int64, stored ...domain.Account) {
	d.accountGuard.EXPECT().LockAccounts(gomock.Any(), accountIDs).
		Return(func() { d.unlocked++ }, nil)
	d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, txFn database.TxFunc) error {
			return txFn(ctx, nil)
		})
	d.accountsLocker.EXPECT().LockAccounts(gomock.Any(), nil, accountIDs).
		Return(stored, nil)
}

func storedAccount(id int64, balance string) domain.Account {
	return domain.Account{ID: id, HolderName: fmt.Sprintf("holder-%d", id), Balance: dec(balance), OpeningBalance: dec(balance)}
}

func TestTransferEngine_Deposit(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name      string
		accountID int64
		amount    decimal.Decimal

		prepareFn func(t *testing.T, d *engineDeps)

		expectedBalance string
		expectedUnlocks int
		expectedErr     error
	}

	tests := []testCase{
		{
			name:      "credits balance and journals deposit",
			accountID: 1,
			amount:    dec("250.50"),
			prepareFn: func(t *testing.T, d *engineDeps) {
				d.expectLocked([]int64{1}, storedAccount(1, "1000"))
				d.balanceUpdater.EXPECT().UpdateBalance(gomock.Any(), nil, int64(1), decimalEq("1250.50")).
					Return(nil)
				d.transactionAppender.EXPECT().AppendTransaction(gomock.Any(), nil, transactionEq(domain.Transaction{
					AccountID: 1, Amount: dec("250.50"), Type: domain.TransactionTypeDeposit,
					Direction: domain.DirectionCredit, Timestamp: engineNow,
				})).Return(domain.Transaction{ID: 1}, nil)
			},
			expectedBalance: "1250.50",
			expectedUnlocks: 1,
		},
		{
			name:        "zero amount",
			accountID:   1,
			amount:      decimal.Zero,
			prepareFn:   func(t *testing.T, d *engineDeps) {},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:        "negative amount",
			accountID:   1,
			amount:      dec("-5"),
			prepareFn:   func(t *testing.T, d *engineDeps) {},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:        "amount finer than cents",
			accountID:   1,
			amount:      dec("0.001"),
			prepareFn:   func(t *testing.T, d *engineDeps) {},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:        "amount beyond store range",
			accountID:   1,
			amount:      dec("1000000000000000000"),
			prepareFn:   func(t *testing.T, d *engineDeps) {},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:      "resulting balance beyond store range",
			accountID: 1,
			amount:    dec("0.01"),
			prepareFn: func(t *testing.T, d *engineDeps) {
				d.expectLocked([]int64{1}, storedAccount(1, "999999999999999999.99"))
			},
			expectedUnlocks: 1,
			expectedErr:     &domain.InvalidArgumentsError{},
		},
		{
			name:      "unknown account",
			accountID: 9,
			amount:    dec("10"),
			prepareFn: func(t *testing.T, d *engineDeps) {
				d.expectLocked([]int64{9})
			},
			expectedUnlocks: 1,
			expectedErr:     &domain.AccountNotFoundError{},
		},
		{
			name:      "balance update error",
			accountID: 1,
			amount:    dec("10"),
			prepareFn: func(t *testing.T, d *engineDeps) {
				d.expectLocked([]int64{1}, storedAccount(1, "0"))
				d.balanceUpdater.EXPECT().UpdateBalance(gomock.Any(), nil, int64(1), decimalEq("10")).
					Return(assert.AnError)
			},
			expectedUnlocks: 1,
			expectedErr:     assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d := newEngineDeps(ctrl)
			tt.prepareFn(t, d)

			updated, err := d.engine().Deposit(t.Context(), tt.accountID, tt.amount)
			assert.Equal(t, tt.expectedUnlocks, d.unlocked)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.True(t, dec(tt.expectedBalance).Equal(updated.Balance), "balance %s", updated.Balance)
		})
	}
}

func TestTransferEngine_Withdraw(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name      string
		accountID int64
		amount    decimal.Decimal

		prepareFn func(t *testing.T, d *engineDeps)

		expectedBalance string
		expectedErr     error
	}

	tests := []testCase{
		{
			name:      "debits balance and journals withdrawal",
			accountID: 1,
			amount:    dec("400"),
			prepareFn: func(t *testing.T, d *engineDeps) {
				d.expectLocked([]int64{1}, storedAccount(1, "1000"))
				d.balanceUpdater.EXPECT().UpdateBalance(gomock.Any(), nil, int64(1), decimalEq("600")).
					Return(nil)
				d.transactionAppender.EXPECT().AppendTransaction(gomock.Any(), nil, transactionEq(domain.Transaction{
					AccountID: 1, Amount: dec("400"), Type: domain.TransactionTypeWithdraw,
					Direction: domain.DirectionDebit, Timestamp: engineNow,
				})).Return(domain.Transaction{ID: 2}, nil)
			},
			expectedBalance: "600",
		},
		{
			name:      "withdraw whole balance",
			accountID: 1,
			amount:    dec("1000"),
			prepareFn: func(t *testing.T, d *engineDeps) {
				d.expectLocked([]int64{1}, storedAccount(1, "1000"))
				d.balanceUpdater.EXPECT().UpdateBalance(gomock.Any(), nil, int64(1), decimalEq("0")).
					Return(nil)
				d.transactionAppender.EXPECT().AppendTransaction(gomock.Any(), nil, gomock.Any()).
					Return(domain.Transaction{ID: 3}, nil)
			},
			expectedBalance: "0",
		},
		{
			name:      "insufficient balance writes nothing",
			accountID: 1,
			amount:    dec("1000.01"),
			prepareFn: func(t *testing.T, d *engineDeps) {
				d.expectLocked([]int64{1}, storedAccount(1, "1000"))
			},
			expectedErr: &domain.InsufficientBalanceError{},
		},
		{
			name:      "unknown account",
			accountID: 4,
			amount:    dec("1"),
			prepareFn: func(t *testing.T, d *engineDeps) {
				d.expectLocked([]int64{4})
			},
			expectedErr: &domain.AccountNotFoundError{},
		},
		{
			name:        "zero amount",
			accountID:   1,
			amount:      decimal.Zero,
			prepareFn:   func(t *testing.T, d *engineDeps) {},
			expectedErr: &domain.InvalidArgumentsError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d := newEngineDeps(ctrl)
			tt.prepareFn(t, d)

			updated, err := d.engine().Withdraw(t.Context(), tt.accountID, tt.amount)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.True(t, dec(tt.expectedBalance).Equal(updated.Balance), "balance %s", updated.Balance)
		})
	}
}

func TestTransferEngine_Transfer(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		from   int64
		to     int64
		amount decimal.Decimal

		prepareFn func(t *testing.T, d *engineDeps)

		expectedUnlocks int
		expectedErr     error
	}

	tests := []testCase{
		{
			name:   "moves funds and journals both sides",
			from:   1,
			to:     2,
			amount: dec("300"),
			prepareFn: func(t *testing.T, d *engineDeps) {
				d.expectLocked([]int64{1, 2}, storedAccount(1, "1000"), storedAccount(2, "500"))
				d.balanceUpdater.EXPECT().UpdateBalance(gomock.Any(), nil, int64(1), decimalEq("700")).
					Return(nil)
				d.balanceUpdater.EXPECT().UpdateBalance(gomock.Any(), nil, int64(2), decimalEq("800")).
					Return(nil)
				d.transactionAppender.EXPECT().AppendTransaction(gomock.Any(), nil, transactionEq(domain.Transaction{
					AccountID: 1, Amount: dec("300"), Type: domain.TransactionTypeTransfer,
					Direction: domain.DirectionDebit, CounterpartyID: 2, Timestamp: engineNow,
				})).Return(domain.Transaction{ID: 10}, nil)
				d.transactionAppender.EXPECT().AppendTransaction(gomock.Any(), nil, transactionEq(domain.Transaction{
					AccountID: 2, Amount: dec("300"), Type: domain.TransactionTypeTransfer,
					Direction: domain.DirectionCredit, CounterpartyID: 1, Timestamp: engineNow,
				})).Return(domain.Transaction{ID: 11}, nil)
			},
			expectedUnlocks: 1,
		},
		{
			name:   "higher id as source",
			from:   2,
			to:     1,
			amount: dec("500"),
			prepareFn: func(t *testing.T, d *engineDeps) {
				d.expectLocked([]int64{2, 1}, storedAccount(1, "0"), storedAccount(2, "500"))
				d.balanceUpdater.EXPECT().UpdateBalance(gomock.Any(), nil, int64(2), decimalEq("0")).
					Return(nil)
				d.balanceUpdater.EXPECT().UpdateBalance(gomock.Any(), nil, int64(1), decimalEq("500")).
					Return(nil)
				d.transactionAppender.EXPECT().AppendTransaction(gomock.Any(), nil, gomock.Any()).
					Return(domain.Transaction{}, nil).Times(2)
			},
			expectedUnlocks: 1,
		},
		{
			name:        "same account",
			from:        1,
			to:          1,
			amount:      dec("10"),
			prepareFn:   func(t *testing.T, d *engineDeps) {},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:        "non positive amount",
			from:        1,
			to:          2,
			amount:      dec("0"),
			prepareFn:   func(t *testing.T, d *engineDeps) {},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:        "amount beyond store range",
			from:        1,
			to:          2,
			amount:      dec("1000000000000000000"),
			prepareFn:   func(t *testing.T, d *engineDeps) {},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:   "credit beyond store range leaves both accounts untouched",
			from:   1,
			to:     2,
			amount: dec("100"),
			prepareFn: func(t *testing.T, d *engineDeps) {
				d.expectLocked([]int64{1, 2}, storedAccount(1, "1000"), storedAccount(2, "999999999999999950"))
			},
			expectedUnlocks: 1,
			expectedErr:     &domain.InvalidArgumentsError{},
		},
		{
			name:   "missing source",
			from:   1,
			to:     2,
			amount: dec("10"),
			prepareFn: func(t *testing.T, d *engineDeps) {
				d.expectLocked([]int64{1, 2}, storedAccount(2, "500"))
			},
			expectedUnlocks: 1,
			expectedErr:     &domain.AccountNotFoundError{},
		},
		{
			name:   "insufficient funds checked before destination existence",
			from:   1,
			to:     2,
			amount: dec("300"),
			prepareFn: func(t *testing.T, d *engineDeps) {
				d.expectLocked([]int64{1, 2}, storedAccount(1, "100"))
			},
			expectedUnlocks: 1,
			expectedErr:     &domain.InsufficientBalanceError{},
		},
		{
			name:   "missing destination leaves source untouched",
			from:   1,
			to:     99,
			amount: dec("300"),
			prepareFn: func(t *testing.T, d *engineDeps) {
				d.expectLocked([]int64{1, 99}, storedAccount(1, "1000"))
			},
			expectedUnlocks: 1,
			expectedErr:     &domain.AccountNotFoundError{},
		},
		{
			name:   "guard timeout is a conflict",
			from:   1,
			to:     2,
			amount: dec("10"),
			prepareFn: func(t *testing.T, d *engineDeps) {
				d.accountGuard.EXPECT().LockAccounts(gomock.Any(), []int64{1, 2}).
					Return(nil, context.DeadlineExceeded)
			},
			expectedErr: &domain.ConflictError{},
		},
		{
			name:   "database lock timeout is a conflict",
			from:   1,
			to:     2,
			amount: dec("10"),
			prepareFn: func(t *testing.T, d *engineDeps) {
				d.accountGuard.EXPECT().LockAccounts(gomock.Any(), []int64{1, 2}).
					Return(func() { d.unlocked++ }, nil)
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("failed to execute logic within transaction: %w", &pgconn.PgError{Code: "55P03"}))
			},
			expectedUnlocks: 1,
			expectedErr:     &domain.ConflictError{},
		},
		{
			name:   "journal failure aborts transfer",
			from:   1,
			to:     2,
			amount: dec("10"),
			prepareFn: func(t *testing.T, d *engineDeps) {
				d.expectLocked([]int64{1, 2}, storedAccount(1, "1000"), storedAccount(2, "500"))
				d.balanceUpdater.EXPECT().UpdateBalance(gomock.Any(), nil, gomock.Any(), gomock.Any()).
					Return(nil).Times(2)
				d.transactionAppender.EXPECT().AppendTransaction(gomock.Any(), nil, gomock.Any()).
					Return(domain.Transaction{}, assert.AnError)
			},
			expectedUnlocks: 1,
			expectedErr:     assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d := newEngineDeps(ctrl)
			tt.prepareFn(t, d)

			err := d.engine().Transfer(t.Context(), tt.from, tt.to, tt.amount)
			assert.Equal(t, tt.expectedUnlocks, d.unlocked)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransferEngine_ListAccountTransactions(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newEngineDeps(ctrl)
	d.accountsRepository.EXPECT().GetAccount(gomock.Any(), int64(1)).Return(storedAccount(1, "0"), nil)
	d.transactionsFetcher.EXPECT().FetchAccountTransactions(gomock.Any(), int64(1)).
		Return([]domain.Transaction{{ID: 2}, {ID: 1}}, nil)

	transactions, err := d.engine().ListAccountTransactions(t.Context(), 1)
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, int64(1), transactions[0].ID)
	assert.Equal(t, int64(2), transactions[1].ID)
}
