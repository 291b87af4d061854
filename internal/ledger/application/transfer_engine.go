package application

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/somanmedha/banking-application/internal/ledger/domain"
	"github.com/somanmedha/banking-application/internal/pkg/database"
	"github.com/somanmedha/banking-application/internal/pkg/logging"
)

const DefaultLockTimeout = 2 * time.Second

// lockedFn runs inside the store transaction while every requested account
// is held. Accounts that do not exist are absent from the map.
type lockedFn func(ctx context.Context, executor database.QueryExecuter, accounts map[int64]domain.Account, at time.Time) error

type TransferEngine struct {
	txManager      database.TxManager
	accountGuard   domain.AccountGuard
	accountsLocker domain.AccountsLocker
	balanceUpdater domain.BalanceUpdater
	journal        *TransactionJournal
	lockTimeout    time.Duration
	now            func() time.Time
	logger         logging.Logger
}

func NewTransferEngine(
	txManager database.TxManager,
	accountGuard domain.AccountGuard,
	accountsLocker domain.AccountsLocker,
	balanceUpdater domain.BalanceUpdater,
	journal *TransactionJournal,
	lockTimeout time.Duration,
	logger logging.Logger,
) *TransferEngine {
	if lockTimeout <= 0 {
		lockTimeout = DefaultLockTimeout
	}

	return &TransferEngine{
		txManager:      txManager,
		accountGuard:   accountGuard,
		accountsLocker: accountsLocker,
		balanceUpdater: balanceUpdater,
		journal:        journal,
		lockTimeout:    lockTimeout,
		now:            time.Now,
		logger:         logger,
	}
}

func (e *TransferEngine) Deposit(ctx context.Context, accountID int64, amount decimal.Decimal) (domain.Account, error) {
	if err := validateAmount(amount); err != nil {
		return domain.Account{}, err
	}

	var updated domain.Account

	err := e.withAccountsLocked(ctx, []int64{accountID}, func(ctx context.Context, executor database.QueryExecuter, accounts map[int64]domain.Account, at time.Time) error {
		account, ok := accounts[accountID]
		if !ok {
			return accountNotFound(accountID)
		}

		account.Balance = account.Balance.Add(amount)
		if !fitsStore(account.Balance) {
			return balanceOverflow(accountID)
		}

		err := e.balanceUpdater.UpdateBalance(ctx, executor, accountID, account.Balance)
		if err != nil {
			return err
		}

		_, err = e.journal.Append(ctx, executor, domain.Transaction{
			AccountID: accountID,
			Amount:    amount,
			Type:      domain.TransactionTypeDeposit,
			Direction: domain.DirectionCredit,
			Timestamp: at,
		})
		if err != nil {
			return err
		}

		updated = account
		return nil
	})
	if err != nil {
		return domain.Account{}, err
	}

	e.logger.Info("deposit committed", "account_id", accountID, "amount", amount.String())

	return updated, nil
}

func (e *TransferEngine) Withdraw(ctx context.Context, accountID int64, amount decimal.Decimal) (domain.Account, error) {
	if err := validateAmount(amount); err != nil {
		return domain.Account{}, err
	}

	var updated domain.Account

	err := e.withAccountsLocked(ctx, []int64{accountID}, func(ctx context.Context, executor database.QueryExecuter, accounts map[int64]domain.Account, at time.Time) error {
		account, ok := accounts[accountID]
		if !ok {
			return accountNotFound(accountID)
		}

		if account.Balance.LessThan(amount) {
			return insufficientBalance(accountID)
		}

		account.Balance = account.Balance.Sub(amount)

		err := e.balanceUpdater.UpdateBalance(ctx, executor, accountID, account.Balance)
		if err != nil {
			return err
		}

		_, err = e.journal.Append(ctx, executor, domain.Transaction{
			AccountID: accountID,
			Amount:    amount,
			Type:      domain.TransactionTypeWithdraw,
			Direction: domain.DirectionDebit,
			Timestamp: at,
		})
		if err != nil {
			return err
		}

		updated = account
		return nil
	})
	if err != nil {
		return domain.Account{}, err
	}

	e.logger.Info("withdrawal committed", "account_id", accountID, "amount", amount.String())

	return updated, nil
}

// Transfer moves amount between two accounts and journals a DEBIT on the
// source and a CREDIT on the destination. Either everything commits or
// nothing does.
func (e *TransferEngine) Transfer(ctx context.Context, fromAccountID int64, toAccountID int64, amount decimal.Decimal) error {
	if err := validateAmount(amount); err != nil {
		return err
	}

	if fromAccountID == toAccountID {
		return &domain.InvalidArgumentsError{Msg: "source and destination accounts must differ"}
	}

	err := e.withAccountsLocked(ctx, []int64{fromAccountID, toAccountID}, func(ctx context.Context, executor database.QueryExecuter, accounts map[int64]domain.Account, at time.Time) error {
		source, ok := accounts[fromAccountID]
		if !ok {
			return accountNotFound(fromAccountID)
		}

		if source.Balance.LessThan(amount) {
			return insufficientBalance(fromAccountID)
		}

		destination, ok := accounts[toAccountID]
		if !ok {
			return accountNotFound(toAccountID)
		}

		credited := destination.Balance.Add(amount)
		if !fitsStore(credited) {
			return balanceOverflow(toAccountID)
		}

		err := e.balanceUpdater.UpdateBalance(ctx, executor, fromAccountID, source.Balance.Sub(amount))
		if err != nil {
			return err
		}

		err = e.balanceUpdater.UpdateBalance(ctx, executor, toAccountID, credited)
		if err != nil {
			return err
		}

		_, err = e.journal.Append(ctx, executor, domain.Transaction{
			AccountID:      fromAccountID,
			Amount:         amount,
			Type:           domain.TransactionTypeTransfer,
			Direction:      domain.DirectionDebit,
			CounterpartyID: toAccountID,
			Timestamp:      at,
		})
		if err != nil {
			return err
		}

		_, err = e.journal.Append(ctx, executor, domain.Transaction{
			AccountID:      toAccountID,
			Amount:         amount,
			Type:           domain.TransactionTypeTransfer,
			Direction:      domain.DirectionCredit,
			CounterpartyID: fromAccountID,
			Timestamp:      at,
		})
		return err
	})
	if err != nil {
		return err
	}

	e.logger.Info("transfer committed",
		"from_account_id", fromAccountID,
		"to_account_id", toAccountID,
		"amount", amount.String(),
	)

	return nil
}

func (e *TransferEngine) ListAccountTransactions(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	return e.journal.ListByAccount(ctx, accountID)
}

// withAccountsLocked takes the in-process guard first and the row locks
// second, both in ascending id order, so two engines never wait on each
// other in a cycle. The lock timeout bounds the guard acquisition only.
func (e *TransferEngine) withAccountsLocked(ctx context.Context, accountIDs []int64, fn lockedFn) error {
	lockCtx, cancel := context.WithTimeout(ctx, e.lockTimeout)
	defer cancel()

	unlock, err := e.accountGuard.LockAccounts(lockCtx, accountIDs)
	if err != nil {
		e.logger.Warn("failed to acquire account locks", "account_ids", accountIDs, "error", err.Error())
		return &domain.ConflictError{Msg: fmt.Sprintf("accounts %v are busy, try again", accountIDs)}
	}
	defer unlock()

	err = e.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		locked, err := e.accountsLocker.LockAccounts(ctx, executor, accountIDs)
		if err != nil {
			return err
		}

		accounts := make(map[int64]domain.Account, len(locked))
		for _, account := range locked {
			accounts[account.ID] = account
		}

		return fn(ctx, executor, accounts, e.now().UTC())
	})

	if database.IsConcurrencyConflict(err) {
		e.logger.Warn("ledger store rejected operation under contention", "account_ids", accountIDs, "error", err.Error())
		return &domain.ConflictError{Msg: fmt.Sprintf("accounts %v are busy, try again", accountIDs)}
	}

	return err
}

func accountNotFound(accountID int64) error {
	return &domain.AccountNotFoundError{Msg: fmt.Sprintf("account with id %d not found", accountID)}
}

func insufficientBalance(accountID int64) error {
	return &domain.InsufficientBalanceError{Msg: fmt.Sprintf("insufficient balance on account %d", accountID)}
}
