package application

import (
	"cmp"
	"context"
	"slices"

	"github.com/shopspring/decimal"
	"github.com/somanmedha/banking-application/internal/ledger/domain"
	"github.com/somanmedha/banking-application/internal/pkg/database"
	"golang.org/x/sync/errgroup"
)

type TransactionJournal struct {
	accountsRepository  domain.AccountsRepository
	transactionAppender domain.TransactionAppender
	transactionsFetcher domain.TransactionsFetcher
}

func NewTransactionJournal(
	accountsRepository domain.AccountsRepository,
	transactionAppender domain.TransactionAppender,
	transactionsFetcher domain.TransactionsFetcher,
) *TransactionJournal {
	return &TransactionJournal{
		accountsRepository:  accountsRepository,
		transactionAppender: transactionAppender,
		transactionsFetcher: transactionsFetcher,
	}
}

// Append writes a record through the caller's transaction. It must run in
// the same unit of work as the balance change it describes.
func (j *TransactionJournal) Append(ctx context.Context, querier database.Querier, transaction domain.Transaction) (domain.Transaction, error) {
	if !transaction.Amount.IsPositive() {
		return domain.Transaction{}, &domain.InvalidArgumentsError{Msg: "journal amount must be positive"}
	}

	return j.transactionAppender.AppendTransaction(ctx, querier, transaction)
}

// ListByAccount returns the account's records in insertion order, which is
// id order, whatever their timestamps are.
func (j *TransactionJournal) ListByAccount(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	if _, err := j.accountsRepository.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}

	transactions, err := j.transactionsFetcher.FetchAccountTransactions(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return sortByID(transactions), nil
}

// Reconcile replays the journal of one account on top of its opening balance
// and compares the result with the stored balance.
func (j *TransactionJournal) Reconcile(ctx context.Context, accountID int64) (domain.Reconciliation, error) {
	group, groupCtx := errgroup.WithContext(ctx)

	var account domain.Account
	var transactions []domain.Transaction

	group.Go(func() error {
		var err error
		account, err = j.accountsRepository.GetAccount(groupCtx, accountID)
		return err
	})

	group.Go(func() error {
		var err error
		transactions, err = j.transactionsFetcher.FetchAccountTransactions(groupCtx, accountID)
		return err
	})

	if err := group.Wait(); err != nil {
		return domain.Reconciliation{}, err
	}

	journalNet := decimal.Zero
	for _, transaction := range transactions {
		journalNet = journalNet.Add(transaction.SignedAmount())
	}

	expected := account.OpeningBalance.Add(journalNet)

	return domain.Reconciliation{
		AccountID:       account.ID,
		Balance:         account.Balance,
		OpeningBalance:  account.OpeningBalance,
		JournalNet:      journalNet,
		ExpectedBalance: expected,
		Consistent:      expected.Equal(account.Balance),
	}, nil
}

func sortByID(transactions []domain.Transaction) []domain.Transaction {
	if transactions == nil {
		return make([]domain.Transaction, 0)
	}

	slices.SortStableFunc(transactions, func(a, b domain.Transaction) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return transactions
}
