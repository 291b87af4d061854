package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/somanmedha/banking-application/internal/pkg/database"
)

type TransactionType string

const (
	TransactionTypeDeposit  TransactionType = "DEPOSIT"
	TransactionTypeWithdraw TransactionType = "WITHDRAW"
	TransactionTypeTransfer TransactionType = "TRANSFER"
)

type Direction string

const (
	DirectionCredit Direction = "CREDIT"
	DirectionDebit  Direction = "DEBIT"
)

// Transaction is one journal record. Amount is always positive, the effect on
// the balance is given by Direction.
type Transaction struct {
	ID             int64
	AccountID      int64
	Amount         decimal.Decimal
	Type           TransactionType
	Direction      Direction
	CounterpartyID int64
	Timestamp      time.Time
}

func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Direction == DirectionDebit {
		return t.Amount.Neg()
	}

	return t.Amount
}

type TransactionAppender interface {
	AppendTransaction(ctx context.Context, querier database.Querier, transaction Transaction) (Transaction, error)
}

type TransactionsFetcher interface {
	FetchAccountTransactions(ctx context.Context, accountID int64) ([]Transaction, error)
}

type Reconciliation struct {
	AccountID       int64
	Balance         decimal.Decimal
	OpeningBalance  decimal.Decimal
	JournalNet      decimal.Decimal
	ExpectedBalance decimal.Decimal
	Consistent      bool
}
