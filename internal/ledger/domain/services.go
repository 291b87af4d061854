package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type AccountsService interface {
	CreateAccount(ctx context.Context, holderName string, openingBalance decimal.Decimal) (Account, error)
	GetAccount(ctx context.Context, accountID int64) (Account, error)
	ListAccounts(ctx context.Context) ([]Account, error)
	DeleteAccount(ctx context.Context, accountID int64) error
}

type FundsService interface {
	Deposit(ctx context.Context, accountID int64, amount decimal.Decimal) (Account, error)
	Withdraw(ctx context.Context, accountID int64, amount decimal.Decimal) (Account, error)
	Transfer(ctx context.Context, fromAccountID, toAccountID int64, amount decimal.Decimal) error
	ListAccountTransactions(ctx context.Context, accountID int64) ([]Transaction, error)
}

type AuditService interface {
	Reconcile(ctx context.Context, accountID int64) (Reconciliation, error)
}
