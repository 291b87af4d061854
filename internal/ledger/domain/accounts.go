package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/somanmedha/banking-application/internal/pkg/database"
)

type Account struct {
	ID             int64
	HolderName     string
	Balance        decimal.Decimal
	OpeningBalance decimal.Decimal
	CreatedAt      time.Time
}

type AccountsRepository interface {
	CreateAccount(ctx context.Context, holderName string, openingBalance decimal.Decimal) (Account, error)
	GetAccount(ctx context.Context, accountID int64) (Account, error)
	ListAccounts(ctx context.Context) ([]Account, error)
	DeleteAccount(ctx context.Context, accountID int64) error
}

// AccountsLocker row-locks the given accounts for the rest of the
// surrounding transaction and returns the ones that exist, ordered by id.
type AccountsLocker interface {
	LockAccounts(ctx context.Context, querier database.Querier, accountIDs []int64) ([]Account, error)
}

type BalanceUpdater interface {
	UpdateBalance(ctx context.Context, executor database.Executor, accountID int64, balance decimal.Decimal) error
}

// AccountGuard serializes work on the same accounts inside this process.
type AccountGuard interface {
	LockAccounts(ctx context.Context, accountIDs []int64) (func(), error)
}
