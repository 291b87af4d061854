package application

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/somanmedha/banking-application/internal/ledger/domain"
	"github.com/somanmedha/banking-application/internal/pkg/logging"
)

type AccountRegistry struct {
	accountsRepository domain.AccountsRepository
	logger             logging.Logger
}

func NewAccountRegistry(accountsRepository domain.AccountsRepository, logger logging.Logger) *AccountRegistry {
	return &AccountRegistry{
		accountsRepository: accountsRepository,
		logger:             logger,
	}
}

func (r *AccountRegistry) CreateAccount(ctx context.Context, holderName string, openingBalance decimal.Decimal) (domain.Account, error) {
	if strings.TrimSpace(holderName) == "" {
		return domain.Account{}, &domain.InvalidArgumentsError{Msg: "holder name must not be empty"}
	}

	if openingBalance.IsNegative() {
		return domain.Account{}, &domain.InvalidArgumentsError{Msg: "opening balance must not be negative"}
	}

	if err := validateScale(openingBalance); err != nil {
		return domain.Account{}, err
	}

	account, err := r.accountsRepository.CreateAccount(ctx, holderName, openingBalance)
	if err != nil {
		return domain.Account{}, err
	}

	r.logger.Info("account created", "account_id", account.ID)

	return account, nil
}

func (r *AccountRegistry) GetAccount(ctx context.Context, accountID int64) (domain.Account, error) {
	return r.accountsRepository.GetAccount(ctx, accountID)
}

func (r *AccountRegistry) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := r.accountsRepository.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	if accounts == nil {
		accounts = make([]domain.Account, 0)
	}

	slices.SortFunc(accounts, func(a, b domain.Account) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return accounts, nil
}

// DeleteAccount removes the account only. Its journal is kept for audit.
func (r *AccountRegistry) DeleteAccount(ctx context.Context, accountID int64) error {
	err := r.accountsRepository.DeleteAccount(ctx, accountID)
	if err != nil {
		return err
	}

	r.logger.Info("account deleted", "account_id", accountID)

	return nil
}
