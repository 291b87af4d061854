package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/somanmedha/banking-application/internal/ledger/domain"
	"github.com/somanmedha/banking-application/internal/pkg/database"
)

const accountColumns = `id, holder_name, balance, opening_balance, created_at`

type AccountsRepository struct {
	queryExecuter database.QueryExecuter
}

func NewAccountsRepository(queryExecuter database.QueryExecuter) *AccountsRepository {
	return &AccountsRepository{
		queryExecuter: queryExecuter,
	}
}

func (ar *AccountsRepository) CreateAccount(ctx context.Context, holderName string, openingBalance decimal.Decimal) (domain.Account, error) {
	createSQL := `INSERT INTO accounts (holder_name, balance, opening_balance) VALUES ($1, $2, $2)
RETURNING ` + accountColumns

	var account domain.Account
	err := scanAccount(ar.queryExecuter.QueryRow(ctx, createSQL, holderName, openingBalance), &account)
	if err != nil {
		return domain.Account{}, fmt.Errorf("failed to insert account: %w", err)
	}

	return account, nil
}

func (ar *AccountsRepository) GetAccount(ctx context.Context, accountID int64) (domain.Account, error) {
	getSQL := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	var account domain.Account
	err := scanAccount(ar.queryExecuter.QueryRow(ctx, getSQL, accountID), &account)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Account{}, &domain.AccountNotFoundError{Msg: fmt.Sprintf("account with id %d not found", accountID)}
		}

		return domain.Account{}, fmt.Errorf("failed to get account: %w", err)
	}

	return account, nil
}

func (ar *AccountsRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	listSQL := `SELECT ` + accountColumns + ` FROM accounts ORDER BY id`

	rows, err := ar.queryExecuter.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	return collectAccounts(rows)
}

func (ar *AccountsRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	deleteSQL := `DELETE FROM accounts WHERE id = $1`

	tag, err := ar.queryExecuter.Exec(ctx, deleteSQL, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	} else if tag.RowsAffected() == 0 {
		return &domain.AccountNotFoundError{Msg: fmt.Sprintf("account with id %d not found", accountID)}
	}

	return nil
}

// LockAccounts takes the row locks in id order. Together with the ordered
// in-process guard this keeps opposite transfers between the same pair of
// accounts from deadlocking.
func (ar *AccountsRepository) LockAccounts(ctx context.Context, querier database.Querier, accountIDs []int64) ([]domain.Account, error) {
	lockSQL := `SELECT ` + accountColumns + `
FROM accounts
WHERE id = ANY($1)
ORDER BY id
FOR UPDATE`

	rows, err := querier.Query(ctx, lockSQL, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to lock accounts: %w", err)
	}

	return collectAccounts(rows)
}

func (ar *AccountsRepository) UpdateBalance(ctx context.Context, executor database.Executor, accountID int64, balance decimal.Decimal) error {
	updateSQL := `UPDATE accounts SET balance = $1 WHERE id = $2`

	tag, err := executor.Exec(ctx, updateSQL, balance, accountID)
	if err != nil {
		return fmt.Errorf("failed to update balance for account %d: %w", accountID, err)
	} else if tag.RowsAffected() == 0 {
		return &domain.AccountNotFoundError{Msg: fmt.Sprintf("account with id %d not found", accountID)}
	}

	return nil
}

func scanAccount(row pgx.Row, account *domain.Account) error {
	return row.Scan(&account.ID, &account.HolderName, &account.Balance, &account.OpeningBalance, &account.CreatedAt)
}

func collectAccounts(rows pgx.Rows) ([]domain.Account, error) {
	defer rows.Close()

	accounts := make([]domain.Account, 0)
	for rows.Next() {
		var account domain.Account
		if err := scanAccount(rows, &account); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}

		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read account rows: %w", err)
	}

	return accounts, nil
}
