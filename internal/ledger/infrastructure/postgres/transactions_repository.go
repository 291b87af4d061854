package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/somanmedha/banking-application/internal/ledger/domain"
	"github.com/somanmedha/banking-application/internal/pkg/database"
)

type TransactionsRepository struct {
	querier database.Querier
}

func NewTransactionsRepository(querier database.Querier) *TransactionsRepository {
	return &TransactionsRepository{
		querier: querier,
	}
}

func (tr *TransactionsRepository) AppendTransaction(ctx context.Context, querier database.Querier, transaction domain.Transaction) (domain.Transaction, error) {
	insertSQL := `INSERT INTO transactions (account_id, amount, type, direction, counterparty_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

	err := querier.QueryRow(ctx, insertSQL,
		transaction.AccountID,
		transaction.Amount,
		string(transaction.Type),
		string(transaction.Direction),
		nullableID(transaction.CounterpartyID),
		transaction.Timestamp,
	).Scan(&transaction.ID)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("failed to insert transaction record: %w", err)
	}

	return transaction, nil
}

func (tr *TransactionsRepository) FetchAccountTransactions(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	selectSQL := `SELECT id, account_id, amount, type, direction, counterparty_id, created_at
FROM transactions
WHERE account_id = $1
ORDER BY id`

	rows, err := tr.querier.Query(ctx, selectSQL, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to select transactions: %w", err)
	}

	return collectTransactions(rows)
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	defer rows.Close()

	transactions := make([]domain.Transaction, 0)
	for rows.Next() {
		var (
			transaction    domain.Transaction
			txType         string
			direction      string
			counterpartyID *int64
		)

		err := rows.Scan(
			&transaction.ID,
			&transaction.AccountID,
			&transaction.Amount,
			&txType,
			&direction,
			&counterpartyID,
			&transaction.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}

		transaction.Type = domain.TransactionType(txType)
		transaction.Direction = domain.Direction(direction)
		if counterpartyID != nil {
			transaction.CounterpartyID = *counterpartyID
		}

		transactions = append(transactions, transaction)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transaction rows: %w", err)
	}

	return transactions, nil
}

func nullableID(id int64) any {
	if id == 0 {
		return nil
	}

	return id
}
