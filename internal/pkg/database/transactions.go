package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/somanmedha/banking-application/internal/pkg/logging"
)

type TxManager interface {
	WithinTransaction(ctx context.Context, txFn TxFunc) error
}

type TxFunc func(ctx context.Context, executor QueryExecuter) error

type DelegateTxManager struct {
	txBeginner  TxBeginner
	logger      logging.Logger
	lockTimeout time.Duration
}

// NewDelegateTxManager returns a manager running every TxFunc in its own
// ReadCommitted transaction. A positive lockTimeout caps row lock waits
// inside that transaction.
func NewDelegateTxManager(txBeginner TxBeginner, logger logging.Logger, lockTimeout time.Duration) *DelegateTxManager {
	return &DelegateTxManager{
		txBeginner:  txBeginner,
		logger:      logger,
		lockTimeout: lockTimeout,
	}
}

func (tm *DelegateTxManager) WithinTransaction(ctx context.Context, txFn TxFunc) error {
	tx, err := tm.txBeginner.BeginTx(ctx, pgx.TxOptions{
		IsoLevel: pgx.ReadCommitted,
	})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			tm.logger.Error("failed to rollback transaction", "error", err)
		}
	}()

	if tm.lockTimeout > 0 {
		lockTimeoutSQL := fmt.Sprintf("SET LOCAL lock_timeout = %d", tm.lockTimeout.Milliseconds())
		if _, err = tx.Exec(ctx, lockTimeoutSQL); err != nil {
			return fmt.Errorf("failed to set lock timeout: %w", err)
		}
	}

	err = txFn(ctx, tx)
	if err != nil {
		return fmt.Errorf("failed to execute logic within transaction: %w", err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
