package iocatalog

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"
)

// withTx runs fn in a transaction. Any exit without a successful commit
// rolls the transaction back, including panics and cancelled contexts.
func (s *store) withTx(
	ctx context.Context,
	op string,
	fn func(*sql.Tx) error,
) error {
	start := time.Now()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.metrics.Observe(ctx, op, false, time.Since(start))
		return TransactionError(op, err)
	}

	var committed bool
	defer func() {
		if committed {
			return
		}
		rbErr := tx.Rollback()
		if rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			slog.Error("Rollback failed", "operation", op, "error", rbErr)
		}
		s.metrics.Observe(ctx, op, false, time.Since(start))
		slog.Debug("Transaction rolled back", "operation", op)
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return TransactionError(op, err)
	}
	committed = true
	s.metrics.Observe(ctx, op, true, time.Since(start))
	if s.afterCommit != nil {
		s.afterCommit(ctx, op)
	}
	return nil
}

// savepoint runs fn under a savepoint. If fn fails, changes of fn are
// undone and the transaction can continue.
func savepoint(
	ctx context.Context,
	tx *sql.Tx,
	name string,
	fn func() error,
) error {
	if _, err := tx.ExecContext(ctx, "SAVEPOINT "+name); err != nil {
		return err
	}

	if err := fn(); err != nil {
		_, spErr := tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+name)
		if spErr != nil {
			return errors.Join(err, spErr)
		}
		return err
	}

	_, err := tx.ExecContext(ctx, "RELEASE SAVEPOINT "+name)
	return err
}
