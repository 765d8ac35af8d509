package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type contextKey string

// TxKey carries the open transaction through the context so repositories
// can pick it up transparently.
const TxKey contextKey = "db_tx"

// WithTx returns a context carrying the given transaction.
func WithTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, TxKey, tx)
}

// TxFromContext retrieves the transaction from the context, or nil.
func TxFromContext(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(TxKey).(pgx.Tx)
	return tx
}

// Beginner is the slice of *pgxpool.Pool needed to open transactions.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Transactor runs a function inside a single database transaction. The
// transaction is injected into the context handed to the function, so any
// repository call made through that context joins it.
type Transactor struct {
	db     Beginner
	logger zerolog.Logger
}

func NewTransactor(db Beginner, logger zerolog.Logger) *Transactor {
	return &Transactor{db: db, logger: logger}
}

// InTx begins a transaction, runs fn with it in context, and commits.
// Any error from fn rolls the transaction back and is returned unchanged;
// a failing rollback is logged and never overrides the original error.
func (t *Transactor) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := t.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(WithTx(ctx, tx)); err != nil {
		t.rollback(ctx, tx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		t.rollback(ctx, tx)
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (t *Transactor) rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		t.logger.Error().Err(err).Msg("transaction rollback failed")
	}
}
